package voices

import (
	"context"
	"io"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/703deuce/tts/internal/ports"
	"github.com/703deuce/tts/internal/transcription"
)

// fakeStorage is an in-memory ports.StorageClient.
type fakeStorage struct {
	mu        sync.Mutex
	objects   map[string][]byte
	uploadErr error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string][]byte{}}
}

func (f *fakeStorage) Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	f.mu.Lock()
	f.objects[key] = data
	f.mu.Unlock()
	return f.PublicURL(key), nil
}

func (f *fakeStorage) PublicURL(key string) string {
	return "https://storage.local/voices/" + key
}

func (f *fakeStorage) List(ctx context.Context, prefix string) ([]ports.ObjectInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var keys []string
	for key := range f.objects {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	var infos []ports.ObjectInfo
	for _, key := range keys {
		infos = append(infos, ports.ObjectInfo{Path: key, Name: strings.TrimPrefix(key, prefix)})
	}
	return infos, nil
}

func (f *fakeStorage) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.objects[key]; !ok {
		return ports.ErrObjectNotFound
	}
	delete(f.objects, key)
	return nil
}

// memCache is an in-memory ports.VoiceCache.
type memCache struct {
	mu    sync.Mutex
	metas map[string]ports.VoiceMeta
}

func newMemCache() *memCache {
	return &memCache{metas: map[string]ports.VoiceMeta{}}
}

func (c *memCache) Get(id string) (ports.VoiceMeta, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	meta, ok := c.metas[id]
	return meta, ok
}

func (c *memCache) Put(meta ports.VoiceMeta) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.metas[meta.ID] = meta
	return nil
}

func (c *memCache) Delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.metas, id)
	return nil
}

func (c *memCache) Replace(metas []ports.VoiceMeta) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.metas = map[string]ports.VoiceMeta{}
	for _, meta := range metas {
		c.metas[meta.ID] = meta
	}
	return nil
}

func (c *memCache) All() []ports.VoiceMeta {
	c.mu.Lock()
	defer c.mu.Unlock()
	var all []ports.VoiceMeta
	for _, meta := range c.metas {
		all = append(all, meta)
	}
	return all
}

type fakeTranscriber struct {
	result transcription.Result
	err    error
	calls  int
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, req transcription.Request, onStatus ports.StatusFunc) (transcription.Result, error) {
	f.calls++
	if f.err != nil {
		return transcription.Result{}, f.err
	}
	return f.result, nil
}

func testCatalog(t *testing.T) (*Catalog, *fakeStorage, *memCache) {
	t.Helper()
	storage := newFakeStorage()
	cache := newMemCache()
	return NewCatalog(storage, cache, "anonymous", zap.NewNop().Sugar()), storage, cache
}

func TestBuiltinVoicesUniqueAndConsolidated(t *testing.T) {
	catalog, _, _ := testCatalog(t)
	all := catalog.ListAll()
	require.Len(t, all, len(builtinVoices))

	seen := map[string]bool{}
	for _, v := range all {
		assert.False(t, seen[v.ID], "duplicate voice id %s", v.ID)
		seen[v.ID] = true
		assert.True(t, consolidatedCategories[v.Category], "voice %s has unmapped category %q", v.ID, v.Category)
		assert.False(t, v.IsCustom)
	}
}

func TestConsolidateCategory(t *testing.T) {
	assert.Equal(t, "Business", consolidateCategory("Corporate"))
	assert.Equal(t, "Entertainment", consolidateCategory("Podcast"))
	assert.Equal(t, "News & Media", consolidateCategory("News & Media"))
	assert.Equal(t, DefaultCategory, consolidateCategory("Something Else"))
}

func TestListByCategory(t *testing.T) {
	catalog, _, _ := testCatalog(t)

	all := catalog.ListByCategory(AllVoicesFilter)
	assert.Len(t, all, len(builtinVoices))

	business := catalog.ListByCategory("Business")
	require.NotEmpty(t, business)
	for _, v := range business {
		assert.Equal(t, "Business", v.Category)
	}

	// case-sensitive exact match
	assert.Empty(t, catalog.ListByCategory("business"))
}

func TestSearch(t *testing.T) {
	catalog, _, _ := testCatalog(t)

	byName := catalog.Search("blake")
	require.NotEmpty(t, byName)
	assert.Equal(t, "Blake_Sports_Podcast_Host", byName[0].ID)

	// OR semantics: category matches count too
	byCategory := catalog.Search("news & media")
	assert.NotEmpty(t, byCategory)

	assert.Empty(t, catalog.Search("no such voice anywhere"))
}

func TestCategoriesSortedWithSentinel(t *testing.T) {
	catalog, _, _ := testCatalog(t)

	categories := catalog.Categories()
	require.NotEmpty(t, categories)
	assert.Equal(t, AllVoicesFilter, categories[0])
	assert.True(t, sort.StringsAreSorted(categories[1:]))
}

func TestRefreshMergesStorageAndCache(t *testing.T) {
	catalog, storage, cache := testCatalog(t)
	ctx := context.Background()

	storage.objects["user_voices/anonymous/cloned_1000_abc123def_Maya_Pop_Queen.wav"] = []byte("wav")
	storage.objects["user_voices/anonymous/cloned_1000_abc123def_Maya_Pop_Queen.txt"] = []byte("hi")
	storage.objects["user_voices/anonymous/cloned_2000_xyz789ghi_Other.wav"] = []byte("wav")

	// cache knows the human-entered metadata for the first clone only,
	// plus a stale entry for a blob that no longer exists
	require.NoError(t, cache.Put(ports.VoiceMeta{ID: "cloned_1000_abc123def_Maya_Pop_Queen", Name: "Maya Pop Queen", Description: "warm podcast voice"}))
	require.NoError(t, cache.Put(ports.VoiceMeta{ID: "cloned_1_dead000aa_Gone", Name: "Gone"}))

	require.NoError(t, catalog.Refresh(ctx))

	all := catalog.ListAll()
	assert.Len(t, all, len(builtinVoices)+2, "txt blobs are not voices")

	maya, ok := catalog.FindByID("cloned_1000_abc123def_Maya_Pop_Queen")
	require.True(t, ok)
	assert.Equal(t, "Maya Pop Queen", maya.Name)
	assert.Equal(t, "warm podcast voice", maya.Description)
	assert.True(t, maya.IsCustom)
	assert.NotEmpty(t, maya.DownloadURL)

	other, ok := catalog.FindByID("cloned_2000_xyz789ghi_Other")
	require.True(t, ok)
	assert.Equal(t, "Other", other.Name, "name derived from the file stem")
	assert.Equal(t, CustomCategory, other.Category)

	// full replace: the stale cache entry is gone
	_, ok = cache.Get("cloned_1_dead000aa_Gone")
	assert.False(t, ok)
}

func TestRefreshDropsDeletedBlobs(t *testing.T) {
	catalog, storage, cache := testCatalog(t)
	ctx := context.Background()

	id := "cloned_1000_abc123def_Voice"
	storage.objects["user_voices/anonymous/"+id+".wav"] = []byte("wav")
	require.NoError(t, catalog.Refresh(ctx))
	_, ok := catalog.FindByID(id)
	require.True(t, ok)

	delete(storage.objects, "user_voices/anonymous/"+id+".wav")
	require.NoError(t, catalog.Refresh(ctx))

	_, ok = catalog.FindByID(id)
	assert.False(t, ok)
	_, ok = cache.Get(id)
	assert.False(t, ok)
}

func TestDeriveDisplayName(t *testing.T) {
	assert.Equal(t, "Maya Pop Culture Queen", deriveDisplayName("cloned_1756205093378_bzbfy4n4x_Maya_Pop_Culture_Queen"))
	assert.Equal(t, "Custom Voice", deriveDisplayName("not_a_cloned_id"))
}

func TestCustomCategoryAppearsAfterRefresh(t *testing.T) {
	catalog, storage, _ := testCatalog(t)

	storage.objects["user_voices/anonymous/cloned_1000_abc123def_V.wav"] = []byte("wav")
	require.NoError(t, catalog.Refresh(context.Background()))

	categories := catalog.Categories()
	found := false
	for _, c := range categories {
		if c == CustomCategory {
			found = true
		}
	}
	assert.True(t, found)
}
