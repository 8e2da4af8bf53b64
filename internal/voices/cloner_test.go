package voices

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/703deuce/tts/internal/ports"
	"github.com/703deuce/tts/internal/transcription"
)

func testCloner(t *testing.T) (*Cloner, *fakeStorage, *memCache, *fakeTranscriber) {
	t.Helper()
	storage := newFakeStorage()
	cache := newMemCache()
	transcriber := &fakeTranscriber{result: transcription.Result{Text: "sample transcript"}}
	cloner := NewCloner(storage, cache, transcriber, "anonymous", zap.NewNop().Sugar())
	return cloner, storage, cache, transcriber
}

func TestCloneVoice(t *testing.T) {
	cloner, storage, cache, transcriber := testCloner(t)

	voice, err := cloner.CloneVoice(context.Background(),
		strings.NewReader("RIFF....WAVE"), "sample.wav", 12, "Maya Pop Culture Queen", "warm and witty")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(voice.ID, ClonedPrefix))
	assert.True(t, strings.HasSuffix(voice.ID, "_Maya_Pop_Culture_Queen"))
	assert.True(t, voice.IsCustom)
	assert.Equal(t, "Maya Pop Culture Queen", voice.Name)
	assert.Equal(t, CustomCategory, voice.Category)
	assert.NotEmpty(t, voice.DownloadURL)

	// audio and the paired transcript share the filename stem
	wavPath := "user_voices/anonymous/" + voice.ID + ".wav"
	txtPath := "user_voices/anonymous/" + voice.ID + ".txt"
	assert.Equal(t, []byte("RIFF....WAVE"), storage.objects[wavPath])
	assert.Equal(t, []byte("sample transcript"), storage.objects[txtPath])
	assert.Equal(t, 1, transcriber.calls)

	meta, ok := cache.Get(voice.ID)
	require.True(t, ok)
	assert.Equal(t, "Maya Pop Culture Queen", meta.Name)
}

func TestCloneVoiceRoundTrip(t *testing.T) {
	storage := newFakeStorage()
	cache := newMemCache()
	transcriber := &fakeTranscriber{result: transcription.Result{Text: "hi"}}
	cloner := NewCloner(storage, cache, transcriber, "anonymous", zap.NewNop().Sugar())
	catalog := NewCatalog(storage, cache, "anonymous", zap.NewNop().Sugar())

	voice, err := cloner.CloneVoice(context.Background(),
		strings.NewReader("wav"), "v.wav", 3, "Studio Narrator", "")
	require.NoError(t, err)

	require.NoError(t, catalog.Refresh(context.Background()))

	found, ok := catalog.FindByID(voice.ID)
	require.True(t, ok)
	// cache-preferred metadata beats the name derived from the file stem
	assert.Equal(t, "Studio Narrator", found.Name)
}

func TestCloneVoiceValidation(t *testing.T) {
	cloner, storage, cache, transcriber := testCloner(t)
	ctx := context.Background()

	_, err := cloner.CloneVoice(ctx, strings.NewReader("x"), "sample.mp3", 1, "V", "")
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)

	_, err = cloner.CloneVoice(ctx, strings.NewReader("x"), "sample.wav", MaxVoiceFileSize+1, "V", "")
	require.ErrorAs(t, err, &validation)
	assert.Contains(t, validation.Error(), "limit")

	assert.Empty(t, storage.objects, "validation failures must not touch storage")
	assert.Empty(t, cache.All())
	assert.Zero(t, transcriber.calls)
}

func TestCloneVoiceTranscriptionFailureIsNotFatal(t *testing.T) {
	cloner, storage, cache, transcriber := testCloner(t)
	transcriber.err = errors.New("endpoint exploded")

	voice, err := cloner.CloneVoice(context.Background(),
		strings.NewReader("wav"), "v.wav", 3, "Quiet Voice", "")
	require.NoError(t, err, "voice clone succeeds without a transcript")

	wavPath := "user_voices/anonymous/" + voice.ID + ".wav"
	txtPath := "user_voices/anonymous/" + voice.ID + ".txt"
	assert.Contains(t, storage.objects, wavPath)
	assert.NotContains(t, storage.objects, txtPath)

	_, ok := cache.Get(voice.ID)
	assert.True(t, ok)
}

func TestCloneVoiceUploadFailureIsFatal(t *testing.T) {
	cloner, storage, cache, transcriber := testCloner(t)
	storage.uploadErr = errors.New("access denied")

	_, err := cloner.CloneVoice(context.Background(),
		strings.NewReader("wav"), "v.wav", 3, "V", "")
	require.Error(t, err)

	assert.Empty(t, cache.All(), "no cache entry may exist for a voice that failed to upload")
	assert.Zero(t, transcriber.calls)
}

func TestDeleteVoice(t *testing.T) {
	cloner, storage, cache, _ := testCloner(t)
	ctx := context.Background()

	id := "cloned_1000_abc123def_Voice"
	storage.objects["user_voices/anonymous/"+id+".wav"] = []byte("wav")
	storage.objects["user_voices/anonymous/"+id+".txt"] = []byte("txt")
	require.NoError(t, cache.Put(ports.VoiceMeta{ID: id, Name: "Voice"}))

	require.NoError(t, cloner.DeleteVoice(ctx, id))
	assert.Empty(t, storage.objects)
	_, ok := cache.Get(id)
	assert.False(t, ok)

	// second delete: primary blob is gone, the error surfaces but the
	// cache stays clean
	err := cloner.DeleteVoice(ctx, id)
	require.Error(t, err)
	assert.ErrorIs(t, err, ports.ErrObjectNotFound)
	_, ok = cache.Get(id)
	assert.False(t, ok)
}

func TestDeleteVoiceMissingTranscriptIsSuccess(t *testing.T) {
	cloner, storage, cache, _ := testCloner(t)

	id := "cloned_1000_abc123def_NoTxt"
	storage.objects["user_voices/anonymous/"+id+".wav"] = []byte("wav")
	require.NoError(t, cache.Put(ports.VoiceMeta{ID: id, Name: "NoTxt"}))

	require.NoError(t, cloner.DeleteVoice(context.Background(), id))
	assert.Empty(t, storage.objects)
}

func TestValidateVoiceFile(t *testing.T) {
	require.NoError(t, validateVoiceFile("ok.wav", 1024))
	require.NoError(t, validateVoiceFile("OK.WAV", MaxVoiceFileSize))
	require.Error(t, validateVoiceFile("bad.flac", 1024))
	require.Error(t, validateVoiceFile("big.wav", MaxVoiceFileSize+1))
}

func TestGenerateVoiceID(t *testing.T) {
	id := generateVoiceID()
	assert.Regexp(t, `^cloned_\d+_[a-z0-9]{9}$`, id)
	assert.NotEqual(t, id, generateVoiceID())
}
