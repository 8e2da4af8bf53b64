package voices

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/703deuce/tts/internal/ports"
)

// Catalog сводит встроенную таблицу голосов с обнаруженными в хранилище
// клонами. Листинг хранилища — источник правды про существование клона,
// локальный кэш — про его отображаемые метаданные.
type Catalog struct {
	mu       sync.RWMutex
	storage  ports.StorageClient
	cache    ports.VoiceCache
	scope    string
	builtins []Voice
	cloned   []Voice
	log      *zap.SugaredLogger
}

func NewCatalog(storage ports.StorageClient, cache ports.VoiceCache, scope string, log *zap.SugaredLogger) *Catalog {
	return &Catalog{
		storage:  storage,
		cache:    cache,
		scope:    scope,
		builtins: loadBuiltinVoices(),
		log:      log,
	}
}

func (c *Catalog) prefix() string {
	return fmt.Sprintf("user_voices/%s/", c.scope)
}

// ListAll — сначала встроенные (в порядке таблицы), потом клоны
// (в порядке листинга хранилища)
func (c *Catalog) ListAll() []Voice {
	c.mu.RLock()
	defer c.mu.RUnlock()

	all := make([]Voice, 0, len(c.builtins)+len(c.cloned))
	all = append(all, c.builtins...)
	all = append(all, c.cloned...)
	return all
}

// ListByCategory — "All Voices" значит без фильтра, остальное сравнивается
// с учётом регистра
func (c *Catalog) ListByCategory(category string) []Voice {
	if category == AllVoicesFilter {
		return c.ListAll()
	}

	var filtered []Voice
	for _, v := range c.ListAll() {
		if v.Category == category {
			filtered = append(filtered, v)
		}
	}
	return filtered
}

// Search — подстрока без учёта регистра по имени, описанию или категории
func (c *Catalog) Search(query string) []Voice {
	q := strings.ToLower(query)

	var found []Voice
	for _, v := range c.ListAll() {
		if strings.Contains(strings.ToLower(v.Name), q) ||
			strings.Contains(strings.ToLower(v.Description), q) ||
			strings.Contains(strings.ToLower(v.Category), q) {
			found = append(found, v)
		}
	}
	return found
}

// Categories — отсортированные уникальные категории, "All Voices" всегда
// первой
func (c *Catalog) Categories() []string {
	seen := map[string]bool{}
	for _, v := range c.ListAll() {
		seen[v.Category] = true
	}

	categories := make([]string, 0, len(seen))
	for category := range seen {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	return append([]string{AllVoicesFilter}, categories...)
}

func (c *Catalog) FindByID(id string) (Voice, bool) {
	for _, v := range c.ListAll() {
		if v.ID == id {
			return v, true
		}
	}
	return Voice{}, false
}

// клонированное имя файла: cloned_<ts>_<rand>_<имя>
var clonedNameRe = regexp.MustCompile(`^cloned_\d+_[a-z0-9]+_(.+)$`)

func deriveDisplayName(id string) string {
	if m := clonedNameRe.FindStringSubmatch(id); m != nil {
		return strings.ReplaceAll(m[1], "_", " ")
	}
	return "Custom Voice"
}

// Refresh — точка сверки с хранилищем. Листинг решает, какие клоны
// существуют; метаданные берём из кэша, если он их знает, иначе выводим
// из имени файла. Кэш подменяется целиком, чтобы записи удалённых блобов
// не задерживались.
func (c *Catalog) Refresh(ctx context.Context) error {
	objects, err := c.storage.List(ctx, c.prefix())
	if err != nil {
		return fmt.Errorf("refresh voices: %w", err)
	}

	var cloned []Voice
	var metas []ports.VoiceMeta

	for _, obj := range objects {
		if !strings.HasSuffix(obj.Name, ".wav") {
			continue
		}
		id := strings.TrimSuffix(obj.Name, ".wav")

		voice := Voice{
			ID:          id,
			Name:        deriveDisplayName(id),
			Description: "Custom cloned voice",
			Language:    customLanguage,
			Gender:      customGenderMark,
			Category:    CustomCategory,
			DownloadURL: c.storage.PublicURL(obj.Path),
		}
		meta := ports.VoiceMeta{ID: id, Name: voice.Name, Description: voice.Description}

		if cached, ok := c.cache.Get(id); ok {
			voice.Name = cached.Name
			if cached.Description != "" {
				voice.Description = cached.Description
			}
			meta = cached
		}

		cloned = append(cloned, newVoice(voice))
		metas = append(metas, meta)
	}

	if err := c.cache.Replace(metas); err != nil {
		c.log.Warnw("voice cache replace failed", "error", err)
	}

	c.mu.Lock()
	c.cloned = cloned
	c.mu.Unlock()

	c.log.Infow("voice catalog refreshed", "builtin", len(c.builtins), "cloned", len(cloned))
	return nil
}
