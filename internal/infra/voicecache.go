package infra

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/703deuce/tts/internal/ports"
)

// fileVoiceCache — key-value кэш метаданных голосов в одном JSON-файле.
// Последняя запись побеждает; Replace подменяет содержимое целиком.
type fileVoiceCache struct {
	mu   sync.RWMutex
	path string
}

func NewFileVoiceCache(path string) ports.VoiceCache {
	return &fileVoiceCache{path: path}
}

func (c *fileVoiceCache) load() (map[string]ports.VoiceMeta, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]ports.VoiceMeta{}, nil
		}
		return nil, fmt.Errorf("read voice cache: %w", err)
	}

	var metas map[string]ports.VoiceMeta
	if err := json.Unmarshal(data, &metas); err != nil {
		return nil, fmt.Errorf("decode voice cache: %w", err)
	}
	if metas == nil {
		metas = map[string]ports.VoiceMeta{}
	}
	return metas, nil
}

func (c *fileVoiceCache) save(metas map[string]ports.VoiceMeta) error {
	if dir := filepath.Dir(c.path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create cache dir: %w", err)
		}
	}

	data, err := json.MarshalIndent(metas, "", "  ")
	if err != nil {
		return fmt.Errorf("encode voice cache: %w", err)
	}
	return os.WriteFile(c.path, data, 0o644)
}

func (c *fileVoiceCache) Get(id string) (ports.VoiceMeta, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	metas, err := c.load()
	if err != nil {
		return ports.VoiceMeta{}, false
	}
	meta, ok := metas[id]
	return meta, ok
}

func (c *fileVoiceCache) Put(meta ports.VoiceMeta) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	metas, err := c.load()
	if err != nil {
		return err
	}
	metas[meta.ID] = meta
	return c.save(metas)
}

func (c *fileVoiceCache) Delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	metas, err := c.load()
	if err != nil {
		return err
	}
	delete(metas, id)
	return c.save(metas)
}

func (c *fileVoiceCache) Replace(metas []ports.VoiceMeta) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	fresh := make(map[string]ports.VoiceMeta, len(metas))
	for _, meta := range metas {
		fresh[meta.ID] = meta
	}
	return c.save(fresh)
}

func (c *fileVoiceCache) All() []ports.VoiceMeta {
	c.mu.RLock()
	defer c.mu.RUnlock()

	metas, err := c.load()
	if err != nil {
		return nil
	}
	all := make([]ports.VoiceMeta, 0, len(metas))
	for _, meta := range metas {
		all = append(all, meta)
	}
	return all
}
