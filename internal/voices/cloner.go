package voices

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/703deuce/tts/internal/ports"
	"github.com/703deuce/tts/internal/transcription"
)

// MaxVoiceFileSize — лимит на образец голоса
const MaxVoiceFileSize = 50 << 20 // 50MB

// ValidationError — файл отклонён до каких-либо сетевых вызовов
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid voice file: " + e.Reason
}

// Transcriber — ровно то, что клонеру нужно от оркестратора транскрипции
type Transcriber interface {
	Transcribe(ctx context.Context, req transcription.Request, onStatus ports.StatusFunc) (transcription.Result, error)
}

// Cloner ведёт полный цикл клонирования: загрузка образца, best-effort
// расшифровка, запись метаданных в кэш
type Cloner struct {
	storage     ports.StorageClient
	cache       ports.VoiceCache
	transcriber Transcriber
	scope       string
	log         *zap.SugaredLogger
}

func NewCloner(storage ports.StorageClient, cache ports.VoiceCache, transcriber Transcriber, scope string, log *zap.SugaredLogger) *Cloner {
	return &Cloner{
		storage:     storage,
		cache:       cache,
		transcriber: transcriber,
		scope:       scope,
		log:         log,
	}
}

var whitespaceRe = regexp.MustCompile(`\s+`)

func generateVoiceID() string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("%s%d_%s", ClonedPrefix, time.Now().UnixMilli(), random)
}

func validateVoiceFile(filename string, size int64) error {
	if !strings.EqualFold(filepath.Ext(filename), ".wav") {
		return &ValidationError{Reason: "please upload a WAV file"}
	}
	if size > MaxVoiceFileSize {
		return &ValidationError{Reason: fmt.Sprintf("file is %s, limit is %s",
			humanize.Bytes(uint64(size)), humanize.Bytes(uint64(MaxVoiceFileSize)))}
	}
	return nil
}

func (c *Cloner) voicePath(voiceID string) string {
	return fmt.Sprintf("user_voices/%s/%s.wav", c.scope, voiceID)
}

// CloneVoice — загрузка образца фатальна, расшифровка нет: голос без
// transcript-файла всё равно считается готовым
func (c *Cloner) CloneVoice(ctx context.Context, file io.Reader, filename string, size int64, name, description string) (Voice, error) {
	if err := validateVoiceFile(filename, size); err != nil {
		return Voice{}, err
	}

	sanitized := whitespaceRe.ReplaceAllString(strings.TrimSpace(name), "_")
	voiceID := generateVoiceID() + "_" + sanitized
	wavPath := c.voicePath(voiceID)

	downloadURL, err := c.storage.Upload(ctx, wavPath, file, size, "audio/wav")
	if err != nil {
		return Voice{}, fmt.Errorf("voice upload failed: %w", err)
	}

	c.transcribeSample(ctx, wavPath, downloadURL)

	meta := ports.VoiceMeta{
		ID:          voiceID,
		Name:        name,
		Description: description,
		UploadedAt:  time.Now().UTC().Format(time.RFC3339),
		FileSize:    size,
	}
	if err := c.cache.Put(meta); err != nil {
		c.log.Warnw("voice cache write failed", "voice_id", voiceID, "error", err)
	}

	if description == "" {
		description = "Custom cloned voice: " + name
	}
	return newVoice(Voice{
		ID:          voiceID,
		Name:        name,
		Description: description,
		Language:    customLanguage,
		Gender:      customGenderMark,
		Category:    CustomCategory,
		DownloadURL: downloadURL,
	}), nil
}

// transcribeSample кладёт расшифровку рядом с образцом (.wav → .txt).
// Любая ошибка здесь — только предупреждение.
func (c *Cloner) transcribeSample(ctx context.Context, wavPath, audioURL string) {
	result, err := c.transcriber.Transcribe(ctx, transcription.Request{
		AudioURL:    audioURL,
		AudioFormat: "wav",
	}, nil)
	if err != nil {
		c.log.Warnw("transcription failed, but voice upload succeeded", "path", wavPath, "error", err)
		return
	}

	txtPath := strings.TrimSuffix(wavPath, ".wav") + ".txt"
	if _, err := c.storage.Upload(ctx, txtPath, strings.NewReader(result.Text), int64(len(result.Text)), "text/plain"); err != nil {
		c.log.Warnw("transcript upload failed", "path", txtPath, "error", err)
	}
}

// DeleteVoice удаляет аудио (фатально), затем best-effort парный .txt.
// Кэш чистится безусловно — даже если хранилище ответило ошибкой, UI не
// должен показывать голос, чей основной блоб подтверждённо недоступен.
func (c *Cloner) DeleteVoice(ctx context.Context, voiceID string) error {
	wavPath := c.voicePath(voiceID)
	wavErr := c.storage.Delete(ctx, wavPath)

	if wavErr == nil {
		txtPath := strings.TrimSuffix(wavPath, ".wav") + ".txt"
		if err := c.storage.Delete(ctx, txtPath); err != nil && !errors.Is(err, ports.ErrObjectNotFound) {
			c.log.Warnw("transcript delete failed", "path", txtPath, "error", err)
		}
	}

	if err := c.cache.Delete(voiceID); err != nil {
		c.log.Warnw("voice cache evict failed", "voice_id", voiceID, "error", err)
	}

	if wavErr != nil {
		return fmt.Errorf("failed to delete voice: %w", wavErr)
	}
	return nil
}

// Transcript возвращает сохранённую расшифровку образца, "" если её нет
func (c *Cloner) Transcript(ctx context.Context, voiceID string) (string, error) {
	txtPath := strings.TrimSuffix(c.voicePath(voiceID), ".wav") + ".txt"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.storage.PublicURL(txtPath), nil)
	if err != nil {
		return "", err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch transcript: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", nil
	}
	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(text)), nil
}
