package speechgen

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/703deuce/tts/internal/ports"
)

// Генерация речи заметно быстрее транскрипции, опрашиваем часто
var DefaultPollOptions = ports.PollOptions{
	MaxWaitMs:  300000, // 5 минут
	IntervalMs: 3000,   // 3 секунды
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type CacheStatus struct {
	CacheExists      bool    `json:"cache_exists"`
	ModelsCached     int     `json:"models_cached"`
	TotalCacheSizeMB float64 `json:"total_cache_size_mb"`
}

// Result — декодированное аудио плюс метаданные эндпоинта как есть
type Result struct {
	Audio         []byte      `json:"-"`
	SamplingRate  int         `json:"sampling_rate"`
	Duration      float64     `json:"duration"`
	ContentType   string      `json:"content_type"`
	GeneratedText string      `json:"generated_text"`
	Usage         Usage       `json:"usage"`
	CacheStatus   CacheStatus `json:"cache_status"`
}

type jobOutput struct {
	AudioBase64   string      `json:"audio_base64"`
	SamplingRate  int         `json:"sampling_rate"`
	Duration      float64     `json:"duration"`
	ContentType   string      `json:"content_type"`
	GeneratedText string      `json:"generated_text"`
	Usage         Usage       `json:"usage"`
	CacheStatus   CacheStatus `json:"cache_status"`
}

type Service struct {
	jobs     ports.JobRunner
	endpoint string
	opts     ports.PollOptions
	log      *zap.SugaredLogger
}

func NewService(jobs ports.JobRunner, endpoint string, log *zap.SugaredLogger) *Service {
	return &Service{
		jobs:     jobs,
		endpoint: endpoint,
		opts:     DefaultPollOptions,
		log:      log,
	}
}

func (s *Service) WithPollOptions(opts ports.PollOptions) *Service {
	s.opts = opts
	return s
}

// Generate — полный цикл: валидация, submit, poll, декодирование аудио
func (s *Service) Generate(ctx context.Context, req Request, onStatus ports.StatusFunc) (Result, error) {
	payload, err := buildPayload(req)
	if err != nil {
		return Result{}, err
	}

	if onStatus != nil {
		onStatus(ports.JobStatusSubmitting, "")
	}

	handle, err := s.jobs.Submit(ctx, s.endpoint, payload)
	if err != nil {
		return Result{}, err
	}
	s.log.Infow("tts job submitted", "job_id", handle.ID, "voice", payload.RefAudioName)

	raw, err := s.jobs.PollUntilTerminal(ctx, s.endpoint, handle.ID, s.opts, onStatus)
	if err != nil {
		return Result{}, err
	}

	return decodeOutput(raw)
}

func decodeOutput(raw []byte) (Result, error) {
	var out jobOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return Result{}, fmt.Errorf("decode tts output: %w", err)
	}
	if out.AudioBase64 == "" {
		return Result{}, fmt.Errorf("tts output missing audio_base64")
	}

	audio, err := base64.StdEncoding.DecodeString(out.AudioBase64)
	if err != nil {
		return Result{}, fmt.Errorf("decode audio payload: %w", err)
	}

	contentType := out.ContentType
	if contentType == "" {
		contentType = "audio/wav"
	}

	return Result{
		Audio:         audio,
		SamplingRate:  out.SamplingRate,
		Duration:      out.Duration,
		ContentType:   contentType,
		GeneratedText: out.GeneratedText,
		Usage:         out.Usage,
		CacheStatus:   out.CacheStatus,
	}, nil
}
