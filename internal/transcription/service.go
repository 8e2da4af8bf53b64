package transcription

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/703deuce/tts/internal/ports"
)

// ErrEmptyResult — задача завершилась, но ни merged_text, ни text нет
var ErrEmptyResult = errors.New("transcription completed with empty result")

// Транскрипция — долгая задача, интервал опроса крупный
var DefaultPollOptions = ports.PollOptions{
	MaxWaitMs:  600000, // 10 минут
	IntervalMs: 30000,  // 30 секунд
}

// Request описывает одну задачу транскрипции. AudioURL обязан быть уже
// доступен по HTTP — загрузкой в хранилище занимается вызывающий.
type Request struct {
	AudioURL          string
	AudioFormat       string
	IncludeTimestamps bool
	UseDiarization    bool
	NumSpeakers       *int
}

// Segment — кусок диаризованной расшифровки ("кто когда говорил")
type Segment struct {
	Speaker   string  `json:"speaker"`
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`
	Text      string  `json:"text"`
}

type Result struct {
	Text               string         `json:"text"`
	DiarizedTranscript []Segment      `json:"diarized_transcript,omitempty"`
	Duration           float64        `json:"duration,omitempty"`
	ProcessingTime     float64        `json:"processing_time,omitempty"`
	Metadata           map[string]any `json:"metadata,omitempty"`
}

type jobPayload struct {
	AudioURL          string `json:"audio_url"`
	AudioFormat       string `json:"audio_format"`
	IncludeTimestamps bool   `json:"include_timestamps"`
	UseDiarization    bool   `json:"use_diarization"`
	NumSpeakers       *int   `json:"num_speakers"`
	HFToken           string `json:"hf_token,omitempty"`
}

type jobOutput struct {
	MergedText         string         `json:"merged_text"`
	Text               string         `json:"text"`
	DiarizedTranscript []Segment      `json:"diarized_transcript"`
	Duration           float64        `json:"duration"`
	ProcessingTime     float64        `json:"processing_time"`
	Metadata           map[string]any `json:"metadata"`
}

type Service struct {
	jobs     ports.JobRunner
	endpoint string
	hfToken  string
	opts     ports.PollOptions
	log      *zap.SugaredLogger
}

func NewService(jobs ports.JobRunner, endpoint, hfToken string, log *zap.SugaredLogger) *Service {
	return &Service{
		jobs:     jobs,
		endpoint: endpoint,
		hfToken:  hfToken,
		opts:     DefaultPollOptions,
		log:      log,
	}
}

// WithPollOptions переопределяет бюджет опроса (для тестов и коротких файлов)
func (s *Service) WithPollOptions(opts ports.PollOptions) *Service {
	s.opts = opts
	return s
}

// Transcribe — полный цикл: submit + poll + нормализация результата
func (s *Service) Transcribe(ctx context.Context, req Request, onStatus ports.StatusFunc) (Result, error) {
	payload := jobPayload{
		AudioURL:          req.AudioURL,
		AudioFormat:       req.AudioFormat,
		IncludeTimestamps: req.IncludeTimestamps,
		UseDiarization:    req.UseDiarization,
		NumSpeakers:       req.NumSpeakers,
	}
	// диаризационный токен уходит на эндпоинт только вместе с диаризацией
	if req.UseDiarization {
		payload.HFToken = s.hfToken
	}

	if onStatus != nil {
		onStatus(ports.JobStatusSubmitting, "")
	}

	handle, err := s.jobs.Submit(ctx, s.endpoint, payload)
	if err != nil {
		return Result{}, err
	}
	s.log.Infow("transcription job submitted", "job_id", handle.ID)

	raw, err := s.jobs.PollUntilTerminal(ctx, s.endpoint, handle.ID, s.opts, onStatus)
	if err != nil {
		return Result{}, err
	}

	return normalize(raw, req.UseDiarization)
}

func normalize(raw []byte, diarization bool) (Result, error) {
	var out jobOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return Result{}, fmt.Errorf("decode transcription output: %w", err)
	}

	text := out.MergedText
	if text == "" {
		text = out.Text
	}
	if text == "" {
		return Result{}, ErrEmptyResult
	}

	result := Result{
		Text:           text,
		Duration:       out.Duration,
		ProcessingTime: out.ProcessingTime,
		Metadata:       out.Metadata,
	}

	if diarization && len(out.DiarizedTranscript) > 0 {
		segments := make([]Segment, len(out.DiarizedTranscript))
		copy(segments, out.DiarizedTranscript)
		sort.SliceStable(segments, func(i, j int) bool {
			return segments[i].StartTime < segments[j].StartTime
		})
		result.DiarizedTranscript = segments
	}

	return result, nil
}

// SupportedFormats — форматы, которые принимает эндпоинт
func SupportedFormats() []string {
	return []string{"wav", "mp3", "flac", "ogg", "m4a", "aac"}
}

// ValidateAudioFile проверяет расширение и вменяемость размера до загрузки
func ValidateAudioFile(filename string, size int64) error {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))

	supported := false
	for _, format := range SupportedFormats() {
		if ext == format {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported file format %q, supported: %s", ext, strings.Join(SupportedFormats(), ", "))
	}

	if size > 1<<30 {
		return fmt.Errorf("file size exceeds reasonable limits (1GB)")
	}
	return nil
}

// UploadObjectKey — уникальный ключ для исходника под transcription_uploads/
func UploadObjectKey(filename string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext == "" {
		ext = "wav"
	}
	timestamp := time.Now().UTC().Format("20060102T150405")
	randomID := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("transcription_uploads/upload_%s_%s.%s", timestamp, randomID, ext)
}
