package speechgen

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// InvalidParameterError — локальная ошибка валидации, до любого сетевого
// вызова. На эндпоинт такие значения не уходят.
type InvalidParameterError struct {
	Name   string
	Value  any
	Domain string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%v, allowed: %s", e.Name, e.Value, e.Domain)
}

// ErrEmptyText — генерировать нечего
var ErrEmptyText = errors.New("text cannot be empty")

type SamplingParams struct {
	Temperature  float64 `json:"temperature"`
	TopP         float64 `json:"top_p"`
	TopK         int     `json:"top_k"`
	MaxNewTokens int     `json:"max_new_tokens"`
}

// DefaultSamplingParams подставляются вместо нулевых значений
var DefaultSamplingParams = SamplingParams{
	Temperature:  0.3,
	TopP:         0.95,
	TopK:         50,
	MaxNewTokens: 1024,
}

func (p SamplingParams) withDefaults() SamplingParams {
	if p.Temperature == 0 {
		p.Temperature = DefaultSamplingParams.Temperature
	}
	if p.TopP == 0 {
		p.TopP = DefaultSamplingParams.TopP
	}
	if p.TopK == 0 {
		p.TopK = DefaultSamplingParams.TopK
	}
	if p.MaxNewTokens == 0 {
		p.MaxNewTokens = DefaultSamplingParams.MaxNewTokens
	}
	return p
}

func (p SamplingParams) validate() error {
	if p.Temperature < 0.1 || p.Temperature > 1.0 {
		return &InvalidParameterError{Name: "temperature", Value: p.Temperature, Domain: "[0.1, 1.0]"}
	}
	if p.TopP < 0.9 || p.TopP > 0.99 {
		return &InvalidParameterError{Name: "top_p", Value: p.TopP, Domain: "[0.9, 0.99]"}
	}
	if p.TopK < 30 || p.TopK > 100 {
		return &InvalidParameterError{Name: "top_k", Value: p.TopK, Domain: "[30, 100]"}
	}
	switch p.MaxNewTokens {
	case 512, 1024, 1536, 2048:
	default:
		return &InvalidParameterError{Name: "max_new_tokens", Value: p.MaxNewTokens, Domain: "{512, 1024, 1536, 2048}"}
	}
	return nil
}

type ChunkMethod string

const (
	ChunkNone     ChunkMethod = "none"
	ChunkWord     ChunkMethod = "word"
	ChunkSentence ChunkMethod = "sentence"
	ChunkSpeaker  ChunkMethod = "speaker"
)

// Chunking — тегированный вариант стратегии нарезки текста. Активна ровно
// одна стратегия; какие поля уйдут в payload, решает её builder.
type Chunking struct {
	Method           ChunkMethod
	MaxWordsPerChunk int // только word
	MaxTurnsPerChunk int // только speaker
	BufferSize       int // word и speaker
}

type Request struct {
	Text               string
	VoiceID            string
	MultiSpeakerVoices []string
	Sampling           SamplingParams
	Chunking           Chunking
	SceneDescription   string

	RefAudioInSystemMessage bool
	RasWinLen               *int
}

type jobPayload struct {
	Text                      string  `json:"text"`
	RefAudioName              string  `json:"ref_audio_name,omitempty"` // пустой = humming-режим
	Temperature               float64 `json:"temperature"`
	TopP                      float64 `json:"top_p"`
	TopK                      int     `json:"top_k"`
	MaxNewTokens              int     `json:"max_new_tokens"`
	ChunkMethod               string  `json:"chunk_method"`
	ChunkMaxWordNum           *int    `json:"chunk_max_word_num,omitempty"`
	ChunkMaxNumTurns          *int    `json:"chunk_max_num_turns,omitempty"`
	GenerationChunkBufferSize *int    `json:"generation_chunk_buffer_size,omitempty"`
	SceneDescription          string  `json:"scene_description,omitempty"`
	RefAudioInSystemMessage   bool    `json:"ref_audio_in_system_message"`
	RasWinLen                 int     `json:"ras_win_len"`
	OutputFormat              string  `json:"output_format"`
}

// buildPayload валидирует запрос и собирает тело задачи. Падает локально,
// частичных сабмитов не бывает.
func buildPayload(req Request) (jobPayload, error) {
	if strings.TrimSpace(req.Text) == "" {
		return jobPayload{}, ErrEmptyText
	}

	sampling := req.Sampling.withDefaults()
	if err := sampling.validate(); err != nil {
		return jobPayload{}, err
	}

	rasWinLen := 7
	if req.RasWinLen != nil {
		rasWinLen = *req.RasWinLen
	}

	payload := jobPayload{
		Text:                    req.Text,
		RefAudioName:            refAudioName(req),
		Temperature:             sampling.Temperature,
		TopP:                    sampling.TopP,
		TopK:                    sampling.TopK,
		MaxNewTokens:            sampling.MaxNewTokens,
		SceneDescription:        req.SceneDescription,
		RefAudioInSystemMessage: req.RefAudioInSystemMessage,
		RasWinLen:               rasWinLen,
		OutputFormat:            "wav",
	}

	if err := applyChunking(&payload, req.Chunking); err != nil {
		return jobPayload{}, err
	}
	return payload, nil
}

func refAudioName(req Request) string {
	if len(req.MultiSpeakerVoices) > 0 {
		return strings.Join(req.MultiSpeakerVoices, ",")
	}
	return req.VoiceID
}

// applyChunking — по builder-у на стратегию, чтобы взаимоисключающие поля
// не уехали в одном payload-е
func applyChunking(payload *jobPayload, chunking Chunking) error {
	method := chunking.Method
	if method == "" {
		method = ChunkNone
	}
	payload.ChunkMethod = string(method)

	switch method {
	case ChunkNone, ChunkSentence:
		// без дополнительных полей
	case ChunkWord:
		if chunking.MaxWordsPerChunk <= 0 {
			return &InvalidParameterError{Name: "chunk_max_word_num", Value: chunking.MaxWordsPerChunk, Domain: "positive integer"}
		}
		payload.ChunkMaxWordNum = &chunking.MaxWordsPerChunk
		if chunking.BufferSize > 0 {
			payload.GenerationChunkBufferSize = &chunking.BufferSize
		}
	case ChunkSpeaker:
		if chunking.MaxTurnsPerChunk <= 0 {
			return &InvalidParameterError{Name: "chunk_max_num_turns", Value: chunking.MaxTurnsPerChunk, Domain: "positive integer"}
		}
		payload.ChunkMaxNumTurns = &chunking.MaxTurnsPerChunk
		if chunking.BufferSize > 0 {
			payload.GenerationChunkBufferSize = &chunking.BufferSize
		}
	default:
		return &InvalidParameterError{Name: "chunk_method", Value: string(method), Domain: "none|word|sentence|speaker"}
	}
	return nil
}

var speakerTagRe = regexp.MustCompile(`(?i)Speaker (\d+):`)

// FormatMultiSpeakerText переписывает "Speaker N:" в теги [SPEAKERN].
// Соответствие тегов числу выбранных голосов намеренно не проверяется.
func FormatMultiSpeakerText(text string) string {
	return speakerTagRe.ReplaceAllString(text, "[SPEAKER$1]")
}

// ValidateText — пустой текст это ошибка, длинный — только предупреждение
func ValidateText(text string) (warning string, err error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyText
	}
	if len(text) > 5000 {
		return "Text is quite long. Consider using chunking parameters for optimal results.", nil
	}
	if len(text) > 1000 {
		return "For texts longer than 200 words, chunking is recommended for best quality.", nil
	}
	return "", nil
}
