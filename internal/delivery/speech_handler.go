package delivery

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/703deuce/tts/internal/speechgen"
)

type SpeechHandler struct {
	generator *speechgen.Service
	log       *logger.ZapLogger
}

func NewSpeechHandler(generator *speechgen.Service, log *logger.ZapLogger) *SpeechHandler {
	return &SpeechHandler{generator: generator, log: log}
}

type generateRequest struct {
	Text               string   `json:"text"`
	VoiceID            string   `json:"voice_id"`
	MultiSpeakerVoices []string `json:"multi_speaker_voices,omitempty"`

	Temperature  float64 `json:"temperature,omitempty"`
	TopP         float64 `json:"top_p,omitempty"`
	TopK         int     `json:"top_k,omitempty"`
	MaxNewTokens int     `json:"max_new_tokens,omitempty"`

	ChunkMethod      string `json:"chunk_method,omitempty"`
	ChunkMaxWordNum  int    `json:"chunk_max_word_num,omitempty"`
	ChunkMaxNumTurns int    `json:"chunk_max_num_turns,omitempty"`
	ChunkBufferSize  int    `json:"chunk_buffer_size,omitempty"`

	SceneDescription        string `json:"scene_description,omitempty"`
	RefAudioInSystemMessage bool   `json:"ref_audio_in_system_message,omitempty"`

	// прогнать текст через formatter "Speaker N:" → [SPEAKERN]
	FormatMultiSpeaker bool `json:"format_multi_speaker,omitempty"`
}

type generateResponse struct {
	AudioBase64   string                `json:"audio_base64"`
	SamplingRate  int                   `json:"sampling_rate"`
	Duration      float64               `json:"duration"`
	ContentType   string                `json:"content_type"`
	GeneratedText string                `json:"generated_text"`
	Usage         speechgen.Usage       `json:"usage"`
	CacheStatus   speechgen.CacheStatus `json:"cache_status"`
}

func (h *SpeechHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var body generateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
		return
	}

	text := body.Text
	if body.FormatMultiSpeaker {
		text = speechgen.FormatMultiSpeakerText(text)
	}

	req := speechgen.Request{
		Text:               text,
		VoiceID:            body.VoiceID,
		MultiSpeakerVoices: body.MultiSpeakerVoices,
		Sampling: speechgen.SamplingParams{
			Temperature:  body.Temperature,
			TopP:         body.TopP,
			TopK:         body.TopK,
			MaxNewTokens: body.MaxNewTokens,
		},
		Chunking: speechgen.Chunking{
			Method:           speechgen.ChunkMethod(body.ChunkMethod),
			MaxWordsPerChunk: body.ChunkMaxWordNum,
			MaxTurnsPerChunk: body.ChunkMaxNumTurns,
			BufferSize:       body.ChunkBufferSize,
		},
		SceneDescription:        body.SceneDescription,
		RefAudioInSystemMessage: body.RefAudioInSystemMessage,
	}

	result, err := h.generator.Generate(r.Context(), req, nil)
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "speech generation failed", Error: err})
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(generateResponse{
		AudioBase64:   base64.StdEncoding.EncodeToString(result.Audio),
		SamplingRate:  result.SamplingRate,
		Duration:      result.Duration,
		ContentType:   result.ContentType,
		GeneratedText: result.GeneratedText,
		Usage:         result.Usage,
		CacheStatus:   result.CacheStatus,
	})
}

func (h *SpeechHandler) Presets(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(speechgen.Presets())
}

func (h *SpeechHandler) MultiSpeakerCombinations(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(speechgen.MultiSpeakerCombinations())
}

// FormatText — предпросмотр переразметки мультиспикерного текста
func (h *SpeechHandler) FormatText(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
		return
	}

	warning, err := speechgen.ValidateText(body.Text)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"text":    speechgen.FormatMultiSpeakerText(body.Text),
		"warning": warning,
	})
}
