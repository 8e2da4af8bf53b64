package delivery

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/703deuce/tts/internal/ports"
	"github.com/703deuce/tts/internal/transcription"
)

type TranscriptionHandler struct {
	transcriber *transcription.Service
	storage     ports.StorageClient
	log         *logger.ZapLogger
}

func NewTranscriptionHandler(transcriber *transcription.Service, storage ports.StorageClient, log *logger.ZapLogger) *TranscriptionHandler {
	return &TranscriptionHandler{
		transcriber: transcriber,
		storage:     storage,
		log:         log,
	}
}

// Upload принимает аудиофайл, кладёт его в хранилище и сразу гонит через
// транскрипцию
func (h *TranscriptionHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(512 << 20); err != nil {
		http.Error(w, "invalid multipart: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	if err := transcription.ValidateAudioFile(header.Filename, header.Size); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	key := transcription.UploadObjectKey(header.Filename)
	audioURL, err := h.storage.Upload(r.Context(), key, file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "audio upload failed", Error: err})
		http.Error(w, "failed to upload audio: "+err.Error(), http.StatusInternalServerError)
		return
	}

	req := transcription.Request{
		AudioURL:          audioURL,
		AudioFormat:       strings.ToLower(strings.TrimPrefix(filepath.Ext(header.Filename), ".")),
		IncludeTimestamps: r.FormValue("include_timestamps") == "true",
		UseDiarization:    r.FormValue("use_diarization") == "true",
	}
	if v := r.FormValue("num_speakers"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "invalid num_speakers", http.StatusBadRequest)
			return
		}
		req.NumSpeakers = &n
	}

	h.run(w, r, req)
}

// TranscribeURL — транскрипция уже доступного по HTTP аудио
func (h *TranscriptionHandler) TranscribeURL(w http.ResponseWriter, r *http.Request) {
	var body struct {
		AudioURL          string `json:"audio_url"`
		AudioFormat       string `json:"audio_format"`
		IncludeTimestamps bool   `json:"include_timestamps"`
		UseDiarization    bool   `json:"use_diarization"`
		NumSpeakers       *int   `json:"num_speakers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
		return
	}
	if body.AudioURL == "" {
		http.Error(w, "missing audio_url", http.StatusBadRequest)
		return
	}
	if body.AudioFormat == "" {
		body.AudioFormat = "wav"
	}

	h.run(w, r, transcription.Request{
		AudioURL:          body.AudioURL,
		AudioFormat:       body.AudioFormat,
		IncludeTimestamps: body.IncludeTimestamps,
		UseDiarization:    body.UseDiarization,
		NumSpeakers:       body.NumSpeakers,
	})
}

func (h *TranscriptionHandler) run(w http.ResponseWriter, r *http.Request, req transcription.Request) {
	result, err := h.transcriber.Transcribe(r.Context(), req, nil)
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "transcription failed", Error: err})
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// Formats — список форматов, которые принимает эндпоинт
func (h *TranscriptionHandler) Formats(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"formats": transcription.SupportedFormats()})
}
