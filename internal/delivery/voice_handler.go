package delivery

import (
	"encoding/json"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/go-chi/chi/v5"

	"github.com/703deuce/tts/internal/voices"
)

type VoiceHandler struct {
	catalog *voices.Catalog
	cloner  *voices.Cloner
	log     *logger.ZapLogger
}

func NewVoiceHandler(catalog *voices.Catalog, cloner *voices.Cloner, log *logger.ZapLogger) *VoiceHandler {
	return &VoiceHandler{catalog: catalog, cloner: cloner, log: log}
}

func writeVoices(w http.ResponseWriter, list []voices.Voice) {
	if list == nil {
		list = []voices.Voice{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"voices": list, "total": len(list)})
}

// List — ?category= фильтрует, ?search= ищет, вместе search побеждает
func (h *VoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	if q := r.URL.Query().Get("search"); q != "" {
		writeVoices(w, h.catalog.Search(q))
		return
	}
	category := r.URL.Query().Get("category")
	if category == "" {
		category = voices.AllVoicesFilter
	}
	writeVoices(w, h.catalog.ListByCategory(category))
}

func (h *VoiceHandler) Categories(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"categories": h.catalog.Categories()})
}

func (h *VoiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	voice, ok := h.catalog.FindByID(chi.URLParam(r, "voice_id"))
	if !ok {
		http.Error(w, "voice not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(voice)
}

// Refresh — принудительная сверка каталога с хранилищем
func (h *VoiceHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.Refresh(r.Context()); err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "voice catalog refresh failed", Error: err})
		http.Error(w, "failed to refresh voices: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeVoices(w, h.catalog.ListAll())
}

// Clone принимает WAV-образец + имя и ставит голос в каталог
func (h *VoiceHandler) Clone(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(voices.MaxVoiceFileSize); err != nil {
		http.Error(w, "invalid multipart: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	name := r.FormValue("name")
	if name == "" {
		http.Error(w, "missing name", http.StatusBadRequest)
		return
	}

	voice, err := h.cloner.CloneVoice(r.Context(), file, header.Filename, header.Size, name, r.FormValue("description"))
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "voice clone failed", Error: err})
		writeServiceError(w, err)
		return
	}

	// клон сразу же должен быть виден в листинге
	if err := h.catalog.Refresh(r.Context()); err != nil {
		h.log.Log(logger.LogEntry{Level: "warn", Message: "catalog refresh after clone failed", Error: err})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(voice)
}

func (h *VoiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	voiceID := chi.URLParam(r, "voice_id")

	if err := h.cloner.DeleteVoice(r.Context(), voiceID); err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "voice delete failed", Error: err})
		writeServiceError(w, err)
		return
	}

	if err := h.catalog.Refresh(r.Context()); err != nil {
		h.log.Log(logger.LogEntry{Level: "warn", Message: "catalog refresh after delete failed", Error: err})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"deleted": voiceID})
}

// Transcript отдаёт сохранённую расшифровку образца клона
func (h *VoiceHandler) Transcript(w http.ResponseWriter, r *http.Request) {
	text, err := h.cloner.Transcript(r.Context(), chi.URLParam(r, "voice_id"))
	if err != nil {
		http.Error(w, "failed to fetch transcript: "+err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"transcript": text})
}
