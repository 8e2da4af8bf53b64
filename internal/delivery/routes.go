package delivery

import (
	"time"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
)

func RegisterRoutes(
	r chi.Router,
	hTranscription *TranscriptionHandler,
	hSpeech *SpeechHandler,
	hVoice *VoiceHandler,
) {
	r.Route("/api", func(pr chi.Router) {
		pr.Use(
			httputil.RecoverMiddleware,
			httprate.LimitByIP(60, time.Minute),
		)

		// --- транскрипция ---
		pr.Post("/transcribe/upload", hTranscription.Upload)
		pr.Post("/transcribe/url", hTranscription.TranscribeURL)
		pr.Get("/transcribe/formats", hTranscription.Formats)

		// --- генерация речи ---
		pr.Post("/speech/generate", hSpeech.Generate)
		pr.Post("/speech/format-text", hSpeech.FormatText)
		pr.Get("/speech/presets", hSpeech.Presets)
		pr.Get("/speech/multi-speaker", hSpeech.MultiSpeakerCombinations)

		// --- голоса ---
		pr.Get("/voices", hVoice.List)
		pr.Get("/voices/categories", hVoice.Categories)
		pr.Post("/voices/refresh", hVoice.Refresh)
		pr.Post("/voices/clone", hVoice.Clone)
		pr.Get("/voices/{voice_id}", hVoice.Get)
		pr.Delete("/voices/{voice_id}", hVoice.Delete)
		pr.Get("/voices/{voice_id}/transcript", hVoice.Transcript)
	})
}
