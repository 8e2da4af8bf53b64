package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/Vovarama1992/go-utils/logger"

	"github.com/703deuce/tts/internal/config"
	"github.com/703deuce/tts/internal/delivery"
	"github.com/703deuce/tts/internal/infra"
	"github.com/703deuce/tts/internal/runpod"
	"github.com/703deuce/tts/internal/speechgen"
	"github.com/703deuce/tts/internal/transcription"
	"github.com/703deuce/tts/internal/voices"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {

	// =========================================================================
	// ENV INIT
	// =========================================================================

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	// =========================================================================
	// INFRASTRUCTURE
	// =========================================================================

	s3Client, err := infra.NewS3Client()
	if err != nil {
		log.Fatalf("failed to init s3: %v", err)
	}

	voiceCache := infra.NewFileVoiceCache(cfg.VoiceCachePath)
	jobs := runpod.NewClient(cfg.RunPodAPIKey)

	// =========================================================================
	// DOMAIN SERVICES
	// =========================================================================

	transcriptionService := transcription.NewService(jobs, cfg.TranscriptionEndpoint, cfg.HFToken, baseLogger.Sugar())
	speechService := speechgen.NewService(jobs, cfg.SpeechEndpoint, baseLogger.Sugar())

	catalog := voices.NewCatalog(s3Client, voiceCache, cfg.VoiceScope, baseLogger.Sugar())
	cloner := voices.NewCloner(s3Client, voiceCache, transcriptionService, cfg.VoiceScope, baseLogger.Sugar())

	// стартовая сверка каталога: без неё до первого refresh видны только
	// встроенные голоса
	{
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := catalog.Refresh(ctx); err != nil {
			zl.Log(logger.LogEntry{Level: "warn", Message: "initial voice refresh failed", Error: err})
		}
		cancel()
	}

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	// HANDLERS
	transcriptionHandler := delivery.NewTranscriptionHandler(transcriptionService, s3Client, zl)
	speechHandler := delivery.NewSpeechHandler(speechService, zl)
	voiceHandler := delivery.NewVoiceHandler(catalog, cloner, zl)

	// ROUTES
	delivery.RegisterRoutes(
		r,
		transcriptionHandler,
		speechHandler,
		voiceHandler,
	)

	r.With(httputil.RecoverMiddleware).Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("pong"))
	})

	// =========================================================================
	// BACKGROUND JOBS
	// =========================================================================

	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			if err := catalog.Refresh(ctx); err != nil {
				log.Printf("[voice-refresh] error: %v", err)
			}
			cancel()
		}
	}()

	// =========================================================================
	// START SERVER
	// =========================================================================

	addr := ":" + cfg.Port
	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "listening at " + addr,
		Service: "tts",
	})

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
