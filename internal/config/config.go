package config

import (
	"fmt"
	"os"
)

// Config — всё окружение дашборда. S3-переменные читает infra.NewS3Client
// сам, здесь только то, что нужно сервисам.
type Config struct {
	Port string

	// ключ доступа к hosted-эндпоинтам
	RunPodAPIKey string

	// токен для диаризации, прикладывается к задаче только при use_diarization
	HFToken string

	TranscriptionEndpoint string
	SpeechEndpoint        string

	// файл локального кэша метаданных голосов
	VoiceCachePath string

	// скоуп пользователя в хранилище: user_voices/<scope>/
	VoiceScope string
}

func Load() (Config, error) {
	cfg := Config{
		Port:                  getenv("PORT", "8080"),
		RunPodAPIKey:          os.Getenv("RUNPOD_API_KEY"),
		HFToken:               os.Getenv("HF_TOKEN"),
		TranscriptionEndpoint: os.Getenv("TRANSCRIPTION_ENDPOINT"),
		SpeechEndpoint:        os.Getenv("SPEECH_ENDPOINT"),
		VoiceCachePath:        getenv("VOICE_CACHE_PATH", "cloned_voices.json"),
		VoiceScope:            getenv("VOICE_SCOPE", "anonymous"),
	}

	if cfg.RunPodAPIKey == "" {
		return Config{}, fmt.Errorf("RUNPOD_API_KEY is not set")
	}
	if cfg.TranscriptionEndpoint == "" {
		return Config{}, fmt.Errorf("TRANSCRIPTION_ENDPOINT is not set")
	}
	if cfg.SpeechEndpoint == "" {
		return Config{}, fmt.Errorf("SPEECH_ENDPOINT is not set")
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
