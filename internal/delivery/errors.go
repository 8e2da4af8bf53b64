package delivery

import (
	"errors"
	"net/http"

	"github.com/703deuce/tts/internal/ports"
	"github.com/703deuce/tts/internal/runpod"
	"github.com/703deuce/tts/internal/speechgen"
	"github.com/703deuce/tts/internal/transcription"
	"github.com/703deuce/tts/internal/voices"
)

// writeServiceError переводит таксономию ошибок сервисов в HTTP-статусы
func writeServiceError(w http.ResponseWriter, err error) {
	var validation *voices.ValidationError
	var invalid *speechgen.InvalidParameterError
	var submission *runpod.SubmissionError
	var failed *runpod.JobFailedError
	var timeout *runpod.TimeoutError

	switch {
	case errors.As(err, &validation), errors.As(err, &invalid),
		errors.Is(err, speechgen.ErrEmptyText):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ports.ErrObjectNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.As(err, &submission):
		http.Error(w, err.Error(), http.StatusBadGateway)
	case errors.As(err, &failed), errors.Is(err, runpod.ErrJobCancelled),
		errors.Is(err, runpod.ErrNoOutput), errors.Is(err, transcription.ErrEmptyResult):
		http.Error(w, err.Error(), http.StatusBadGateway)
	case errors.As(err, &timeout):
		http.Error(w, err.Error(), http.StatusGatewayTimeout)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
