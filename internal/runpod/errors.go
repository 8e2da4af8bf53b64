package runpod

import (
	"errors"
	"fmt"
	"time"
)

// ErrJobCancelled — задача отменена на стороне эндпоинта, терминально
var ErrJobCancelled = errors.New("job was cancelled")

// ErrNoOutput — эндпоинт отчитался COMPLETED, но output не прислал
var ErrNoOutput = errors.New("job completed but no output received")

// SubmissionError — эндпоинт отклонил создание задачи. Не ретраится.
type SubmissionError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *SubmissionError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to submit job: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("failed to submit job: %s", e.Message)
}

func (e *SubmissionError) Unwrap() error { return e.Err }

// JobFailedError — задача завершилась FAILED, терминально
type JobFailedError struct {
	Message string
}

func (e *JobFailedError) Error() string {
	if e.Message == "" {
		return "job failed: unknown error"
	}
	return "job failed: " + e.Message
}

// TimeoutError — бюджет опроса исчерпан, реальный исход задачи неизвестен
type TimeoutError struct {
	MaxWait time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timeout waiting for job to complete after %.0f seconds", e.MaxWait.Seconds())
}
