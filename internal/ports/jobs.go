package ports

import "context"

// JobStatus — статус удалённой задачи на inference-эндпоинте
type JobStatus string

const (
	JobStatusSubmitting JobStatus = "SUBMITTING"
	JobStatusInQueue    JobStatus = "IN_QUEUE"
	JobStatusInProgress JobStatus = "IN_PROGRESS"
	JobStatusCompleted  JobStatus = "COMPLETED"
	JobStatusFailed     JobStatus = "FAILED"
	JobStatusCancelled  JobStatus = "CANCELLED"
)

// IsTerminal — после этих статусов переходов больше не будет
func (s JobStatus) IsTerminal() bool {
	switch s {
	case JobStatusCompleted, JobStatusFailed, JobStatusCancelled:
		return true
	default:
		return false
	}
}

// StatusFunc вызывается на каждый наблюдаемый переход статуса
type StatusFunc func(status JobStatus, jobID string)

// PollOptions — бюджет ожидания и фиксированный интервал между проверками
type PollOptions struct {
	MaxWaitMs  int
	IntervalMs int
}

// JobHandle — принятая эндпоинтом задача
type JobHandle struct {
	ID     string
	Status JobStatus
}

// JobRunner — двухфазный протокол: submit, потом poll до терминального статуса
type JobRunner interface {
	Submit(ctx context.Context, endpoint string, payload any) (JobHandle, error)

	// PollUntilTerminal возвращает сырой output завершённой задачи
	PollUntilTerminal(ctx context.Context, endpoint, jobID string, opts PollOptions, onStatus StatusFunc) ([]byte, error)
}
