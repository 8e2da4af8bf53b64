package runpod

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/703deuce/tts/internal/ports"
)

// Client гоняет асинхронные задачи на hosted-эндпоинтах: POST <base>/run
// для создания, GET <base>/status/<id> для опроса. Общий для транскрипции
// и генерации речи.
type Client struct {
	httpClient *http.Client
	apiKey     string
}

func NewClient(apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{},
		apiKey:     apiKey,
	}
}

type submitResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type statusResponse struct {
	ID     string          `json:"id"`
	Status string          `json:"status"`
	Output json.RawMessage `json:"output,omitempty"`
	Error  string          `json:"error,omitempty"`
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
}

// Submit отправляет {"input": payload} одним POST-ом. Любой не-2xx ответ
// или ошибка транспорта → SubmissionError, без ретраев — сразу наверх.
func (c *Client) Submit(ctx context.Context, endpoint string, payload any) (ports.JobHandle, error) {
	body, err := json.Marshal(map[string]any{"input": payload})
	if err != nil {
		return ports.JobHandle{}, &SubmissionError{Message: "encode payload: " + err.Error(), Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint+"/run", bytes.NewReader(body))
	if err != nil {
		return ports.JobHandle{}, &SubmissionError{Message: err.Error(), Err: err}
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.JobHandle{}, &SubmissionError{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return ports.JobHandle{}, &SubmissionError{StatusCode: resp.StatusCode, Message: string(raw)}
	}

	var job submitResponse
	if err := json.Unmarshal(raw, &job); err != nil {
		return ports.JobHandle{}, &SubmissionError{Message: "decode response: " + err.Error(), Err: err}
	}

	status := ports.JobStatus(job.Status)
	if status == "" {
		status = ports.JobStatusInQueue
	}
	return ports.JobHandle{ID: job.ID, Status: status}, nil
}

func (c *Client) checkStatus(ctx context.Context, endpoint, jobID string) (statusResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"/status/"+jobID, nil)
	if err != nil {
		return statusResponse{}, err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return statusResponse{}, fmt.Errorf("status request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusResponse{}, fmt.Errorf("status check failed with status %d: %s", resp.StatusCode, raw)
	}

	var result statusResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return statusResponse{}, fmt.Errorf("decode status: %w", err)
	}
	return result, nil
}

// PollUntilTerminal опрашивает задачу с фиксированным интервалом до
// терминального статуса или исчерпания бюджета. FAILED/CANCELLED
// терминальны сразу, а вот ошибка самого опроса считается транзиентной
// и ретраится — кроме последней разрешённой попытки.
func (c *Client) PollUntilTerminal(ctx context.Context, endpoint, jobID string, opts ports.PollOptions, onStatus ports.StatusFunc) ([]byte, error) {
	if opts.IntervalMs <= 0 || opts.MaxWaitMs <= 0 {
		return nil, fmt.Errorf("invalid poll options: maxWaitMs=%d intervalMs=%d", opts.MaxWaitMs, opts.IntervalMs)
	}

	interval := time.Duration(opts.IntervalMs) * time.Millisecond
	maxAttempts := opts.MaxWaitMs / opts.IntervalMs

	var lastSeen ports.JobStatus

	for attempt := 0; attempt < maxAttempts; attempt++ {
		result, err := c.checkStatus(ctx, endpoint, jobID)
		if err != nil {
			if attempt == maxAttempts-1 {
				return nil, err
			}
			if werr := c.wait(ctx, interval); werr != nil {
				return nil, werr
			}
			continue
		}

		status := ports.JobStatus(result.Status)
		if status != lastSeen && onStatus != nil {
			onStatus(status, jobID)
		}
		lastSeen = status

		switch status {
		case ports.JobStatusCompleted:
			if len(result.Output) == 0 || string(result.Output) == "null" {
				return nil, ErrNoOutput
			}
			return result.Output, nil
		case ports.JobStatusFailed:
			return nil, &JobFailedError{Message: result.Error}
		case ports.JobStatusCancelled:
			return nil, ErrJobCancelled
		}

		if attempt < maxAttempts-1 {
			if werr := c.wait(ctx, interval); werr != nil {
				return nil, werr
			}
		}
	}

	return nil, &TimeoutError{MaxWait: time.Duration(opts.MaxWaitMs) * time.Millisecond}
}

// wait — пауза через таймер, а не блокирующий Sleep, чтобы контекст мог
// прервать цикл опроса
func (c *Client) wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
