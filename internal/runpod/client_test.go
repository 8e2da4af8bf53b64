package runpod

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/703deuce/tts/internal/ports"
)

// statusServer serves a scripted sequence of status responses for one job.
func statusServer(t *testing.T, checks *int32, responses ...string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/status/job-1" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", got)
		}
		n := atomic.AddInt32(checks, 1)
		idx := int(n) - 1
		if idx >= len(responses) {
			idx = len(responses) - 1
		}
		fmt.Fprint(w, responses[idx])
	}))
}

func fastOpts(attempts int) ports.PollOptions {
	return ports.PollOptions{MaxWaitMs: attempts * 10, IntervalMs: 10}
}

func TestSubmit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/run", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body map[string]map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "https://x/test.wav", body["input"]["audio_url"])

		fmt.Fprint(w, `{"id":"job-1","status":"IN_QUEUE"}`)
	}))
	defer server.Close()

	client := NewClient("test-key")
	handle, err := client.Submit(context.Background(), server.URL, map[string]any{"audio_url": "https://x/test.wav"})
	require.NoError(t, err)
	assert.Equal(t, "job-1", handle.ID)
	assert.Equal(t, ports.JobStatusInQueue, handle.Status)
}

func TestSubmitDefaultsToInQueue(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id":"job-2"}`)
	}))
	defer server.Close()

	handle, err := NewClient("test-key").Submit(context.Background(), server.URL, map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, ports.JobStatusInQueue, handle.Status)
}

func TestSubmitRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such endpoint", http.StatusBadRequest)
	}))
	defer server.Close()

	_, err := NewClient("test-key").Submit(context.Background(), server.URL, map[string]any{})
	var subErr *SubmissionError
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, http.StatusBadRequest, subErr.StatusCode)
}

func TestSubmitTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused

	_, err := NewClient("test-key").Submit(context.Background(), server.URL, map[string]any{})
	var subErr *SubmissionError
	require.ErrorAs(t, err, &subErr)
}

func TestPollCompletes(t *testing.T) {
	var checks int32
	server := statusServer(t, &checks,
		`{"id":"job-1","status":"IN_QUEUE"}`,
		`{"id":"job-1","status":"IN_PROGRESS"}`,
		`{"id":"job-1","status":"IN_PROGRESS"}`,
		`{"id":"job-1","status":"COMPLETED","output":{"text":"hello world","duration":2.1}}`,
	)
	defer server.Close()

	var seen []ports.JobStatus
	output, err := NewClient("test-key").PollUntilTerminal(
		context.Background(), server.URL, "job-1", fastOpts(10),
		func(status ports.JobStatus, jobID string) {
			require.Equal(t, "job-1", jobID)
			seen = append(seen, status)
		},
	)
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"hello world","duration":2.1}`, string(output))
	assert.Equal(t, int32(4), atomic.LoadInt32(&checks))

	// one callback per distinct observed status, in observation order
	assert.Equal(t, []ports.JobStatus{
		ports.JobStatusInQueue,
		ports.JobStatusInProgress,
		ports.JobStatusCompleted,
	}, seen)
}

func TestPollFailedStopsImmediately(t *testing.T) {
	var checks int32
	server := statusServer(t, &checks,
		`{"id":"job-1","status":"IN_QUEUE"}`,
		`{"id":"job-1","status":"FAILED","error":"cuda out of memory"}`,
	)
	defer server.Close()

	_, err := NewClient("test-key").PollUntilTerminal(context.Background(), server.URL, "job-1", fastOpts(10), nil)
	var failed *JobFailedError
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, "cuda out of memory", failed.Message)
	assert.Equal(t, int32(2), atomic.LoadInt32(&checks), "no further checks after a terminal status")
}

func TestPollCancelled(t *testing.T) {
	var checks int32
	server := statusServer(t, &checks, `{"id":"job-1","status":"CANCELLED"}`)
	defer server.Close()

	_, err := NewClient("test-key").PollUntilTerminal(context.Background(), server.URL, "job-1", fastOpts(10), nil)
	require.ErrorIs(t, err, ErrJobCancelled)
	assert.Equal(t, int32(1), atomic.LoadInt32(&checks))
}

func TestPollTimeout(t *testing.T) {
	var checks int32
	server := statusServer(t, &checks, `{"id":"job-1","status":"IN_PROGRESS"}`)
	defer server.Close()

	_, err := NewClient("test-key").PollUntilTerminal(context.Background(), server.URL, "job-1", fastOpts(5), nil)
	var timeout *TimeoutError
	require.ErrorAs(t, err, &timeout)
	assert.Equal(t, 50*time.Millisecond, timeout.MaxWait)
	assert.Equal(t, int32(5), atomic.LoadInt32(&checks), "exactly maxWaitMs/intervalMs checks")
}

func TestPollCompletedWithoutOutput(t *testing.T) {
	var checks int32
	server := statusServer(t, &checks, `{"id":"job-1","status":"COMPLETED"}`)
	defer server.Close()

	_, err := NewClient("test-key").PollUntilTerminal(context.Background(), server.URL, "job-1", fastOpts(10), nil)
	require.ErrorIs(t, err, ErrNoOutput)
}

func TestPollTransientErrorRetried(t *testing.T) {
	var checks int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&checks, 1) == 1 {
			http.Error(w, "bad gateway", http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, `{"id":"job-1","status":"COMPLETED","output":{"text":"ok"}}`)
	}))
	defer server.Close()

	output, err := NewClient("test-key").PollUntilTerminal(context.Background(), server.URL, "job-1", fastOpts(10), nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"ok"}`, string(output))
	assert.Equal(t, int32(2), atomic.LoadInt32(&checks))
}

func TestPollTransientErrorOnLastAttemptPropagates(t *testing.T) {
	var checks int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&checks, 1)
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := NewClient("test-key").PollUntilTerminal(context.Background(), server.URL, "job-1", fastOpts(2), nil)
	require.Error(t, err)
	var timeout *TimeoutError
	assert.False(t, errors.As(err, &timeout), "transport error must propagate as-is, not as timeout")
	assert.Contains(t, err.Error(), "status check failed")
	assert.Equal(t, int32(2), atomic.LoadInt32(&checks))
}

func TestPollContextCancelled(t *testing.T) {
	server := statusServer(t, new(int32), `{"id":"job-1","status":"IN_PROGRESS"}`)
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(5 * time.Millisecond)
		cancel()
	}()

	_, err := NewClient("test-key").PollUntilTerminal(ctx, server.URL, "job-1", ports.PollOptions{MaxWaitMs: 60000, IntervalMs: 1000}, nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestPollInvalidOptions(t *testing.T) {
	_, err := NewClient("test-key").PollUntilTerminal(context.Background(), "http://unused", "job-1", ports.PollOptions{}, nil)
	require.Error(t, err)
}
