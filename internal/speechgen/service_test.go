package speechgen

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/703deuce/tts/internal/ports"
	"github.com/703deuce/tts/internal/runpod"
)

// countingRunner fails the test if any network phase is reached.
type countingRunner struct {
	submits int32
}

func (r *countingRunner) Submit(ctx context.Context, endpoint string, payload any) (ports.JobHandle, error) {
	atomic.AddInt32(&r.submits, 1)
	return ports.JobHandle{ID: "job-1", Status: ports.JobStatusInQueue}, nil
}

func (r *countingRunner) PollUntilTerminal(ctx context.Context, endpoint, jobID string, opts ports.PollOptions, onStatus ports.StatusFunc) ([]byte, error) {
	return []byte(`{}`), nil
}

func TestGenerateRejectsInvalidParamsBeforeNetwork(t *testing.T) {
	runner := &countingRunner{}
	svc := NewService(runner, "http://endpoint", zap.NewNop().Sugar())

	_, err := svc.Generate(context.Background(), Request{
		Text:     "hello",
		VoiceID:  "en_man",
		Sampling: SamplingParams{Temperature: 1.5, TopP: 0.95, TopK: 50, MaxNewTokens: 1024},
	}, nil)

	var invalid *InvalidParameterError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "temperature", invalid.Name)
	assert.Zero(t, atomic.LoadInt32(&runner.submits), "validation failure must not reach the network")
}

func TestGenerateWorkflow(t *testing.T) {
	audio := []byte("RIFF....WAVEdata")
	output := map[string]any{
		"audio_base64":   base64.StdEncoding.EncodeToString(audio),
		"sampling_rate":  24000,
		"duration":       1.5,
		"content_type":   "audio/wav",
		"generated_text": "hello",
		"usage":          map[string]int{"prompt_tokens": 10, "completion_tokens": 20, "total_tokens": 30},
		"cache_status":   map[string]any{"cache_exists": true, "models_cached": 2, "total_cache_size_mb": 512.5},
	}
	outputJSON, err := json.Marshal(output)
	require.NoError(t, err)

	var checks int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/run":
			var body map[string]map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "en_man", body["input"]["ref_audio_name"])
			assert.Equal(t, "wav", body["input"]["output_format"])
			fmt.Fprint(w, `{"id":"job-9","status":"IN_QUEUE"}`)
		case strings.HasPrefix(r.URL.Path, "/status/job-9"):
			if atomic.AddInt32(&checks, 1) < 3 {
				fmt.Fprint(w, `{"id":"job-9","status":"IN_PROGRESS"}`)
				return
			}
			fmt.Fprintf(w, `{"id":"job-9","status":"COMPLETED","output":%s}`, outputJSON)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer server.Close()

	svc := NewService(runpod.NewClient("test-key"), server.URL, zap.NewNop().Sugar()).
		WithPollOptions(ports.PollOptions{MaxWaitMs: 100, IntervalMs: 10})

	result, err := svc.Generate(context.Background(), Request{Text: "hello", VoiceID: "en_man"}, nil)
	require.NoError(t, err)
	assert.Equal(t, audio, result.Audio)
	assert.Equal(t, 24000, result.SamplingRate)
	assert.InDelta(t, 1.5, result.Duration, 0.001)
	assert.Equal(t, "hello", result.GeneratedText)
	assert.Equal(t, 30, result.Usage.TotalTokens)
	assert.True(t, result.CacheStatus.CacheExists)
}

func TestDecodeOutputMissingAudio(t *testing.T) {
	_, err := decodeOutput([]byte(`{"duration":1.0}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "audio_base64")
}

func TestDecodeOutputBadBase64(t *testing.T) {
	_, err := decodeOutput([]byte(`{"audio_base64":"%%%not-base64%%%"}`))
	require.Error(t, err)
}

func TestDecodeOutputDefaultsContentType(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte("xx"))
	result, err := decodeOutput([]byte(`{"audio_base64":"` + encoded + `"}`))
	require.NoError(t, err)
	assert.Equal(t, "audio/wav", result.ContentType)
}
