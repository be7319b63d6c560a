package ai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/mom-generator/pkg/config"
)

type upstreamCall struct {
	provider  string
	operation string
	status    int
}

type recordingObserver struct {
	mu    sync.Mutex
	calls []upstreamCall
}

func (o *recordingObserver) ObserveUpstream(provider, operation string, status int, _ time.Time) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls = append(o.calls, upstreamCall{provider: provider, operation: operation, status: status})
}

func newTestGemini(t *testing.T, handler http.HandlerFunc, obs UpstreamObserver) *GeminiClient {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	client, err := NewGeminiClient(context.Background(), config.GenerationConfig{
		GeminiAPIKey:  "test-key",
		GeminiModel:   "gemini-test",
		GeminiBaseURL: ts.URL,
	}, obs)
	require.NoError(t, err)
	return client
}

func TestGeminiGenerateContent_SkipsThoughtParts(t *testing.T) {
	obs := &recordingObserver{}
	client := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, "models/gemini-test:generateContent"), r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[` +
			`{"text":"planning the answer","thought":true},` +
			`{"text":"# Minutes"},{"text":" of Meeting"}]},"finishReason":"STOP"}]}`))
	}, obs)

	resp, err := client.GenerateContent(context.Background(), "write minutes")
	require.NoError(t, err)

	assert.Equal(t, ResponseKindCandidates, resp.Kind)
	assert.Equal(t, "# Minutes of Meeting", resp.ExtractText())
	require.Len(t, obs.calls, 1)
	assert.Equal(t, upstreamCall{provider: "gemini", operation: "generate", status: 200}, obs.calls[0])
}

func TestGeminiGenerateContent_ErrorIsObserved(t *testing.T) {
	obs := &recordingObserver{}
	client := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"prompt rejected","status":"INVALID_ARGUMENT"}}`))
	}, obs)

	resp, err := client.GenerateContent(context.Background(), "write minutes")
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "gemini generate content")

	require.Len(t, obs.calls, 1)
	assert.Equal(t, 0, obs.calls[0].status)
}

func TestNewGeminiClient_RequiresKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), config.GenerationConfig{}, nil)
	require.Error(t, err)
}
