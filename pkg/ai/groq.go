package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/johnquangdev/mom-generator/pkg/config"
)

// DefaultGroqModel is used when no model is configured
const DefaultGroqModel = "llama-3.1-70b-versatile"

// GroqClient is a minimal client for Groq's OpenAI-compatible chat API
type GroqClient struct {
	apiKey   string
	baseURL  string
	model    string
	client   *http.Client
	observer UpstreamObserver
}

// NewGroqClient creates a Groq client using values from the provided config.
// The HTTP client has no timeout of its own; callers bound requests with ctx.
func NewGroqClient(cfg config.GenerationConfig, obs UpstreamObserver) *GroqClient {
	base := cfg.GroqBaseURL
	if base == "" {
		base = "https://api.groq.com"
	}
	model := cfg.GroqModel
	if model == "" {
		model = DefaultGroqModel
	}

	return &GroqClient{
		apiKey:   cfg.GroqAPIKey,
		baseURL:  strings.TrimRight(base, "/"),
		model:    model,
		client:   &http.Client{},
		observer: observerOrNop(obs),
	}
}

// ChatMessage is one chat turn
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the shape for chat completion requests
type ChatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

// ChatResponse is a minimal response shape
type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// GenerateContent sends prompt as a single user message
func (g *GroqClient) GenerateContent(ctx context.Context, prompt string) (*GenerateResponse, error) {
	reqBody := ChatRequest{
		Model:       g.model,
		Messages:    []ChatMessage{{Role: "user", Content: prompt}},
		Temperature: 0.3,
		MaxTokens:   8000,
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	endpoint := g.baseURL + "/openai/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	started := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		g.observer.ObserveUpstream("groq", "chat", 0, started)
		return nil, fmt.Errorf("groq request: %w", err)
	}
	defer resp.Body.Close()
	g.observer.ObserveUpstream("groq", "chat", resp.StatusCode, started)

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("groq returned status %d: %s", resp.StatusCode, string(body))
	}

	var cr ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return nil, fmt.Errorf("decode groq response: %w", err)
	}
	if len(cr.Choices) == 0 {
		return TextResponse(""), nil
	}
	return TextResponse(cr.Choices[0].Message.Content), nil
}
