package ai

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/johnquangdev/mom-generator/pkg/config"
)

// DefaultGeminiModel is used when no model is configured
const DefaultGeminiModel = "gemini-2.5-flash"

// GeminiClient generates content through the Gemini API
type GeminiClient struct {
	client   *genai.Client
	model    string
	observer UpstreamObserver
}

// NewGeminiClient creates the underlying genai client once; it is safe for
// concurrent use and shared by all requests.
func NewGeminiClient(ctx context.Context, cfg config.GenerationConfig, obs UpstreamObserver) (*GeminiClient, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	model := cfg.GeminiModel
	if model == "" {
		model = DefaultGeminiModel
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.GeminiBaseURL != "" {
		clientCfg.HTTPOptions.BaseURL = cfg.GeminiBaseURL
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiClient{client: client, model: model, observer: observerOrNop(obs)}, nil
}

// GenerateContent sends prompt as a single user turn
func (g *GeminiClient) GenerateContent(ctx context.Context, prompt string) (*GenerateResponse, error) {
	started := time.Now()

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		g.observer.ObserveUpstream("gemini", "generate", 0, started)
		return nil, fmt.Errorf("gemini generate content: %w", err)
	}
	g.observer.ObserveUpstream("gemini", "generate", 200, started)

	return fromGenAI(result), nil
}

// fromGenAI maps the SDK response onto the candidates shape. Thought parts
// are reasoning traces, not answer text, and are skipped.
func fromGenAI(result *genai.GenerateContentResponse) *GenerateResponse {
	resp := CandidatesResponse()
	if result == nil {
		return resp
	}

	for _, c := range result.Candidates {
		var cand Candidate
		if c != nil && c.Content != nil {
			for _, part := range c.Content.Parts {
				if part == nil || part.Thought || part.Text == "" {
					continue
				}
				cand.Parts = append(cand.Parts, part.Text)
			}
		}
		resp.Candidates = append(resp.Candidates, cand)
	}

	return resp
}
