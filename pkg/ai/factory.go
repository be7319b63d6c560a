package ai

import (
	"context"
	"fmt"

	"github.com/johnquangdev/mom-generator/pkg/config"
)

// NewGenerator builds the backend selected by cfg.Backend
func NewGenerator(ctx context.Context, cfg config.GenerationConfig, obs UpstreamObserver) (Generator, error) {
	switch cfg.Backend {
	case config.BackendGroq:
		return NewGroqClient(cfg, obs), nil
	case config.BackendGemini, "":
		client, err := NewGeminiClient(ctx, cfg, obs)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported generation backend %q", cfg.Backend)
	}
}
