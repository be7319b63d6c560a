package mom

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	ucerrors "github.com/johnquangdev/mom-generator/internal/usecase/errors"
	"github.com/johnquangdev/mom-generator/pkg/ai"
)

// BoundedGenerator issues single generation calls under a hard deadline
type BoundedGenerator struct {
	backend ai.Generator
}

// NewBoundedGenerator wraps backend
func NewBoundedGenerator(backend ai.Generator) *BoundedGenerator {
	return &BoundedGenerator{backend: backend}
}

type generation struct {
	resp *ai.GenerateResponse
	err  error
}

// Generate runs one backend call and returns its text. If the deadline
// passes first the call's context is cancelled and ErrGenerationTimeout is
// returned, whatever the call would have produced.
func (g *BoundedGenerator) Generate(ctx context.Context, prompt string, deadline time.Duration) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, deadline)
	defer cancel()

	done := make(chan generation, 1)
	go func() {
		resp, err := g.backend.GenerateContent(callCtx, prompt)
		done <- generation{resp: resp, err: err}
	}()

	select {
	case <-callCtx.Done():
		return "", abandoned(ctx, callCtx, deadline)
	case res := <-done:
		// a backend aborted by our own deadline reports ctx errors, not a failure
		if callCtx.Err() != nil {
			return "", abandoned(ctx, callCtx, deadline)
		}
		if res.err != nil {
			return "", fmt.Errorf("%w: %w", ucerrors.ErrGenerationFailed, res.err)
		}
		text := res.resp.ExtractText()
		if strings.TrimSpace(text) == "" {
			return "", ucerrors.ErrEmptyGeneration
		}
		return text, nil
	}
}

// abandoned explains why callCtx ended. Only the generation deadline itself
// counts as a generation timeout; a caller that went away or hit its own
// deadline is reported as such.
func abandoned(parent, callCtx context.Context, deadline time.Duration) error {
	if err := parent.Err(); err != nil {
		return fmt.Errorf("generation abandoned: %w", err)
	}
	if errors.Is(callCtx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: no response within %s", ucerrors.ErrGenerationTimeout, deadline)
	}
	return fmt.Errorf("generation abandoned: %w", callCtx.Err())
}
