package mom

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ucerrors "github.com/johnquangdev/mom-generator/internal/usecase/errors"
	"github.com/johnquangdev/mom-generator/pkg/ai"
)

// stubGenerator answers after delay unless its context ends first
type stubGenerator struct {
	delay     time.Duration
	resp      *ai.GenerateResponse
	err       error
	cancelled chan error
	prompt    string
}

func (s *stubGenerator) GenerateContent(ctx context.Context, prompt string) (*ai.GenerateResponse, error) {
	s.prompt = prompt
	select {
	case <-time.After(s.delay):
		return s.resp, s.err
	case <-ctx.Done():
		if s.cancelled != nil {
			s.cancelled <- ctx.Err()
		}
		return nil, ctx.Err()
	}
}

func TestGenerate_ReturnsText(t *testing.T) {
	stub := &stubGenerator{resp: ai.TextResponse("# Minutes")}

	text, err := NewBoundedGenerator(stub).Generate(context.Background(), "prompt", time.Second)
	require.NoError(t, err)
	assert.Equal(t, "# Minutes", text)
	assert.Equal(t, "prompt", stub.prompt)
}

func TestGenerate_CandidatesShape(t *testing.T) {
	stub := &stubGenerator{resp: ai.CandidatesResponse(ai.Candidate{Parts: []string{"# A", "\nB"}})}

	text, err := NewBoundedGenerator(stub).Generate(context.Background(), "p", time.Second)
	require.NoError(t, err)
	assert.Equal(t, "# A\nB", text)
}

func TestGenerate_DeadlinePrecedence(t *testing.T) {
	deadline := 50 * time.Millisecond
	stub := &stubGenerator{
		delay:     deadline + 20*time.Millisecond,
		resp:      ai.TextResponse("would have succeeded"),
		cancelled: make(chan error, 1),
	}

	text, err := NewBoundedGenerator(stub).Generate(context.Background(), "p", deadline)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ucerrors.ErrGenerationTimeout))
	assert.Contains(t, err.Error(), "50ms")
	assert.Empty(t, text)

	select {
	case cerr := <-stub.cancelled:
		assert.ErrorIs(t, cerr, context.DeadlineExceeded)
	case <-time.After(time.Second):
		t.Fatal("backend call was not cancelled")
	}
}

func TestGenerate_ParentCancelIsNotTimeout(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	stub := &stubGenerator{delay: time.Second, resp: ai.TextResponse("late")}

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := NewBoundedGenerator(stub).Generate(ctx, "p", time.Second)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ucerrors.ErrGenerationTimeout))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerate_ParentDeadlineIsNotTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	stub := &stubGenerator{delay: time.Second, resp: ai.TextResponse("late")}

	_, err := NewBoundedGenerator(stub).Generate(ctx, "p", time.Second)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ucerrors.ErrGenerationTimeout))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGenerate_EmptyResponseRejected(t *testing.T) {
	responses := map[string]*ai.GenerateResponse{
		"empty text":       ai.TextResponse(""),
		"blank text":       ai.TextResponse("  \n\t"),
		"no candidates":    ai.CandidatesResponse(),
		"empty candidate":  ai.CandidatesResponse(ai.Candidate{}),
		"nil response":     nil,
		"untagged payload": {Text: "orphan"},
	}

	for name, resp := range responses {
		t.Run(name, func(t *testing.T) {
			stub := &stubGenerator{resp: resp}
			text, err := NewBoundedGenerator(stub).Generate(context.Background(), "p", time.Second)
			assert.ErrorIs(t, err, ucerrors.ErrEmptyGeneration)
			assert.Empty(t, text)
		})
	}
}

func TestGenerate_BackendError(t *testing.T) {
	stub := &stubGenerator{err: errors.New("quota exceeded")}

	_, err := NewBoundedGenerator(stub).Generate(context.Background(), "p", time.Second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
	assert.ErrorIs(t, err, ucerrors.ErrGenerationFailed)
	assert.False(t, errors.Is(err, ucerrors.ErrGenerationTimeout))
	assert.False(t, errors.Is(err, ucerrors.ErrEmptyGeneration))
}
