package mom

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/mom-generator/internal/domain/entities"
	"github.com/johnquangdev/mom-generator/internal/infrastructure/metrics"
	ucerrors "github.com/johnquangdev/mom-generator/internal/usecase/errors"
	"github.com/johnquangdev/mom-generator/internal/usecase/transcript"
	"github.com/johnquangdev/mom-generator/pkg/reqctx"
)

// TranscriptFetcher retrieves a meeting transcript from the provider
type TranscriptFetcher interface {
	Fetch(ctx context.Context, req transcript.FetchRequest) (*entities.Transcript, error)
}

// GenerateInput is one minutes request. Agenda and Notes are plain text.
type GenerateInput struct {
	Agenda        string
	Transcription string
	// ZoomMeetingID is used to fetch the transcript when Transcription is empty
	ZoomMeetingID string
	Attendees     []entities.Attendee
	MinuteType    entities.MinuteType
	Notes         string
}

// Options configures a Service
type Options struct {
	Generator *BoundedGenerator
	Deadline  time.Duration

	// Transcripts is optional; without it requests must carry a transcription
	Transcripts     TranscriptFetcher
	ZoomCredentials entities.ZoomCredentials

	Metrics *metrics.Metrics
	Logger  *zap.Logger
}

// Service writes Minutes of Meeting
type Service struct {
	generator   *BoundedGenerator
	deadline    time.Duration
	transcripts TranscriptFetcher
	zoomCreds   entities.ZoomCredentials
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewService creates a minutes service
func NewService(opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		generator:   opts.Generator,
		deadline:    opts.Deadline,
		transcripts: opts.Transcripts,
		zoomCreds:   opts.ZoomCredentials,
		metrics:     opts.Metrics,
		logger:      logger,
	}
}

// Generate produces the minutes for in, fetching the transcript first when
// only a meeting id was supplied.
func (s *Service) Generate(ctx context.Context, in GenerateInput) (*entities.Minutes, error) {
	minuteType := entities.ParseMinuteType(string(in.MinuteType))

	transcriptText, err := s.resolveTranscript(ctx, in)
	if err != nil {
		return nil, err
	}

	prompt := BuildPrompt(PromptInput{
		Agenda:     in.Agenda,
		Transcript: transcriptText,
		Attendees:  in.Attendees,
		MinuteType: minuteType,
		Notes:      in.Notes,
	})

	started := time.Now()
	text, err := s.generator.Generate(ctx, prompt, s.deadline)
	outcome := generationOutcome(err)
	s.metrics.ObserveGeneration(string(minuteType), outcome, len(prompt), started)

	fields := append(reqctx.Fields(ctx),
		zap.String("minute_type", string(minuteType)),
		zap.Int("prompt_bytes", len(prompt)),
		zap.Duration("generation_time", time.Since(started)),
	)
	if err != nil {
		s.logger.Warn("mom.generation_failed", append(fields, zap.String("outcome", outcome), zap.Error(err))...)
		return nil, err
	}
	s.logger.Info("mom.generated", append(fields, zap.Int("minutes_bytes", len(text)))...)

	return entities.NewMinutes(text), nil
}

func (s *Service) resolveTranscript(ctx context.Context, in GenerateInput) (string, error) {
	if in.Transcription != "" {
		return in.Transcription, nil
	}
	if in.ZoomMeetingID == "" {
		return "", fmt.Errorf("%w: transcription or zoomMeetingId is required", ucerrors.ErrInvalidInput)
	}
	if s.transcripts == nil {
		return "", fmt.Errorf("%w: zoom transcript retrieval", ucerrors.ErrNotConfigured)
	}

	t, err := s.transcripts.Fetch(ctx, transcript.FetchRequest{
		MeetingID:   in.ZoomMeetingID,
		Credentials: s.zoomCreds,
	})
	if err != nil {
		return "", err
	}
	return t.Text, nil
}

func generationOutcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ucerrors.ErrGenerationTimeout):
		return "timeout"
	case errors.Is(err, ucerrors.ErrEmptyGeneration):
		return "empty"
	default:
		return "error"
	}
}
