package mom

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/mom-generator/internal/domain/entities"
	"github.com/johnquangdev/mom-generator/internal/infrastructure/metrics"
	ucerrors "github.com/johnquangdev/mom-generator/internal/usecase/errors"
	"github.com/johnquangdev/mom-generator/internal/usecase/transcript"
	"github.com/johnquangdev/mom-generator/pkg/ai"
)

type fakeFetcher struct {
	transcript *entities.Transcript
	err        error
	got        transcript.FetchRequest
	calls      int
}

func (f *fakeFetcher) Fetch(_ context.Context, req transcript.FetchRequest) (*entities.Transcript, error) {
	f.calls++
	f.got = req
	return f.transcript, f.err
}

func newTestService(stub *stubGenerator, fetcher TranscriptFetcher, m *metrics.Metrics) *Service {
	return NewService(Options{
		Generator:       NewBoundedGenerator(stub),
		Deadline:        time.Second,
		Transcripts:     fetcher,
		ZoomCredentials: entities.ZoomCredentials{ClientID: "id", ClientSecret: "secret", AccountID: "acct"},
		Metrics:         m,
	})
}

func TestServiceGenerate_UsesSuppliedTranscription(t *testing.T) {
	stub := &stubGenerator{resp: ai.TextResponse("# Minutes")}
	fetcher := &fakeFetcher{}
	m := metrics.New(prometheus.NewRegistry())

	minutes, err := newTestService(stub, fetcher, m).Generate(context.Background(), GenerateInput{
		Agenda:        "Agenda",
		Transcription: "Alice: hello",
		MinuteType:    entities.MinuteTypeBulletPoints,
	})
	require.NoError(t, err)
	assert.Equal(t, "markdown", minutes.Format)
	assert.Equal(t, "# Minutes", minutes.Content)
	assert.Zero(t, fetcher.calls)
	assert.Contains(t, stub.prompt, "Alice: hello")
	assert.Contains(t, stub.prompt, "bullet-point format")
	assert.Equal(t, float64(1), testutil.ToFloat64(m.GenerationsTotal.WithLabelValues("bulletPoints", "success")))
}

func TestServiceGenerate_FetchesZoomTranscript(t *testing.T) {
	stub := &stubGenerator{resp: ai.TextResponse("# Minutes")}
	fetcher := &fakeFetcher{transcript: &entities.Transcript{Text: "Bob: fetched line", Format: entities.TranscriptFormatText}}

	_, err := newTestService(stub, fetcher, nil).Generate(context.Background(), GenerateInput{
		Agenda:        "Agenda",
		ZoomMeetingID: "123 456",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, fetcher.calls)
	assert.Equal(t, "123 456", fetcher.got.MeetingID)
	assert.Equal(t, "acct", fetcher.got.Credentials.AccountID)
	assert.False(t, fetcher.got.Raw)
	assert.Contains(t, stub.prompt, "Bob: fetched line")
	assert.Contains(t, stub.prompt, "short narrative summary of the discussion")
}

func TestServiceGenerate_FetchErrorAborts(t *testing.T) {
	stub := &stubGenerator{resp: ai.TextResponse("# Minutes")}
	fetcher := &fakeFetcher{err: ucerrors.ErrTranscriptNotFound}

	_, err := newTestService(stub, fetcher, nil).Generate(context.Background(), GenerateInput{ZoomMeetingID: "1"})
	assert.ErrorIs(t, err, ucerrors.ErrTranscriptNotFound)
	assert.Empty(t, stub.prompt)
}

func TestServiceGenerate_MissingTranscript(t *testing.T) {
	stub := &stubGenerator{resp: ai.TextResponse("# Minutes")}

	_, err := newTestService(stub, nil, nil).Generate(context.Background(), GenerateInput{Agenda: "a"})
	assert.ErrorIs(t, err, ucerrors.ErrInvalidInput)

	_, err = newTestService(stub, nil, nil).Generate(context.Background(), GenerateInput{ZoomMeetingID: "1"})
	assert.ErrorIs(t, err, ucerrors.ErrNotConfigured)
}

func TestServiceGenerate_TimeoutRecorded(t *testing.T) {
	stub := &stubGenerator{delay: time.Second, resp: ai.TextResponse("late")}
	m := metrics.New(prometheus.NewRegistry())
	svc := NewService(Options{Generator: NewBoundedGenerator(stub), Deadline: 20 * time.Millisecond, Metrics: m})

	_, err := svc.Generate(context.Background(), GenerateInput{Transcription: "t"})
	assert.True(t, errors.Is(err, ucerrors.ErrGenerationTimeout))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.GenerationsTotal.WithLabelValues("narrativeAndBullet", "timeout")))
}
