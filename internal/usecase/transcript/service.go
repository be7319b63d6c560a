package transcript

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/johnquangdev/mom-generator/internal/domain/entities"
	ucerrors "github.com/johnquangdev/mom-generator/internal/usecase/errors"
	"github.com/johnquangdev/mom-generator/pkg/reqctx"
)

// ProviderClient is the meeting-platform API used to reach transcripts
type ProviderClient interface {
	AccessToken(ctx context.Context, creds entities.ZoomCredentials) (string, error)
	ListRecordings(ctx context.Context, meetingID, token string) ([]entities.RecordingAsset, error)
	Download(ctx context.Context, downloadURL, token string) (string, error)
}

// FetchRequest describes one transcript retrieval
type FetchRequest struct {
	MeetingID   string
	Credentials entities.ZoomCredentials
	// Raw returns the WebVTT body untouched instead of normalized text
	Raw bool
}

// Service retrieves meeting transcripts from the provider
type Service struct {
	client ProviderClient
	logger *zap.Logger
}

// NewService creates a transcript service
func NewService(client ProviderClient, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{client: client, logger: logger}
}

// LocateTranscriptAsset finds the transcript among the meeting's recordings
func (s *Service) LocateTranscriptAsset(ctx context.Context, meetingID, token string) (*entities.RecordingAsset, error) {
	assets, err := s.client.ListRecordings(ctx, meetingID, token)
	if err != nil {
		return nil, err
	}

	asset, ok := entities.FindTranscriptAsset(assets)
	if !ok {
		return nil, fmt.Errorf("%w: no file_type=TRANSCRIPT among %d recording files", ucerrors.ErrTranscriptNotFound, len(assets))
	}
	return asset, nil
}

// Fetch acquires a token, locates the transcript asset and downloads it.
// Any stage failure aborts the fetch with that stage's error.
func (s *Service) Fetch(ctx context.Context, req FetchRequest) (*entities.Transcript, error) {
	if req.MeetingID == "" {
		return nil, fmt.Errorf("%w: meeting id is required", ucerrors.ErrInvalidInput)
	}

	token, err := s.client.AccessToken(ctx, req.Credentials)
	if err != nil {
		return nil, err
	}

	asset, err := s.LocateTranscriptAsset(ctx, req.MeetingID, token)
	if err != nil {
		return nil, err
	}

	body, err := s.client.Download(ctx, asset.DownloadURL, token)
	if err != nil {
		return nil, err
	}

	transcript := &entities.Transcript{
		Text:        body,
		Format:      entities.TranscriptFormatVTT,
		DownloadURL: asset.DownloadURL,
		FileID:      asset.ID,
	}
	if !req.Raw {
		transcript.Text = NormalizeVTT(body)
		transcript.Format = entities.TranscriptFormatText
	}

	s.logger.Info("transcript.fetched",
		append(reqctx.Fields(ctx),
			zap.String("meeting_id", req.MeetingID),
			zap.String("file_id", asset.ID),
			zap.String("format", string(transcript.Format)),
			zap.Int("bytes", len(transcript.Text)),
		)...,
	)

	return transcript, nil
}
