package handler

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/mom-generator/errors"
	zoomdto "github.com/johnquangdev/mom-generator/internal/adapter/dto/zoom"
	"github.com/johnquangdev/mom-generator/internal/domain/entities"
	ucerrors "github.com/johnquangdev/mom-generator/internal/usecase/errors"
	"github.com/johnquangdev/mom-generator/internal/usecase/transcript"
)

// TranscriptService retrieves meeting transcripts
type TranscriptService interface {
	Fetch(ctx context.Context, req transcript.FetchRequest) (*entities.Transcript, error)
}

// Zoom serves Zoom transcript retrieval
type Zoom struct {
	service TranscriptService
	creds   entities.ZoomCredentials
	logger  *zap.Logger
}

// NewZoomHandler creates a new Zoom handler. A nil service means Zoom is
// not configured.
func NewZoomHandler(service TranscriptService, creds entities.ZoomCredentials, logger *zap.Logger) *Zoom {
	return &Zoom{service: service, creds: creds, logger: logger}
}

// GetRecordings godoc
// @Summary      Fetch a meeting transcript from Zoom
// @Description  Locates the TRANSCRIPT recording file of a meeting and returns it as plain text, or as raw WebVTT with format=vtt.
// @Tags         zoom
// @Produce      json
// @Param        meetingId  query     string  true   "Zoom meeting id or UUID"
// @Param        format     query     string  false  "vtt for the raw body"
// @Success      200        {object}  zoomdto.TranscriptResponse
// @Failure      400        {object}  common.ErrorResponse
// @Failure      404        {object}  common.ErrorResponse
// @Failure      502        {object}  common.ErrorResponse
// @Failure      503        {object}  common.ErrorResponse
// @Security     BearerAuth
// @Router       /zoom/recordings [get]
func (h *Zoom) GetRecordings(c echo.Context) error {
	var q zoomdto.RecordingsQuery
	if err := c.Bind(&q); err != nil {
		return HandleError(h.logger, c, errors.ErrValidationFailed(err))
	}
	if q.MeetingID == "" {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("meetingId required"))
	}
	if h.service == nil {
		return HandleError(h.logger, c, fmt.Errorf("%w: zoom credentials", ucerrors.ErrNotConfigured))
	}

	t, err := h.service.Fetch(c.Request().Context(), transcript.FetchRequest{
		MeetingID:   q.MeetingID,
		Credentials: h.creds,
		Raw:         q.Format == string(entities.TranscriptFormatVTT),
	})
	if err != nil {
		return handleScopedError(h.logger, c, err, errorScope{provider: "zoom", meetingID: q.MeetingID})
	}

	return HandleSuccess(h.logger, c, zoomdto.TranscriptResponse{
		Transcript:       t.Text,
		TranscriptFormat: string(t.Format),
		DownloadURL:      t.DownloadURL,
		TranscriptFileID: t.FileID,
	})
}
