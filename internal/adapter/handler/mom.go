package handler

import (
	"context"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/mom-generator/errors"
	momdto "github.com/johnquangdev/mom-generator/internal/adapter/dto/mom"
	"github.com/johnquangdev/mom-generator/internal/domain/entities"
	"github.com/johnquangdev/mom-generator/internal/usecase/mom"
)

// MinutesService writes Minutes of Meeting
type MinutesService interface {
	Generate(ctx context.Context, in mom.GenerateInput) (*entities.Minutes, error)
}

// MoM serves minutes generation
type MoM struct {
	service MinutesService
	logger  *zap.Logger
}

// NewMoMHandler creates a new minutes handler
func NewMoMHandler(service MinutesService, logger *zap.Logger) *MoM {
	return &MoM{service: service, logger: logger}
}

// GenerateMoM godoc
// @Summary      Generate Minutes of Meeting
// @Description  Writes Markdown minutes from an agenda, a transcript, the attendance roster and notes. When transcription is empty and zoomMeetingId is set, the transcript is fetched from Zoom first.
// @Tags         mom
// @Accept       json
// @Produce      json
// @Param        request  body      momdto.GenerateRequest  true  "Meeting material"
// @Success      200      {object}  momdto.GenerateResponse
// @Failure      400      {object}  common.ErrorResponse  "Validation failed"
// @Failure      404      {object}  common.ErrorResponse  "Zoom transcript not found"
// @Failure      500      {object}  common.ErrorResponse
// @Failure      502      {object}  common.ErrorResponse  "Zoom unavailable"
// @Failure      503      {object}  common.ErrorResponse  "Request socket timed out"
// @Failure      504      {object}  common.ErrorResponse  "Gateway Timeout"
// @Security     BearerAuth
// @Router       /generate-mom [post]
func (h *MoM) GenerateMoM(c echo.Context) error {
	var req momdto.GenerateRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrValidationFailed(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrValidationFailed(err))
	}

	minutes, err := h.service.Generate(c.Request().Context(), mom.GenerateInput{
		Agenda:        req.AgendaText(),
		Transcription: req.Transcription,
		ZoomMeetingID: req.ZoomMeetingID,
		Attendees:     req.AttendanceData,
		MinuteType:    entities.ParseMinuteType(req.MinuteType),
		Notes:         req.NotesText(),
	})
	if err != nil {
		return handleScopedError(h.logger, c, err, errorScope{provider: "zoom", meetingID: req.ZoomMeetingID})
	}

	return HandleSuccess(h.logger, c, momdto.GenerateResponse{
		Format:  minutes.Format,
		Minutes: minutes.Content,
	})
}
