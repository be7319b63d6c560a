package mom

import (
	"bytes"
	"encoding/json"

	"github.com/johnquangdev/mom-generator/internal/domain/entities"
)

// GenerateRequest is the body of POST /api/generate-mom
type GenerateRequest struct {
	// Agenda is any JSON value; strings are used as-is
	Agenda        json.RawMessage `json:"agenda" swaggertype:"object"`
	Transcription string          `json:"transcription" validate:"required_without=ZoomMeetingID"`
	// ZoomMeetingID fetches the transcript from Zoom when transcription is empty
	ZoomMeetingID  string              `json:"zoomMeetingId,omitempty"`
	AttendanceData []entities.Attendee `json:"attendanceData" validate:"dive"`
	MinuteType     string              `json:"minuteType,omitempty" validate:"omitempty,minutetype" enums:"narrativeSummary,bulletPoints,narrativeAndBullet"`
	Notes          json.RawMessage     `json:"notes,omitempty" swaggertype:"object"`
}

// AgendaText flattens the agenda for prompting
func (r *GenerateRequest) AgendaText() string {
	return FlattenJSON(r.Agenda)
}

// NotesText flattens the notes for prompting
func (r *GenerateRequest) NotesText() string {
	return FlattenJSON(r.Notes)
}

// FlattenJSON renders a free-form JSON value as prompt text. A JSON string
// yields its content, other values their compact encoding. null, {}, [] and
// "" are empty.
func FlattenJSON(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return string(trimmed)
	}
	switch buf.String() {
	case "null", "{}", "[]":
		return ""
	}
	return buf.String()
}
