package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	momdto "github.com/johnquangdev/mom-generator/internal/adapter/dto/mom"
	"github.com/johnquangdev/mom-generator/internal/domain/entities"
	"github.com/johnquangdev/mom-generator/internal/usecase/transcript"
)

// meetingInput holds the file flags shared by generate and prompt
type meetingInput struct {
	agendaFile     string
	transcriptFile string
	attendanceFile string
	notesFile      string
	minuteType     string
}

func bindMeetingFlags(cmd *cobra.Command, in *meetingInput) {
	cmd.Flags().StringVar(&in.agendaFile, "agenda", "", "Agenda file (text or JSON)")
	cmd.Flags().StringVar(&in.transcriptFile, "transcript", "", "Transcript file (plain text or WebVTT)")
	cmd.Flags().StringVar(&in.attendanceFile, "attendance", "", "Attendance JSON file: [{\"Name\":..., \"Attendance\":...}]")
	cmd.Flags().StringVar(&in.notesFile, "notes", "", "Notes file (text or JSON)")
	cmd.Flags().StringVar(&in.minuteType, "minute-type", string(entities.DefaultMinuteType), "narrativeSummary|bulletPoints|narrativeAndBullet")
}

func (in *meetingInput) minuteTypeValue() (entities.MinuteType, error) {
	t := entities.MinuteType(in.minuteType)
	if !t.IsValid() {
		return "", fmt.Errorf("unknown minute type %q (want narrativeSummary, bulletPoints or narrativeAndBullet)", in.minuteType)
	}
	return t, nil
}

func (in *meetingInput) agenda() (string, error) {
	return readFreeForm(in.agendaFile)
}

func (in *meetingInput) notes() (string, error) {
	return readFreeForm(in.notesFile)
}

// transcriptText reads the transcript file, normalizing WebVTT bodies
func (in *meetingInput) transcriptText() (string, error) {
	if in.transcriptFile == "" {
		return "", nil
	}
	b, err := os.ReadFile(in.transcriptFile)
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}
	body := string(b)
	if strings.HasPrefix(strings.TrimSpace(body), "WEBVTT") {
		return transcript.NormalizeVTT(body), nil
	}
	return body, nil
}

func (in *meetingInput) attendees() ([]entities.Attendee, error) {
	if in.attendanceFile == "" {
		return nil, nil
	}
	b, err := os.ReadFile(in.attendanceFile)
	if err != nil {
		return nil, fmt.Errorf("read attendance: %w", err)
	}
	var out []entities.Attendee
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("parse attendance %s: %w", in.attendanceFile, err)
	}
	return out, nil
}

// readFreeForm reads a file that may hold plain text or any JSON value
func readFreeForm(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if json.Valid(b) {
		return momdto.FlattenJSON(b), nil
	}
	return strings.TrimSpace(string(b)), nil
}
