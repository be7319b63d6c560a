package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/johnquangdev/mom-generator/internal/usecase/mom"
)

func newPromptCmd(app *appState) *cobra.Command {
	var in meetingInput

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Print the generation prompt without calling the backend",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			minuteType, err := in.minuteTypeValue()
			if err != nil {
				return err
			}
			agenda, err := in.agenda()
			if err != nil {
				return err
			}
			notes, err := in.notes()
			if err != nil {
				return err
			}
			transcriptText, err := in.transcriptText()
			if err != nil {
				return err
			}
			attendees, err := in.attendees()
			if err != nil {
				return err
			}

			fmt.Fprint(app.outWriter(), mom.BuildPrompt(mom.PromptInput{
				Agenda:     agenda,
				Transcript: transcriptText,
				Attendees:  attendees,
				MinuteType: minuteType,
				Notes:      notes,
			}))
			return nil
		},
	}

	bindMeetingFlags(cmd, &in)
	return cmd
}
