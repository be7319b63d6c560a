package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/johnquangdev/mom-generator/internal/usecase/mom"
)

func newGenerateCmd(app *appState) *cobra.Command {
	var (
		in            meetingInput
		zoomMeetingID string
		timeout       time.Duration
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate Minutes of Meeting and print the Markdown",
		Example: `  momctl generate --agenda agenda.json --transcript meeting.vtt --attendance roster.json
  momctl generate --agenda agenda.txt --zoom-meeting-id 85746065432 --minute-type bulletPoints`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
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
			if transcriptText == "" && zoomMeetingID == "" {
				return fmt.Errorf("one of --transcript or --zoom-meeting-id is required")
			}

			cfg, err := app.loadConfigFn()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("timeout") {
				cfg.Generation.Timeout = timeout
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			backend, err := app.newGeneratorFn(cmd.Context(), cfg.Generation)
			if err != nil {
				return err
			}

			opts := mom.Options{
				Generator: mom.NewBoundedGenerator(backend),
				Deadline:  cfg.Generation.Timeout,
				Logger:    app.log(),
			}
			if zoomMeetingID != "" && transcriptText == "" {
				svc, creds, err := app.transcriptService(cfg)
				if err != nil {
					return err
				}
				opts.Transcripts = svc
				opts.ZoomCredentials = creds
			}

			minutes, err := mom.NewService(opts).Generate(cmd.Context(), mom.GenerateInput{
				Agenda:        agenda,
				Transcription: transcriptText,
				ZoomMeetingID: zoomMeetingID,
				Attendees:     attendees,
				MinuteType:    minuteType,
				Notes:         notes,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(app.outWriter(), minutes.Content)
			return nil
		},
	}

	bindMeetingFlags(cmd, &in)
	cmd.Flags().StringVar(&zoomMeetingID, "zoom-meeting-id", "", "Fetch the transcript of this Zoom meeting")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Generation deadline (default MOM_GENERATION_TIMEOUT)")

	return cmd
}
