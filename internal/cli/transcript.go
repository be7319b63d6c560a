package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/johnquangdev/mom-generator/internal/usecase/transcript"
)

func newTranscriptCmd(app *appState) *cobra.Command {
	var (
		raw     bool
		details bool
	)

	cmd := &cobra.Command{
		Use:   "transcript <meeting-id>",
		Short: "Fetch a meeting transcript from Zoom",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfigFn()
			if err != nil {
				return err
			}
			svc, creds, err := app.transcriptService(cfg)
			if err != nil {
				return err
			}

			t, err := svc.Fetch(cmd.Context(), transcript.FetchRequest{
				MeetingID:   args[0],
				Credentials: creds,
				Raw:         raw,
			})
			if err != nil {
				return err
			}

			if details {
				enc := json.NewEncoder(app.outWriter())
				enc.SetIndent("", "  ")
				return enc.Encode(t)
			}
			fmt.Fprintln(app.outWriter(), t.Text)
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "vtt", false, "Print the raw WebVTT body")
	cmd.Flags().BoolVar(&details, "details", false, "Print the transcript with its file id and download URL as JSON")
	return cmd
}
