package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/johnquangdev/mom-generator/internal/domain/entities"
	"github.com/johnquangdev/mom-generator/internal/infrastructure/external/zoom"
	"github.com/johnquangdev/mom-generator/internal/usecase/transcript"
	"github.com/johnquangdev/mom-generator/pkg/ai"
	"github.com/johnquangdev/mom-generator/pkg/config"
	pkglogger "github.com/johnquangdev/mom-generator/pkg/logger"
)

type appState struct {
	verbose  bool
	jsonLogs bool

	logger *zap.Logger
	out    io.Writer

	loadConfigFn   func() (*config.Config, error)
	newGeneratorFn func(ctx context.Context, cfg config.GenerationConfig) (ai.Generator, error)
}

// NewRootCmd builds the momctl command tree
func NewRootCmd() *cobra.Command {
	return newRootCmd(&appState{
		out:          os.Stdout,
		loadConfigFn: config.LoadEnv,
		newGeneratorFn: func(ctx context.Context, cfg config.GenerationConfig) (ai.Generator, error) {
			return ai.NewGenerator(ctx, cfg, nil)
		},
	})
}

func newRootCmd(app *appState) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "momctl",
		Short:         "Generate Minutes of Meeting and fetch Zoom transcripts from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, env := "warn", "development"
			if app.verbose {
				level = "debug"
			}
			if app.jsonLogs {
				env = "production"
			}
			logger, err := pkglogger.NewStderr(env, level)
			if err != nil {
				return fmt.Errorf("initialize logger: %w", err)
			}
			app.logger = logger
			app.out = cmd.OutOrStdout()
			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&app.verbose, "verbose", app.verbose, "Enable verbose logs")
	cmd.PersistentFlags().BoolVar(&app.jsonLogs, "json", app.jsonLogs, "Enable JSON logging")

	cmd.AddCommand(newGenerateCmd(app))
	cmd.AddCommand(newPromptCmd(app))
	cmd.AddCommand(newTranscriptCmd(app))
	cmd.AddCommand(newTokenCmd(app))

	return cmd
}

func (a *appState) log() *zap.Logger {
	if a.logger == nil {
		return zap.NewNop()
	}
	return a.logger
}

func (a *appState) outWriter() io.Writer {
	if a.out == nil {
		return os.Stdout
	}
	return a.out
}

// transcriptService builds the Zoom transcript pipeline, or fails when
// credentials are missing.
func (a *appState) transcriptService(cfg *config.Config) (*transcript.Service, entities.ZoomCredentials, error) {
	creds := entities.ZoomCredentials{
		ClientID:     cfg.Zoom.ClientID,
		ClientSecret: cfg.Zoom.ClientSecret,
		AccountID:    cfg.Zoom.AccountID,
	}
	if !cfg.ZoomConfigured() {
		return nil, creds, fmt.Errorf("ZOOM_CLIENT_ID, ZOOM_CLIENT_SECRET and ZOOM_ACCOUNT_ID must be set")
	}

	client := zoom.NewClient(zoom.Options{
		OAuthURL:   cfg.Zoom.OAuthURL,
		APIBaseURL: cfg.Zoom.APIBaseURL,
		Timeout:    cfg.Zoom.HTTPTimeout,
		Logger:     a.log(),
	})
	return transcript.NewService(client, a.log()), creds, nil
}
