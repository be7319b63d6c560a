package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/johnquangdev/mom-generator/pkg/jwt"
)

func newTokenCmd(app *appState) *cobra.Command {
	var (
		role   string
		expiry time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token <subject>",
		Short: "Mint an API bearer token signed with JWT_ACCESS_SECRET",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfigFn()
			if err != nil {
				return err
			}
			if !cfg.AuthEnabled() {
				return fmt.Errorf("JWT_ACCESS_SECRET is not set; the API accepts requests without tokens")
			}
			if cmd.Flags().Changed("expiry") {
				cfg.JWT.AccessExpiry = expiry
			}

			token, err := jwt.NewManager(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiry).GenerateAccessToken(args[0], role)
			if err != nil {
				return err
			}
			fmt.Fprintln(app.outWriter(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "client", "Role claim")
	cmd.Flags().DurationVar(&expiry, "expiry", 0, "Token lifetime (default JWT_ACCESS_EXPIRY)")
	return cmd
}
