package oauth

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/johnquangdev/mom-generator/internal/domain/entities"
	"github.com/johnquangdev/mom-generator/internal/infrastructure/metrics"
	ucerrors "github.com/johnquangdev/mom-generator/internal/usecase/errors"
	"github.com/johnquangdev/mom-generator/pkg/config"
)

const providerGoogle = "google"

// GoogleProvider mints Google access tokens from a stored refresh token
type GoogleProvider struct {
	config       *oauth2.Config
	refreshToken string
	metrics      *metrics.Metrics
}

// NewGoogleProvider creates a new Google OAuth provider
func NewGoogleProvider(cfg config.GoogleOAuthConfig, m *metrics.Metrics) *GoogleProvider {
	return &GoogleProvider{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint:     google.Endpoint,
		},
		refreshToken: cfg.RefreshToken,
		metrics:      m,
	}
}

// Name returns the provider label
func (g *GoogleProvider) Name() string {
	return providerGoogle
}

// Token refreshes the access token using the refresh token
func (g *GoogleProvider) Token(ctx context.Context) (*entities.ProviderToken, error) {
	if g.config.ClientID == "" || g.config.ClientSecret == "" || g.refreshToken == "" {
		return nil, fmt.Errorf("%w: google client id, secret and refresh token are required", ucerrors.ErrNotConfigured)
	}

	return exchange(ctx, g.metrics, providerGoogle, func(ctx context.Context) (*oauth2.Token, error) {
		return g.config.TokenSource(ctx, &oauth2.Token{RefreshToken: g.refreshToken}).Token()
	})
}
