package oauth

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/oauth2/microsoft"

	"github.com/johnquangdev/mom-generator/internal/domain/entities"
	"github.com/johnquangdev/mom-generator/internal/infrastructure/metrics"
	ucerrors "github.com/johnquangdev/mom-generator/internal/usecase/errors"
	"github.com/johnquangdev/mom-generator/pkg/config"
)

const (
	providerTeams = "teams"
	graphScope    = "https://graph.microsoft.com/.default"
)

// TeamsProvider mints Microsoft Graph app-only tokens (Azure AD client credentials)
type TeamsProvider struct {
	tenantID string
	config   *clientcredentials.Config
	metrics  *metrics.Metrics
}

// NewTeamsProvider creates a provider for the configured tenant
func NewTeamsProvider(cfg config.TeamsConfig, m *metrics.Metrics) *TeamsProvider {
	return &TeamsProvider{
		tenantID: cfg.TenantID,
		config: &clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     microsoft.AzureADEndpoint(cfg.TenantID).TokenURL,
			Scopes:       []string{graphScope},
			AuthStyle:    oauth2.AuthStyleInParams,
		},
		metrics: m,
	}
}

// Name returns the provider label
func (t *TeamsProvider) Name() string {
	return providerTeams
}

// Token requests a fresh application token
func (t *TeamsProvider) Token(ctx context.Context) (*entities.ProviderToken, error) {
	if t.tenantID == "" || t.config.ClientID == "" || t.config.ClientSecret == "" {
		return nil, fmt.Errorf("%w: teams tenant, client id and secret are required", ucerrors.ErrNotConfigured)
	}

	return exchange(ctx, t.metrics, providerTeams, t.config.Token)
}
