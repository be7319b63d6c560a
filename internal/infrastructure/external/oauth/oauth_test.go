package oauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/johnquangdev/mom-generator/internal/infrastructure/metrics"
	ucerrors "github.com/johnquangdev/mom-generator/internal/usecase/errors"
	"github.com/johnquangdev/mom-generator/pkg/config"
)

func TestTeamsToken_ClientCredentials(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		assert.Equal(t, graphScope, r.PostForm.Get("scope"))
		assert.Equal(t, "teams-client", r.PostForm.Get("client_id"))
		assert.Equal(t, "teams-secret", r.PostForm.Get("client_secret"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"graph-token","token_type":"Bearer","expires_in":3599}`))
	}))
	defer ts.Close()

	m := metrics.New(prometheus.NewRegistry())
	p := NewTeamsProvider(config.TeamsConfig{TenantID: "tenant", ClientID: "teams-client", ClientSecret: "teams-secret"}, m)
	assert.Contains(t, p.config.TokenURL, "/tenant/oauth2/v2.0/token")
	p.config.TokenURL = ts.URL

	tok, err := p.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "teams", tok.Provider)
	assert.Equal(t, "Bearer", tok.TokenType)
	assert.InDelta(t, 3599, tok.ExpiresIn, 2)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.UpstreamRequestsTotal.WithLabelValues("teams", "token", "200")))
}

func TestTeamsToken_Rejected(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid_client"}`))
	}))
	defer ts.Close()

	m := metrics.New(prometheus.NewRegistry())
	p := NewTeamsProvider(config.TeamsConfig{TenantID: "tenant", ClientID: "c", ClientSecret: "s"}, m)
	p.config.TokenURL = ts.URL

	_, err := p.Token(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ucerrors.ErrProviderAuth)
	assert.Contains(t, err.Error(), "invalid_client")
	assert.Equal(t, float64(1), testutil.ToFloat64(m.UpstreamRequestsTotal.WithLabelValues("teams", "token", "401")))
}

func TestTeamsToken_NotConfigured(t *testing.T) {
	_, err := NewTeamsProvider(config.TeamsConfig{ClientID: "c", ClientSecret: "s"}, nil).Token(context.Background())
	assert.ErrorIs(t, err, ucerrors.ErrNotConfigured)
}

func TestGoogleToken_RefreshGrant(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		assert.Equal(t, "stored-refresh", r.PostForm.Get("refresh_token"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"ya29","token_type":"Bearer","expires_in":3600,"scope":"https://www.googleapis.com/auth/meetings.space.readonly"}`))
	}))
	defer ts.Close()

	p := NewGoogleProvider(config.GoogleOAuthConfig{ClientID: "gid", ClientSecret: "gsecret", RefreshToken: "stored-refresh"}, nil)
	p.config.Endpoint = oauth2.Endpoint{TokenURL: ts.URL, AuthStyle: oauth2.AuthStyleInParams}

	tok, err := p.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "google", tok.Provider)
	assert.Equal(t, "Bearer", tok.TokenType)
	assert.Equal(t, "https://www.googleapis.com/auth/meetings.space.readonly", tok.Scope)
	assert.InDelta(t, 3600, tok.ExpiresIn, 2)
}

func TestGoogleToken_NotConfigured(t *testing.T) {
	_, err := NewGoogleProvider(config.GoogleOAuthConfig{ClientID: "gid", ClientSecret: "s"}, nil).Token(context.Background())
	assert.ErrorIs(t, err, ucerrors.ErrNotConfigured)
}
