package oauth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/oauth2"

	"github.com/johnquangdev/mom-generator/internal/domain/entities"
	"github.com/johnquangdev/mom-generator/internal/infrastructure/metrics"
	ucerrors "github.com/johnquangdev/mom-generator/internal/usecase/errors"
)

// TokenProvider mints access tokens for one identity provider
type TokenProvider interface {
	Name() string
	Token(ctx context.Context) (*entities.ProviderToken, error)
}

// exchange runs one token request and reports it to metrics
func exchange(ctx context.Context, m *metrics.Metrics, provider string, src func(context.Context) (*oauth2.Token, error)) (*entities.ProviderToken, error) {
	started := time.Now()

	tok, err := src(ctx)
	if err != nil {
		status := 0
		var rErr *oauth2.RetrieveError
		if errors.As(err, &rErr) && rErr.Response != nil {
			status = rErr.Response.StatusCode
		}
		m.ObserveUpstream(provider, "token", status, started)
		return nil, fmt.Errorf("%w: %s: %v", ucerrors.ErrProviderAuth, provider, err)
	}
	m.ObserveUpstream(provider, "token", 200, started)

	if tok.AccessToken == "" {
		return nil, fmt.Errorf("%w: %s: missing access_token", ucerrors.ErrProviderAuth, provider)
	}

	out := &entities.ProviderToken{
		Provider:  provider,
		TokenType: tok.Type(),
	}
	if !tok.Expiry.IsZero() {
		out.ExpiresIn = int64(time.Until(tok.Expiry).Round(time.Second).Seconds())
	}
	if scope, ok := tok.Extra("scope").(string); ok {
		out.Scope = scope
	}
	return out, nil
}
