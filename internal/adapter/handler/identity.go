package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/mom-generator/internal/infrastructure/external/oauth"
)

// Identity serves token-status checks for the identity providers
type Identity struct {
	providers []oauth.TokenProvider
	logger    *zap.Logger
}

// NewIdentityHandler creates a handler for the given providers
func NewIdentityHandler(logger *zap.Logger, providers ...oauth.TokenProvider) *Identity {
	return &Identity{providers: providers, logger: logger}
}

// Token godoc
// @Summary      Check identity provider credentials
// @Description  Mints an access token with the configured credentials and reports its type, lifetime and scope. The token itself is never returned.
// @Tags         identity
// @Produce      json
// @Param        provider  path      string  true  "teams or google"
// @Success      200       {object}  entities.ProviderToken
// @Failure      502       {object}  common.ErrorResponse
// @Failure      503       {object}  common.ErrorResponse
// @Security     BearerAuth
// @Router       /{provider}/token [get]
func (h *Identity) token(p oauth.TokenProvider) echo.HandlerFunc {
	return func(c echo.Context) error {
		tok, err := p.Token(c.Request().Context())
		if err != nil {
			return handleScopedError(h.logger, c, err, errorScope{provider: p.Name()})
		}
		return HandleSuccess(h.logger, c, tok)
	}
}

// register mounts GET /<provider>/token for every provider
func (h *Identity) register(g *echo.Group) {
	for _, p := range h.providers {
		g.GET("/"+p.Name()+"/token", h.token(p))
	}
}
