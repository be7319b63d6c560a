package entities

// ProviderToken describes an access token minted for an identity provider.
// The token value itself is deliberately absent.
type ProviderToken struct {
	Provider  string `json:"provider"`
	TokenType string `json:"token_type"`
	ExpiresIn int64  `json:"expires_in,omitempty"`
	Scope     string `json:"scope,omitempty"`
}
