package config

import (
	"fmt"
	"log"
	"net"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Generation backends
const (
	BackendGemini = "gemini"
	BackendGroq   = "groq"
)

// Config holds application configuration
type Config struct {
	Server     ServerConfig
	Zoom       ZoomConfig
	Teams      TeamsConfig
	Google     GoogleOAuthConfig
	Generation GenerationConfig
	JWT        JWTConfig
	Log        LogConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"4000"`
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string      `envconfig:"CORS_ORIGIN" default:"http://localhost:5173"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	// RequestTimeout is the transport deadline armed around generate-mom.
	RequestTimeout time.Duration `envconfig:"MOM_REQUEST_TIMEOUT" default:"120s"`
}

// ZoomConfig holds Zoom server-to-server OAuth credentials and endpoints
type ZoomConfig struct {
	ClientID     string        `envconfig:"ZOOM_CLIENT_ID"`
	ClientSecret string        `envconfig:"ZOOM_CLIENT_SECRET"`
	AccountID    string        `envconfig:"ZOOM_ACCOUNT_ID"`
	OAuthURL     string        `envconfig:"ZOOM_OAUTH_URL" default:"https://zoom.us/oauth/token"`
	APIBaseURL   string        `envconfig:"ZOOM_API_BASE_URL" default:"https://api.zoom.us/v2"`
	HTTPTimeout  time.Duration `envconfig:"ZOOM_HTTP_TIMEOUT" default:"30s"`
}

// TeamsConfig holds Azure AD application credentials
type TeamsConfig struct {
	TenantID     string `envconfig:"TENANT_ID"`
	ClientID     string `envconfig:"CLIENT_ID"`
	ClientSecret string `envconfig:"CLIENT_SECRET"`
}

// GoogleOAuthConfig holds Google OAuth configuration
type GoogleOAuthConfig struct {
	ClientID     string `envconfig:"GOOGLE_CLIENT_ID"`
	ClientSecret string `envconfig:"GOOGLE_CLIENT_SECRET"`
	RedirectURL  string `envconfig:"GOOGLE_REDIRECT_URI"`
	RefreshToken string `envconfig:"GOOGLE_REFRESH_TOKEN"`
}

// GenerationConfig holds generative backend configuration
type GenerationConfig struct {
	Backend string `envconfig:"GENERATION_BACKEND" default:"gemini"`
	// Timeout is the business deadline for one generation call.
	Timeout      time.Duration `envconfig:"MOM_GENERATION_TIMEOUT" default:"60s"`
	GeminiAPIKey string        `envconfig:"GEMINI_API_KEY"`
	GeminiModel  string        `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash"`
	// GeminiBaseURL overrides the SDK endpoint when set
	GeminiBaseURL string `envconfig:"GEMINI_API_URL"`
	GroqAPIKey    string `envconfig:"GROQ_API_KEY"`
	GroqBaseURL   string `envconfig:"GROQ_API_URL" default:"https://api.groq.com"`
	GroqModel     string `envconfig:"GROQ_MODEL" default:"llama-3.1-70b-versatile"`
}

// JWTConfig holds API token configuration. An empty secret disables auth.
type JWTConfig struct {
	AccessSecret string        `envconfig:"JWT_ACCESS_SECRET"`
	AccessExpiry time.Duration `envconfig:"JWT_ACCESS_EXPIRY" default:"24h"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	config, err := LoadEnv()
	if err != nil {
		return nil, err
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// LoadEnv reads configuration without validating it, for tools that only
// need part of it.
func LoadEnv() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Generation.Timeout <= 0 {
		return fmt.Errorf("MOM_GENERATION_TIMEOUT must be positive")
	}
	if c.Generation.Timeout >= c.Server.RequestTimeout {
		return fmt.Errorf("MOM_GENERATION_TIMEOUT (%s) must be shorter than MOM_REQUEST_TIMEOUT (%s)",
			c.Generation.Timeout, c.Server.RequestTimeout)
	}

	switch c.Generation.Backend {
	case BackendGemini:
		if c.Generation.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required")
		}
	case BackendGroq:
		if c.Generation.GroqAPIKey == "" {
			return fmt.Errorf("GROQ_API_KEY is required")
		}
	default:
		return fmt.Errorf("unsupported GENERATION_BACKEND %q", c.Generation.Backend)
	}

	return nil
}

// ZoomConfigured reports whether Zoom credentials are present
func (c *Config) ZoomConfigured() bool {
	return c.Zoom.ClientID != "" && c.Zoom.ClientSecret != "" && c.Zoom.AccountID != ""
}

// AuthEnabled reports whether the API group requires bearer tokens
func (c *Config) AuthEnabled() bool {
	return c.JWT.AccessSecret != ""
}

// GetServerAddr returns the listen address
func (c *Config) GetServerAddr() string {
	return net.JoinHostPort(c.Server.Host, c.Server.Port)
}
