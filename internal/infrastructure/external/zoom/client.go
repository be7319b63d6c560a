package zoom

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/mom-generator/internal/domain/entities"
	"github.com/johnquangdev/mom-generator/internal/infrastructure/metrics"
	ucerrors "github.com/johnquangdev/mom-generator/internal/usecase/errors"
	"github.com/johnquangdev/mom-generator/pkg/reqctx"
)

const provider = "zoom"

// maxErrorBody caps how much of a failed response body ends up in errors
const maxErrorBody = 4 << 10

// Client talks to the Zoom OAuth and REST APIs
type Client struct {
	oauthURL   string
	apiBaseURL string
	httpClient *http.Client
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// Options configures a Client
type Options struct {
	OAuthURL   string
	APIBaseURL string
	Timeout    time.Duration
	HTTPClient *http.Client
	Metrics    *metrics.Metrics
	Logger     *zap.Logger
}

// NewClient creates a Zoom client
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		oauthURL:   opts.OAuthURL,
		apiBaseURL: strings.TrimRight(opts.APIBaseURL, "/"),
		httpClient: httpClient,
		metrics:    opts.Metrics,
		logger:     logger,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type recordingsResponse struct {
	RecordingFiles []entities.RecordingAsset `json:"recording_files"`
}

// AccessToken exchanges account credentials for a bearer token
// (server-to-server OAuth, grant_type=account_credentials). The token is
// not cached.
func (c *Client) AccessToken(ctx context.Context, creds entities.ZoomCredentials) (string, error) {
	q := url.Values{}
	q.Set("grant_type", "account_credentials")
	q.Set("account_id", creds.AccountID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.oauthURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build token request: %w", err)
	}
	req.SetBasicAuth(creds.ClientID, creds.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, status, err := c.do(req, "token")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ucerrors.ErrProviderAuth, err)
	}
	if !isSuccess(status) {
		return "", fmt.Errorf("%w: token endpoint returned %d: %s", ucerrors.ErrProviderAuth, status, truncate(body))
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return "", fmt.Errorf("%w: failed to decode token response: %v", ucerrors.ErrProviderAuth, err)
	}
	if tr.AccessToken == "" {
		return "", fmt.Errorf("%w: missing access_token", ucerrors.ErrProviderAuth)
	}

	return tr.AccessToken, nil
}

// ListRecordings returns the recording assets of a meeting in provider order
func (c *Client) ListRecordings(ctx context.Context, meetingID, token string) ([]entities.RecordingAsset, error) {
	endpoint := c.apiBaseURL + "/meetings/" + escapeSegment(meetingID) + "/recordings"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build recordings request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	body, status, err := c.do(req, "recordings")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ucerrors.ErrTranscriptNotFound, err)
	}
	if !isSuccess(status) {
		return nil, fmt.Errorf("%w: recordings endpoint returned %d: %s", ucerrors.ErrTranscriptNotFound, status, truncate(body))
	}

	var rr recordingsResponse
	if err := json.Unmarshal(body, &rr); err != nil {
		return nil, fmt.Errorf("%w: failed to decode recordings: %v", ucerrors.ErrTranscriptNotFound, err)
	}

	return rr.RecordingFiles, nil
}

// Download fetches an asset body with bearer auth
func (c *Client) Download(ctx context.Context, downloadURL, token string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, downloadURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: invalid download url: %v", ucerrors.ErrTranscriptDownload, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	body, status, err := c.do(req, "download")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ucerrors.ErrTranscriptDownload, err)
	}
	if !isSuccess(status) {
		return "", fmt.Errorf("%w: download returned %d: %s", ucerrors.ErrTranscriptDownload, status, truncate(body))
	}

	return string(body), nil
}

// do executes req and reads the whole body
func (c *Client) do(req *http.Request, operation string) ([]byte, int, error) {
	started := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveUpstream(provider, operation, 0, started)
		c.logger.Warn("zoom.request.failed",
			append(reqctx.Fields(req.Context()),
				zap.String("zoom_operation", operation),
				zap.Error(err),
			)...,
		)
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	c.metrics.ObserveUpstream(provider, operation, resp.StatusCode, started)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug("zoom.request.done",
		append(reqctx.Fields(req.Context()),
			zap.String("zoom_operation", operation),
			zap.Int("status", resp.StatusCode),
			zap.Duration("latency", time.Since(started)),
		)...,
	)

	return body, resp.StatusCode, nil
}

// escapeSegment percent-encodes a path segment the way Zoom expects meeting
// UUIDs, which may contain '/', '+' and '='.
func escapeSegment(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func truncate(body []byte) string {
	if len(body) > maxErrorBody {
		return string(body[:maxErrorBody]) + "..."
	}
	return string(body)
}
