package errors

import "errors"

// Common errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotConfigured = errors.New("not configured")
)

// Provider errors
var (
	ErrProviderAuth       = errors.New("provider token exchange failed")
	ErrTranscriptNotFound = errors.New("transcript not found")
	ErrTranscriptDownload = errors.New("transcript download failed")
)

// Generation errors
var (
	ErrGenerationTimeout = errors.New("minutes generation timed out")
	ErrEmptyGeneration   = errors.New("empty response from generation backend")
	ErrGenerationFailed  = errors.New("generation backend failed")
)
