package errors

import (
	"fmt"
	"net/http"
	"time"
)

// AppError là custom error type cho application
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Hint      string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the underlying cause to errors.Is / errors.As
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithHint attaches a remediation hint shown to API callers
func (e AppError) WithHint(hint string) AppError {
	e.Hint = hint
	return e
}

// General Errors
func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

func ErrValidationFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  "Validation failed",
	}
}

func ErrUnauthenticated() AppError {
	return AppError{
		HTTPCode: http.StatusUnauthorized,
		Code:     ErrorCode_UNAUTHENTICATED,
		Message:  "Authentication required",
	}
}

func ErrNotConfigured(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusServiceUnavailable,
		Code:     ErrorCode_NOT_CONFIGURED,
		Message:  "Integration is not configured",
	}
}

// ErrRequestTimeout is the transport deadline of a request firing before
// the handler produced an answer
func ErrRequestTimeout(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusServiceUnavailable,
		Code:     ErrorCode_REQUEST_TIMEOUT,
		Message:  "Request socket timed out",
	}
}

// Authentication Errors
func ErrInvalidToken() AppError {
	return AppError{
		HTTPCode: http.StatusUnauthorized,
		Code:     ErrorCode_AUTH_INVALID_TOKEN,
		Message:  "Invalid authentication token",
	}
}

func ErrOAuthFailed(provider string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_AUTH_OAUTH_FAILED,
		Message:  fmt.Sprintf("OAuth token exchange failed with %s", provider),
	}.WithDetail("provider", provider)
}

// Transcript Errors
func ErrTranscriptNotFound(meetingID string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_TRANSCRIPT_NOT_FOUND,
		Message:  "Transcript not found",
	}.WithDetail("meeting_id", meetingID)
}

func ErrTranscriptDownloadFailed(meetingID string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_TRANSCRIPT_DOWNLOAD_FAILED,
		Message:  "Failed to download transcript",
	}.WithDetail("meeting_id", meetingID)
}

// AI Generation Errors
func ErrGenerationTimeout(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusGatewayTimeout,
		Code:     ErrorCode_AI_GENERATION_TIMEOUT,
		Message:  "Gateway Timeout",
		Hint:     "Try reducing input size or increasing the timeout.",
	}
}

func ErrEmptyGeneration(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_AI_EMPTY_RESPONSE,
		Message:  "Received an empty response from the generation backend",
	}
}

func ErrGenerationFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_AI_SERVICE_FAILED,
		Message:  "Minutes generation failed",
	}
}
