package handler

import (
	"context"
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/mom-generator/errors"
	"github.com/johnquangdev/mom-generator/internal/adapter/dto/common"
	ucerrors "github.com/johnquangdev/mom-generator/internal/usecase/errors"
	"github.com/johnquangdev/mom-generator/pkg/reqctx"
	pkgvalidator "github.com/johnquangdev/mom-generator/pkg/validator"
)

// getRequestID prefers the id RequestContext put on the request context and
// falls back to the headers.
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	if id := reqctx.GetRequestID(c.Request().Context()); id != "" {
		return id
	}
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

// HandleSuccess writes data as the 200 response body
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}

	return c.JSON(http.StatusOK, data)
}

// HandleError centralizes error handling and logging using provided logger
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	return handleScopedError(logger, c, err, errorScope{})
}

func handleScopedError(logger *zap.Logger, c echo.Context, err error, scope errorScope) error {
	var appErr errors.AppError
	if transportExpired(c) {
		appErr = errors.ErrRequestTimeout(err)
	} else {
		appErr = toAppError(err, scope)
	}

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Int("status", appErr.HTTPCode),
			zap.Any("app_code", appErr.Code),
			zap.Error(err),
		)
	}

	return c.JSON(appErr.HTTPCode, errorBody(appErr))
}

// transportExpired reports whether the request's own deadline has passed,
// in which case whatever failed downstream failed because of it
func transportExpired(c echo.Context) bool {
	return stdErrors.Is(c.Request().Context().Err(), context.DeadlineExceeded)
}

// errorScope names what a failing request was about, for error details
type errorScope struct {
	provider  string
	meetingID string
}

// toAppError maps use case errors onto API errors
func toAppError(err error, scope errorScope) errors.AppError {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr
	}

	switch {
	case stdErrors.Is(err, ucerrors.ErrInvalidInput):
		appErr = errors.ErrInvalidArgument(err.Error())
	case stdErrors.Is(err, ucerrors.ErrNotConfigured):
		appErr = errors.ErrNotConfigured(err)
	case stdErrors.Is(err, ucerrors.ErrProviderAuth):
		appErr = errors.ErrOAuthFailed(orDefault(scope.provider, "zoom"), err)
	case stdErrors.Is(err, ucerrors.ErrTranscriptNotFound):
		appErr = errors.ErrTranscriptNotFound(scope.meetingID, err)
	case stdErrors.Is(err, ucerrors.ErrTranscriptDownload):
		appErr = errors.ErrTranscriptDownloadFailed(scope.meetingID, err)
	case stdErrors.Is(err, ucerrors.ErrGenerationTimeout):
		appErr = errors.ErrGenerationTimeout(err)
	case stdErrors.Is(err, ucerrors.ErrEmptyGeneration):
		appErr = errors.ErrEmptyGeneration(err)
	case stdErrors.Is(err, ucerrors.ErrGenerationFailed):
		appErr = errors.ErrGenerationFailed(err)
	default:
		appErr = errors.ErrInternal(err)
	}
	return appErr
}

func errorBody(appErr errors.AppError) common.ErrorResponse {
	if appErr.Code == errors.ErrorCode_REQUEST_TIMEOUT {
		return common.ErrorResponse{Error: appErr.Message}
	}

	body := common.ErrorResponse{
		Error: appErr.Message,
		Hint:  appErr.Hint,
		Code:  appErr.Code.String(),
	}

	if appErr.Code == errors.ErrorCode_INVALID_ARGUMENT && appErr.Raw != nil {
		body.Details = pkgvalidator.Describe(appErr.Raw)
		return body
	}
	if appErr.Raw != nil {
		body.Message = appErr.Raw.Error()
	}
	if len(appErr.Details) > 0 {
		body.Details = appErr.Details
	}
	return body
}

// ErrorHandler renders errors that escape handlers (middleware rejections,
// unknown routes) in the same shape as HandleError.
func ErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var httpErr *echo.HTTPError
		if stdErrors.As(err, &httpErr) {
			msg := http.StatusText(httpErr.Code)
			if m, ok := httpErr.Message.(string); ok {
				msg = m
			}
			_ = c.JSON(httpErr.Code, common.ErrorResponse{Error: msg})
			return
		}

		_ = HandleError(logger, c, err)
	}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
