package errors

// ErrorCode identifies an application error in API responses
type ErrorCode int

const (
	ErrorCode_HTTP_OK          ErrorCode = 0
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_UNAUTHENTICATED  ErrorCode = 1003
	ErrorCode_NOT_CONFIGURED   ErrorCode = 1005
	ErrorCode_REQUEST_TIMEOUT  ErrorCode = 1006

	ErrorCode_AUTH_INVALID_TOKEN ErrorCode = 2001
	ErrorCode_AUTH_OAUTH_FAILED  ErrorCode = 2002

	ErrorCode_TRANSCRIPT_NOT_FOUND       ErrorCode = 3001
	ErrorCode_TRANSCRIPT_DOWNLOAD_FAILED ErrorCode = 3002

	ErrorCode_AI_GENERATION_TIMEOUT ErrorCode = 4001
	ErrorCode_AI_EMPTY_RESPONSE     ErrorCode = 4002
	ErrorCode_AI_SERVICE_FAILED     ErrorCode = 4003
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                    "HTTP_OK",
	ErrorCode_INTERNAL:                   "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:           "INVALID_ARGUMENT",
	ErrorCode_UNAUTHENTICATED:            "UNAUTHENTICATED",
	ErrorCode_NOT_CONFIGURED:             "NOT_CONFIGURED",
	ErrorCode_REQUEST_TIMEOUT:            "REQUEST_TIMEOUT",
	ErrorCode_AUTH_INVALID_TOKEN:         "AUTH_INVALID_TOKEN",
	ErrorCode_AUTH_OAUTH_FAILED:          "AUTH_OAUTH_FAILED",
	ErrorCode_TRANSCRIPT_NOT_FOUND:       "TRANSCRIPT_NOT_FOUND",
	ErrorCode_TRANSCRIPT_DOWNLOAD_FAILED: "TRANSCRIPT_DOWNLOAD_FAILED",
	ErrorCode_AI_GENERATION_TIMEOUT:      "AI_GENERATION_TIMEOUT",
	ErrorCode_AI_EMPTY_RESPONSE:          "AI_EMPTY_RESPONSE",
	ErrorCode_AI_SERVICE_FAILED:          "AI_SERVICE_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

// MarshalText renders the symbolic name in JSON bodies
func (c ErrorCode) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
