package common

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error   string      `json:"error"`
	Message string      `json:"message,omitempty"`
	Hint    string      `json:"hint,omitempty"`
	Code    string      `json:"code,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
}
