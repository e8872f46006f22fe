package models

// RootResponse is returned by GET /
type RootResponse struct {
	Message     string `json:"message"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the body of every error produced by the application itself
type ErrorResponse struct {
	Detail string `json:"detail"`               // Human-readable reason
	Error  string `json:"error,omitempty"`      // Panic value, debug mode only
	Stack  string `json:"stack,omitempty"`      // Stack trace, debug mode only
	ID     string `json:"request_id,omitempty"` // Correlates with the request log line
}
