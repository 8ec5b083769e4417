package models

// SignupResponse is the body returned by POST /api/signup on success.
type SignupResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}

// SigninResponse is the body returned by POST /api/signin on success.
//
// AccessToken is omitted when the deployment runs with token issuance
// disabled; clients must treat its absence as "session-less profile".
type SigninResponse struct {
	Message     string `json:"message"`
	UserID      int64  `json:"user_id"`
	AccessToken string `json:"access_token,omitempty"`
	TokenType   string `json:"token_type,omitempty"`
}

// RecordResponse is the body returned after a successful generic insert.
type RecordResponse struct {
	ID int64 `json:"id"`
}

// HealthResponse is the body returned by the root health check endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ErrorResponse is the uniform error body returned by all handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}
