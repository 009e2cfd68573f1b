package model

// ErrorResponse is the uniform error envelope for all endpoints.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Detail  string `json:"detail,omitempty"`
}

// NewErrorResponse creates an error envelope with an optional detail string.
func NewErrorResponse(message, detail string) ErrorResponse {
	return ErrorResponse{Success: false, Error: message, Detail: detail}
}
