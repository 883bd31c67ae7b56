package dto

// ErrorResponse represents a standardized error response for the API.
// Field names the offending request field when the error is a validation one.
type ErrorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}
