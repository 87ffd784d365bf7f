package handlers

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"that item already exists"`
} // @name ErrorResponse

// ValidationErrorResponse is returned when request fields fail validation.
type ValidationErrorResponse struct {
	Error  string            `json:"error"  example:"Validation failed"`
	Fields map[string]string `json:"fields"`
} // @name ValidationErrorResponse
