package errors

// Response is the envelope returned by every API endpoint.
type Response struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    interface{}  `json:"data,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
	Error   string       `json:"error,omitempty"`
}

// FieldError describes a single validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// OK builds a success envelope.
func OK(message string, data interface{}) Response {
	return Response{Success: true, Message: message, Data: data}
}

// Fail builds a failure envelope with a message only.
func Fail(message string) Response {
	return Response{Success: false, Message: message}
}

// Validation builds the 400 envelope carrying field errors.
func Validation(fieldErrors []FieldError) Response {
	return Response{Success: false, Message: "Validation errors", Errors: fieldErrors}
}

// Internal builds the 500 envelope, exposing the underlying error text.
func Internal(message string, err error) Response {
	return Response{Success: false, Message: message, Error: err.Error()}
}
