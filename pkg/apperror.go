package pkg

import "fmt"

// AppError is the structured error surfaced at the HTTP edge. Internal
// causes stay in Err for logging; only Code and Message reach clients.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewDomainError wraps an internal cause with a client-safe code and message.
func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

// NewDomainErrorSimple builds an AppError with no underlying cause.
func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// HTTPError is the JSON body rendered for failed requests.
type HTTPError struct {
	Success bool          `json:"success"`
	Error   HTTPErrorBody `json:"error"`
}

type HTTPErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ToHTTPError converts the AppError into its wire representation. The
// internal cause is intentionally dropped.
func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{
		Success: false,
		Error:   HTTPErrorBody{Code: e.Code, Message: e.Message},
	}
}
