package models

import "fmt"

// ErrorKind is the category of a page rendering failure.
type ErrorKind int

const (
	UnknownError ErrorKind = iota
	ConfigurationError
	ConnectionError
	ApiError
)

func (k ErrorKind) String() string {
	switch k {
	case ConfigurationError:
		return "ConfigurationError"
	case ConnectionError:
		return "ConnectionError"
	case ApiError:
		return "ApiError"
	default:
		return "UnknownError"
	}
}

// PageError is a terminal failure of one page render.
type PageError struct {
	Kind    ErrorKind
	Message string

	// Set for ApiError only.
	StatusCode int
	Body       string

	Err error
}

func (e *PageError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *PageError) Unwrap() error {
	return e.Err
}

func NewConfigurationError(message string) *PageError {
	return &PageError{Kind: ConfigurationError, Message: message}
}

func NewConnectionError(message string) *PageError {
	return &PageError{Kind: ConnectionError, Message: message}
}

func NewApiError(label string, statusCode int, body string, err error) *PageError {
	return &PageError{
		Kind:       ApiError,
		Message:    fmt.Sprintf("API Error (%s): %d - %s", label, statusCode, body),
		StatusCode: statusCode,
		Body:       body,
		Err:        err,
	}
}

// NewUnknownError wraps any other failure. A nil err yields a generic message.
func NewUnknownError(err error) *PageError {
	msg := "Unknown error occurred"
	if err != nil {
		msg = err.Error()
	}
	return &PageError{Kind: UnknownError, Message: msg, Err: err}
}
