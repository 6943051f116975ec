package pipeline

import "fmt"

// InputError marks a validation failure caused by the caller's request.
// Handlers map it to a 400 response; no partial work happened.
type InputError struct {
	Message string
}

func (e *InputError) Error() string { return e.Message }

func inputErrorf(format string, args ...interface{}) *InputError {
	return &InputError{Message: fmt.Sprintf(format, args...)}
}

// ProcessingError marks a server-side failure (transcoder exhausted, record
// not persisted). Handlers map it to a 500 response.
type ProcessingError struct {
	Message string
	Err     error
}

func (e *ProcessingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ProcessingError) Unwrap() error { return e.Err }

func processingErrorf(err error, format string, args ...interface{}) *ProcessingError {
	return &ProcessingError{Message: fmt.Sprintf(format, args...), Err: err}
}
