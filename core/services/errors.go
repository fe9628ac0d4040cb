package services

import "fmt"

type ErrKind int

const (
	// ErrKindValidation covers user-correctable upload problems: bad
	// MIME type or oversize payload.
	ErrKindValidation ErrKind = iota
	// ErrKindDecode means the bytes are not a valid image of the
	// declared type.
	ErrKindDecode
	// ErrKindInference means the model forward pass itself failed.
	ErrKindInference
)

// PredictError is the single error type crossing the service boundary.
// Controllers map Kind to an HTTP status and surface Error() to the
// caller as-is.
type PredictError struct {
	Kind ErrKind
	msg  string
	err  error
}

func (e *PredictError) Error() string {
	return e.msg
}

func (e *PredictError) Unwrap() error {
	return e.err
}

func validationErr(format string, args ...any) *PredictError {
	return &PredictError{Kind: ErrKindValidation, msg: fmt.Sprintf(format, args...)}
}

func decodeErr(err error, format string, args ...any) *PredictError {
	return &PredictError{Kind: ErrKindDecode, msg: fmt.Sprintf(format, args...), err: err}
}

func inferenceErr(err error, format string, args ...any) *PredictError {
	return &PredictError{Kind: ErrKindInference, msg: fmt.Sprintf(format, args...), err: err}
}
