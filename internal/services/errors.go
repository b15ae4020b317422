package service

import "log/slog"

// stepError is a failed step of a runner-wrapped action. Its text is the
// message shown to the user; the underlying cause stays reachable through
// errors.Is and errors.As.
type stepError struct {
	msg   string
	cause error
}

func (e *stepError) Error() string {
	return e.msg
}

func (e *stepError) Unwrap() error {
	return e.cause
}

func failStep(msg string, cause error) error {
	slog.Warn(msg, "error", cause)
	return &stepError{msg: msg, cause: cause}
}
