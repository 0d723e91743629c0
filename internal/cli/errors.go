package cli

import (
	"errors"
	"fmt"
)

// exitError carries the process exit code for a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// userErrorf reports a problem with the caller's input, including a record
// that does not exist.
func userErrorf(format string, args ...any) error {
	return &exitError{code: exitUserError, err: fmt.Errorf(format, args...)}
}

// sysError reports a failure of the store or the environment.
func sysError(err error) error {
	return &exitError{code: exitSysError, err: err}
}

// exitCode maps an error returned by a command to a process exit code.
// Errors raised by cobra itself (unknown flags, wrong arg counts) are user
// errors.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}

// notFound is the user error for an absent single-record lookup.
func notFound(kind string, id any) error {
	return userErrorf("%s %v not found", kind, id)
}
