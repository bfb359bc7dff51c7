// Package errors is our internal errors package. It should be used in place of the standard "errors" package,
// "golang.org/x/xerrors", or "fmt.Errorf".
// This package ensures that all errors have a correct category & collect stack-traces.
package errors

import "golang.org/x/xerrors"

// ConfigurationError represent a configuration error. When used, it should ideally also point towards the configuration
// value that caused this error to occur.
type ConfigurationError struct {
	E error
}

// NewConfigurationError returns a new ConfigurationError
func NewConfigurationError(msg string, a ...any) ConfigurationError {
	return ConfigurationError{E: xerrors.Errorf(msg, a...)}
}

// AsConfigurationError checks whether the error is a configuration error
func AsConfigurationError(err error) (ConfigurationError, bool) {
	var e ConfigurationError
	ok := As(err, &e)
	return e, ok
}

// Error returns the error message of this error
func (e ConfigurationError) Error() string {
	return e.E.Error()
}

func (e ConfigurationError) Unwrap() error {
	return e.E
}

// ExecutionError is an error that was encountered during the execution of a different task. Specifically, this is being
// used when a script exits with a non-zero exit code. It is also the vehicle that carries an exit code out of the
// command tree and into `main`.
type ExecutionError struct {
	E    error
	Code int
}

// NewExecutionError returns a new ExecutionError
func NewExecutionError(code int, msg string, a ...any) ExecutionError {
	return ExecutionError{Code: code, E: xerrors.Errorf(msg, a...)}
}

// AsExecutionError checks whether the error is an execution error.
func AsExecutionError(err error) (ExecutionError, bool) {
	var e ExecutionError
	ok := As(err, &e)
	return e, ok
}

// Error returns the error message of this error
func (e ExecutionError) Error() string {
	return e.E.Error()
}

func (e ExecutionError) Unwrap() error {
	return e.E
}

// InternalError is an internal error. This error type should only be used if an end-user cannot act upon it.
type InternalError struct {
	E error
}

// NewInternalError returns a new InternalError
func NewInternalError(msg string, a ...any) InternalError {
	return InternalError{E: xerrors.Errorf(msg, a...)}
}

// AsInternalError checks whether the error is an internal error
func AsInternalError(err error) (InternalError, bool) {
	var e InternalError
	ok := As(err, &e)
	return e, ok
}

// Error returns the error message of this error
func (e InternalError) Error() string {
	return e.E.Error()
}

func (e InternalError) Unwrap() error {
	return e.E
}

// NotFoundError is returned when a script (or the shell used to run it) does not exist.
type NotFoundError struct {
	E    error
	Path string
}

// NewNotFoundError returns a new NotFoundError for the given path
func NewNotFoundError(path string, msg string, a ...any) NotFoundError {
	return NotFoundError{Path: path, E: xerrors.Errorf(msg, a...)}
}

// AsNotFoundError checks whether the error is a not-found error
func AsNotFoundError(err error) (NotFoundError, bool) {
	var e NotFoundError
	ok := As(err, &e)
	return e, ok
}

// Error returns the error message of this error
func (e NotFoundError) Error() string {
	return e.E.Error()
}

func (e NotFoundError) Unwrap() error {
	return e.E
}

// SystemError is returned when the CLI encountered a system error. This is most likely an error while spawning a
// sub-process or while accessing the file-system.
type SystemError struct {
	E error
}

// NewSystemError returns a new SystemError
func NewSystemError(msg string, a ...any) SystemError {
	return SystemError{E: xerrors.Errorf(msg, a...)}
}

// AsSystemError checks whether the error is a system error
func AsSystemError(err error) (SystemError, bool) {
	var e SystemError
	ok := As(err, &e)
	return e, ok
}

// Error returns the error message of this error
func (e SystemError) Error() string {
	return e.E.Error()
}

func (e SystemError) Unwrap() error {
	return e.E
}
