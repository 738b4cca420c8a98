package model

import "fmt"

// ParseError reports a malformed relative time expression or a release
// identifier that does not encode a timestamp.
type ParseError struct {
	Value  string
	Reason string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("can not parse %q: %v", e.Value, e.Reason)
}

// ShellExecutionError reports a shell command that could not be run or
// exited non-zero.
type ShellExecutionError struct {
	Command string
	Err     error
}

func (e ShellExecutionError) Error() string {
	return fmt.Sprintf("shell command %q failed: %v", e.Command, e.Err)
}

func (e ShellExecutionError) Unwrap() error {
	return e.Err
}

// ConfigurationError reports an invalid option value.
type ConfigurationError struct {
	Option string
	Reason string
}

func (e ConfigurationError) Error() string {
	return fmt.Sprintf("invalid option %v: %v", e.Option, e.Reason)
}
