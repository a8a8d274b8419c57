package sshinfo

import (
	"errors"
	"fmt"
)

// ErrFormat matches every FormatError via errors.Is.
var ErrFormat = errors.New("invalid SSH info format")

var (
	ErrNoMatch                = errors.New("no user@host and port found")
	ErrMissingUserSeparator   = errors.New("missing user separator")
	ErrMultipleUserSeparators = errors.New("multiple user separators")
	ErrEmptyUser              = errors.New("user is empty")
	ErrEmptyHost              = errors.New("host is empty")
	ErrInvalidHost            = errors.New("invalid host")
	ErrInvalidPort            = errors.New("invalid port")
)

// FormatError reports input that cannot be turned into a ConnectionRecord.
type FormatError struct {
	Input  string
	Err    error
	Detail string
}

func (e *FormatError) Error() string {
	msg := fmt.Sprintf("invalid SSH info %q: %v", e.Input, e.Err)
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg + ". Use 'user@host -p port' or 'user@host:port'"
}

func (e *FormatError) Unwrap() error { return e.Err }

func (e *FormatError) Is(target error) bool { return target == ErrFormat }

func formatErr(input string, cause error, detail string) error {
	return &FormatError{Input: input, Err: cause, Detail: detail}
}
