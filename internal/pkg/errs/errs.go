// Package errs wraps cockroachdb/errors so the rest of the codebase has a
// single import for wrapping and sentinel marking. Mark ties an internal
// error to a public sentinel without losing the original chain; handlers
// match on the sentinel with errors.Is.
package errs

import (
	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}
