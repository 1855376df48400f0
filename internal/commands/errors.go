package commands

import (
	"context"
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached to command errors. API handlers and log filters key off
// them to tell a rejected message apart from a failed side effect.
const (
	CodeRejected = "PORTFOLIO_COMMAND_REJECTED"
	CodeCanceled = "PORTFOLIO_COMMAND_CANCELED"
	CodeTimedOut = "PORTFOLIO_COMMAND_TIMED_OUT"
	CodeFailed   = "PORTFOLIO_COMMAND_FAILED"
)

// wrapValidationError tags a rejected message. Field-keyed ozzo errors pass
// through untouched so callers can still render per-field messages.
func wrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		return err
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "command message rejected").
		WithTextCode(CodeRejected)
}

func wrapContextError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "command timed out").
			WithTextCode(CodeTimedOut)
	default:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "command canceled").
			WithTextCode(CodeCanceled)
	}
}

func wrapExecuteError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "command execution failed").
		WithTextCode(CodeFailed)
}
