package commands

import (
	"context"
	"errors"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	goerrors "github.com/goliatone/go-errors"
)

type toggleMessage struct{}

func (toggleMessage) Type() string { return "portfolio.test.toggle" }

func (toggleMessage) Validate() error { return nil }

type rejectedMessage struct{}

func (rejectedMessage) Type() string { return "portfolio.test.rejected" }

func (rejectedMessage) Validate() error { return errors.New("rejected") }

type fieldErrorMessage struct{}

func (fieldErrorMessage) Type() string { return "portfolio.test.fields" }

func (fieldErrorMessage) Validate() error {
	return validation.Errors{
		"slug": validation.NewError("portfolio.test.slug_required", "slug is required"),
	}
}

func TestHandlerExecuteSuccess(t *testing.T) {
	called := false
	h := NewHandler[toggleMessage](func(ctx context.Context, msg toggleMessage) error {
		called = true
		return nil
	})

	if err := h.Execute(context.Background(), toggleMessage{}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !called {
		t.Fatal("expected handler to be invoked")
	}
}

func TestHandlerRejectsInvalidMessage(t *testing.T) {
	called := false
	h := NewHandler[rejectedMessage](func(ctx context.Context, msg rejectedMessage) error {
		called = true
		return nil
	})

	err := h.Execute(context.Background(), rejectedMessage{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
	if called {
		t.Fatal("expected handler not to run when validation fails")
	}
}

func TestHandlerPreservesFieldKeyedValidationErrors(t *testing.T) {
	h := NewHandler[fieldErrorMessage](func(ctx context.Context, msg fieldErrorMessage) error {
		return nil
	})

	err := h.Execute(context.Background(), fieldErrorMessage{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("expected field-keyed errors to pass through, got %v", err)
	}
	if _, ok := fieldErrs["slug"]; !ok {
		t.Fatalf("expected slug field error, got %v", fieldErrs)
	}
}

func TestHandlerWrapsExecutionFailure(t *testing.T) {
	h := NewHandler[toggleMessage](func(ctx context.Context, msg toggleMessage) error {
		return errors.New("boom")
	})

	err := h.Execute(context.Background(), toggleMessage{})
	if err == nil {
		t.Fatal("expected execution error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

func TestHandlerRejectsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	h := NewHandler[toggleMessage](func(ctx context.Context, msg toggleMessage) error {
		called = true
		return nil
	})

	err := h.Execute(ctx, toggleMessage{})
	if err == nil {
		t.Fatal("expected context cancellation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
	if called {
		t.Fatal("expected handler not to run on canceled context")
	}
}
