package event

import (
	"errors"
	"fmt"
	"testing"
)

func TestInvalidArgumentError(t *testing.T) {
	t.Run("with argument", func(t *testing.T) {
		err := NewInvalidArgumentError("name", "expected non-empty string")

		expected := `invalid argument "name": expected non-empty string`
		if err.Error() != expected {
			t.Errorf("Error() = %q, expected %q", err.Error(), expected)
		}

		if !errors.Is(err, ErrInvalidArgument) {
			t.Error("errors.Is(err, ErrInvalidArgument) = false, expected true")
		}

		var argErr *InvalidArgumentError
		if !errors.As(err, &argErr) {
			t.Fatal("errors.As failed to extract InvalidArgumentError")
		}
		if argErr.Argument != "name" {
			t.Errorf("Argument = %q, expected %q", argErr.Argument, "name")
		}
	})

	t.Run("without argument", func(t *testing.T) {
		err := NewInvalidArgumentError("", "bad")

		expected := "invalid argument: bad"
		if err.Error() != expected {
			t.Errorf("Error() = %q, expected %q", err.Error(), expected)
		}
	})

	t.Run("wrapped", func(t *testing.T) {
		err := fmt.Errorf("register: %w", NewInvalidArgumentError("listener", "nil"))
		if !IsInvalidArgument(err) {
			t.Error("IsInvalidArgument(wrapped) = false, expected true")
		}
	})
}

func TestDispatchError(t *testing.T) {
	cause := errors.New("listener failed")
	err := &DispatchError{Event: "before-add", Err: cause}

	expected := "error firing event before-add: listener failed"
	if err.Error() != expected {
		t.Errorf("Error() = %q, expected %q", err.Error(), expected)
	}
	if !errors.Is(err, ErrDispatch) {
		t.Error("errors.Is(err, ErrDispatch) = false, expected true")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, expected true")
	}
	if IsInvalidArgument(err) {
		t.Error("IsInvalidArgument(err) = true, expected false")
	}
}

func TestIsAlreadyStopped(t *testing.T) {
	if !IsAlreadyStopped(fmt.Errorf("stop: %w", ErrAlreadyStopped)) {
		t.Error("IsAlreadyStopped(wrapped) = false, expected true")
	}
	if IsAlreadyStopped(ErrDispatch) {
		t.Error("IsAlreadyStopped(ErrDispatch) = true, expected false")
	}
}
