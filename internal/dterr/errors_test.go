package dterr

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorFormat(t *testing.T) {
	err := New(ErrUnknownFormat, "unable to parse timestamp").WithInput("not-a-date")

	got := err.Error()
	if !strings.HasPrefix(got, "[E1001] unable to parse timestamp") {
		t.Errorf("Error() = %q, want [E1001] prefix", got)
	}
	if !strings.Contains(got, "input: not-a-date") {
		t.Errorf("Error() = %q, want input context line", got)
	}
}

func TestErrorContextSorted(t *testing.T) {
	err := New(ErrUsage, "bad invocation").
		With("zeta", 1).
		With("alpha", 2)

	got := err.Error()
	if strings.Index(got, "alpha") > strings.Index(got, "zeta") {
		t.Errorf("context keys not sorted: %q", got)
	}
}

func TestWrapAndUnwrap(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := Wrap(ErrBadTimestamp, cause, "timestamp argument must be an integer")

	if !errors.Is(err, cause) {
		t.Error("wrapped cause not reachable via errors.Is")
	}
	if !strings.Contains(err.Error(), "cause: boom") {
		t.Errorf("Error() = %q, want cause line", err.Error())
	}

	if got := Wrap(ErrBadTimestamp, nil, "no cause"); got.Unwrap() != nil {
		t.Error("Wrap(nil) should have no cause")
	}
}

func TestCodeMatching(t *testing.T) {
	err := New(ErrUnknownFormat, "nope")

	// Same code matches through errors.Is regardless of message
	if !errors.Is(err, New(ErrUnknownFormat, "different message")) {
		t.Error("errors with the same code should match")
	}
	if errors.Is(err, New(ErrUsage, "nope")) {
		t.Error("errors with different codes should not match")
	}

	if !Is(err, ErrUnknownFormat) {
		t.Error("Is(err, ErrUnknownFormat) = false")
	}
	if got := GetErrorCode(err); got != ErrUnknownFormat {
		t.Errorf("GetErrorCode() = %q, want %q", got, ErrUnknownFormat)
	}
	if got := GetErrorCode(fmt.Errorf("plain")); got != "" {
		t.Errorf("GetErrorCode(plain) = %q, want empty", got)
	}
	if got := GetErrorCode(nil); got != "" {
		t.Errorf("GetErrorCode(nil) = %q, want empty", got)
	}
}

func TestWrappedCodeExtraction(t *testing.T) {
	inner := New(ErrUnknownFormat, "inner")
	outer := fmt.Errorf("outer: %w", inner)

	if got := GetErrorCode(outer); got != ErrUnknownFormat {
		t.Errorf("GetErrorCode(wrapped) = %q, want %q", got, ErrUnknownFormat)
	}
}

func TestInput(t *testing.T) {
	err := New(ErrUnknownFormat, "nope")
	if _, ok := err.Input(); ok {
		t.Error("Input() should report absence before WithInput")
	}

	err.WithInput("raw")
	if input, ok := err.Input(); !ok || input != "raw" {
		t.Errorf("Input() = %q, %v, want \"raw\", true", input, ok)
	}
}

func TestNewf(t *testing.T) {
	err := Newf(ErrUsage, "got %d arguments", 3)
	if got := err.GetMessage(); got != "got 3 arguments" {
		t.Errorf("GetMessage() = %q", got)
	}
}
