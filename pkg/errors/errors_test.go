package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	err := New(ErrCodeInvalidKind, "unknown kind %d", 9)
	if got, want := err.Error(), "INVALID_KIND: unknown kind 9"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	cause := fmt.Errorf("boom")
	wrapped := Wrap(ErrCodeInvalidConfig, cause, "read %s", "a.toml")
	if got, want := wrapped.Error(), "INVALID_CONFIG: read a.toml: boom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(wrapped, cause) {
		t.Error("wrapped error should unwrap to its cause")
	}
}

func TestIsAndGetCode(t *testing.T) {
	base := New(ErrCodeGridTooSmall, "too small")
	chained := fmt.Errorf("generate: %w", base)

	if !Is(chained, ErrCodeGridTooSmall) {
		t.Error("Is should find code through fmt wrapping")
	}
	if Is(chained, ErrCodeInvalidKind) {
		t.Error("Is should not match a different code")
	}
	if GetCode(fmt.Errorf("plain")) != "" {
		t.Error("GetCode on plain error should be empty")
	}
	if GetCode(nil) != "" {
		t.Error("GetCode(nil) should be empty")
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"coded", New(ErrCodeInvalidInput, "bad width"), "bad width"},
		{"coded with cause", Wrap(ErrCodeNotFound, fmt.Errorf("no such file"), "open x"), "open x: no such file"},
		{"plain", fmt.Errorf("plain error"), "plain error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsLayoutFailure(t *testing.T) {
	if !IsLayoutFailure(New(ErrCodePlacementExhausted, "x")) {
		t.Error("PLACEMENT_EXHAUSTED is a layout failure")
	}
	if !IsLayoutFailure(fmt.Errorf("w: %w", New(ErrCodeGridTooSmall, "x"))) {
		t.Error("wrapped GRID_TOO_SMALL is a layout failure")
	}
	if IsLayoutFailure(New(ErrCodeInvalidKind, "x")) {
		t.Error("INVALID_KIND is not a layout failure")
	}
}
