package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"timeout", ErrTimeout, true},
		{"rate limited", ErrRateLimited, true},
		{"wrapped timeout", fmt.Errorf("request failed: %w", ErrTimeout), true},
		{"closed", ErrClosed, false},
		{"plain error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.want {
				t.Errorf("IsRetryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("chunk", "size", -1, "must be positive").
		WithHint("value must be greater than 0")

	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Error("ValidationError should match ErrInvalidConfiguration")
	}

	msg := err.Error()
	want := "chunk: size must be positive (got -1): value must be greater than 0"
	if msg != want {
		t.Errorf("got %q, want %q", msg, want)
	}

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatal("errors.As should extract *ValidationError")
	}
	if ve.Module != "chunk" || ve.Field != "size" {
		t.Errorf("unexpected module/field: %s/%s", ve.Module, ve.Field)
	}
}

func TestAggregateError(t *testing.T) {
	if NewAggregateError(nil) != nil {
		t.Error("empty error list should yield nil")
	}

	agg := NewAggregateError([]error{errors.New("a"), errors.New("b")})
	want := "[\n  \"a\",\n  \"b\"\n]"
	if agg.Error() != want {
		t.Errorf("got %q, want %q", agg.Error(), want)
	}
}

func TestAggregateErrorUnwrap(t *testing.T) {
	agg := NewAggregateError([]error{ErrTimeout, errors.New("b")})
	if !errors.Is(agg, ErrTimeout) {
		t.Error("aggregate should match a wrapped sentinel")
	}
}
