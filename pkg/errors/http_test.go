package errors

import (
	"fmt"
	"net/http"
	"testing"
)

func TestAsHTTPError(t *testing.T) {
	base := NewHTTPError(http.StatusNotFound, "event not found")
	wrapped := fmt.Errorf("handler: %w", base)

	got, ok := AsHTTPError(wrapped)
	if !ok {
		t.Fatalf("expected wrapped HTTPError to unwrap")
	}
	if got.StatusCode() != http.StatusNotFound || got.Error() != "event not found" {
		t.Errorf("unexpected HTTPError: %+v", got)
	}

	if _, ok := AsHTTPError(fmt.Errorf("plain")); ok {
		t.Errorf("plain error must not unwrap to HTTPError")
	}
}

func TestHTTPError_StatusCode(t *testing.T) {
	tests := []struct {
		code int
		want int
	}{
		{code: 400, want: 400},
		{code: 503, want: 503},
		{code: 0, want: 500},
		{code: 1000, want: 500},
	}
	for _, tt := range tests {
		if got := NewHTTPError(tt.code, "x").StatusCode(); got != tt.want {
			t.Errorf("StatusCode(%d) = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestNewBadRequest(t *testing.T) {
	err := NewBadRequest("month %d out of range", 13)
	if err.Code != http.StatusBadRequest || err.Message != "month 13 out of range" {
		t.Errorf("unexpected error: %+v", err)
	}
}
