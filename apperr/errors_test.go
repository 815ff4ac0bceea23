package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want int
	}{
		{"business", Business(CodeOrderInvalidType, "bad type"), http.StatusBadRequest},
		{"not found", NotFound(CodeCylindersNotFound, "none"), http.StatusNotFound},
		{"conflict", Conflict(CodeUserExists, "taken"), http.StatusConflict},
		{"forbidden", Forbidden(CodeAccessDenied, "no"), http.StatusForbidden},
		{"unauthenticated", Unauthenticated(CodeTokenMissing, "who"), http.StatusUnauthorized},
		{"internal", Internal(errors.New("boom")), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.HTTPStatus(); got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestFrom(t *testing.T) {
	if From(nil) != nil {
		t.Error("Expected nil for nil error")
	}

	biz := Business(CodeOrderInvalidType, "bad type")
	wrapped := fmt.Errorf("create order: %w", biz)
	if got := From(wrapped); got != biz {
		t.Errorf("Expected wrapped fault to be unwrapped, got %v", got)
	}

	cause := errors.New("disk full")
	got := From(cause)
	if got.Kind != KindInternal || got.Code != CodeInternal {
		t.Errorf("Expected internal fault, got %+v", got)
	}
	if !errors.Is(got, cause) {
		t.Error("Expected internal fault to keep its cause")
	}
	if got.Message != MessageInternal {
		t.Errorf("Expected generic message, got %q", got.Message)
	}
}

func TestHasCode(t *testing.T) {
	err := fmt.Errorf("wrap: %w", Forbidden(CodeAccessDenied, "no"))
	if !HasCode(err, CodeAccessDenied) {
		t.Error("Expected code to match through wrapping")
	}
	if HasCode(err, CodeTokenMissing) {
		t.Error("Expected other code not to match")
	}
	if HasCode(errors.New("plain"), CodeInternal) {
		t.Error("Expected plain error to carry no code")
	}
}

func TestErrorString(t *testing.T) {
	e := Business(CodeOrderInvalidType, "bad type")
	if e.Error() != CodeOrderInvalidType+": bad type" {
		t.Errorf("Unexpected message %q", e.Error())
	}
	if KindForbidden.String() != "forbidden" || Kind(99).String() != "internal" {
		t.Error("Unexpected kind names")
	}
}
