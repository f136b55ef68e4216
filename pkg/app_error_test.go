package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		body := e.ToHTTPError()
		if body.Code != "INVALID_REQUEST" || body.Message != "Invalid request" || body.Detail != "" {
			t.Fatalf("unexpected body: %+v", body)
		}
		if e.Error() != "INVALID_REQUEST: Invalid request" {
			t.Fatalf("unexpected error string: %s", e.Error())
		}
	})

	t.Run("wrapped", func(t *testing.T) {
		cause := errors.New("boom")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected the cause to be unwrapped")
		}
		if e.ToHTTPError().Detail != "boom" {
			t.Fatalf("expected cause as detail, got %q", e.ToHTTPError().Detail)
		}
	})

	t.Run("with details copies", func(t *testing.T) {
		base := NewDomainErrorSimple("X", "x", http.StatusBadGateway)
		withDetails := base.WithDetails("more")
		if base.Details != "" || withDetails.Details != "more" {
			t.Fatalf("expected a copy, got base=%q copy=%q", base.Details, withDetails.Details)
		}
	})
}
