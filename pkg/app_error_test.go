package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("disk full")
	err := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if err.Error() != "INTERNAL_ERROR: An internal error occurred: disk full" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	body := err.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" {
		t.Fatalf("unexpected body %+v", body)
	}

	simple := NewDomainErrorSimple("NOT_FOUND", "Not found", http.StatusNotFound)
	if simple.HTTPStatus != http.StatusNotFound || simple.Unwrap() != nil {
		t.Fatalf("unexpected simple error %+v", simple)
	}
	if simple.Error() != "NOT_FOUND: Not found" {
		t.Fatalf("unexpected message %q", simple.Error())
	}
}
