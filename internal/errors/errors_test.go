package errors_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	appErrors "Caixa/internal/errors"

	"github.com/go-playground/validator/v10"
)

func TestWithErrorDoesNotMutateSentinel(t *testing.T) {
	cause := errors.New("connection refused")
	wrapped := appErrors.ErrDatabase.WithError(cause)

	if appErrors.ErrDatabase.Err != nil {
		t.Fatalf("sentinel must stay untouched")
	}
	if !errors.Is(wrapped, cause) {
		t.Fatalf("expected wrapped error to unwrap to cause")
	}
}

func TestFromError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{
			name:       "app error passes through",
			err:        appErrors.ErrMissingPeriod,
			wantCode:   "MISSING_PERIOD",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "wrapped app error is found",
			err:        fmt.Errorf("listing: %w", appErrors.NewDatabaseError(errors.New("boom"))),
			wantCode:   "DATABASE_ERROR",
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "context canceled",
			err:        context.Canceled,
			wantCode:   "REQUEST_CANCELED",
			wantStatus: http.StatusRequestTimeout,
		},
		{
			name:       "plain error",
			err:        errors.New("boom"),
			wantCode:   "UNKNOWN_ERROR",
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := appErrors.FromError(tt.err)
			if got.Code != tt.wantCode || got.StatusCode != tt.wantStatus {
				t.Fatalf("expected %s/%d, got %s/%d", tt.wantCode, tt.wantStatus, got.Code, got.StatusCode)
			}
		})
	}
}

func TestIsClientError(t *testing.T) {
	if !appErrors.IsClientError(appErrors.NewValidationError("title", "é obrigatório")) {
		t.Fatalf("validation error must be a client error")
	}
	if appErrors.IsClientError(appErrors.ErrTransactionNotFound) {
		t.Fatalf("not found must be reported as a backend failure")
	}
	if appErrors.IsClientError(errors.New("boom")) {
		t.Fatalf("plain errors are never client errors")
	}
}

func TestParseValidationErrors(t *testing.T) {
	type payload struct {
		Title    string `validate:"required"`
		Category string `validate:"required"`
	}

	err := validator.New().Struct(payload{})
	appErr := appErrors.ParseValidationErrors(err)

	if appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected VALIDATION_ERROR, got %s", appErr.Code)
	}
	fields, ok := appErr.Details["fields"].([]map[string]string)
	if !ok || len(fields) != 2 {
		t.Fatalf("expected two field errors, got %#v", appErr.Details["fields"])
	}
	if fields[0]["field"] != "título" || fields[0]["message"] != "título é obrigatório" {
		t.Fatalf("unexpected translation: %#v", fields[0])
	}
}

func TestNewValidationErrorUsesFieldsShape(t *testing.T) {
	appErr := appErrors.NewValidationError("id", "formato inválido")

	fields, ok := appErr.Details["fields"].([]map[string]string)
	if !ok || len(fields) != 1 {
		t.Fatalf("expected a single field error, got %#v", appErr.Details)
	}
	if fields[0]["field"] != "id" || fields[0]["message"] != "formato inválido" {
		t.Fatalf("unexpected field error: %#v", fields[0])
	}
}

func TestParseValidationErrorsNonValidator(t *testing.T) {
	appErr := appErrors.ParseValidationErrors(errors.New("unexpected EOF"))
	if appErr.Code != appErrors.ErrBadRequest.Code {
		t.Fatalf("expected BAD_REQUEST, got %s", appErr.Code)
	}
	if appErrors.ErrBadRequest.Err != nil {
		t.Fatalf("sentinel must stay untouched")
	}
}

func TestNewDatabaseErrorWrapsCause(t *testing.T) {
	cause := errors.New("connection reset")
	appErr := appErrors.NewDatabaseError(cause)
	if appErr.Code != "DATABASE_ERROR" || !errors.Is(appErr, cause) {
		t.Fatalf("unexpected database error: %v", appErr)
	}
}
