package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/campusops/student-api/internal/core/domain"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp map[string]string
	if uerr := json.Unmarshal(rec.Body.Bytes(), &resp); uerr != nil {
		t.Fatalf("invalid error envelope: %v", uerr)
	}
	return rec, resp["error"]
}

func TestErrorHandler_DomainMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrInvalidStudentID, http.StatusBadRequest},
		{domain.ErrStudentNotFound, http.StatusNotFound},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrNotAuthenticated, http.StatusUnauthorized},
		{domain.ErrNotAdmin, http.StatusForbidden},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrUserExists, http.StatusConflict},
	}

	for _, tc := range cases {
		rec, _ := handleError(t, tc.err)
		if rec.Code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	rec, _ := handleError(t, errors.Join(errors.New("find student"), domain.ErrStudentNotFound))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("wrapped domain error must keep its mapping, got %d", rec.Code)
	}
}

func TestErrorHandler_UnknownErrorHidden(t *testing.T) {
	rec, msg := handleError(t, errors.New("mongo: socket was unexpectedly closed"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if msg != "internal server error" {
		t.Fatalf("internal details must not leak, got %q", msg)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	rec, msg := handleError(t, echo.NewHTTPError(http.StatusBadRequest, "name is required"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if msg != "name is required" {
		t.Fatalf("unexpected message: %q", msg)
	}
}
