package presenter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/totegamma/storykeep/internal/domain"
)

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{domain.ValidationError{Fields: map[string]string{"title": "this field is required"}}, http.StatusBadRequest},
		{errors.Wrap(domain.NotFoundError{Resource: "story"}, "wrapped"), http.StatusNotFound},
		{domain.AuthenticationError{Reason: "expired"}, http.StatusUnauthorized},
		{domain.ConflictError{Resource: "account"}, http.StatusConflict},
		{fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	e := echo.New()
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		if err := Error(c, tc.err); err != nil {
			t.Fatalf("presenter returned error: %v", err)
		}
		if rec.Code != tc.status {
			t.Fatalf("%v: expected %d got %d", tc.err, tc.status, rec.Code)
		}
	}
}

func TestValidationBody(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)

	if err := Error(c, domain.ValidationError{Fields: map[string]string{"first_name": "this field is required"}}); err != nil {
		t.Fatalf("presenter returned error: %v", err)
	}

	var body struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if body.Error != "validation failed" || body.Fields["first_name"] == "" {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestInternalErrorHidesDetail(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	if err := Error(c, fmt.Errorf("pq: password authentication failed")); err != nil {
		t.Fatalf("presenter returned error: %v", err)
	}
	if !json.Valid(rec.Body.Bytes()) {
		t.Fatalf("expected json body")
	}
	if got := rec.Body.String(); strings.Contains(got, "pq:") {
		t.Fatalf("internal detail leaked: %s", got)
	}
}
