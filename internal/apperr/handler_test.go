package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DjordjeVuckovic/juris-bench/internal/apperr"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGlobalErrorHandler(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{name: "validation", err: apperr.NewValidation("query is required"), wantCode: http.StatusBadRequest, wantBody: "query is required"},
		{name: "precondition", err: fmt.Errorf("enrich: %w", apperr.NewPrecondition("unknown intent")), wantCode: http.StatusUnprocessableEntity, wantBody: "unknown intent"},
		{name: "schema", err: apperr.NewSchema("intent \"x\" has no codes_cibles"), wantCode: http.StatusInternalServerError, wantBody: "schema error"},
		{name: "echo http error", err: echo.NewHTTPError(http.StatusNotFound, "not found"), wantCode: http.StatusNotFound, wantBody: "not found"},
		{name: "unknown", err: errors.New("boom"), wantCode: http.StatusInternalServerError, wantBody: "internal server error"},
	}

	handler := apperr.GlobalErrorHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			handler(tt.err, c)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
