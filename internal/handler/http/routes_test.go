package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoutes_UnknownPath(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockProfileService{})

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoutes_WrongMethodHidesRoute(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockProfileService{})

	// register exists only as POST; GET must look like a missing route
	req := httptest.NewRequest(http.MethodGet, "/api/auth/register", nil)
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
