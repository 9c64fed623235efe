package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-account-keeper/internal/app"
	"github.com/MKhiriev/go-account-keeper/internal/service"
	"github.com/MKhiriev/go-account-keeper/internal/store"
	"github.com/MKhiriev/go-account-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_Success(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, name, email, password string) (models.User, error) {
			assert.Equal(t, "John", name)
			assert.Equal(t, "john@example.com", email)
			assert.Equal(t, "secret", password)
			return models.User{UserID: 1, Name: name, Email: email}, nil
		},
		createTokenFn: func(_ context.Context, user models.User) (models.Token, error) {
			return stubToken("signed-jwt", user.UserID), nil
		},
	}
	h := newTestHandler(t, auth, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"name":"John","email":"john@example.com","password":"secret"}`))
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Bearer signed-jwt", rec.Header().Get("Authorization"))

	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, app.MsgUserRegistered, resp.Message)
	assert.Equal(t, int64(1), resp.Data.User.UserID)
	assert.Equal(t, "signed-jwt", resp.Data.Token)
}

func TestRegister_MissingFields(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, _, _, _ string) (models.User, error) {
			return models.User{}, service.ErrMissingFields
		},
	}
	h := newTestHandler(t, auth, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"email":"john@example.com"}`))
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, app.MsgRegisterFieldsRequired, resp.Message)
}

func TestRegister_EmailAlreadyExists(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, _, _, _ string) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	h := newTestHandler(t, auth, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"name":"John","email":"taken@example.com","password":"secret"}`))
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, app.MsgEmailAlreadyExists, resp.Message)
}

func TestRegister_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, app.MsgInvalidJSON, resp.Message)
}

func TestRegister_TokenCreationFails(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, name, email, _ string) (models.User, error) {
			return models.User{UserID: 1, Name: name, Email: email}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{}, service.ErrTokenCreationFailed
		},
	}
	h := newTestHandler(t, auth, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"name":"John","email":"john@example.com","password":"secret"}`))
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, app.MsgInternalServerError, resp.Message)
}

func TestLogin_Success(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, email, password string) (models.User, error) {
			assert.Equal(t, "john@example.com", email)
			assert.Equal(t, "secret", password)
			return models.User{UserID: 2, Name: "John", Email: email}, nil
		},
		createTokenFn: func(_ context.Context, user models.User) (models.Token, error) {
			return stubToken("signed-jwt", user.UserID), nil
		},
	}
	h := newTestHandler(t, auth, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"john@example.com","password":"secret"}`))
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed-jwt", rec.Header().Get("Authorization"))

	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, app.MsgLoginSuccessful, resp.Message)
	assert.Equal(t, "signed-jwt", resp.Data.Token)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, service.ErrInvalidCredentials
		},
	}
	h := newTestHandler(t, auth, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"john@example.com","password":"wrong"}`))
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, app.MsgInvalidEmailOrPassword, resp.Message)
}

func TestLogin_MissingFields(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, service.ErrMissingFields
		},
	}
	h := newTestHandler(t, auth, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"john@example.com"}`))
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, app.MsgLoginFieldsRequired, resp.Message)
}
