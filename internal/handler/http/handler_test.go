package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/service"
	"github.com/MKhiriev/go-account-keeper/models"
	"github.com/stretchr/testify/require"
)

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn    func(ctx context.Context, name, email, password string) (models.User, error)
	loginFn       func(ctx context.Context, email, password string) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, name, email, password string) (models.User, error) {
	return m.registerFn(ctx, name, email, password)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockProfileService implements service.ProfileService for unit tests.
type mockProfileService struct {
	getProfileFn    func(ctx context.Context, userID int64) (models.User, error)
	updateProfileFn func(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error)
}

func (m *mockProfileService) GetProfile(ctx context.Context, userID int64) (models.User, error) {
	return m.getProfileFn(ctx, userID)
}

func (m *mockProfileService) UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error) {
	return m.updateProfileFn(ctx, userID, update)
}

// newTestHandler builds a Handler over the given service mocks. Nil mocks are
// allowed for endpoints a test never reaches.
func newTestHandler(t *testing.T, auth service.AuthService, profile service.ProfileService) *Handler {
	t.Helper()
	return NewHandler(&service.Services{
		AuthService:    auth,
		ProfileService: profile,
	}, logger.Nop())
}

// stubToken returns a models.Token with the given signed string and subject.
func stubToken(signed string, userID int64) models.Token {
	return models.Token{SignedString: signed, UserID: userID}
}

// decodedResponse is the envelope shape used by test assertions.
type decodedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		User  models.User `json:"user"`
		Token string      `json:"token"`
	} `json:"data"`
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) decodedResponse {
	t.Helper()
	var resp decodedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}
