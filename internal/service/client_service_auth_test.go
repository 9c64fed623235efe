package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/mock"
	"github.com/MKhiriev/go-account-keeper/internal/store"
	"github.com/MKhiriev/go-account-keeper/internal/utils"
	"github.com/MKhiriev/go-account-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestClientAuthSvc(t *testing.T, ctrl *gomock.Controller) (*clientAuthService, *mock.MockServerAdapter, *mock.MockSessionRepository) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockSessions := mock.NewMockSessionRepository(ctrl)

	storages := &store.ClientStorages{SessionRepository: mockSessions}
	svc := NewClientAuthService(storages, mockAdapter, logger.Nop()).(*clientAuthService)

	return svc, mockAdapter, mockSessions
}

func TestClientAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{UserID: 1, Name: "John", Email: "john@example.com"}

	gomock.InOrder(
		mockAdapter.EXPECT().Register(ctx, models.RegisterRequest{Name: "John", Email: "john@example.com", Password: "secret"}).Return(user, nil),
		mockAdapter.EXPECT().Token().Return("jwt-token"),
		mockSessions.EXPECT().SaveSession(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, s models.Session) error {
				assert.Equal(t, int64(1), s.UserID)
				assert.Equal(t, "jwt-token", s.Token)
				return nil
			},
		),
	)

	session, err := svc.Register(ctx, "John", "john@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", session.Token)
}

func TestClientAuthService_Register_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestClientAuthSvc(t, ctrl)

	_, err := svc.Register(context.Background(), "", "john@example.com", "secret")
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestClientAuthService_Register_ServerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Register(ctx, gomock.Any()).Return(models.User{}, errors.New("email already exists"))

	_, err := svc.Register(ctx, "John", "taken@example.com", "secret")
	assert.ErrorIs(t, err, ErrRegisterOnServer)
}

func TestClientAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{UserID: 2, Name: "John", Email: "john@example.com"}

	gomock.InOrder(
		mockAdapter.EXPECT().Login(ctx, models.LoginRequest{Email: "john@example.com", Password: "secret"}).Return(user, nil),
		mockAdapter.EXPECT().Token().Return("jwt-token"),
		mockSessions.EXPECT().SaveSession(ctx, gomock.Any()).Return(nil),
	)

	session, err := svc.Login(ctx, "john@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, int64(2), session.UserID)
}

func TestClientAuthService_Login_SessionOwnerFromTokenSubject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	token, err := utils.GenerateJWTToken("account-keeper-test", 42, time.Hour, "test-sign-key")
	require.NoError(t, err)

	gomock.InOrder(
		mockAdapter.EXPECT().Login(ctx, gomock.Any()).Return(models.User{UserID: 2, Email: "john@example.com"}, nil),
		mockAdapter.EXPECT().Token().Return(token.SignedString),
		mockSessions.EXPECT().SaveSession(ctx, gomock.Any()).Return(nil),
	)

	session, err := svc.Login(ctx, "john@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, int64(42), session.UserID, "the token subject names the session owner")
}

func TestClientAuthService_Login_SaveFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().Login(ctx, gomock.Any()).Return(models.User{UserID: 2}, nil),
		mockAdapter.EXPECT().Token().Return("jwt-token"),
		mockSessions.EXPECT().SaveSession(ctx, gomock.Any()).Return(errors.New("disk full")),
	)

	session, err := svc.Login(ctx, "john@example.com", "secret")
	require.NoError(t, err, "session persistence failure only costs the restore on next start")
	assert.Equal(t, "jwt-token", session.Token)
}

func TestClientAuthService_RestoreSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	saved := models.Session{UserID: 2, Email: "john@example.com", Token: "jwt-token", SavedAt: time.Now()}

	gomock.InOrder(
		mockSessions.EXPECT().GetSession(ctx).Return(saved, nil),
		mockAdapter.EXPECT().SetToken("jwt-token"),
	)

	session, err := svc.RestoreSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved.Token, session.Token)
}

func TestClientAuthService_RestoreSession_None(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockSessions := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	mockSessions.EXPECT().GetSession(ctx).Return(models.Session{}, store.ErrSessionNotFound)

	_, err := svc.RestoreSession(ctx)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestClientAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().SetToken(""),
		mockSessions.EXPECT().DeleteSession(ctx).Return(nil),
	)

	require.NoError(t, svc.Logout(ctx))
}
