package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/mock"
	"github.com/MKhiriev/go-account-keeper/internal/store"
	"github.com/MKhiriev/go-account-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestClientProfileSvc(t *testing.T, ctrl *gomock.Controller) (*clientProfileService, *mock.MockServerAdapter, *mock.MockSessionRepository) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockSessions := mock.NewMockSessionRepository(ctrl)

	storages := &store.ClientStorages{SessionRepository: mockSessions}
	svc := NewClientProfileService(storages, mockAdapter, logger.Nop()).(*clientProfileService)

	return svc, mockAdapter, mockSessions
}

func TestClientProfileService_GetProfile_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestClientProfileSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().Token().Return("jwt-token"),
		mockAdapter.EXPECT().GetProfile(ctx).Return(models.User{UserID: 2, Name: "John"}, nil),
	)

	user, err := svc.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "John", user.Name)
}

func TestClientProfileService_GetProfile_NotLoggedIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestClientProfileSvc(t, ctrl)

	mockAdapter.EXPECT().Token().Return("")

	_, err := svc.GetProfile(context.Background())
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestClientProfileService_UpdateProfile_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestClientProfileSvc(t, ctrl)
	ctx := context.Background()
	newName := "Johnny"

	updated := models.User{UserID: 2, Name: newName, Email: "john@example.com"}
	saved := models.Session{UserID: 2, Name: "John", Email: "john@example.com", Token: "jwt-token"}

	gomock.InOrder(
		mockAdapter.EXPECT().Token().Return("jwt-token"),
		mockAdapter.EXPECT().UpdateProfile(ctx, models.UpdateProfileRequest{Name: newName}).Return(updated, nil),
		mockSessions.EXPECT().GetSession(ctx).Return(saved, nil),
		mockSessions.EXPECT().SaveSession(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, s models.Session) error {
				assert.Equal(t, newName, s.Name, "cached session must track the updated profile")
				assert.Equal(t, "jwt-token", s.Token)
				return nil
			},
		),
	)

	user, err := svc.UpdateProfile(ctx, models.ProfileUpdate{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, newName, user.Name)
}

func TestClientProfileService_UpdateProfile_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestClientProfileSvc(t, ctrl)

	mockAdapter.EXPECT().Token().Return("jwt-token")

	_, err := svc.UpdateProfile(context.Background(), models.ProfileUpdate{})
	assert.ErrorIs(t, err, ErrMissingFields)
}
