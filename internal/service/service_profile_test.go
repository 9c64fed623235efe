package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-account-keeper/internal/config"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/mock"
	"github.com/MKhiriev/go-account-keeper/internal/store"
	"github.com/MKhiriev/go-account-keeper/internal/utils"
	"github.com/MKhiriev/go-account-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestProfileSvc(t *testing.T, ctrl *gomock.Controller) (*profileService, *mock.MockUserRepository) {
	t.Helper()
	mockRepo := mock.NewMockUserRepository(ctrl)
	svc := NewProfileService(mockRepo, config.Auth{BcryptCost: 4}, logger.NewLogger("test")).(*profileService)
	return svc, mockRepo
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestProfileSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().FindUserByID(ctx, int64(7)).Return(models.User{
		UserID:       7,
		Name:         "John",
		Email:        "john@example.com",
		PasswordHash: "hash",
		CreatedAt:    time.Now(),
	}, nil)

	user, err := svc.GetProfile(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "John", user.Name)
	assert.Empty(t, user.PasswordHash, "hash must not leave the service")
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestProfileSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().FindUserByID(ctx, int64(404)).Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.GetProfile(ctx, 404)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestProfileService_UpdateProfile_HashesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestProfileSvc(t, ctrl)
	ctx := context.Background()
	newPassword := "new-secret"

	mockRepo.EXPECT().UpdateUser(ctx, int64(7), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, update models.UserUpdate) (models.User, error) {
			require.NotNil(t, update.PasswordHash)
			assert.NotEqual(t, newPassword, *update.PasswordHash, "plain text must never reach the store")
			assert.True(t, utils.VerifyPassword(newPassword, *update.PasswordHash))
			assert.Nil(t, update.Name)
			assert.Nil(t, update.Email)
			return models.User{UserID: 7, Name: "John", Email: "john@example.com"}, nil
		},
	)

	user, err := svc.UpdateProfile(ctx, 7, models.ProfileUpdate{Password: &newPassword})
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
}

func TestProfileService_UpdateProfile_PartialFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestProfileSvc(t, ctrl)
	ctx := context.Background()
	newName := "Johnny"

	mockRepo.EXPECT().UpdateUser(ctx, int64(7), models.UserUpdate{Name: &newName}).
		Return(models.User{UserID: 7, Name: newName, Email: "john@example.com"}, nil)

	user, err := svc.UpdateProfile(ctx, 7, models.ProfileUpdate{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, newName, user.Name)
	assert.Equal(t, "john@example.com", user.Email, "untouched fields keep their stored values")
}

func TestProfileService_UpdateProfile_OwnEmailSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestProfileSvc(t, ctrl)
	ctx := context.Background()
	ownEmail := "john@example.com"

	mockRepo.EXPECT().UpdateUser(ctx, int64(7), models.UserUpdate{Email: &ownEmail}).
		Return(models.User{UserID: 7, Name: "John", Email: ownEmail}, nil)

	user, err := svc.UpdateProfile(ctx, 7, models.ProfileUpdate{Email: &ownEmail})
	require.NoError(t, err, "keeping the current email is not a collision")
	assert.Equal(t, ownEmail, user.Email)
}

func TestProfileService_UpdateProfile_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestProfileSvc(t, ctrl)

	_, err := svc.UpdateProfile(context.Background(), 7, models.ProfileUpdate{})
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestProfileService_UpdateProfile_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestProfileSvc(t, ctrl)
	ctx := context.Background()
	takenEmail := "taken@example.com"

	mockRepo.EXPECT().UpdateUser(ctx, int64(7), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.UpdateProfile(ctx, 7, models.ProfileUpdate{Email: &takenEmail})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}
