package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-account-keeper/internal/config"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/store"
	"github.com/MKhiriev/go-account-keeper/internal/utils"
	"github.com/MKhiriev/go-account-keeper/models"
)

// profileService is the concrete implementation of ProfileService. It serves
// profile reads and partial updates for the account identified by a verified
// bearer token.
type profileService struct {
	userRepository store.UserRepository
	bcryptCost     int
	logger         *logger.Logger
}

// NewProfileService constructs a ProfileService over the given UserRepository.
// The bcrypt cost from cfg is applied when an update changes the password.
func NewProfileService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) ProfileService {
	return &profileService{
		userRepository: userRepository,
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// GetProfile returns the account owned by userID with the password hash
// cleared.
//
// Returns store.ErrUserNotFound (wrapped) when the token's subject no longer
// exists, e.g. the account was deleted after the token was issued.
func (p *profileService) GetProfile(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	found, err := p.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("profile lookup failed")
		return models.User{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	return found.Projection(), nil
}

// UpdateProfile applies a partial update to the account owned by userID and
// returns the updated record with the password hash cleared.
//
// Only fields present in the update are touched. A supplied password is
// bcrypt-hashed here so plain text never reaches the store.
//
// Returns:
//   - ErrMissingFields if the update carries no fields.
//   - store.ErrEmailAlreadyExists (wrapped) if the new email belongs to
//     another account.
//   - store.ErrUserNotFound (wrapped) if the account no longer exists.
func (p *profileService) UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		log.Error().Int64("id", userID).Msg("profile update with no fields")
		return models.User{}, ErrMissingFields
	}

	storeUpdate := models.UserUpdate{
		Name:  update.Name,
		Email: update.Email,
	}
	if update.Password != nil {
		hash, err := utils.HashPassword(*update.Password, p.bcryptCost)
		if err != nil {
			log.Err(err).Int64("id", userID).Msg("password hashing failed")
			return models.User{}, fmt.Errorf("password hashing failed: %w", err)
		}
		storeUpdate.PasswordHash = &hash
	}

	updated, err := p.userRepository.UpdateUser(ctx, userID, storeUpdate)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("profile update failed")
		return models.User{}, fmt.Errorf("profile update failed: %w", err)
	}

	return updated.Projection(), nil
}
