package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-account-keeper/internal/app"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/service"
	"github.com/MKhiriev/go-account-keeper/internal/store"
	"github.com/MKhiriev/go-account-keeper/internal/utils"
	"github.com/MKhiriev/go-account-keeper/models"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		writeError(w, app.MsgAuthenticationRequired, http.StatusUnauthorized)
		return
	}

	user, err := h.services.ProfileService.GetProfile(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			log.Debug().Int64("id", userID).Msg("profile owner no longer exists")
			writeError(w, app.MsgUserNotFound, http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during profile lookup")
			writeError(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	writeSuccess(w, "", models.ProfileData{User: user}, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		writeError(w, app.MsgAuthenticationRequired, http.StatusUnauthorized)
		return
	}

	var req models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	updated, err := h.services.ProfileService.UpdateProfile(ctx, userID, profileUpdateFromRequest(req))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			log.Debug().Int64("id", userID).Msg("profile update with no fields")
			writeError(w, app.MsgUpdateFieldsRequired, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Debug().Int64("id", userID).Msg("email taken by another user")
			writeError(w, app.MsgEmailTakenByAnotherUser, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUserNotFound):
			log.Debug().Int64("id", userID).Msg("profile owner no longer exists")
			writeError(w, app.MsgUserNotFound, http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during profile update")
			writeError(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", userID).Msg("profile successfully updated")

	writeSuccess(w, app.MsgProfileUpdated, models.ProfileData{User: updated}, http.StatusOK)
}

// profileUpdateFromRequest converts the wire representation into the service
// update: empty strings mean the field was omitted.
func profileUpdateFromRequest(req models.UpdateProfileRequest) models.ProfileUpdate {
	update := models.ProfileUpdate{}
	if req.Name != "" {
		update.Name = &req.Name
	}
	if req.Email != "" {
		update.Email = &req.Email
	}
	if req.Password != "" {
		update.Password = &req.Password
	}
	return update
}
