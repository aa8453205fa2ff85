package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/users-crud/internal/logger"
	"github.com/sbilibin2017/users-crud/internal/middlewares"
	"github.com/sbilibin2017/users-crud/internal/models"
	"github.com/sbilibin2017/users-crud/internal/services"
)

// UserUpdater defines the interface that the service must implement.
type UserUpdater interface {
	UpdateUser(ctx context.Context, id int64, upd models.UserUpdate) (*models.User, error)
}

// NewUpdateUserHandler returns an HTTP handler for partial user updates.
// @Summary Update a user
// @Description Updates the supplied fields only. Absent fields keep their stored values.
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User id"
// @Param user body models.UserUpdate true "Fields to change"
// @Success 200 {object} models.User "Updated user"
// @Failure 400 {object} models.ErrorResponse "Email already registered"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 422 {object} models.ErrorResponse "Invalid request"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /users/{id} [put]
func NewUpdateUserHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseUserID(r)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, detailInvalidUserID)
			return
		}

		var req models.UserUpdate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Warnw("failed to decode update user request", "id", id, "error", err)
			writeError(w, http.StatusUnprocessableEntity, detailInvalidBody)
			return
		}
		if err := validate.Struct(&req); err != nil {
			writeError(w, http.StatusUnprocessableEntity, validationDetail(err))
			return
		}

		user, err := svc.UpdateUser(r.Context(), id, req)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, detailUserNotFound)
			case errors.Is(err, services.ErrEmailAlreadyRegistered):
				writeError(w, http.StatusBadRequest, detailEmailTaken)
			default:
				logger.Log.Errorw("internal server error", "request_id", middlewares.GetRequestID(r.Context()), "id", id, "err", err)
				writeError(w, http.StatusInternalServerError, detailInternal)
			}
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
