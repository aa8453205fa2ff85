package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/users-crud/internal/logger"
	"github.com/sbilibin2017/users-crud/internal/middlewares"
	"github.com/sbilibin2017/users-crud/internal/models"
	"github.com/sbilibin2017/users-crud/internal/services"
)

// UserGetter defines the interface that the service must implement.
type UserGetter interface {
	GetUser(ctx context.Context, id int64) (*models.User, error)
}

// NewGetUserHandler returns an HTTP handler fetching one user.
// @Summary Get a user
// @Tags users
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} models.User
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 422 {object} models.ErrorResponse "Invalid user id"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /users/{id} [get]
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseUserID(r)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, detailInvalidUserID)
			return
		}

		user, err := svc.GetUser(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, detailUserNotFound)
			default:
				logger.Log.Errorw("internal server error", "request_id", middlewares.GetRequestID(r.Context()), "id", id, "err", err)
				writeError(w, http.StatusInternalServerError, detailInternal)
			}
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
