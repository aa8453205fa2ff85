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

// UserCreator defines the interface that the service must implement.
type UserCreator interface {
	CreateUser(ctx context.Context, name, email string) (*models.User, error)
}

// NewCreateUserHandler returns an HTTP handler for user creation.
// @Summary Create a user
// @Description Creates a new user. The email must not be registered yet.
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.UserCreate true "User to create"
// @Success 201 {object} models.User "Created user"
// @Failure 400 {object} models.ErrorResponse "Email already registered"
// @Failure 422 {object} models.ErrorResponse "Invalid request body"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /users/ [post]
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.UserCreate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Warnw("failed to decode create user request", "error", err)
			writeError(w, http.StatusUnprocessableEntity, detailInvalidBody)
			return
		}
		if err := validate.Struct(&req); err != nil {
			writeError(w, http.StatusUnprocessableEntity, validationDetail(err))
			return
		}

		user, err := svc.CreateUser(r.Context(), req.Name, req.Email)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailAlreadyRegistered):
				writeError(w, http.StatusBadRequest, detailEmailTaken)
			default:
				logger.Log.Errorw("internal server error", "request_id", middlewares.GetRequestID(r.Context()), "err", err)
				writeError(w, http.StatusInternalServerError, detailInternal)
			}
			return
		}

		writeJSON(w, http.StatusCreated, user)
	}
}
