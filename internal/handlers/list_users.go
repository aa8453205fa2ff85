package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/users-crud/internal/logger"
	"github.com/sbilibin2017/users-crud/internal/middlewares"
	"github.com/sbilibin2017/users-crud/internal/models"
)

const (
	defaultSkip  = 0
	defaultLimit = 100
)

// UserLister defines the interface that the service must implement.
type UserLister interface {
	ListUsers(ctx context.Context, skip, limit int) ([]models.User, error)
}

// NewListUsersHandler returns an HTTP handler listing users page by page.
// @Summary List users
// @Description Returns users ordered by id.
// @Tags users
// @Produce json
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Maximum rows to return" default(100)
// @Success 200 {array} models.User
// @Failure 422 {object} models.ErrorResponse "Invalid skip or limit"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /users/ [get]
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skip, err := queryInt(r, "skip", defaultSkip)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, detailInvalidPageArg)
			return
		}
		limit, err := queryInt(r, "limit", defaultLimit)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, detailInvalidPageArg)
			return
		}

		users, err := svc.ListUsers(r.Context(), skip, limit)
		if err != nil {
			logger.Log.Errorw("internal server error", "request_id", middlewares.GetRequestID(r.Context()), "err", err)
			writeError(w, http.StatusInternalServerError, detailInternal)
			return
		}
		if users == nil {
			users = []models.User{}
		}

		writeJSON(w, http.StatusOK, users)
	}
}

// queryInt reads a non-negative integer query parameter, falling back to def when absent.
func queryInt(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, strconv.ErrRange
	}
	return v, nil
}
