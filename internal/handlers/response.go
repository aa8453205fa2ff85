package handlers

//go:generate mockgen -destination=mock_handlers.go -package=handlers . HealthChecker,UserCreator,UserLister,UserGetter,UserUpdater,UserDeleter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/sbilibin2017/users-crud/internal/logger"
	"github.com/sbilibin2017/users-crud/internal/models"
)

// Error details returned to clients.
const (
	detailInternal       = "Internal server error"
	detailUserNotFound   = "User not found"
	detailEmailTaken     = "Email already registered"
	detailInvalidBody    = "Invalid request body"
	detailInvalidUserID  = "User id must be an integer"
	detailInvalidPageArg = "skip and limit must be non-negative integers"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report json field names instead of Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validationDetail turns validator errors into a short client-facing message.
func validationDetail(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return detailInvalidBody
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s failed on '%s=%s'", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, models.ErrorResponse{Detail: detail})
}

// parseUserID reads the {id} path parameter.
func parseUserID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
