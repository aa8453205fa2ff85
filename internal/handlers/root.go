package handlers

import (
	"net/http"

	"github.com/sbilibin2017/users-crud/internal/models"
)

// NewRootHandler returns static service metadata.
// @Summary Service metadata
// @Tags meta
// @Produce json
// @Success 200 {object} models.RootResponse
// @Router / [get]
func NewRootHandler() http.HandlerFunc {
	resp := models.RootResponse{
		Message: "Welcome to Users CRUD Service",
		Docs:    "/docs",
		Health:  "/health",
	}
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, resp)
	}
}
