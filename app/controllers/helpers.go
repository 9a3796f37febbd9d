package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/arypfer/Proty-Content-Calendar/app/repositories"
	"github.com/arypfer/Proty-Content-Calendar/app/services"
)

// Helper functions for consistent response handling

func sendJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func sendError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// statusFromError maps core error kinds onto HTTP status codes.
func statusFromError(err error) int {
	var verr *services.ValidationError
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
