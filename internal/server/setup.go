package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"tasmeem/internal/bootstrap"
)

var corsHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Headers": "authorization, x-client-info, apikey, content-type",
}

type setupAdminResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Email   string `json:"email"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Service) handleSetupAdmin(w http.ResponseWriter, r *http.Request) {
	for k, v := range corsHeaders {
		w.Header().Set(k, v)
	}

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	credentials := func() (bootstrap.Credentials, error) {
		var creds bootstrap.Credentials
		err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&creds)
		return creds, err
	}

	created, err := s.setup.CreateAdmin(r.Context(), r.Header.Get("Authorization"), credentials)
	if err != nil {
		status, message := setupAdminError(err)
		if status == http.StatusInternalServerError {
			s.logger.WithError(err).Error("failed to create admin")
		}
		s.writeJSON(w, status, errorResponse{Error: message})
		return
	}

	s.writeJSON(w, http.StatusOK, setupAdminResponse{
		Success: true,
		Message: "Admin user created successfully",
		Email:   created.Email,
	})
}

func setupAdminError(err error) (int, string) {
	switch {
	case errors.Is(err, bootstrap.ErrAuthRequired):
		return http.StatusUnauthorized, "Admin already exists. Authentication required to add more admins."
	case errors.Is(err, bootstrap.ErrInvalidToken):
		return http.StatusUnauthorized, "Invalid authentication"
	case errors.Is(err, bootstrap.ErrNotAdmin):
		return http.StatusForbidden, "Only existing admins can add new admins"
	case errors.Is(err, bootstrap.ErrMissingCredentials):
		return http.StatusBadRequest, "Email and password are required"
	default:
		return http.StatusInternalServerError, remoteMessage(err)
	}
}

func (s *Service) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.WithError(err).Error("failed to write json response")
	}
}
