package handlers

import (
	"errors"
	"net/http"

	"github.com/isdelr/portfolio-be/internal/auth"
	"github.com/isdelr/portfolio-be/internal/models"
	"github.com/isdelr/portfolio-be/internal/services"
	"github.com/rs/zerolog/log"
)

// AuthHandler handles admin login and token verification.
type AuthHandler struct {
	service services.UserServiceProvider
	issuer  *auth.Issuer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service services.UserServiceProvider, issuer *auth.Issuer) *AuthHandler {
	return &AuthHandler{service: service, issuer: issuer}
}

// LoginResponse is returned on a successful login.
type LoginResponse struct {
	Token string           `json:"token"`
	User  models.Principal `json:"user"`
}

// Login handles user authentication and JWT generation.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload models.LoginRequest
	if !decode(w, r, &payload, "Username and password required") {
		return
	}
	if err := payload.Validate(); err != nil {
		WriteMessage(w, http.StatusBadRequest, "Username and password required")
		return
	}

	user, err := h.service.AuthenticateUser(r.Context(), payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			log.Warn().Err(err).Str("username", payload.Username).Msg("Failed authentication attempt")
			WriteMessage(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.Error().Err(err).Str("username", payload.Username).Msg("Login failed")
		WriteMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	token, err := h.issuer.Generate(user)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to generate JWT")
		WriteMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{Token: token, User: user.Principal()})
}

// Verify echoes the principal attached by the auth middleware.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		log.Error().Msg("Could not retrieve principal from context")
		WriteMessage(w, http.StatusUnauthorized, "Invalid token")
		return
	}
	writeJSON(w, http.StatusOK, map[string]models.Principal{"user": principal})
}
