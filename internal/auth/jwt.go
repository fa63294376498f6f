package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/websocket"
	"github.com/isdelr/portfolio-be/internal/models"
	"github.com/isdelr/portfolio-be/internal/services"
	"github.com/rs/zerolog/log"
)

// TokenLifetime is how long an issued token stays valid.
const TokenLifetime = 24 * time.Hour

var (
	// ErrMissingToken is returned when a request carries no bearer token.
	ErrMissingToken = errors.New("missing token")
	// ErrInvalidToken covers bad signatures, malformed tokens and expiry.
	ErrInvalidToken = errors.New("invalid token")
)

// Claims defines the JWT claims structure.
type Claims struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type contextKey string

// PrincipalKey is the context key for the authenticated principal.
const PrincipalKey = contextKey("principal")

// Issuer signs and verifies HS256 tokens with a single secret.
type Issuer struct {
	secret []byte
	now    func() time.Time
}

// NewIssuer creates a new Issuer.
func NewIssuer(secret string) *Issuer {
	return &Issuer{secret: []byte(secret), now: time.Now}
}

// Generate creates a new JWT for a given user.
func (i *Issuer) Generate(user models.User) (string, error) {
	now := i.now()
	claims := &Claims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenLifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Validate parses and validates a JWT string.
func (i *Issuer) Validate(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// TokenQueryParam carries the token on websocket upgrades, where browsers
// cannot set an Authorization header.
const TokenQueryParam = "access_token"

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
// Websocket upgrade requests may pass it as ?access_token= instead.
func BearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" && websocket.IsWebSocketUpgrade(r) {
		if token := r.URL.Query().Get(TokenQueryParam); token != "" {
			return token, nil
		}
		return "", ErrMissingToken
	}

	scheme, token, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrMissingToken
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrMissingToken
	}
	return token, nil
}

// Middleware creates a middleware for protecting routes. The principal is
// reloaded from the user store on every request.
func Middleware(issuer *Issuer, users services.UserServiceProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, err := BearerToken(r)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "Access token required")
				return
			}

			claims, err := issuer.Validate(tokenStr)
			if err != nil {
				log.Debug().Err(err).Msg("Rejected token")
				writeError(w, http.StatusForbidden, "Invalid or expired token")
				return
			}

			user, err := users.GetUserByID(r.Context(), claims.UserID)
			if err != nil {
				if !errors.Is(err, services.ErrNotFound) {
					log.Error().Err(err).Str("userId", claims.UserID).Msg("Failed to load user for token")
				}
				writeError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), PrincipalKey, user.Principal())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// PrincipalFromContext returns the principal stored by Middleware.
func PrincipalFromContext(ctx context.Context) (models.Principal, bool) {
	p, ok := ctx.Value(PrincipalKey).(models.Principal)
	return p, ok
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
