package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"movemate/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

// UserContextKey carries the authenticated user ID through request contexts.
const UserContextKey contextKey = "user"

// Claims are the JWT session claims issued at login
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Service issues and validates JWT session tokens
type Service struct {
	secret     []byte
	expiration time.Duration
}

// NewService creates an auth service from configuration
func NewService(cfg config.AuthConfig) *Service {
	return &Service{
		secret:     cfg.JWTSecret,
		expiration: cfg.TokenExpiration,
	}
}

// GenerateToken creates a signed session token for a user
func (s *Service) GenerateToken(userID, email string) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.expiration)
	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ValidateToken parses and verifies a session token
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrSignatureInvalid
}

// Middleware requires a valid Bearer token and stores the user ID in the
// request context.
func (s *Service) Middleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			sendUnauthorized(w, "Missing authorization header")
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || bearerToken[0] != "Bearer" {
			sendUnauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := s.ValidateToken(bearerToken[1])
		if err != nil {
			sendUnauthorized(w, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

func sendUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]any{
		"code":    http.StatusUnauthorized,
		"message": message,
	})
}
