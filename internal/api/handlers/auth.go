package handlers

import (
	"encoding/json"
	"net/http"

	"movemate/internal/app"
	"movemate/internal/auth"
	"movemate/internal/logger"
	"movemate/pkg/validation"
)

// Request/Response types

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type UserInfo struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

type SessionInfo struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresAt   string `json:"expires_at"`
}

type LoginResponse struct {
	User    UserInfo    `json:"user"`
	Session SessionInfo `json:"session"`
}

type RegisterResponse struct {
	User UserInfo `json:"user"`
}

// AuthHandlers serves the authentication endpoints
type AuthHandlers struct {
	config      *app.Config
	authService *auth.Service
	validator   *validation.AuthRequestValidator
}

// NewAuthHandlers creates a new AuthHandlers
func NewAuthHandlers(config *app.Config, authService *auth.Service) *AuthHandlers {
	return &AuthHandlers{
		config:      config,
		authService: authService,
		validator:   validation.NewAuthRequestValidator(),
	}
}

// LoginHandler authenticates a user and returns the user plus a session token
func (ah *AuthHandlers) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := ah.validator.ValidateLoginRequest(req.Email, req.Password); err != nil {
		sendError(w, http.StatusBadRequest, "Validation failed", err)
		return
	}

	user, err := ah.config.DB.GetUserByEmail(req.Email)
	if err != nil {
		logger.Log.WithField("email", req.Email).Info("Login failed: user not found")
		sendError(w, http.StatusUnauthorized, "Invalid credentials", nil)
		return
	}

	if !user.VerifyPassword(req.Password) {
		logger.Log.WithField("email", req.Email).Info("Login failed: invalid password")
		sendError(w, http.StatusUnauthorized, "Invalid credentials", nil)
		return
	}

	token, expiresAt, err := ah.authService.GenerateToken(user.ID, user.Email)
	if err != nil {
		logger.Log.WithError(err).Error("Error generating token")
		sendError(w, http.StatusInternalServerError, "Error generating token", err)
		return
	}

	logger.Log.WithField("user_id", user.ID).Info("User logged in")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(LoginResponse{
		User: UserInfo{
			ID:        user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
			CreatedAt: user.CreatedAt.String(),
		},
		Session: SessionInfo{
			AccessToken: token,
			TokenType:   "bearer",
			ExpiresAt:   expiresAt.String(),
		},
	})
}

// RegisterHandler creates a new user account
func (ah *AuthHandlers) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := ah.validator.ValidateRegisterRequest(req.FirstName, req.LastName, req.Email, req.Password); err != nil {
		sendError(w, http.StatusBadRequest, "Validation failed", err)
		return
	}

	user, err := ah.config.DB.CreateUser(req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		logger.Log.WithError(err).WithField("email", req.Email).Info("Registration failed")
		sendError(w, http.StatusUnauthorized, "Registration failed", err)
		return
	}

	logger.Log.WithField("user_id", user.ID).Info("User registered")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(RegisterResponse{
		User: UserInfo{
			ID:        user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
			CreatedAt: user.CreatedAt.String(),
		},
	})
}
