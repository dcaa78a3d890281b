package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ciphersql/studio/pkg/models"
	"github.com/ciphersql/studio/pkg/repository"
)

// invalidCredentials is returned for unknown email and wrong password alike
// so callers cannot enumerate accounts.
const invalidCredentials = "Invalid credentials"

type AuthHandler struct {
	userRepo      repository.UserRepo
	jwtSecret     string
	tokenDuration time.Duration
}

// NewAuthHandler creates a new AuthHandler with required dependencies.
func NewAuthHandler(ur repository.UserRepo, jwtSecret string, tokenDuration time.Duration) *AuthHandler {
	return &AuthHandler{userRepo: ur, jwtSecret: jwtSecret, tokenDuration: tokenDuration}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		writeError(w, "Missing fields", http.StatusBadRequest)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, "Error hashing password", http.StatusInternalServerError)
		return
	}

	user := models.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		Role:         "student",
		PasswordHash: string(hash),
	}

	ctx := r.Context()
	if err := h.userRepo.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			writeError(w, "Email already exists", http.StatusBadRequest)
			return
		}
		writeError(w, "Error creating user", http.StatusInternalServerError)
		return
	}

	token, err := h.issueToken(user.Email)
	if err != nil {
		writeError(w, "Error signing token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, authResponse{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role, Token: token}, http.StatusCreated)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, "Missing fields", http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	user, err := h.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil || user == nil {
		writeError(w, invalidCredentials, http.StatusUnauthorized)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		writeError(w, invalidCredentials, http.StatusUnauthorized)
		return
	}

	token, err := h.issueToken(user.Email)
	if err != nil {
		writeError(w, "Error signing token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, authResponse{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role, Token: token}, http.StatusOK)
}

func (h *AuthHandler) Signout(w http.ResponseWriter, r *http.Request) {
	// For stateless JWT, signout is client-side (just delete token)
	writeJSON(w, map[string]string{"message": "signed out"}, http.StatusOK)
}

// Me returns the profile of the authenticated user.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	email, _ := r.Context().Value(CtxUserEmail).(string)
	if email == "" {
		writeError(w, "Invalid or expired token", http.StatusUnauthorized)
		return
	}

	user, err := h.userRepo.GetUserByEmail(r.Context(), email)
	if err != nil {
		writeError(w, "Error loading user", http.StatusInternalServerError)
		return
	}
	if user == nil {
		writeError(w, "User not found", http.StatusNotFound)
		return
	}

	writeJSON(w, map[string]string{"id": user.ID, "name": user.Name, "email": user.Email, "role": user.Role}, http.StatusOK)
}

func (h *AuthHandler) issueToken(email string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(h.tokenDuration).Unix(),
	})
	return token.SignedString([]byte(h.jwtSecret))
}
