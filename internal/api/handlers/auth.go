package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/remib/phonestore/internal/domain"
	"github.com/remib/phonestore/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type RegisterRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

type UserResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if req.FullName == "" || req.Email == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "All fields are required.")
		return
	}

	_, err := h.authService.Register(r.Context(), service.RegisterInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailExists) {
			writeMessage(w, http.StatusConflict, "This email is already registered.")
			return
		}
		log.Printf("ERROR [auth.Register] %v", err)
		writeMessage(w, http.StatusInternalServerError, "Server error during registration.")
		return
	}

	writeMessage(w, http.StatusCreated, "Registration successful. You can now log in.")
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if req.Email == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "Please provide your email and password.")
		return
	}

	result, err := h.authService.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			writeMessage(w, http.StatusUnauthorized, "Incorrect email or password.")
			return
		}
		log.Printf("ERROR [auth.Login] %v", err)
		writeMessage(w, http.StatusInternalServerError, "Server error during login.")
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{
		Message: "Login successful.",
		Token:   result.Token,
		User: UserResponse{
			ID:   result.User.ID.String(),
			Name: result.User.FullName,
		},
	})
}
