package http

import (
	"encoding/json"
	"net/http"

	"library-backend/internal/domain"
	"library-backend/internal/service"
)

type AuthHandler struct {
	authSvc service.AuthService
}

func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

type registerRequest struct {
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
	Name        string `json:"name"`
}

type loginRequest struct {
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

type loginResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	user, err := h.authSvc.Register(r.Context(), req.PhoneNumber, req.Password, req.Name)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeCreated(w, "registered", user)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	user, token, err := h.authSvc.Login(r.Context(), req.PhoneNumber, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, "login successful", loginResponse{User: user, Token: token})
}
