package handlers

import (
	"net/http"

	"github.com/presentwallah/engine/internal/api/types"
	"github.com/presentwallah/engine/internal/services"
)

type AuthHandler struct {
	authSvc  services.AuthService
	validate interface{ Struct(any) error }
}

func NewAuthHandler(authSvc services.AuthService, v interface{ Struct(any) error }) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, validate: v}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req types.RegisterRequest
	if err := decodeAndValidate(r, h.validate, &req); err != nil {
		writeError(w, err)
		return
	}

	user, err := h.authSvc.Register(r.Context(), req.Email, req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, types.APIResponse{
		Success: true,
		Data: map[string]any{
			"id":       user.ID,
			"email":    user.Email,
			"username": user.Username,
		},
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := decodeAndValidate(r, h.validate, &req); err != nil {
		writeError(w, err)
		return
	}

	token, user, err := h.authSvc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, types.APIResponse{
		Success: true,
		Data: map[string]any{
			"access_token": token,
			"token_type":   "Bearer",
			"expires_in":   86400,
			"user": map[string]any{
				"id":       user.ID,
				"email":    user.Email,
				"username": user.Username,
			},
		},
	})
}
