package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"astroloh/internal/auth"
)

// AuthHandler handles login and logout
type AuthHandler struct {
	mgr *auth.Manager
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(mgr *auth.Manager) *AuthHandler {
	return &AuthHandler{mgr: mgr}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login verifies credentials and returns a session token
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !h.mgr.Enabled() {
		writeError(w, "Authentication disabled", "no users configured", http.StatusNotFound)
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", err.Error(), http.StatusBadRequest)
		return
	}

	token, err := h.mgr.Login(req.Username, req.Password)
	if err != nil {
		writeError(w, "Unauthorized", "invalid credentials", http.StatusUnauthorized)
		return
	}
	writeJSON(w, loginResponse{Token: token})
}

// Logout drops the caller's session
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if token != "" {
		h.mgr.Logout(token)
	}
	w.WriteHeader(http.StatusNoContent)
}
