package handlers

import (
	"net/http"

	"github.com/vaughan-dsouza/feedback/internal/utils"
)

type AuthHandler struct {
	Users UserService
}

func NewAuthHandler(users UserService) *AuthHandler {
	return &AuthHandler{Users: users}
}

// ----------- Response DTOs -------------

type userResp struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

type tokenResp struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type messageResp struct {
	Message string `json:"message"`
}

// -------------- REGISTER ---------------------

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	email, ok := utils.FormValue(w, r, "email")
	if !ok {
		return
	}
	password, ok := utils.FormValue(w, r, "password")
	if !ok {
		return
	}

	u, err := h.Users.Register(r.Context(), email, password)
	if err != nil {
		utils.Error(w, r, err)
		return
	}

	utils.JSON(w, http.StatusCreated, userResp{ID: u.ID, Email: u.Email})
}

// -------------- LOGIN ------------------------

// Login takes an OAuth2 password form; username carries the email.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	username, ok := utils.FormValue(w, r, "username")
	if !ok {
		return
	}
	password, ok := utils.FormValue(w, r, "password")
	if !ok {
		return
	}

	tok, err := h.Users.Authenticate(r.Context(), username, password)
	if err != nil {
		utils.Error(w, r, err)
		return
	}

	utils.JSON(w, http.StatusOK, tokenResp{AccessToken: tok.Token, TokenType: "bearer"})
}

// -------------- LOGOUT -----------------------

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Users.Logout(r.Context()); err != nil {
		utils.Error(w, r, err)
		return
	}
	utils.JSON(w, http.StatusOK, messageResp{Message: "Logged out successfully"})
}
