package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/VitaminP8/blogery/internal/auth"
	"github.com/VitaminP8/blogery/internal/user"
)

type AuthHandler struct {
	users user.UserStorage
	log   *log.Logger
}

func NewAuthHandler(users user.UserStorage, logger *log.Logger) *AuthHandler {
	return &AuthHandler{users: users, log: logger}
}

type registerInput struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

func (in *registerInput) validate() fieldErrors {
	errs := fieldErrors{}
	if in.Username == "" {
		errs.add("username", requiredMsg)
	}
	if in.Password == "" {
		errs.add("password", requiredMsg)
	}
	if in.Password2 == "" {
		errs.add("password2", requiredMsg)
	}
	if in.Password != "" && in.Password2 != "" && in.Password != in.Password2 {
		errs.add("password", "Password fields didn't match.")
	}
	return errs
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var in registerInput
	if !decodeJSON(w, r, &in) {
		return
	}

	// вся валидация до записи - при ошибке пользователь не создается
	if errs := in.validate(); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	_, err := h.users.RegisterUser(in.Username, in.Email, in.Password)
	if err != nil {
		if errors.Is(err, user.ErrUserExists) {
			writeValidationErrors(w, fieldErrors{"username": {"A user with that username already exists."}})
			return
		}
		h.log.Printf("could not register user: %v", err)
		writeDetail(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": "User registered successfully"})
}

type loginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var in loginInput
	if !decodeJSON(w, r, &in) {
		return
	}

	errs := fieldErrors{}
	if in.Username == "" {
		errs.add("username", requiredMsg)
	}
	if in.Password == "" {
		errs.add("password", requiredMsg)
	}
	if len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	pair, err := h.users.LoginUser(in.Username, in.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			// не раскрываем, существует ли username
			writeDetail(w, http.StatusUnauthorized, "No active account found with the given credentials")
			return
		}
		h.log.Printf("could not login user: %v", err)
		writeDetail(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	writeJSON(w, http.StatusOK, pair)
}

type refreshInput struct {
	Refresh string `json:"refresh"`
}

// Refresh обменивает валидный refresh токен на новый access токен
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var in refreshInput
	if !decodeJSON(w, r, &in) {
		return
	}

	if in.Refresh == "" {
		writeValidationErrors(w, fieldErrors{"refresh": {requiredMsg}})
		return
	}

	claims, err := auth.ParseToken(in.Refresh)
	if err != nil {
		writeDetail(w, http.StatusUnauthorized, "Token is invalid or expired")
		return
	}

	userID, tokenType, err := auth.TokenSubject(claims)
	if err != nil || tokenType != auth.TokenTypeRefresh {
		writeDetail(w, http.StatusUnauthorized, "Token is invalid or expired")
		return
	}

	// пользователь перечитывается из хранилища - удаленный аккаунт обновить токен не может
	u, err := h.users.GetUserById(userID)
	if errors.Is(err, user.ErrUserNotFound) {
		writeDetail(w, http.StatusUnauthorized, "Token is invalid or expired")
		return
	}
	if err != nil {
		h.log.Printf("could not get user %d: %v", userID, err)
		writeDetail(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	access, err := auth.GenerateAccessToken(u.ID, u.Username)
	if err != nil {
		h.log.Printf("could not generate access token: %v", err)
		writeDetail(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"access": access})
}

// AdminOnly доступен только staff пользователям (гейт навешивается в роутере)
func (h *AuthHandler) AdminOnly(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Привіт, адміністраторе!"})
}
