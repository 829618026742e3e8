package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"unicode/utf8"

	"github.com/gorilla/mux"

	"blogCPT/internal/middleware"
	"blogCPT/internal/repository"
	"blogCPT/internal/service"
)

type ResetRequestForm struct {
	Email string `json:"email" validate:"required,email"`
}

type ChangePasswordForm struct {
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

// ResetRequest принимает email и отправляет письмо со ссылкой сброса.
func (h *Handlers) ResetRequest(w http.ResponseWriter, r *http.Request) {
	// открытая сессия в сбросе пароля не нуждается
	if middleware.IsAuthenticated(r.Context()) {
		writeSuccess(w, FlashResponse{
			Message:  "Вы уже вошли.",
			Category: "warning",
			Redirect: "/home",
		}, http.StatusOK)
		return
	}

	if r.Method == http.MethodGet {
		writeSuccess(w, map[string]interface{}{
			"legend": "Request a Password Reset",
			"form":   ResetRequestForm{},
		}, http.StatusOK)
		return
	}

	var req ResetRequestForm
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeValidationError(w, "Неверный формат email", req)
		return
	}

	err := h.AuthService.RequestPasswordReset(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeValidationError(w, "Аккаунт с таким email не найден. Сначала зарегистрируйтесь.", req)
			return
		}
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, FlashResponse{
		Message:  "Письмо с инструкциями по сбросу пароля отправлено.",
		Category: "success",
		Redirect: "/login",
	}, http.StatusOK)
}

// ResetToken проверяет токен из ссылки и меняет пароль.
// Любой дефектный токен уводит обратно на запрос сброса.
func (h *Handlers) ResetToken(w http.ResponseWriter, r *http.Request) {
	if middleware.IsAuthenticated(r.Context()) {
		writeSuccess(w, FlashResponse{
			Message:  "Вы уже вошли.",
			Category: "warning",
			Redirect: "/home",
		}, http.StatusOK)
		return
	}

	tokenString := mux.Vars(r)["token"]

	if r.Method == http.MethodGet {
		// форму смены пароля не показываем по дефектной ссылке
		if _, err := h.Tokens.Verify(tokenString); err != nil {
			writeSuccess(w, FlashResponse{
				Message:  "Недействительный или просроченный токен",
				Category: "warning",
				Redirect: "/reset_password",
			}, http.StatusOK)
			return
		}

		writeSuccess(w, map[string]interface{}{
			"legend": "Change your Password",
			"form":   ChangePasswordForm{},
		}, http.StatusOK)
		return
	}

	var req ChangePasswordForm
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if utf8.RuneCountInString(req.NewPassword) < 6 {
		writeValidationError(w, "Пароль должен быть не менее 6 символов", nil)
		return
	}

	err := h.AuthService.ResetPassword(r.Context(), tokenString, req.NewPassword)
	if err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			writeSuccess(w, FlashResponse{
				Message:  "Недействительный или просроченный токен",
				Category: "warning",
				Redirect: "/reset_password",
			}, http.StatusOK)
			return
		}
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, FlashResponse{
		Message:  "Пароль обновлён! Теперь вы можете войти.",
		Category: "success",
		Redirect: "/login",
	}, http.StatusOK)
}
