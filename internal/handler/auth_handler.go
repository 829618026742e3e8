package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"unicode/utf8"

	"blogCPT/internal/middleware"
	"blogCPT/internal/repository"
	"blogCPT/internal/service"
)

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=2,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Remember bool   `json:"remember"`
}

type UserResponse struct {
	UserId     string `json:"userId"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	AvatarFile string `json:"avatarFile"`
}

type LoginResponse struct {
	Message  string       `json:"message"`
	Category string       `json:"category"`
	User     UserResponse `json:"user"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	// повторная регистрация под открытой сессией - no-op с редиректом
	if middleware.IsAuthenticated(r.Context()) {
		writeSuccess(w, FlashResponse{
			Message:  "У вас уже есть аккаунт.",
			Category: "warning",
			Redirect: "/home",
		}, http.StatusOK)
		return
	}

	if r.Method == http.MethodGet {
		writeSuccess(w, map[string]interface{}{
			"legend": "Join Us",
			"form":   RegisterRequest{},
		}, http.StatusOK)
		return
	}

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	// email verification
	patternEmail := `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	matched, err := regexp.MatchString(patternEmail, req.Email)
	if err != nil || !matched {
		writeValidationError(w, "Неверный формат email", req)
		return
	}

	// password verification
	if utf8.RuneCountInString(req.Password) < 6 {
		writeValidationError(w, "Пароль должен быть не менее 6 символов", req)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeValidationError(w, "Неверные данные", req)
		return
	}

	serviceReq := repository.CreateUserRequest{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}

	// registering a user in the service
	_, err = h.AuthService.Register(r.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			writeValidationError(w, "Username или email уже заняты", req)
			return
		}
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, FlashResponse{
		Message:  "Аккаунт создан! Теперь вы можете войти.",
		Category: "success",
		Redirect: "/login",
	}, http.StatusCreated)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	// повторный вход под открытой сессией - no-op с редиректом
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
			"legend": "Login",
			"form":   LoginRequest{},
		}, http.StatusOK)
		return
	}

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeValidationError(w, "Неверные данные", req)
		return
	}

	user, sessionToken, duration, err := h.AuthService.Login(r.Context(), req.Username, req.Password, req.Remember)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// единый ответ: неизвестный username неотличим от неверного пароля
			WriteError(w, "Вход не выполнен. Проверьте username и пароль", http.StatusForbidden)
			return
		}
		writeServiceError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    sessionToken,
		Path:     "/",
		MaxAge:   int(duration.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeSuccess(w, LoginResponse{
		Message:  "Вход выполнен.",
		Category: "success",
		User: UserResponse{
			UserId:     user.UserID,
			Username:   user.Username,
			Email:      user.Email,
			Role:       user.Role,
			AvatarFile: user.AvatarFile,
		},
	}, http.StatusOK)
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	// invalidate the session cookie
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeSuccess(w, FlashResponse{
		Message:  "Вы вышли из аккаунта.",
		Category: "success",
		Redirect: "/home",
	}, http.StatusOK)
}
