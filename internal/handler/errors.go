package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"blogCPT/internal/repository"
	"blogCPT/internal/service"
)

// ErrorResponse - стандартный ответ с ошибкой и категорией флеша
type ErrorResponse struct {
	Error    string `json:"error"`
	Category string `json:"category"`
}

// FlashResponse - короткое категоризированное сообщение пользователю
type FlashResponse struct {
	Message  string `json:"message"`
	Category string `json:"category"`
	Redirect string `json:"redirect,omitempty"`
}

// ValidationErrorResponse возвращает введённую форму обратно вместе
// с inline-сообщением, чтобы клиент сохранил заполненные поля
type ValidationErrorResponse struct {
	Error    string      `json:"error"`
	Category string      `json:"category"`
	Form     interface{} `json:"form,omitempty"`
}

// WriteError - универсальная функция для отправки ошибок
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message, Category: "danger"})
}

// writeSuccess - функция для успешных ответов
func writeSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func writeValidationError(w http.ResponseWriter, message string, form interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(ValidationErrorResponse{
		Error:    message,
		Category: "danger",
		Form:     form,
	})
}

// writeServiceError отображает таксономию ошибок сервисного слоя
// в HTTP-статусы: 403, 404, 400, иначе 500 без внутренних деталей.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrForbidden):
		WriteError(w, "Доступ запрещен", http.StatusForbidden)
	case errors.Is(err, repository.ErrNotFound):
		WriteError(w, "Не найдено", http.StatusNotFound)
	case errors.Is(err, repository.ErrDuplicate):
		WriteError(w, "Такая запись уже существует", http.StatusBadRequest)
	default:
		WriteError(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
	}
}
