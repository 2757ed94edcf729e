package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"unlinked/internal/models"
)

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteError - универсальная функция для отправки ошибок
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// writeSuccess - функция для успешных ответов
func writeSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeServiceError сопоставляет доменные ошибки с HTTP-статусами.
// Все ошибки аутентификации наружу отдаются одинаково.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrPasswordTooShort):
		WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, models.ErrEmailExists), errors.Is(err, models.ErrUsernameExists):
		WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, models.ErrInvalidCredentials),
		errors.Is(err, models.ErrNoToken),
		errors.Is(err, models.ErrInvalidToken),
		errors.Is(err, models.ErrUnknownUser):
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
	case errors.Is(err, models.ErrForbidden):
		WriteError(w, "Доступ запрещен", http.StatusForbidden)
	case errors.Is(err, models.ErrNotFound):
		WriteError(w, "Ресурс не найден", http.StatusNotFound)
	default:
		WriteError(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
	}
}
