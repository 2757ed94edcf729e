package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"unlinked/internal/middleware"
)

func (h *Handlers) GetNotifications(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	notifications, err := h.NotificationService.GetNotifications(r.Context(), user.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, notifications, http.StatusOK)
}

func (h *Handlers) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	notificationID := mux.Vars(r)["id"]

	if err := h.NotificationService.MarkRead(r.Context(), notificationID, user.UserID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"message": "Уведомление прочитано"}, http.StatusOK)
}

func (h *Handlers) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	notificationID := mux.Vars(r)["id"]

	if err := h.NotificationService.Delete(r.Context(), notificationID, user.UserID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"message": "Уведомление удалено"}, http.StatusOK)
}
