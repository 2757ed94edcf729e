package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"unlinked/internal/middleware"
)

func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	user, err := h.UserService.GetProfile(r.Context(), username)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, user, http.StatusOK)
}

func (h *Handlers) AcceptConnection(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	requesterID := mux.Vars(r)["id"]

	if err := h.UserService.AcceptConnection(r.Context(), user, requesterID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"message": "Запрос на связь принят"}, http.StatusOK)
}
