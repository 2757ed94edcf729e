package main

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"unlinked/cmd/app"
	"unlinked/internal/config"
	handlers "unlinked/internal/handler"
	"unlinked/internal/logger"
	"unlinked/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()
	log := logger.NewLogger("api")

	if cfg.JWTSecretKey == "" {
		log.Fatal().Msg("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, repo, services := app.App(cfg, log)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, db, cfg, log)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/", handlers.HomeHandler).Methods(http.MethodGet)
	router.HandleFunc("/health", handler.HealthHandler).Methods(http.MethodGet)

	// публичные эндпоинты - до шлюза сессии
	auth := router.PathPrefix("/api/v1/auth").Subrouter()
	auth.HandleFunc("/signup", handler.Signup).Methods(http.MethodPost)
	auth.HandleFunc("/login", handler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/logout", handler.Logout).Methods(http.MethodPost)

	// все остальное проходит через AuthMiddleware
	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(mux.MiddlewareFunc(middleware.AuthMiddleware(services.Auth, repo.User, log)))

	api.HandleFunc("/auth/me", handler.GetCurrentUser).Methods(http.MethodGet)

	api.HandleFunc("/posts", handler.GetFeed).Methods(http.MethodGet)
	api.HandleFunc("/posts", handler.CreatePost).Methods(http.MethodPost)
	api.HandleFunc("/posts/{id}", handler.GetPost).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id}", handler.DeletePost).Methods(http.MethodDelete)
	api.HandleFunc("/posts/{id}/comments", handler.CreateComment).Methods(http.MethodPost)
	api.HandleFunc("/posts/{id}/like", handler.LikePost).Methods(http.MethodPost)

	api.HandleFunc("/notifications", handler.GetNotifications).Methods(http.MethodGet)
	api.HandleFunc("/notifications/{id}/read", handler.MarkNotificationRead).Methods(http.MethodPut)
	api.HandleFunc("/notifications/{id}", handler.DeleteNotification).Methods(http.MethodDelete)

	api.HandleFunc("/users/{username}", handler.GetUser).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}/accept", handler.AcceptConnection).Methods(http.MethodPut)

	handlerChain := middleware.Chain(
		router,
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware(log),
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Info().Str("addr", addr).Str("db", cfg.DB.DbNAME).Msg("Сервер запущен")

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatal().Err(err).Msg("Ошибка запуска сервера")
	}
}
