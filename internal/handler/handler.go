package handlers

import (
	"github.com/go-playground/validator/v10"

	"unlinked/internal/config"
	"unlinked/internal/database"
	"unlinked/internal/logger"
	"unlinked/internal/service"
)

type Handlers struct {
	AuthService         service.AuthService
	PostService         service.PostService
	UserService         service.UserService
	NotificationService service.NotificationService
	DB                  database.MethodsDB
	Cfg                 *config.Config
	Validate            *validator.Validate
	Log                 *logger.Logger
}

func NewHandlers(services *service.Service, db database.MethodsDB, config *config.Config, log *logger.Logger) *Handlers {
	return &Handlers{
		AuthService:         services.Auth,
		PostService:         services.Post,
		UserService:         services.User,
		NotificationService: services.Notification,
		DB:                  db,
		Cfg:                 config,
		Validate:            validator.New(),
		Log:                 log,
	}
}
