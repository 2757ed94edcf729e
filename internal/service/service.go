package service

import (
	"unlinked/internal/config"
	"unlinked/internal/email"
	"unlinked/internal/logger"
	"unlinked/internal/repository"
	"unlinked/internal/storage"
)

type Service struct {
	Auth         AuthService
	Post         PostService
	User         UserService
	Notification NotificationService
}

func NewService(repo *repository.Repository, cfg *config.Config, storage storage.Storage, mailer email.Mailer, log *logger.Logger) *Service {
	notifications := NewNotificationService(repo.Notification, repo.User, mailer, cfg, log)

	return &Service{
		Auth:         NewAuthService(repo.User, mailer, cfg, log),
		Post:         NewPostService(repo.Post, storage, notifications, cfg, log),
		User:         NewUserService(repo.User, notifications, log),
		Notification: notifications,
	}
}
