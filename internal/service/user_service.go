package service

import (
	"context"

	"unlinked/internal/logger"
	"unlinked/internal/models"
	"unlinked/internal/repository"
)

type UserService interface {
	GetProfile(ctx context.Context, username string) (*models.User, error)
	AcceptConnection(ctx context.Context, identity *models.User, requesterID string) error
}

type userService struct {
	userRepo      repository.UserRepository
	notifications NotificationService
	log           *logger.Logger
}

func NewUserService(userRepo repository.UserRepository, notifications NotificationService, log *logger.Logger) UserService {
	return &userService{
		userRepo:      userRepo,
		notifications: notifications,
		log:           log,
	}
}

func (s *userService) GetProfile(ctx context.Context, username string) (*models.User, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	connections, err := s.userRepo.GetConnections(ctx, user.UserID)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	user.Connections = connections

	return user, nil
}

// AcceptConnection записывает взаимную связь и уведомляет отправителя
// запроса. Связь с самим собой невозможна.
func (s *userService) AcceptConnection(ctx context.Context, identity *models.User, requesterID string) error {
	if requesterID == identity.UserID {
		return models.ErrForbidden
	}

	if _, err := s.userRepo.GetUserByID(ctx, requesterID); err != nil {
		return err
	}

	if err := s.userRepo.AddConnection(ctx, identity.UserID, requesterID); err != nil {
		return err
	}

	s.notifications.Dispatch(ctx, models.InteractionEvent{
		Type:        models.NotificationConnectionAccepted,
		ActorID:     identity.UserID,
		RecipientID: requesterID,
	})

	return nil
}
