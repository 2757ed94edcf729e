package service

import (
	"context"

	"unlinked/internal/config"
	"unlinked/internal/email"
	"unlinked/internal/logger"
	"unlinked/internal/models"
	"unlinked/internal/repository"
)

type NotificationService interface {
	Dispatch(ctx context.Context, event models.InteractionEvent)
	GetNotifications(ctx context.Context, recipientID string) ([]models.Notification, error)
	MarkRead(ctx context.Context, notificationID, recipientID string) error
	Delete(ctx context.Context, notificationID, recipientID string) error
}

type notificationService struct {
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
	mailer           email.Mailer
	cfg              *config.Config
	log              *logger.Logger
}

func NewNotificationService(notificationRepo repository.NotificationRepository, userRepo repository.UserRepository, mailer email.Mailer, cfg *config.Config, log *logger.Logger) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		mailer:           mailer,
		cfg:              cfg,
		log:              log,
	}
}

// Dispatch превращает событие взаимодействия в запись уведомления и,
// для части типов, в письмо. Сбои здесь логируются и не влияют на
// результат запроса, который это событие породил. Действия над
// собственным постом уведомлений не создают.
func (s *notificationService) Dispatch(ctx context.Context, event models.InteractionEvent) {
	if event.ActorID == event.RecipientID {
		return
	}

	notification := &models.Notification{
		RecipientID: event.RecipientID,
		Type:        event.Type,
		ActorID:     event.ActorID,
		PostID:      event.PostID,
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		s.log.Error().Err(err).
			Str("type", string(event.Type)).
			Str("recipientId", event.RecipientID).
			Msg("не удалось сохранить уведомление")
		return
	}

	// письмо уходит в отдельной горутине: ответ пользователю
	// не держится открытым в ожидании почтового сервиса
	go s.sendEmail(event)
}

func (s *notificationService) sendEmail(event models.InteractionEvent) {
	ctx := context.Background()

	var err error
	switch event.Type {
	case models.NotificationComment:
		var recipient, actor *models.User
		recipient, err = s.userRepo.GetUserByID(ctx, event.RecipientID)
		if err != nil {
			break
		}
		actor, err = s.userRepo.GetUserByID(ctx, event.ActorID)
		if err != nil {
			break
		}
		postURL := s.cfg.ClientURL + "/post/" + event.PostID
		err = s.mailer.SendCommentNotificationEmail(ctx, recipient.Email, recipient.Name, actor.Name, postURL, event.Content)
	case models.NotificationConnectionAccepted:
		var recipient, actor *models.User
		recipient, err = s.userRepo.GetUserByID(ctx, event.RecipientID)
		if err != nil {
			break
		}
		actor, err = s.userRepo.GetUserByID(ctx, event.ActorID)
		if err != nil {
			break
		}
		err = s.mailer.SendConnectionAcceptedEmail(ctx, recipient.Email, recipient.Name, actor.Name)
	default:
		// лайки письмом не дублируются
		return
	}

	if err != nil {
		s.log.Error().Err(err).
			Str("type", string(event.Type)).
			Str("recipientId", event.RecipientID).
			Msg("не удалось отправить письмо-уведомление")
	}
}

func (s *notificationService) GetNotifications(ctx context.Context, recipientID string) ([]models.Notification, error) {
	return s.notificationRepo.GetByRecipient(ctx, recipientID)
}

func (s *notificationService) MarkRead(ctx context.Context, notificationID, recipientID string) error {
	return s.notificationRepo.MarkRead(ctx, notificationID, recipientID)
}

func (s *notificationService) Delete(ctx context.Context, notificationID, recipientID string) error {
	return s.notificationRepo.Delete(ctx, notificationID, recipientID)
}
