package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"unlinked/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	VerifyPassword(ctx context.Context, username, password string) (*models.User, error)
	GetConnections(ctx context.Context, userID string) ([]string, error)
	AddConnection(ctx context.Context, userID, connectionID string) error
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	GetFeed(ctx context.Context, authorIDs []string) ([]models.Post, error)
	Delete(ctx context.Context, postID string) error
	AddComment(ctx context.Context, comment *models.Comment) error
	ToggleLike(ctx context.Context, postID, userID string) (bool, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	GetByRecipient(ctx context.Context, recipientID string) ([]models.Notification, error)
	MarkRead(ctx context.Context, notificationID, recipientID string) error
	Delete(ctx context.Context, notificationID, recipientID string) error
}

type Repository struct {
	User         UserRepository
	Post         PostRepository
	Notification NotificationRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:         NewUserRepository(db),
		Post:         NewPostRepository(db),
		Notification: NewNotificationRepository(db),
	}
}
