package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"unlinked/internal/models"
)

type notificationRepository struct {
	db *sqlx.DB
}

func NewNotificationRepository(db *sqlx.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	if notification.NotificationID == "" {
		notification.NotificationID = uuid.New().String()
	}
	notification.Read = false
	notification.CreatedAt = time.Now()

	query := `
		INSERT INTO notifications (notification_id, recipient_id, type, actor_id, post_id, read, created_at)
		VALUES (:notification_id, :recipient_id, :type, :actor_id, :post_id, :read, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, notification)
	if err != nil {
		return fmt.Errorf("ошибка при создании уведомления: %w", err)
	}

	return nil
}

func (r *notificationRepository) GetByRecipient(ctx context.Context, recipientID string) ([]models.Notification, error) {
	notifications := []models.Notification{}

	query := `
		SELECT * FROM notifications
		WHERE recipient_id = $1
		ORDER BY created_at DESC
	`

	err := r.db.SelectContext(ctx, &notifications, query, recipientID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении уведомлений: %w", err)
	}

	return notifications, nil
}

// MarkRead и Delete фильтруют по recipient_id: чужое уведомление
// выглядит как отсутствующее.
func (r *notificationRepository) MarkRead(ctx context.Context, notificationID, recipientID string) error {
	query := `UPDATE notifications SET read = TRUE WHERE notification_id = $1 AND recipient_id = $2`

	result, err := r.db.ExecContext(ctx, query, notificationID, recipientID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении уведомления: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return models.ErrNotFound
	}

	return nil
}

func (r *notificationRepository) Delete(ctx context.Context, notificationID, recipientID string) error {
	query := `DELETE FROM notifications WHERE notification_id = $1 AND recipient_id = $2`

	result, err := r.db.ExecContext(ctx, query, notificationID, recipientID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении уведомления: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return models.ErrNotFound
	}

	return nil
}
