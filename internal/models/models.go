package models

import (
	"time"
)

type User struct {
	UserID       string    `json:"userId" db:"user_id"`
	Name         string    `json:"name" db:"name"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Connections  []string  `json:"connections" db:"-"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// UserSummary - проекция автора для постов и комментариев (без email и хеша)
type UserSummary struct {
	UserID   string `json:"userId" db:"user_id"`
	Name     string `json:"name" db:"name"`
	Username string `json:"username" db:"username"`
}

type Post struct {
	PostID    string       `json:"postId" db:"post_id"`
	AuthorID  string       `json:"authorId" db:"author_id"`
	Content   string       `json:"content" db:"content"`
	ImageURL  string       `json:"imageUrl,omitempty" db:"image_url"`
	CreatedAt time.Time    `json:"createdAt" db:"created_at"`
	Author    *UserSummary `json:"author,omitempty" db:"-"`
	Comments  []Comment    `json:"comments" db:"-"`
	Likes     []string     `json:"likes" db:"-"`
}

type Comment struct {
	CommentID int64        `json:"commentId" db:"comment_id"`
	PostID    string       `json:"postId" db:"post_id"`
	AuthorID  string       `json:"authorId" db:"author_id"`
	Content   string       `json:"content" db:"content"`
	CreatedAt time.Time    `json:"createdAt" db:"created_at"`
	Author    *UserSummary `json:"author,omitempty" db:"-"`
}

type NotificationType string

const (
	NotificationLike               NotificationType = "like"
	NotificationComment            NotificationType = "comment"
	NotificationConnectionAccepted NotificationType = "connectionAccepted"
)

type Notification struct {
	NotificationID string           `json:"notificationId" db:"notification_id"`
	RecipientID    string           `json:"recipientId" db:"recipient_id"`
	Type           NotificationType `json:"type" db:"type"`
	ActorID        string           `json:"actorId" db:"actor_id"`
	PostID         string           `json:"postId,omitempty" db:"post_id"`
	Read           bool             `json:"read" db:"read"`
	CreatedAt      time.Time        `json:"createdAt" db:"created_at"`
}

// InteractionEvent - событие мутации поста, из которого диспетчер
// выводит уведомление. Engine никогда не создаёт Notification напрямую.
type InteractionEvent struct {
	Type        NotificationType
	ActorID     string
	RecipientID string
	PostID      string
	Content     string
}
