package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"unlinked/internal/models"
)

type PostRepositoryImpl struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{db: db}
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}
	post.CreatedAt = time.Now()

	query := `
		INSERT INTO posts (post_id, author_id, content, image_url, created_at)
		VALUES (:post_id, :author_id, :content, :image_url, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("ошибка при создании поста: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	var post models.Post

	query := `SELECT * FROM posts WHERE post_id = $1`

	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	if err := r.populatePost(ctx, &post); err != nil {
		return nil, err
	}

	return &post, nil
}

// GetFeed возвращает посты указанных авторов, новые сверху.
func (r *PostRepositoryImpl) GetFeed(ctx context.Context, authorIDs []string) ([]models.Post, error) {
	posts := []models.Post{}

	query := `
		SELECT * FROM posts
		WHERE author_id = ANY($1)
		ORDER BY created_at DESC
	`

	err := r.db.SelectContext(ctx, &posts, query, pq.Array(authorIDs))
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении ленты: %w", err)
	}

	for i := range posts {
		if err := r.populatePost(ctx, &posts[i]); err != nil {
			return nil, err
		}
	}

	return posts, nil
}

func (r *PostRepositoryImpl) Delete(ctx context.Context, postID string) error {
	query := `DELETE FROM posts WHERE post_id = $1`

	result, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении поста: %w", err)
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

func (r *PostRepositoryImpl) AddComment(ctx context.Context, comment *models.Comment) error {
	comment.CreatedAt = time.Now()

	query := `
		INSERT INTO comments (post_id, author_id, content, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING comment_id
	`

	err := r.db.GetContext(ctx, &comment.CommentID, query,
		comment.PostID, comment.AuthorID, comment.Content, comment.CreatedAt)
	if err != nil {
		return fmt.Errorf("ошибка при создании комментария: %w", err)
	}

	return nil
}

// ToggleLike - идемпотентный переключатель: сначала пробуем снять лайк,
// если снимать нечего - ставим. Каждая ветка - один атомарный запрос.
// Возвращает true, если лайк был добавлен.
func (r *PostRepositoryImpl) ToggleLike(ctx context.Context, postID, userID string) (bool, error) {
	deleteQuery := `DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, deleteQuery, postID, userID)
	if err != nil {
		return false, fmt.Errorf("ошибка при снятии лайка: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected > 0 {
		// unlike
		return false, nil
	}

	insertQuery := `
		INSERT INTO post_likes (post_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`

	_, err = r.db.ExecContext(ctx, insertQuery, postID, userID)
	if err != nil {
		return false, fmt.Errorf("ошибка при добавлении лайка: %w", err)
	}

	return true, nil
}

// populatePost подтягивает проекции автора, комментарии с их авторами и
// список лайкнувших.
func (r *PostRepositoryImpl) populatePost(ctx context.Context, post *models.Post) error {
	var author models.UserSummary

	authorQuery := `SELECT user_id, name, username FROM users WHERE user_id = $1`

	err := r.db.GetContext(ctx, &author, authorQuery, post.AuthorID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("ошибка при получении автора поста: %w", err)
	}
	if err == nil {
		post.Author = &author
	}

	type commentRow struct {
		models.Comment
		AuthorName     string `db:"author_name"`
		AuthorUsername string `db:"author_username"`
	}

	commentRows := []commentRow{}

	// comment_id растет монотонно, порядок вставки сохраняется
	commentsQuery := `
		SELECT c.comment_id, c.post_id, c.author_id, c.content, c.created_at,
		       u.name AS author_name, u.username AS author_username
		FROM comments c
		JOIN users u ON u.user_id = c.author_id
		WHERE c.post_id = $1
		ORDER BY c.comment_id
	`

	err = r.db.SelectContext(ctx, &commentRows, commentsQuery, post.PostID)
	if err != nil {
		return fmt.Errorf("ошибка при получении комментариев: %w", err)
	}

	comments := make([]models.Comment, 0, len(commentRows))
	for _, row := range commentRows {
		comment := row.Comment
		comment.Author = &models.UserSummary{
			UserID:   row.AuthorID,
			Name:     row.AuthorName,
			Username: row.AuthorUsername,
		}
		comments = append(comments, comment)
	}

	post.Comments = comments

	likes := []string{}

	likesQuery := `SELECT user_id FROM post_likes WHERE post_id = $1 ORDER BY created_at`

	err = r.db.SelectContext(ctx, &likes, likesQuery, post.PostID)
	if err != nil {
		return fmt.Errorf("ошибка при получении лайков: %w", err)
	}

	post.Likes = likes

	return nil
}
