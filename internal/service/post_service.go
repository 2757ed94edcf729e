package service

import (
	"context"
	"fmt"

	"unlinked/internal/config"
	"unlinked/internal/logger"
	"unlinked/internal/models"
	"unlinked/internal/repository"
	"unlinked/internal/storage"
)

type PostService interface {
	CreatePost(ctx context.Context, identity *models.User, content, imageName string, imageData []byte) (*models.Post, error)
	DeletePost(ctx context.Context, identity *models.User, postID string) error
	AddComment(ctx context.Context, identity *models.User, postID, content string) (*models.Post, error)
	ToggleLike(ctx context.Context, identity *models.User, postID string) (*models.Post, error)
	GetFeed(ctx context.Context, identity *models.User) ([]models.Post, error)
	GetPostByID(ctx context.Context, postID string) (*models.Post, error)
}

type postService struct {
	postRepo      repository.PostRepository
	storage       storage.Storage
	notifications NotificationService
	cfg           *config.Config
	log           *logger.Logger
}

func NewPostService(postRepo repository.PostRepository, storage storage.Storage, notifications NotificationService, cfg *config.Config, log *logger.Logger) PostService {
	return &postService{
		postRepo:      postRepo,
		storage:       storage,
		notifications: notifications,
		cfg:           cfg,
		log:           log,
	}
}

// CreatePost: если есть картинка, она грузится в хранилище ДО создания
// поста. Пост без своей заявленной картинки не создается.
func (p *postService) CreatePost(ctx context.Context, identity *models.User, content, imageName string, imageData []byte) (*models.Post, error) {
	post := &models.Post{
		AuthorID: identity.UserID,
		Content:  content,
	}

	if len(imageData) > 0 {
		_, imageURL, err := p.storage.UploadImage(ctx, imageName, imageData)
		if err != nil {
			return nil, fmt.Errorf("ошибка загрузки изображения: %w", err)
		}
		post.ImageURL = imageURL
	}

	err := p.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	return p.postRepo.GetByID(ctx, post.PostID)
}

// DeletePost удаляет пост только для его автора. Чистка картинки в
// объектном хранилище best-effort: ее провал не откатывает удаление.
func (p *postService) DeletePost(ctx context.Context, identity *models.User, postID string) error {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if post.AuthorID != identity.UserID {
		return models.ErrForbidden
	}

	err = p.postRepo.Delete(ctx, postID)
	if err != nil {
		return err
	}

	if post.ImageURL != "" {
		objectName := storage.ObjectNameFromURL(post.ImageURL, p.cfg.MinIO.BucketName)
		if err := p.storage.DeleteImage(ctx, objectName); err != nil {
			p.log.Warn().Err(err).Str("postId", postID).Msg("не удалось удалить картинку поста")
		}
	}

	return nil
}

// AddComment добавляет комментарий и всегда возвращает обновленный пост.
// Событие для диспетчера уходит только если комментатор не автор поста.
func (p *postService) AddComment(ctx context.Context, identity *models.User, postID, content string) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:   postID,
		AuthorID: identity.UserID,
		Content:  content,
	}

	err = p.postRepo.AddComment(ctx, comment)
	if err != nil {
		return nil, err
	}

	if post.AuthorID != identity.UserID {
		p.notifications.Dispatch(ctx, models.InteractionEvent{
			Type:        models.NotificationComment,
			ActorID:     identity.UserID,
			RecipientID: post.AuthorID,
			PostID:      postID,
			Content:     content,
		})
	}

	return p.postRepo.GetByID(ctx, postID)
}

// ToggleLike - идемпотентный переключатель лайка. Событие уходит только
// на ветке добавления и только если лайкнул не автор; снятие лайка
// уведомлений не порождает никогда.
func (p *postService) ToggleLike(ctx context.Context, identity *models.User, postID string) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	liked, err := p.postRepo.ToggleLike(ctx, postID, identity.UserID)
	if err != nil {
		return nil, err
	}

	if liked && post.AuthorID != identity.UserID {
		p.notifications.Dispatch(ctx, models.InteractionEvent{
			Type:        models.NotificationLike,
			ActorID:     identity.UserID,
			RecipientID: post.AuthorID,
			PostID:      postID,
		})
	}

	return p.postRepo.GetByID(ctx, postID)
}

// GetFeed: посты самого пользователя и его connections, новые сверху.
func (p *postService) GetFeed(ctx context.Context, identity *models.User) ([]models.Post, error) {
	authorIDs := append([]string{identity.UserID}, identity.Connections...)
	return p.postRepo.GetFeed(ctx, authorIDs)
}

func (p *postService) GetPostByID(ctx context.Context, postID string) (*models.Post, error) {
	return p.postRepo.GetByID(ctx, postID)
}
