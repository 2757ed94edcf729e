package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/golang-jwt/jwt/v5"

	"unlinked/internal/config"
	"unlinked/internal/email"
	"unlinked/internal/logger"
	"unlinked/internal/models"
	"unlinked/internal/repository"
)

type SignupRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthService interface {
	Signup(ctx context.Context, req SignupRequest) (*models.User, string, error)
	Login(ctx context.Context, username, password string) (*models.User, string, error)
	GenerateToken(userID string) (string, error)
	ParseToken(tokenString string) (string, error)
}

type authService struct {
	userRepo repository.UserRepository
	mailer   email.Mailer
	cfg      *config.Config
	log      *logger.Logger
}

func NewAuthService(userRepo repository.UserRepository, mailer email.Mailer, cfg *config.Config, log *logger.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		mailer:   mailer,
		cfg:      cfg,
		log:      log,
	}
}

// Signup создает аккаунт и возвращает его вместе с подписанным токеном.
// Все проверки уникальности проходят до записи в хранилище.
func (s *authService) Signup(ctx context.Context, req SignupRequest) (*models.User, string, error) {
	if utf8.RuneCountInString(req.Password) < 6 {
		return nil, "", models.ErrPasswordTooShort
	}

	existing, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", models.ErrEmailExists
	}

	existing, err = s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", models.ErrUsernameExists
	}

	user := &models.User{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
	}

	err = s.userRepo.CreateUser(ctx, user, req.Password)
	if err != nil {
		return nil, "", fmt.Errorf("ошибка при создании пользователя: %w", err)
	}

	token, err := s.GenerateToken(user.UserID)
	if err != nil {
		return nil, "", err
	}

	// приветственное письмо - best-effort, ответ его не ждет
	profileURL := s.cfg.ClientURL + "/profile/" + user.Username
	go func(toEmail, toName, profileURL string) {
		if err := s.mailer.SendWelcomeEmail(context.Background(), toEmail, toName, profileURL); err != nil {
			s.log.Error().Err(err).Str("email", toEmail).Msg("не удалось отправить welcome email")
		}
	}(user.Email, user.Name, profileURL)

	user.PasswordHash = ""
	user.Connections = []string{}

	return user, token, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	user, err := s.userRepo.VerifyPassword(ctx, username, password)
	if err != nil {
		return nil, "", err
	}

	token, err := s.GenerateToken(user.UserID)
	if err != nil {
		return nil, "", err
	}

	user.PasswordHash = ""

	return user, token, nil
}

// GenerateToken выпускает токен HS256 со сроком жизни TokenDuration (3 дня).
func (s *authService) GenerateToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"userId": userID,
		"iat":    now.Unix(),
		"exp":    now.Add(s.cfg.TokenDuration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}

	return tokenString, nil
}

// ParseToken проверяет подпись и срок действия. Просроченный или чужой
// токен - штатный отрицательный результат ErrInvalidToken, не паника.
func (s *authService) ParseToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecretKey), nil
	})
	if err != nil || !token.Valid {
		return "", models.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", models.ErrInvalidToken
	}

	userID, ok := claims["userId"].(string)
	if !ok || userID == "" {
		return "", models.ErrInvalidToken
	}

	return userID, nil
}
