package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"blogCPT/internal/config"
	"blogCPT/internal/models"
	"blogCPT/internal/repository"
)

const sessionTokenPurpose = "session"

// AuthService управляет переходами сессии: Anonymous <-> Authenticated.
// Сессия целиком живёт в подписанном токене на стороне клиента,
// серверной таблицы сессий нет.
type AuthService interface {
	Register(ctx context.Context, req repository.CreateUserRequest) (*models.User, error)
	Login(ctx context.Context, username, password string, remember bool) (*models.User, string, time.Duration, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, tokenString, newPassword string) error
}

type authService struct {
	userRepo repository.UserRepository
	tokens   TokenService
	mailer   Mailer
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, tokens TokenService, mailer Mailer, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		mailer:   mailer,
		cfg:      cfg,
	}
}

func (s *authService) Register(ctx context.Context, req repository.CreateUserRequest) (*models.User, error) {
	user := &models.User{
		Username:   req.Username,
		Email:      req.Email,
		Role:       models.RoleUser,
		AvatarFile: models.DefaultAvatar,
	}

	err := s.userRepo.CreateUser(ctx, user, req.Password)
	if err != nil {
		return nil, fmt.Errorf("ошибка при создании пользователя: %w", err)
	}

	return user, nil
}

// Login проверяет пару username/пароль и выдаёт сессионный токен.
// Неизвестный username и неверный пароль дают один и тот же ответ.
func (s *authService) Login(ctx context.Context, username, password string, remember bool) (*models.User, string, time.Duration, error) {
	user, err := s.userRepo.VerifyPassword(ctx, username, password)
	if err != nil {
		return nil, "", 0, ErrInvalidCredentials
	}

	duration := s.cfg.SessionDuration
	if remember {
		duration = s.cfg.RememberDuration
	}

	sessionToken, err := s.generateSessionToken(user, duration)
	if err != nil {
		return nil, "", 0, fmt.Errorf("ошибка генерации сессионного токена: %w", err)
	}

	return user, sessionToken, duration, nil
}

func (s *authService) generateSessionToken(user *models.User, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"userId":   user.UserID,
		"username": user.Username,
		"role":     user.Role,
		"purpose":  sessionTokenPurpose,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(duration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}

	return tokenString, nil
}

// RequestPasswordReset выпускает токен сброса и отправляет письмо.
// Для незарегистрированного email возвращает ErrNotFound хранилища,
// хендлер превращает его в inline-ошибку формы.
func (s *authService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}

	token, err := s.tokens.Issue(user.UserID, s.cfg.ResetTokenTTL)
	if err != nil {
		return fmt.Errorf("ошибка выпуска токена сброса: %w", err)
	}

	resetURL := fmt.Sprintf("%s/reset_password/%s", s.cfg.AppBaseURL, token)

	err = s.mailer.SendPasswordReset(user.Email, resetURL)
	if err != nil {
		return fmt.Errorf("ошибка отправки письма для сброса пароля: %w", err)
	}

	return nil
}

func (s *authService) ResetPassword(ctx context.Context, tokenString, newPassword string) error {
	userID, err := s.tokens.Verify(tokenString)
	if err != nil {
		return err
	}

	err = s.userRepo.UpdatePassword(ctx, userID, newPassword)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// пользователь исчез после выпуска токена
			return ErrInvalidToken
		}
		return fmt.Errorf("ошибка при обновлении пароля: %w", err)
	}

	return nil
}
