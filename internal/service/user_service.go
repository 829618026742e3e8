package service

import (
	"context"
	"fmt"
	"io"
	"log"

	"blogCPT/internal/config"
	"blogCPT/internal/models"
	"blogCPT/internal/repository"
	"blogCPT/internal/storage"
)

type UserService interface {
	GetUser(ctx context.Context, userID string) (*models.User, error)
	UpdateAccount(ctx context.Context, req repository.UpdateUserRequest) (*models.User, error)
	UploadAvatar(ctx context.Context, userID, fileName string, file io.Reader, size int64) (string, error)
}

type userService struct {
	userRepo repository.UserRepository
	storage  storage.Storage
	cfg      *config.Config
}

func NewUserService(userRepo repository.UserRepository, storage storage.Storage, cfg *config.Config) UserService {
	return &userService{
		userRepo: userRepo,
		storage:  storage,
		cfg:      cfg,
	}
}

func (s *userService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}

// UpdateAccount обновляет username, email и имя аватара текущего пользователя.
func (s *userService) UpdateAccount(ctx context.Context, req repository.UpdateUserRequest) (*models.User, error) {
	// get user by id
	user, err := s.userRepo.GetUserByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	oldAvatar := user.AvatarFile

	user.Username = req.Username
	user.Email = req.Email
	if req.AvatarFile != "" {
		user.AvatarFile = req.AvatarFile
	}

	// update user
	err = s.userRepo.UpdateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	// старый аватар больше не нужен, сентинел не трогаем
	if req.AvatarFile != "" && oldAvatar != models.DefaultAvatar && oldAvatar != req.AvatarFile {
		if err := s.storage.RemoveAvatar(ctx, oldAvatar); err != nil {
			log.Printf("Предупреждение: не удалось удалить старый аватар %s: %v", oldAvatar, err)
		}
	}

	return user, nil
}

// UploadAvatar кладёт картинку в MinIO и возвращает имя объекта
// для записи в avatar_file.
func (s *userService) UploadAvatar(ctx context.Context, userID, fileName string, file io.Reader, size int64) (string, error) {
	if size > s.cfg.MaxUploadSize {
		return "", fmt.Errorf("файл превышает максимальный размер %d байт", s.cfg.MaxUploadSize)
	}

	objectName, err := s.storage.UploadAvatar(ctx, userID, fileName, file, size)
	if err != nil {
		return "", fmt.Errorf("ошибка загрузки аватара в MinIO: %w", err)
	}

	return objectName, nil
}
