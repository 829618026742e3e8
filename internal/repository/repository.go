package repository

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"blogCPT/internal/models"
)

// Сентинельные ошибки слоя хранения
var (
	ErrNotFound  = errors.New("запись не найдена")
	ErrDuplicate = errors.New("запись уже существует")
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, userID, password string) error
	VerifyPassword(ctx context.Context, username, password string) (*models.User, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	ListPage(ctx context.Context, page, pageSize int) ([]models.Post, error)
	ListByAuthorPage(ctx context.Context, authorID string, page, pageSize int) ([]models.Post, error)
	CountAll(ctx context.Context) (int, error)
	CountByAuthor(ctx context.Context, authorID string) (int, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, postID string) error
	SetVerified(ctx context.Context, postID string, verified bool) error
	IncrementViews(ctx context.Context, postID string, delta int) error
}

type StatsRepository interface {
	CountTablesDB() (int, error)
}

type Repository struct {
	User  UserRepository
	Post  PostRepository
	Stats StatsRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:  NewUserRepository(db),
		Post:  NewPostRepository(db),
		Stats: NewStatsRepository(db),
	}
}
