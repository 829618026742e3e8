package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"blogCPT/internal/models"
)

type PostRepositoryImpl struct {
	db *sqlx.DB
}

type CreatePostRequest struct {
	AuthorID  string `json:"author_id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Font      string `json:"font"`
	FontColor string `json:"font_color"`
}

type UpdatePostRequest struct {
	PostID    string `json:"post_id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Font      string `json:"font"`
	FontColor string `json:"font_color"`
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{db: db}
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}
	if post.Font == "" {
		post.Font = models.DefaultFont
	}
	if post.FontColor == "" {
		post.FontColor = models.DefaultFontColor
	}

	post.CreatedAt = time.Now()

	query := `
        INSERT INTO posts
        (post_id, author_id, title, content, created_at, is_verified, is_edited, is_forwarded, views, font, font_color)
        VALUES
        (:post_id, :author_id, :title, :content, :created_at, :is_verified, :is_edited, :is_forwarded, :views, :font, :font_color)
    `

	_, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("ошибка при создании поста: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	query := `SELECT * FROM posts WHERE post_id = $1`

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пост с ID %s: %w", postID, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	return &post, nil
}

// ListPage возвращает страницу ленты, новые посты первыми.
// Страница за пределами ленты даёт пустой срез, не ошибку.
func (r *PostRepositoryImpl) ListPage(ctx context.Context, page, pageSize int) ([]models.Post, error) {
	if page < 1 {
		page = 1
	}

	query := `
        SELECT * FROM posts
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2
    `

	posts := []models.Post{}
	err := r.db.SelectContext(ctx, &posts, query, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении ленты постов: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) ListByAuthorPage(ctx context.Context, authorID string, page, pageSize int) ([]models.Post, error) {
	if page < 1 {
		page = 1
	}

	query := `
        SELECT * FROM posts
        WHERE author_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3
    `

	posts := []models.Post{}
	err := r.db.SelectContext(ctx, &posts, query, authorID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов автора: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) CountAll(ctx context.Context) (int, error) {
	var count int

	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM posts`)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте постов: %w", err)
	}

	return count, nil
}

func (r *PostRepositoryImpl) CountByAuthor(ctx context.Context, authorID string) (int, error) {
	var count int

	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM posts WHERE author_id = $1`, authorID)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте постов автора: %w", err)
	}

	return count, nil
}

func (r *PostRepositoryImpl) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts SET
			title = :title,
			content = :content,
			font = :font,
			font_color = :font_color,
			is_edited = :is_edited
		WHERE post_id = :post_id AND author_id = :author_id
	`

	result, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пост с ID %s: %w", post.PostID, ErrNotFound)
	}

	return nil
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
		return fmt.Errorf("пост с ID %s: %w", postID, ErrNotFound)
	}

	return nil
}

func (r *PostRepositoryImpl) SetVerified(ctx context.Context, postID string, verified bool) error {
	query := `UPDATE posts SET is_verified = $1 WHERE post_id = $2`

	result, err := r.db.ExecContext(ctx, query, verified, postID)
	if err != nil {
		return fmt.Errorf("ошибка при верификации поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пост с ID %s: %w", postID, ErrNotFound)
	}

	return nil
}

// IncrementViews прибавляет delta к счётчику просмотров. Счётчик только растёт.
func (r *PostRepositoryImpl) IncrementViews(ctx context.Context, postID string, delta int) error {
	if delta <= 0 {
		return nil
	}

	query := `UPDATE posts SET views = views + $1 WHERE post_id = $2`

	result, err := r.db.ExecContext(ctx, query, delta, postID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении счётчика просмотров: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пост с ID %s: %w", postID, ErrNotFound)
	}

	return nil
}
