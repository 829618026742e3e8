package service

import (
	"context"
	"fmt"

	"blogCPT/internal/config"
	"blogCPT/internal/models"
	"blogCPT/internal/repository"
)

type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type PostService interface {
	CreatePost(ctx context.Context, req repository.CreatePostRequest) (*models.Post, error)
	GetPost(ctx context.Context, postID string) (*models.Post, error)
	ViewPost(ctx context.Context, postID string) (*models.Post, error)
	UpdatePost(ctx context.Context, actorID string, req repository.UpdatePostRequest) (*models.Post, error)
	DeletePost(ctx context.Context, actorID, postID string) error
	ForwardPost(ctx context.Context, actorID, postID string) (*models.Post, error)
	VerifyPost(ctx context.Context, actor *models.User, postID string, verified bool) error
	ListPosts(ctx context.Context, page int) ([]models.Post, *Pagination, error)
	ListUserPosts(ctx context.Context, username string, page int) (*models.User, []models.Post, *Pagination, error)
}

type postService struct {
	postRepo   repository.PostRepository
	userRepo   repository.UserRepository
	authorizer Authorizer
	viewPolicy *ViewPolicy
	cfg        *config.Config
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository, authorizer Authorizer, viewPolicy *ViewPolicy, cfg *config.Config) PostService {
	return &postService{
		postRepo:   postRepo,
		userRepo:   userRepo,
		authorizer: authorizer,
		viewPolicy: viewPolicy,
		cfg:        cfg,
	}
}

func (p *postService) CreatePost(ctx context.Context, req repository.CreatePostRequest) (*models.Post, error) {
	post := &models.Post{
		AuthorID:  req.AuthorID,
		Title:     req.Title,
		Content:   req.Content,
		Font:      req.Font,
		FontColor: req.FontColor,
	}

	err := p.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (p *postService) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	return p.postRepo.GetByID(ctx, postID)
}

// ViewPost читает пост и применяет политику просмотров: счётчик
// увеличивается на 0 или 1 по взвешенному жребию.
func (p *postService) ViewPost(ctx context.Context, postID string) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	delta := p.viewPolicy.Draw()
	if delta > 0 {
		err = p.postRepo.IncrementViews(ctx, postID, delta)
		if err != nil {
			return nil, err
		}
		post.Views += delta
	}

	return post, nil
}

// UpdatePost меняет пост от имени actorID. Не автор получает ErrForbidden,
// пост остаётся нетронутым. Первое обновление выставляет is_edited.
func (p *postService) UpdatePost(ctx context.Context, actorID string, req repository.UpdatePostRequest) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		return nil, err
	}

	if !p.authorizer.CanModifyPost(actorID, post) {
		return nil, fmt.Errorf("изменение чужого поста: %w", ErrForbidden)
	}

	post.Title = req.Title
	post.Content = req.Content
	if req.Font != "" {
		post.Font = req.Font
	}
	if req.FontColor != "" {
		post.FontColor = req.FontColor
	}
	post.IsEdited = true

	err = p.postRepo.Update(ctx, post)
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (p *postService) DeletePost(ctx context.Context, actorID, postID string) error {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if !p.authorizer.CanModifyPost(actorID, post) {
		return fmt.Errorf("удаление чужого поста: %w", ErrForbidden)
	}

	return p.postRepo.Delete(ctx, postID)
}

// ForwardPost создаёт новый независимый пост с контентом и стилем
// исходного. Автором становится пересылающий, не исходный автор.
func (p *postService) ForwardPost(ctx context.Context, actorID, postID string) (*models.Post, error) {
	original, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	forwarded := &models.Post{
		AuthorID:    actorID,
		Title:       original.Title,
		Content:     original.Content,
		Font:        original.Font,
		FontColor:   original.FontColor,
		IsForwarded: true,
	}

	err = p.postRepo.Create(ctx, forwarded)
	if err != nil {
		return nil, err
	}

	return forwarded, nil
}

func (p *postService) VerifyPost(ctx context.Context, actor *models.User, postID string, verified bool) error {
	if !p.authorizer.CanVerifyPosts(actor) {
		return fmt.Errorf("верификация поста доступна только администратору: %w", ErrForbidden)
	}

	_, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	return p.postRepo.SetVerified(ctx, postID, verified)
}

func (p *postService) ListPosts(ctx context.Context, page int) ([]models.Post, *Pagination, error) {
	if page < 1 {
		page = 1
	}

	posts, err := p.postRepo.ListPage(ctx, page, p.cfg.PageSize)
	if err != nil {
		return nil, nil, err
	}

	total, err := p.postRepo.CountAll(ctx)
	if err != nil {
		return nil, nil, err
	}

	return posts, p.paginate(page, total), nil
}

// ListUserPosts требует существования пользователя, иначе ErrNotFound
// хранилища уходит наверх. Пустая страница за пределами ленты - не ошибка.
func (p *postService) ListUserPosts(ctx context.Context, username string, page int) (*models.User, []models.Post, *Pagination, error) {
	if page < 1 {
		page = 1
	}

	user, err := p.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, nil, nil, err
	}

	posts, err := p.postRepo.ListByAuthorPage(ctx, user.UserID, page, p.cfg.PageSize)
	if err != nil {
		return nil, nil, nil, err
	}

	total, err := p.postRepo.CountByAuthor(ctx, user.UserID)
	if err != nil {
		return nil, nil, nil, err
	}

	return user, posts, p.paginate(page, total), nil
}

func (p *postService) paginate(page, total int) *Pagination {
	return &Pagination{
		Page:       page,
		PageSize:   p.cfg.PageSize,
		Total:      total,
		TotalPages: (total + p.cfg.PageSize - 1) / p.cfg.PageSize,
	}
}
