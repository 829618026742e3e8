package handlers

import (
	"github.com/go-playground/validator/v10"

	"blogCPT/internal/config"
	"blogCPT/internal/repository"
	"blogCPT/internal/service"
	"blogCPT/internal/storage"
)

type Handlers struct {
	AuthService service.AuthService
	UserService service.UserService
	PostService service.PostService
	Tokens      service.TokenService
	Authz       service.Authorizer
	UserRepo    repository.UserRepository
	StatsRepo   repository.StatsRepository
	Storage     storage.Storage
	Cfg         *config.Config
	Validate    *validator.Validate
}

func NewHandlers(repo *repository.Repository, service *service.Service, storage storage.Storage, config *config.Config) *Handlers {
	return &Handlers{
		AuthService: service.Auth,
		UserService: service.User,
		PostService: service.Post,
		Tokens:      service.Token,
		Authz:       service.Authz,
		UserRepo:    repo.User,
		StatsRepo:   repo.Stats,
		Storage:     storage,
		Cfg:         config,
		Validate:    validator.New(),
	}
}
