package service

import (
	"blogCPT/internal/config"
	"blogCPT/internal/repository"
	"blogCPT/internal/storage"
)

type Service struct {
	User  UserService
	Post  PostService
	Auth  AuthService
	Token TokenService
	Authz Authorizer
	Mail  Mailer
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	tokens := NewTokenService(cfg)
	mailer := NewMailer(cfg)
	authorizer := NewAuthorizer()
	viewPolicy := NewViewPolicy(cfg)

	return &Service{
		User:  NewUserService(rep.User, storage, cfg),
		Post:  NewPostService(rep.Post, rep.User, authorizer, viewPolicy, cfg),
		Auth:  NewAuthService(rep.User, tokens, mailer, cfg),
		Token: tokens,
		Authz: authorizer,
		Mail:  mailer,
	}
}
