package service

import (
	"blogCPT/internal/models"
)

// Authorizer - интерфейс-способность вместо сравнения username со строкой:
// право на операцию выводится из роли на самой записи пользователя.
type Authorizer interface {
	CanVerifyPosts(user *models.User) bool
	CanModifyPost(userID string, post *models.Post) bool
}

type roleAuthorizer struct{}

func NewAuthorizer() Authorizer {
	return &roleAuthorizer{}
}

func (a *roleAuthorizer) CanVerifyPosts(user *models.User) bool {
	if user == nil {
		return false
	}
	return user.Role == models.RoleAdmin
}

// CanModifyPost - изменять и удалять пост может только его автор.
func (a *roleAuthorizer) CanModifyPost(userID string, post *models.Post) bool {
	if userID == "" || post == nil {
		return false
	}
	return post.AuthorID == userID
}
