package models

import (
	"time"
)

const (
	RoleUser  = "User"
	RoleAdmin = "Admin"

	DefaultAvatar    = "default.jpg"
	DefaultFont      = "Poppins"
	DefaultFontColor = "#fff"
)

type User struct {
	UserID       string `json:"userId" db:"user_id"`
	Username     string `json:"username" db:"username"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
	Role         string `json:"role" db:"role"`
	AvatarFile   string `json:"avatarFile" db:"avatar_file"`
}

type Post struct {
	PostID      string    `json:"postId" db:"post_id"`
	AuthorID    string    `json:"authorId" db:"author_id"`
	Title       string    `json:"title" db:"title"`
	Content     string    `json:"content" db:"content"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	IsVerified  bool      `json:"isVerified" db:"is_verified"`
	IsEdited    bool      `json:"isEdited" db:"is_edited"`
	IsForwarded bool      `json:"isForwarded" db:"is_forwarded"`
	Views       int       `json:"views" db:"views"`
	Font        string    `json:"font" db:"font"`
	FontColor   string    `json:"fontColor" db:"font_color"`
}
