package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"blogCPT/internal/middleware"
	"blogCPT/internal/models"
	"blogCPT/internal/repository"
)

type AccountResponse struct {
	Message   string       `json:"message,omitempty"`
	Category  string       `json:"category,omitempty"`
	User      UserResponse `json:"user"`
	AvatarURL string       `json:"avatarUrl"`
	Legend    string       `json:"legend"`
}

type UserPostsResponse struct {
	User       UserResponse  `json:"user"`
	Posts      []models.Post `json:"posts"`
	Pagination interface{}   `json:"pagination"`
}

func (h *Handlers) avatarURL(user *models.User) string {
	if user.AvatarFile == models.DefaultAvatar {
		return h.Cfg.AppBaseURL + "/static/profile_pics/default.jpg"
	}
	return h.Storage.AvatarURL(user.AvatarFile)
}

// Account возвращает данные текущего аккаунта и обновляет
// username/email/аватар по multipart-форме.
func (h *Handlers) Account(w http.ResponseWriter, r *http.Request) {
	userID := middleware.CurrentUserID(r.Context())

	if r.Method == http.MethodGet {
		user, err := h.UserService.GetUser(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeSuccess(w, AccountResponse{
			User: UserResponse{
				UserId:     user.UserID,
				Username:   user.Username,
				Email:      user.Email,
				Role:       user.Role,
				AvatarFile: user.AvatarFile,
			},
			AvatarURL: h.avatarURL(user),
			Legend:    "Update your Account",
		}, http.StatusOK)
		return
	}

	err := r.ParseMultipartForm(h.Cfg.MaxUploadSize)
	if err != nil {
		WriteError(w, "Неверный формат формы", http.StatusBadRequest)
		return
	}

	username := r.FormValue("username")
	email := r.FormValue("email")

	if username == "" || email == "" {
		writeValidationError(w, "Username и email обязательны", map[string]string{
			"username": username,
			"email":    email,
		})
		return
	}

	req := repository.UpdateUserRequest{
		UserID:   userID,
		Username: username,
		Email:    email,
	}

	// optional avatar image
	file, header, err := r.FormFile("picture")
	if err == nil {
		defer file.Close()

		objectName, err := h.UserService.UploadAvatar(r.Context(), userID, header.Filename, file, header.Size)
		if err != nil {
			WriteError(w, "Не удалось загрузить аватар", http.StatusInternalServerError)
			return
		}
		req.AvatarFile = objectName
	}

	user, err := h.UserService.UpdateAccount(r.Context(), req)
	if err != nil {
		// загруженный объект без записи в users никому не принадлежит
		if req.AvatarFile != "" {
			if rmErr := h.Storage.RemoveAvatar(r.Context(), req.AvatarFile); rmErr != nil {
				log.Printf("Предупреждение: не удалось удалить осиротевший аватар %s: %v", req.AvatarFile, rmErr)
			}
		}
		if errors.Is(err, repository.ErrDuplicate) {
			writeValidationError(w, "Username или email уже заняты", map[string]string{
				"username": username,
				"email":    email,
			})
			return
		}
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, AccountResponse{
		Message:  "Аккаунт обновлён!",
		Category: "success",
		User: UserResponse{
			UserId:     user.UserID,
			Username:   user.Username,
			Email:      user.Email,
			Role:       user.Role,
			AvatarFile: user.AvatarFile,
		},
		AvatarURL: h.avatarURL(user),
		Legend:    "Update your Account",
	}, http.StatusOK)
}

// UserPosts - лента конкретного автора. Несуществующий username даёт 404,
// страница за пределами ленты - пустой список.
func (h *Handlers) UserPosts(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	user, posts, pagination, err := h.PostService.ListUserPosts(r.Context(), username, page)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, UserPostsResponse{
		User: UserResponse{
			UserId:     user.UserID,
			Username:   user.Username,
			Email:      user.Email,
			Role:       user.Role,
			AvatarFile: user.AvatarFile,
		},
		Posts:      posts,
		Pagination: pagination,
	}, http.StatusOK)
}
