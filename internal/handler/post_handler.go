package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"blogCPT/internal/middleware"
	"blogCPT/internal/models"
	"blogCPT/internal/repository"
)

type PostRequest struct {
	Title     string `json:"title" validate:"required"`
	Content   string `json:"content" validate:"required"`
	Font      string `json:"font"`
	FontColor string `json:"fontColor"`
}

type PostViewResponse struct {
	Post      models.Post `json:"post"`
	Validated bool        `json:"validated"`
}

type VerifyRequest struct {
	Verify bool `json:"verify"`
}

func (h *Handlers) NewPost(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		writeSuccess(w, map[string]interface{}{
			"legend": "Create a Post",
			"form":   PostRequest{Font: models.DefaultFont, FontColor: models.DefaultFontColor},
		}, http.StatusOK)
		return
	}

	var req PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeValidationError(w, "Заголовок и текст поста обязательны", req)
		return
	}

	post, err := h.PostService.CreatePost(r.Context(), repository.CreatePostRequest{
		AuthorID:  middleware.CurrentUserID(r.Context()),
		Title:     req.Title,
		Content:   req.Content,
		Font:      req.Font,
		FontColor: req.FontColor,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]interface{}{
		"message":  "Пост создан!",
		"category": "success",
		"post":     post,
		"redirect": "/home",
	}, http.StatusCreated)
}

// ViewPost отдаёт пост и применяет политику просмотров.
func (h *Handlers) ViewPost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	post, err := h.PostService.ViewPost(r.Context(), postID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, PostViewResponse{
		Post:      *post,
		Validated: middleware.CurrentRole(r.Context()) == models.RoleAdmin,
	}, http.StatusOK)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	// GET - форма с текущими полями поста, доступна только автору
	if r.Method == http.MethodGet {
		post, err := h.PostService.GetPost(r.Context(), postID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		if !h.Authz.CanModifyPost(middleware.CurrentUserID(r.Context()), post) {
			WriteError(w, "Доступ запрещен", http.StatusForbidden)
			return
		}

		writeSuccess(w, map[string]interface{}{
			"legend": "Update Post",
			"form": PostRequest{
				Title:     post.Title,
				Content:   post.Content,
				Font:      post.Font,
				FontColor: post.FontColor,
			},
		}, http.StatusOK)
		return
	}

	var req PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeValidationError(w, "Заголовок и текст поста обязательны", req)
		return
	}

	post, err := h.PostService.UpdatePost(r.Context(), middleware.CurrentUserID(r.Context()), repository.UpdatePostRequest{
		PostID:    postID,
		Title:     req.Title,
		Content:   req.Content,
		Font:      req.Font,
		FontColor: req.FontColor,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]interface{}{
		"message":  "Пост обновлён",
		"category": "success",
		"post":     post,
		"redirect": "/post/" + post.PostID + "/view",
	}, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	err := h.PostService.DeletePost(r.Context(), middleware.CurrentUserID(r.Context()), postID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, FlashResponse{
		Message:  "Пост удалён.",
		Category: "success",
		Redirect: "/home",
	}, http.StatusOK)
}

// ConfirmDeletePost - подтверждение перед удалением.
func (h *Handlers) ConfirmDeletePost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	post, err := h.PostService.GetPost(r.Context(), postID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if r.Method == http.MethodPost {
		writeSuccess(w, FlashResponse{
			Message:  "Подтверждено.",
			Category: "warning",
			Redirect: "/post/" + post.PostID + "/delete",
		}, http.StatusOK)
		return
	}

	writeSuccess(w, map[string]interface{}{
		"legend": "Are you sure?",
		"post":   post,
	}, http.StatusOK)
}

func (h *Handlers) ForwardPost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	forwarded, err := h.PostService.ForwardPost(r.Context(), middleware.CurrentUserID(r.Context()), postID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]interface{}{
		"message":  "Пост переслан!",
		"category": "success",
		"post":     forwarded,
		"redirect": "/home",
	}, http.StatusCreated)
}

// ValidatePost выставляет флаг верификации. Право проверяется по роли
// на записи пользователя, не по username.
func (h *Handlers) ValidatePost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	// роль берём из хранилища, а не из клиентского токена
	actor, err := h.UserRepo.GetUserByID(r.Context(), middleware.CurrentUserID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if r.Method == http.MethodGet {
		if !h.Authz.CanVerifyPosts(actor) {
			WriteError(w, "Доступ запрещен", http.StatusForbidden)
			return
		}

		post, err := h.PostService.GetPost(r.Context(), postID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeSuccess(w, map[string]interface{}{
			"legend": "Verify this Post",
			"post":   post,
		}, http.StatusOK)
		return
	}

	var req VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	err = h.PostService.VerifyPost(r.Context(), actor, postID, req.Verify)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, FlashResponse{
		Message:  "Пост верифицирован.",
		Category: "success",
		Redirect: "/home",
	}, http.StatusOK)
}
