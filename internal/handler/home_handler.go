package handlers

import (
	"net/http"
	"strconv"

	"blogCPT/internal/models"
)

type HomeResponse struct {
	Posts      []models.Post `json:"posts"`
	Pagination interface{}   `json:"pagination"`
}

type HealthResponse struct {
	Status      string `json:"status"`
	CountTables int    `json:"countTables"`
}

// Home - общая лента, новые посты первыми, по страницам.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	posts, pagination, err := h.PostService.ListPosts(r.Context(), page)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, HomeResponse{
		Posts:      posts,
		Pagination: pagination,
	}, http.StatusOK)
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	count, err := h.StatsRepo.CountTablesDB()
	if err != nil {
		WriteError(w, "База данных недоступна", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, HealthResponse{
		Status:      "ok",
		CountTables: count,
	}, http.StatusOK)
}
