package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"blogCPT/cmd/app"
	"blogCPT/internal/config"
	"blogCPT/internal/database"
	handlers "blogCPT/internal/handler"
	"blogCPT/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, repo, services, store := app.App(cfg)
	defer database.MethodsDB.CloseDB(db)

	handler := handlers.NewHandlers(repo, services, store, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/", handler.Home).Methods(http.MethodGet)
	router.HandleFunc("/home", handler.Home).Methods(http.MethodGet)
	router.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	router.HandleFunc("/register", handler.Register).Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc("/login", handler.Login).Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc("/logout", handler.Logout).Methods(http.MethodGet)

	router.HandleFunc("/account", handler.Account).Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc("/user/{username}", handler.UserPosts).Methods(http.MethodGet)

	router.HandleFunc("/post/new", handler.NewPost).Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc("/post/{id}/view", handler.ViewPost).Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc("/post/{id}/update", handler.UpdatePost).Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc("/post/{id}/delete", handler.DeletePost).Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc("/confirm_delete_post/{id}", handler.ConfirmDeletePost).Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc("/post/forward/{id}", handler.ForwardPost).Methods(http.MethodPost)
	router.HandleFunc("/validate_post/{id}", handler.ValidatePost).Methods(http.MethodGet, http.MethodPost)

	router.HandleFunc("/reset_password", handler.ResetRequest).Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc("/reset_password/{token}", handler.ResetToken).Methods(http.MethodGet, http.MethodPost)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
		middleware.AuthMiddleware(cfg),
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
