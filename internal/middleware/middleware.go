package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"blogCPT/internal/config"
)

type Middleware func(http.Handler) http.Handler

// SessionCookie - имя cookie с сессионным токеном
const SessionCookie = "session"

type contextKey string

const (
	ctxUserID   contextKey = "userID"
	ctxUsername contextKey = "username"
	ctxRole     contextKey = "role"
)

// WithUser кладёт аутентифицированную личность в контекст запроса.
func WithUser(ctx context.Context, userID, username, role string) context.Context {
	ctx = context.WithValue(ctx, ctxUserID, userID)
	ctx = context.WithValue(ctx, ctxUsername, username)
	return context.WithValue(ctx, ctxRole, role)
}

// CurrentUserID возвращает идентификатор аутентифицированного пользователя
// или пустую строку для анонимного запроса.
func CurrentUserID(ctx context.Context) string {
	userID, _ := ctx.Value(ctxUserID).(string)
	return userID
}

func CurrentUsername(ctx context.Context) string {
	username, _ := ctx.Value(ctxUsername).(string)
	return username
}

func CurrentRole(ctx context.Context) string {
	role, _ := ctx.Value(ctxRole).(string)
	return role
}

func IsAuthenticated(ctx context.Context) bool {
	return CurrentUserID(ctx) != ""
}

// AuthMiddleware проверяет сессионный JWT и кладёт данные пользователя
// в контекст. Публичные маршруты проходят и без сессии, но валидная
// сессия подхватывается и для них.
func AuthMiddleware(cfg *config.Config) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := extractSessionToken(r)

			if tokenString != "" {
				if ctx, ok := sessionContext(r.Context(), tokenString, cfg.JWTSecretKey); ok {
					r = r.WithContext(ctx)
				}
			}

			if isPublicPath(r.URL.Path) || IsAuthenticated(r.Context()) {
				next.ServeHTTP(w, r)
				return
			}

			writeAuthError(w, "Требуется авторизация", http.StatusUnauthorized)
		})
	}
}

func extractSessionToken(r *http.Request) string {
	// Checking the "Bearer <token>" format
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
	}

	cookie, err := r.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func sessionContext(ctx context.Context, tokenString, secret string) (context.Context, bool) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil || !token.Valid {
		return ctx, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ctx, false
	}

	// токен сброса пароля сессией не является
	if purpose, ok := claims["purpose"].(string); !ok || purpose != "session" {
		return ctx, false
	}

	userID, ok1 := claims["userId"].(string)
	username, ok2 := claims["username"].(string)
	role, ok3 := claims["role"].(string)

	if !ok1 || !ok2 || !ok3 || userID == "" {
		return ctx, false
	}

	return WithUser(ctx, userID, username, role), true
}

func isPublicPath(path string) bool {
	publicPaths := []string{
		"/",
		"/home",
		"/health",
		"/register",
		"/login",
	}

	for _, p := range publicPaths {
		if path == p {
			return true
		}
	}

	publicPrefixes := []string{
		"/reset_password",
		"/user/",
	}

	for _, p := range publicPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}

	return false
}

func writeAuthError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{
		"error":    message,
		"category": "danger",
	})
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("Method: %s, URL: %s", r.Method, r.RequestURI)
		next.ServeHTTP(w, r)
	})
}

func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
