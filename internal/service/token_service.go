package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"blogCPT/internal/config"
)

const resetTokenPurpose = "password_reset"

// TokenService выпускает и проверяет токены сброса пароля.
// Токен нигде не хранится: валидность - чистая функция подписи и времени.
type TokenService interface {
	Issue(userID string, ttl time.Duration) (string, error)
	Verify(tokenString string) (string, error)
}

type tokenService struct {
	secret []byte
	now    func() time.Time
}

func NewTokenService(cfg *config.Config) TokenService {
	return &tokenService{
		secret: []byte(cfg.JWTSecretKey),
		now:    time.Now,
	}
}

func (s *tokenService) Issue(userID string, ttl time.Duration) (string, error) {
	now := s.now()

	claims := jwt.MapClaims{
		"sub":     userID,
		"purpose": resetTokenPurpose,
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}

	return tokenString, nil
}

// Verify возвращает userID только для подлинного, непросроченного токена
// сброса пароля. Любой дефект сводится к ErrInvalidToken: клиент не должен
// узнать, чем именно плох токен. Токен ровно в момент exp уже недействителен.
func (s *tokenService) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())

	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}

	// claim purpose отделяет токен сброса от сессионного
	if purpose, ok := claims["purpose"].(string); !ok || purpose != resetTokenPurpose {
		return "", ErrInvalidToken
	}

	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		return "", ErrInvalidToken
	}

	return userID, nil
}
