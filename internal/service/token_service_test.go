package service

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(secret string, now time.Time) *tokenService {
	return &tokenService{
		secret: []byte(secret),
		now:    func() time.Time { return now },
	}
}

func TestTokenService_IssueVerify(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestTokenService("test-secret", now)

	t.Run("Успешная проверка сразу после выпуска", func(t *testing.T) {
		token, err := svc.Issue("user-1", 30*time.Minute)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		userID, err := svc.Verify(token)
		assert.NoError(t, err)
		assert.Equal(t, "user-1", userID)
	})

	t.Run("Просроченный токен недействителен", func(t *testing.T) {
		token, err := svc.Issue("user-1", 30*time.Minute)
		require.NoError(t, err)

		late := newTestTokenService("test-secret", now.Add(31*time.Minute))
		userID, err := late.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Empty(t, userID)
	})

	t.Run("Токен ровно в момент истечения недействителен", func(t *testing.T) {
		token, err := svc.Issue("user-1", 30*time.Minute)
		require.NoError(t, err)

		boundary := newTestTokenService("test-secret", now.Add(30*time.Minute))
		_, err = boundary.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Секунда до истечения токен ещё действителен", func(t *testing.T) {
		token, err := svc.Issue("user-1", 30*time.Minute)
		require.NoError(t, err)

		almost := newTestTokenService("test-secret", now.Add(30*time.Minute-time.Second))
		userID, err := almost.Verify(token)
		assert.NoError(t, err)
		assert.Equal(t, "user-1", userID)
	})
}

func TestTokenService_Tampering(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestTokenService("test-secret", now)

	token, err := svc.Issue("user-1", 30*time.Minute)
	require.NoError(t, err)

	t.Run("Токен с чужим секретом недействителен", func(t *testing.T) {
		other := newTestTokenService("other-secret", now)
		_, err := other.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Изменённый payload недействителен", func(t *testing.T) {
		parts := strings.Split(token, ".")
		require.Len(t, parts, 3)

		payload := []byte(parts[1])
		if payload[0] == 'A' {
			payload[0] = 'B'
		} else {
			payload[0] = 'A'
		}
		tampered := parts[0] + "." + string(payload) + "." + parts[2]

		_, err := svc.Verify(tampered)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Мусорная строка недействительна", func(t *testing.T) {
		_, err := svc.Verify("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Пустая строка недействительна", func(t *testing.T) {
		_, err := svc.Verify("")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestTokenService_Purpose(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestTokenService("test-secret", now)

	t.Run("Сессионный токен не принимается как токен сброса", func(t *testing.T) {
		claims := jwt.MapClaims{
			"sub":     "user-1",
			"purpose": "session",
			"iat":     now.Unix(),
			"exp":     now.Add(time.Hour).Unix(),
		}
		sessionToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = svc.Verify(sessionToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Токен без exp недействителен", func(t *testing.T) {
		claims := jwt.MapClaims{
			"sub":     "user-1",
			"purpose": resetTokenPurpose,
			"iat":     now.Unix(),
		}
		noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = svc.Verify(noExp)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Причина отказа не раскрывается", func(t *testing.T) {
		// просроченный и подделанный токены дают одну и ту же ошибку
		expired := newTestTokenService("test-secret", now.Add(time.Hour))
		token, err := svc.Issue("user-1", 30*time.Minute)
		require.NoError(t, err)

		_, errExpired := expired.Verify(token)
		_, errGarbage := svc.Verify("garbage")
		assert.Equal(t, errExpired, errGarbage)
	})
}
