package service

import "errors"

// Ошибки уровня бизнес-логики. Хендлеры различают их через errors.Is
// и отображают в соответствующий HTTP-статус.
var (
	// ErrForbidden - действующий пользователь не имеет права на операцию
	ErrForbidden = errors.New("доступ запрещен")

	// ErrInvalidCredentials - общая ошибка входа: неизвестный username и
	// неверный пароль намеренно неразличимы для клиента
	ErrInvalidCredentials = errors.New("неверный username или пароль")

	// ErrInvalidToken - единственный ответ верификатора на любой дефект
	// токена: испорчен, подделан, просрочен или выдан не для сброса пароля
	ErrInvalidToken = errors.New("недействительный или просроченный токен")
)
