package models

import "errors"

// Доменные ошибки. Обработчики сопоставляют их с HTTP-статусами через
// errors.Is; все ошибки аутентификации наружу выглядят одинаково (401).
var (
	ErrNotFound           = errors.New("ресурс не найден")
	ErrForbidden          = errors.New("нет прав на это действие")
	ErrEmailExists        = errors.New("email уже существует")
	ErrUsernameExists     = errors.New("username уже существует")
	ErrPasswordTooShort   = errors.New("пароль должен быть не менее 6 символов")
	ErrInvalidCredentials = errors.New("неверные учетные данные")

	ErrNoToken      = errors.New("токен не предоставлен")
	ErrInvalidToken = errors.New("недействительный токен")
	ErrUnknownUser  = errors.New("пользователь токена не найден")
)
