package sessions

import "errors"

var (
	// ErrSessionNotFound возвращается, когда у клиента нет активной сессии
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionIncomplete возвращается при коммите сессии без обязательных полей
	// (барбершоп, барбер, дата, время)
	ErrSessionIncomplete = errors.New("session selection is incomplete")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")
)
