package service

import (
	"errors"
	"strings"
)

// ErrItemNotFound возвращается при обновлении несуществующей записи.
var ErrItemNotFound = errors.New("Item not found")

// ValidationError — набор сообщений по нарушенным полям.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

// ErrorMessages переводит ошибку сервиса в список сообщений для клиента.
// ok=false для непредвиденных ошибок, которые не показываются пользователю как есть.
func ErrorMessages(err error) (msgs []string, ok bool) {
	if err == nil {
		return []string{}, true
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return append([]string(nil), ve.Messages...), true
	}
	if errors.Is(err, ErrItemNotFound) {
		return []string{ErrItemNotFound.Error()}, true
	}
	return nil, false
}
