package service

import (
	"errors"
	"strings"
)

// Сообщения для пользователя дашборда.
var (
	ErrLoadFailed   = errors.New("Unable to load items. Please try again later.")
	ErrCreateFailed = errors.New("Failed to create item. Please try again.")
	ErrUpdateFailed = errors.New("Failed to update item. Please try again.")
	ErrItemNotFound = errors.New("Item not found")
	ErrNoSelection  = errors.New("no item selected: pass an id or run select <id>")

	ErrNameCategoryRequired = errors.New("Name and category are required.")
	ErrPriceInvalid         = errors.New("Price must be a valid number.")
	ErrPriceNegative        = errors.New("Price cannot be negative.")
)

// ServerError — ошибки валидации, которые вернул сервер в поле errors.
type ServerError struct {
	Messages []string
}

func (e *ServerError) Error() string {
	return strings.Join(e.Messages, ", ")
}
