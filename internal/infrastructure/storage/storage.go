// Package storage содержит общие ошибки слоя хранилища.
package storage

import (
	"errors"
	"fmt"
)

// ErrUnavailable помечает отказ самого хранилища; на границе HTTP
// такие ошибки превращаются в 503.
var ErrUnavailable = errors.New("database unavailable")

// Unavailable оборачивает ошибку хранилища, сохраняя исходный текст.
func Unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrUnavailable, op, err)
}
