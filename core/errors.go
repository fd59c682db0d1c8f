package core

import "github.com/pkg/errors"

var (
	ErrNotFound      = errors.New("hello: not found")
	ErrInvalidPort   = errors.New("hello: invalid port")
	ErrInvalidConfig = errors.New("hello: invalid config")
)

func IsNotFoundError(err error) bool {
	return err != nil && errors.Cause(err) == ErrNotFound
}
