package storage

import "errors"

// Общие ошибки хранилищ, оборачиваются через %w
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)
