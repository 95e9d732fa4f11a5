package store

import "errors"

var (
	ErrNotFound = errors.New("store: category not found")
)
