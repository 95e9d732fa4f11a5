package models

import (
	"errors"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation error")
	ErrEmptyDictionary = errors.New("dictionary has no categories")
	ErrNoDataset       = errors.New("no dataset uploaded")
	ErrMalformedCSV    = errors.New("malformed CSV")
	ErrUnknownColumn   = errors.New("unknown column")
	ErrNotClassified   = errors.New("dataset has not been classified")
	ErrSessionExpired  = errors.New("session expired or unknown")
)
