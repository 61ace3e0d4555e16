package usecase

import "errors"

var (
	ErrInvalidRecord  = errors.New("invalid flock record")
	ErrRecordNotFound = errors.New("flock record not found")
)
