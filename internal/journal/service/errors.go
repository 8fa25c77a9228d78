package service

import "errors"

var (
	ErrInvalidInput       = errors.New("validation_error")
	ErrAlreadyExists      = errors.New("already_exists")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidToken       = errors.New("invalid_token")
	ErrTokenExpired       = errors.New("token_expired")
	ErrNotFound           = errors.New("not_found")
)
