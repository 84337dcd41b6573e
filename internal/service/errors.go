package service

import "errors"

var (
	ErrEmptyField         = errors.New("username and password must not be empty")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrQuizNotReady       = errors.New("no quiz generated for the current chapter")
	ErrRequestFailed      = errors.New("tutor request failed")
)
