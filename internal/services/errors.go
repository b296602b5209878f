package services

import "errors"

var (
	ErrCompanyNotFound = errors.New("company not found")
	ErrQuizNotFound    = errors.New("quiz not found")
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionClosed   = errors.New("session is closed")
)
