package utils

import "errors"

var (
	ErrInvalidRequest  = errors.New("invalid request")
	ErrSessionNotFound = errors.New("session not found")
	ErrAIUnavailable   = errors.New("ai service unavailable")
	ErrAIResponseShape = errors.New("unexpected ai response shape")
	ErrDatabaseError   = errors.New("database error")
)
