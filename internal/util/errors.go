package util

import "errors"

var (
	ErrInvalidIdentifier = errors.New("invalid test identifier")
	ErrTestNotFound      = errors.New("test not found")
	ErrNoMoreQuestions   = errors.New("no more questions")
	ErrIndexOutOfRange   = errors.New("question index out of range")
	ErrPersistence       = errors.New("failed to save test")
	ErrInvalidBody       = errors.New("invalid request body")
)
