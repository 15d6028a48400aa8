package logic

import "errors"

var (
	ErrNotFound        = errors.New("prayer request not found")
	ErrAlreadyAnswered = errors.New("prayer request already answered")
	ErrEmptyRequest    = errors.New("request text is required")
	ErrEmptyTestimony  = errors.New("testimony text is required")
	ErrInvalidCategory = errors.New("unknown prayer category")
	ErrInvalidRating   = errors.New("ratings must be between 1 and 10")
	ErrEmptyUsername   = errors.New("username is required")
	ErrSessionNotFound = errors.New("session not found")
)
