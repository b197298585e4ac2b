package domain

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")

	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists")

	ErrMatchNotFound = errors.New("match not found")

	ErrInterestNotFound          = errors.New("interest not found")
	ErrInterestAlreadyExists     = errors.New("interest already exists")
	ErrCannotInterestSelf        = errors.New("cannot express interest in yourself")
	ErrInvalidInterestTransition = errors.New("invalid interest status transition")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)
