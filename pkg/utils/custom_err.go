package utils

import "errors"

var (
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDatabaseError      = errors.New("database error")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrForbidden          = errors.New("forbidden")
	ErrReviewNotFound     = errors.New("review not found")
	ErrReviewConflict     = errors.New("review already exists for this user and vehicle")
	ErrVehicleNotFound    = errors.New("vehicle not found")
	ErrVehicleInUse       = errors.New("vehicle is referenced by reviews")
	ErrMakerNotFound      = errors.New("maker not found")
	ErrAlreadyLiked       = errors.New("review already liked")
	ErrLikeNotFound       = errors.New("like not found")
)
