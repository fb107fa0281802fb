package repositories

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInterviewNotFound   = errors.New("interview not found")
	ErrDetailNotFound      = errors.New("interview details not found")
	ErrPerformanceNotFound = errors.New("performance data not found")
)
