package engine

import "errors"

var (
	ErrInvalidGrade     = errors.New("invalid grade")
	ErrInvalidGoal      = errors.New("invalid goal")
	ErrSemesterNotFound = errors.New("semester not found")
	ErrSubjectNotFound  = errors.New("subject not found")
)
