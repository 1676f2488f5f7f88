package domain

import "errors"

var (
	ErrProjectNotFound   = errors.New("project not found")
	ErrInvalidStatus     = errors.New("invalid project status")
	ErrInvalidTransition = errors.New("invalid project status transition")
)
