package ir

import "errors"

var (
	ErrNotFound = errors.New("not found")
	ErrType     = errors.New("type error")
)
