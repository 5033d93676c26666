package service

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("not enough access")
	ErrInvalidDate      = errors.New("invalid date")
	ErrConflict         = errors.New("conflict")
)
