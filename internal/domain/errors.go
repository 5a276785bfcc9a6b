package domain

import "errors"

// Sentinel errors shared by services and adapters; wrap them with fmt.Errorf("...: %w", ...)
var (
	// ErrNotFound is returned when an entity does not exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument is returned when an entity or input breaks a domain rule
	ErrInvalidArgument = errors.New("invalid argument")
)
