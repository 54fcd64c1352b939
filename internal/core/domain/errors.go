package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidReference is returned when a package reference is missing
	// a field or contains separator characters.
	ErrInvalidReference = zerr.New("invalid package reference")

	// ErrBuildExecutionFailed is returned when at least one configuration
	// in the matrix failed to build.
	ErrBuildExecutionFailed = zerr.New("build execution failed")
)
