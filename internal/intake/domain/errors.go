package domain

import "errors"

var (
	// ErrEmptyProgram indicates a missing program name.
	ErrEmptyProgram = errors.New("program is required")
	// ErrEmptyCycle indicates a missing admission cycle.
	ErrEmptyCycle = errors.New("cycle is required")
)
