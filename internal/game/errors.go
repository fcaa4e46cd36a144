package game

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange = errors.New("index out of range")

	// ErrDanglingID means a hold chain references a note its score does not
	// hold. The chain and the score are out of sync and must not be used.
	ErrDanglingID = errors.New("dangling note id")

	ErrInvalidNote = errors.New("invalid note")
)

type IndexError struct {
	Op    string
	Index int
	Len   int // Number of steps in the chain
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d out of range for hold with %d steps", e.Op, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error {
	return ErrOutOfRange
}

func danglingID(id int) error {
	return fmt.Errorf("note %d: %w", id, ErrDanglingID)
}
