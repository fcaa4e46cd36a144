package game

import (
	"cmp"
	"fmt"
	"slices"
)

// Score owns the notes and hold chains that steps refer to by ID.
type Score interface {
	Note(id int) (*Note, error)
	Hold(id int) (*HoldNote, error)
}

// SortHoldSteps orders the middle steps of hold by tick, then lane. Equal
// positions keep their relative order. The head and tail never move.
//
// Every step is resolved before anything is reordered, so a dangling ID
// leaves Steps untouched and returns an error wrapping ErrDanglingID.
func SortHoldSteps(score Score, hold *HoldNote) error {
	notes := make(map[int]*Note, len(hold.Steps))
	for _, s := range hold.Steps {
		n, err := score.Note(s.ID)
		if err != nil {
			return fmt.Errorf("sort hold %d: %w", hold.Start.ID, err)
		}
		notes[s.ID] = n
	}

	slices.SortStableFunc(hold.Steps, func(a, b HoldStep) int {
		na, nb := notes[a.ID], notes[b.ID]
		if c := cmp.Compare(na.Tick, nb.Tick); c != 0 {
			return c
		}
		return cmp.Compare(na.Lane, nb.Lane)
	})
	return nil
}

// FindHoldStep returns the index of the middle step standing for stepID.
// The head and tail are not searched.
func FindHoldStep(hold *HoldNote, stepID int) (int, bool) {
	for i, s := range hold.Steps {
		if s.ID == stepID {
			return i, true
		}
	}
	return -1, false
}
