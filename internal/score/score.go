package score

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"git.lost.host/meutraa/notechart/internal/game"
)

var ErrNotFound = errors.New("not found")

// Score owns every note of a chart and the hold chains linking them. Hold
// chains are keyed by the ID of their start note.
//
// A Score is not safe for concurrent use.
type Score struct {
	Notes     map[int]*game.Note
	HoldNotes map[int]*game.HoldNote

	ids game.IDAllocator
}

func New() *Score {
	return &Score{
		Notes:     map[int]*game.Note{},
		HoldNotes: map[int]*game.HoldNote{},
	}
}

// Reset empties the score and restarts ID allocation.
func (s *Score) Reset() {
	s.Notes = map[int]*game.Note{}
	s.HoldNotes = map[int]*game.HoldNote{}
	s.ids.Reset()
}

func (s *Score) Note(id int) (*game.Note, error) {
	n, ok := s.Notes[id]
	if !ok {
		return nil, fmt.Errorf("note %d: %w", id, game.ErrDanglingID)
	}
	return n, nil
}

func (s *Score) Hold(id int) (*game.HoldNote, error) {
	h, ok := s.HoldNotes[id]
	if !ok {
		return nil, fmt.Errorf("hold %d: %w", id, game.ErrDanglingID)
	}
	return h, nil
}

func (s *Score) NoteCount() int {
	return len(s.Notes)
}

func (s *Score) HoldCount() int {
	return len(s.HoldNotes)
}

// SortedNotes returns every note ordered by tick, lane and ID.
func (s *Score) SortedNotes() []*game.Note {
	notes := make([]*game.Note, 0, len(s.Notes))
	for _, n := range s.Notes {
		notes = append(notes, n)
	}
	slices.SortFunc(notes, func(a, b *game.Note) int {
		if c := cmp.Compare(a.Tick, b.Tick); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Lane, b.Lane); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return notes
}

func (s *Score) insert(n game.Note) int {
	n.ID = s.ids.Allocate()
	s.Notes[n.ID] = &n
	return n.ID
}

func validate(n *game.Note, want game.NoteType) error {
	if n.Type() != want {
		return fmt.Errorf("%w: got %v, want %v", game.ErrInvalidNote, n.Type(), want)
	}
	if !n.InBounds() {
		return fmt.Errorf("%w: lane %v width %v out of bounds", game.ErrInvalidNote, n.Lane, n.Width)
	}
	return nil
}
