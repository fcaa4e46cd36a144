package game

import "fmt"

// fakeScore is a bare ID table standing in for the score package.
type fakeScore struct {
	notes map[int]*Note
	holds map[int]*HoldNote
	ids   IDAllocator
}

func newFakeScore() *fakeScore {
	return &fakeScore{notes: map[int]*Note{}, holds: map[int]*HoldNote{}}
}

func (s *fakeScore) Note(id int) (*Note, error) {
	n, ok := s.notes[id]
	if !ok {
		return nil, fmt.Errorf("note %d: %w", id, ErrDanglingID)
	}
	return n, nil
}

func (s *fakeScore) Hold(id int) (*HoldNote, error) {
	h, ok := s.holds[id]
	if !ok {
		return nil, fmt.Errorf("hold %d: %w", id, ErrDanglingID)
	}
	return h, nil
}

func (s *fakeScore) add(t NoteType, tick int, lane float64) *Note {
	n := NewNoteAt(t, tick, lane, 3)
	n.ID = s.ids.Allocate()
	s.notes[n.ID] = &n
	return &n
}

// hold builds a chain at the given ticks, all in lane 0. Steps are linked
// in the order given.
func (s *fakeScore) hold(start int, mids []int, end int) *HoldNote {
	h := NewHoldNote(s.add(Hold, start, 0).ID, 0)
	for _, tick := range mids {
		n := s.add(HoldMid, tick, 0)
		n.ParentID = h.Start.ID
		h.Steps = append(h.Steps, HoldStep{ID: n.ID})
	}
	e := s.add(HoldEnd, end, 0)
	e.ParentID = h.Start.ID
	h.End = e.ID
	s.holds[h.Start.ID] = &h
	return &h
}

func (s *fakeScore) stepTicks(h *HoldNote) []int {
	ticks := []int{}
	for _, step := range h.Steps {
		ticks = append(ticks, s.notes[step.ID].Tick)
	}
	return ticks
}
