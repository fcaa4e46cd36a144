package score

import (
	"fmt"

	"git.lost.host/meutraa/notechart/internal/game"
)

// AddNote adds a standalone tap and returns its new ID.
func (s *Score) AddNote(n game.Note) (int, error) {
	if err := validate(&n, game.Tap); err != nil {
		return 0, err
	}
	n.ParentID = game.NoParent
	return s.insert(n), nil
}

// AddHold creates a hold chain from start through steps to end. Steps may
// be given in any order. The ID of the start note, which also keys the
// chain, is returned.
func (s *Score) AddHold(start game.Note, steps []game.Note, end game.Note) (int, error) {
	if err := validate(&start, game.Hold); err != nil {
		return 0, fmt.Errorf("hold start: %w", err)
	}
	if err := validate(&end, game.HoldEnd); err != nil {
		return 0, fmt.Errorf("hold end: %w", err)
	}
	if end.Tick < start.Tick {
		return 0, fmt.Errorf("%w: hold ends at %d before it starts at %d", game.ErrInvalidNote, end.Tick, start.Tick)
	}
	for i := range steps {
		if err := validate(&steps[i], game.HoldMid); err != nil {
			return 0, fmt.Errorf("hold step %d: %w", i, err)
		}
		if err := stepInRange(steps[i].Tick, start.Tick, end.Tick); err != nil {
			return 0, fmt.Errorf("hold step %d: %w", i, err)
		}
	}

	start.ParentID = game.NoParent
	startID := s.insert(start)

	hold := game.NewHoldNote(startID, 0)
	hold.Steps = make([]game.HoldStep, 0, len(steps))
	for _, step := range steps {
		step.ParentID = startID
		hold.Steps = append(hold.Steps, game.HoldStep{ID: s.insert(step)})
	}
	end.ParentID = startID
	hold.End = s.insert(end)

	s.HoldNotes[startID] = &hold
	if err := game.SortHoldSteps(s, &hold); err != nil {
		return 0, err
	}
	return startID, nil
}

// InsertStep adds a mid step to the hold keyed by holdID and keeps the
// chain in chart order.
func (s *Score) InsertStep(holdID int, n game.Note) (int, error) {
	hold, err := s.Hold(holdID)
	if err != nil {
		return 0, err
	}
	if err := validate(&n, game.HoldMid); err != nil {
		return 0, err
	}
	lo, hi, err := s.chainBounds(hold)
	if err != nil {
		return 0, err
	}
	if err := stepInRange(n.Tick, lo, hi); err != nil {
		return 0, err
	}
	n.ParentID = holdID
	id := s.insert(n)
	hold.Steps = append(hold.Steps, game.HoldStep{ID: id})
	if err := game.SortHoldSteps(s, hold); err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Score) RemoveStep(holdID int, stepID int) error {
	hold, err := s.Hold(holdID)
	if err != nil {
		return err
	}
	i, ok := game.FindHoldStep(hold, stepID)
	if !ok {
		return fmt.Errorf("step %d of hold %d: %w", stepID, holdID, ErrNotFound)
	}
	hold.Steps = append(hold.Steps[:i], hold.Steps[i+1:]...)
	delete(s.Notes, stepID)
	return nil
}

// RemoveNote deletes a standalone note. Hold notes go through RemoveHold
// or RemoveStep so their chain stays whole.
func (s *Score) RemoveNote(id int) error {
	n, err := s.Note(id)
	if err != nil {
		return err
	}
	if n.IsHold() {
		return fmt.Errorf("%w: note %d belongs to a hold", game.ErrInvalidNote, id)
	}
	delete(s.Notes, id)
	return nil
}

// RemoveHold deletes the chain keyed by id and every note in it.
func (s *Score) RemoveHold(id int) error {
	hold, err := s.Hold(id)
	if err != nil {
		return err
	}
	for _, nid := range hold.IDs() {
		delete(s.Notes, nid)
	}
	delete(s.HoldNotes, id)
	return nil
}

// Move repositions a note. A hold note must stay between its chain's head
// and tail, and moving a mid step reorders its chain.
func (s *Score) Move(id int, tick int, lane float64) error {
	n, err := s.Note(id)
	if err != nil {
		return err
	}
	moved := *n
	moved.Tick, moved.Lane = tick, lane
	if !moved.InBounds() {
		return fmt.Errorf("%w: lane %v width %v out of bounds", game.ErrInvalidNote, lane, n.Width)
	}

	var hold *game.HoldNote
	if n.IsHold() {
		key := n.ParentID
		if n.Type() == game.Hold {
			key = n.ID
		}
		if hold, err = s.Hold(key); err != nil {
			return err
		}
		if err := s.checkChainTick(hold, id, tick); err != nil {
			return err
		}
	}
	n.Tick, n.Lane = tick, lane

	if n.Type() != game.HoldMid {
		return nil
	}
	return game.SortHoldSteps(s, hold)
}

// chainBounds returns the ticks of the chain's head and tail.
func (s *Score) chainBounds(hold *game.HoldNote) (int, int, error) {
	start, err := s.Note(hold.Start.ID)
	if err != nil {
		return 0, 0, err
	}
	end, err := s.Note(hold.End)
	if err != nil {
		return 0, 0, err
	}
	return start.Tick, end.Tick, nil
}

// checkChainTick fails if placing note id at tick would leave a step
// outside the chain's head and tail.
func (s *Score) checkChainTick(hold *game.HoldNote, id int, tick int) error {
	lo, hi, err := s.chainBounds(hold)
	if err != nil {
		return err
	}
	switch id {
	case hold.Start.ID:
		lo = tick
	case hold.End:
		hi = tick
	}
	if hi < lo {
		return fmt.Errorf("%w: hold ends at %d before it starts at %d", game.ErrInvalidNote, hi, lo)
	}
	for _, step := range hold.Steps {
		t := tick
		if step.ID != id {
			n, err := s.Note(step.ID)
			if err != nil {
				return err
			}
			t = n.Tick
		}
		if err := stepInRange(t, lo, hi); err != nil {
			return err
		}
	}
	return nil
}

func stepInRange(tick, lo, hi int) error {
	if tick < lo || tick > hi {
		return fmt.Errorf("%w: step at %d outside hold %d-%d", game.ErrInvalidNote, tick, lo, hi)
	}
	return nil
}
