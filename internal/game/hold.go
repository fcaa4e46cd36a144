package game

type HoldStep struct {
	ID   int // Note this step stands for
	Type HoldStepType
	Ease EaseType
}

// HoldNote is a chain of notes addressed by ID. The head is index -1,
// the middle steps are 0..len(Steps)-1 and the tail is len(Steps).
type HoldNote struct {
	Start HoldStep
	Steps []HoldStep
	End   int // The tail has no step type or ease of its own

	StartType HoldNoteType
	EndType   HoldNoteType

	Fade       FadeType
	GuideColor GuideColor
}

func NewHoldNote(start int, end int) HoldNote {
	return HoldNote{
		Start:      HoldStep{ID: start},
		End:        end,
		GuideColor: GuideGreen,
	}
}

func (h *HoldNote) IsGuide() bool {
	return h.StartType == HoldGuide || h.EndType == HoldGuide
}

// Len is the number of notes in the chain, head and tail included.
func (h *HoldNote) Len() int {
	return len(h.Steps) + 2
}

// Step returns the step at index, -1 being the head. The tail is not a step
// and can only be reached through IDAt.
//
// The returned pointer is invalidated by any insertion into or removal from
// Steps.
func (h *HoldNote) Step(index int) (*HoldStep, error) {
	if index < -1 || index >= len(h.Steps) {
		return nil, &IndexError{Op: "HoldNote.Step", Index: index, Len: len(h.Steps)}
	}
	if index == -1 {
		return &h.Start, nil
	}
	return &h.Steps[index], nil
}

// IDAt returns the note ID at index within [-1, len(Steps)], where -1 is
// the head and len(Steps) the tail.
func (h *HoldNote) IDAt(index int) (int, error) {
	if index < -1 || index > len(h.Steps) {
		return 0, &IndexError{Op: "HoldNote.IDAt", Index: index, Len: len(h.Steps)}
	}
	switch index {
	case -1:
		return h.Start.ID, nil
	case len(h.Steps):
		return h.End, nil
	}
	return h.Steps[index].ID, nil
}

// IDs returns every note ID of the chain in chain order.
func (h *HoldNote) IDs() []int {
	ids := make([]int, 0, h.Len())
	ids = append(ids, h.Start.ID)
	for _, s := range h.Steps {
		ids = append(ids, s.ID)
	}
	return append(ids, h.End)
}
