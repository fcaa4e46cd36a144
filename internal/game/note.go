package game

const (
	MinNoteWidth = 1
	MaxNoteWidth = 12
	MinLane      = 0
	MaxLane      = 11
	NumLanes     = 12

	TicksPerBeat = 480

	// NoParent is the ParentID of a note that is not part of a hold chain.
	NoParent = -1

	defaultWidth = 3
)

type Note struct {
	typ NoteType

	ID       int
	ParentID int     // ID of the hold start owning this note, or NoParent
	Tick     int     // Chart position, TicksPerBeat per beat
	Lane     float64 // Leftmost lane covered
	Width    float64 // Lanes covered
	Critical bool
	Friction bool
	Flick    FlickType

	Layer int
}

func NewNote(t NoteType) Note {
	return Note{typ: t, ParentID: NoParent, Width: defaultWidth}
}

func NewNoteAt(t NoteType, tick int, lane, width float64) Note {
	return Note{typ: t, ParentID: NoParent, Tick: tick, Lane: lane, Width: width}
}

// Type is fixed at construction. Hold chains reclassify notes through
// their step types instead.
func (n *Note) Type() NoteType {
	return n.typ
}

func (n *Note) IsHold() bool {
	return n.typ == Hold || n.typ == HoldMid || n.typ == HoldEnd
}

// IsFlick reports whether the note is judged as a flick. Hold starts and
// mid steps keep their Flick value but never flick.
func (n *Note) IsFlick() bool {
	return n.Flick != FlickNone && n.typ != Hold && n.typ != HoldMid
}

func (n *Note) HasEase() bool {
	return n.typ == Hold || n.typ == HoldMid
}

func (n *Note) CanFlick() bool {
	return n.typ == Tap || n.typ == HoldEnd
}

func (n *Note) CanTrace() bool {
	return n.typ == Tap || n.typ == Hold || n.typ == HoldEnd
}

func (n *Note) InBounds() bool {
	return n.Lane >= MinLane && n.Lane <= MaxLane &&
		n.Width >= MinNoteWidth && n.Width <= MaxNoteWidth &&
		n.Lane+n.Width <= NumLanes
}
