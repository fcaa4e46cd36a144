package game

type NoteType uint8

const (
	Tap NoteType = iota
	Hold
	HoldMid
	HoldEnd
	NoteTypeCount
)

type FlickType uint8

// Flick directions in cycle order.
const (
	FlickNone FlickType = iota
	FlickUp
	FlickLeft
	FlickRight
	FlickTypeCount
)

// EaseType is the curve applied to the hold path leading out of a step.
type EaseType uint8

const (
	EaseLinear EaseType = iota
	EaseIn
	EaseOut
	EaseInOut
	EaseOutIn
	EaseTypeCount
)

type HoldStepType uint8

const (
	StepVisible HoldStepType = iota
	StepHidden
	StepSkip // Shapes the path but is never judged
	HoldStepTypeCount
)

type HoldNoteType uint8

const (
	HoldNormal HoldNoteType = iota
	HoldHidden
	HoldGuide
	HoldNoteTypeCount
)

type FadeType uint8

const (
	FadeOut FadeType = iota
	FadeNone
	FadeIn
	FadeTypeCount
)

type GuideColor uint8

const (
	GuideNeutral GuideColor = iota
	GuideRed
	GuideGreen
	GuideBlue
	GuideYellow
	GuidePurple
	GuideCyan
	GuideBlack
	GuideColorCount
)

var (
	noteTypeNames     = [...]string{"tap", "hold", "hold_mid", "hold_end"}
	flickTypeNames    = [...]string{"none", "up", "left", "right"}
	easeTypeNames     = [...]string{"linear", "in", "out", "inout", "outin"}
	holdStepTypeNames = [...]string{"visible", "hidden", "skip"}
	holdNoteTypeNames = [...]string{"normal", "hidden", "guide"}
	fadeTypeNames     = [...]string{"out", "none", "in"}
	guideColorNames   = [...]string{"neutral", "red", "green", "blue", "yellow", "purple", "cyan", "black"}
)

func name(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return "unknown"
	}
	return names[i]
}

func (t NoteType) String() string     { return name(noteTypeNames[:], int(t)) }
func (t FlickType) String() string    { return name(flickTypeNames[:], int(t)) }
func (t EaseType) String() string     { return name(easeTypeNames[:], int(t)) }
func (t HoldStepType) String() string { return name(holdStepTypeNames[:], int(t)) }
func (t HoldNoteType) String() string { return name(holdNoteTypeNames[:], int(t)) }
func (t FadeType) String() string     { return name(fadeTypeNames[:], int(t)) }
func (c GuideColor) String() string   { return name(guideColorNames[:], int(c)) }
