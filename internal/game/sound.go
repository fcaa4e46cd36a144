package game

const (
	SEPerfect          = "perfect"
	SEFlick            = "flick"
	SETick             = "tick"
	SEFriction         = "friction"
	SEConnect          = "connect"
	SECriticalTap      = "critical_tap"
	SECriticalFlick    = "critical_flick"
	SECriticalTick     = "critical_tick"
	SECriticalFriction = "critical_friction"
	SECriticalConnect  = "critical_connect"

	// SENone is returned for notes that make no sound.
	SENone = ""
)

var SENames = [...]string{
	SEPerfect, SEFlick, SETick,
	SEFriction, SEConnect, SECriticalTap,
	SECriticalFlick, SECriticalTick, SECriticalFriction,
	SECriticalConnect,
}

// NoteSE returns the sound effect played when n is judged. Hold notes look
// up their chain in score to find out whether they are silent.
func NoteSE(n *Note, score Score) (string, error) {
	switch n.typ {
	case Hold:
		hold, err := score.Hold(n.ID)
		if err != nil {
			return SENone, err
		}
		if hold.StartType != HoldNormal {
			return SENone, nil
		}
	case HoldEnd:
		hold, err := score.Hold(n.ParentID)
		if err != nil {
			return SENone, err
		}
		if hold.EndType != HoldNormal {
			return SENone, nil
		}
	case HoldMid:
		hold, err := score.Hold(n.ParentID)
		if err != nil {
			return SENone, err
		}
		if hold.IsGuide() {
			return SENone, nil
		}
		i, ok := FindHoldStep(hold, n.ID)
		if !ok {
			return SENone, danglingID(n.ID)
		}
		if hold.Steps[i].Type != StepVisible {
			return SENone, nil
		}
	}

	switch {
	case n.typ == HoldMid:
		return pick(n.Critical, SECriticalTick, SETick), nil
	case n.IsFlick():
		return pick(n.Critical, SECriticalFlick, SEFlick), nil
	case n.Friction:
		return pick(n.Critical, SECriticalFriction, SEFriction), nil
	}
	return pick(n.Critical, SECriticalTap, SEPerfect), nil
}

// HoldLoopSE returns the sound looped while hold is held down.
func HoldLoopSE(hold *HoldNote, score Score) (string, error) {
	if hold.IsGuide() {
		return SENone, nil
	}
	start, err := score.Note(hold.Start.ID)
	if err != nil {
		return SENone, err
	}
	return pick(start.Critical, SECriticalConnect, SEConnect), nil
}

func pick(critical bool, c, normal string) string {
	if critical {
		return c
	}
	return normal
}
