package game

// CycleFlick advances the flick direction: none, up, left, right, none.
// Notes that cannot flick are left alone.
func CycleFlick(n *Note) {
	if !n.CanFlick() {
		return
	}
	n.Flick = (n.Flick + 1) % FlickTypeCount
}

func CycleStepEase(s *HoldStep) {
	s.Ease = (s.Ease + 1) % EaseTypeCount
}

func CycleStepType(s *HoldStep) {
	s.Type = (s.Type + 1) % HoldStepTypeCount
}

// ToggleFriction is a no-op for notes that cannot trace.
func ToggleFriction(n *Note) {
	if !n.CanTrace() {
		return
	}
	n.Friction = !n.Friction
}

func ToggleCritical(n *Note) {
	n.Critical = !n.Critical
}
