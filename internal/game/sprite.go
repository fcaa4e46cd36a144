package game

// Layout of the notes sprite sheet. The sheet itself belongs to the
// renderer; these are only indices into it.
const (
	SpriteTap = iota
	SpriteLong
	SpriteFlick
	SpriteCritical
	SpriteTraceNormal
	SpriteTraceLong
	SpriteTraceFlick
	SpriteTraceCritical
	SpriteHoldTick
	SpriteHoldTickCritical
	SpriteFrictionNormal
	SpriteFrictionFlick
	SpriteFrictionCritical

	// Six widths, each an up arrow followed by a diagonal one.
	SpriteFlickArrow         = 13
	SpriteFlickArrowCritical = SpriteFlickArrow + 2*maxArrowWidth
)

// Layout of the cc sheet: four kinds of two critical variants of two
// friction variants.
const (
	ccKindTap = iota
	ccKindLong
	ccKindFlick
	ccKindTick
	CcSpriteCount = 16
)

const maxArrowWidth = 6

var (
	FlickArrowWidths  = [maxArrowWidth]float64{0.95, 1.25, 1.8, 2.3, 2.6, 3.2}
	FlickArrowHeights = [maxArrowWidth]float64{1, 1.05, 1.2, 1.4, 1.5, 1.6}
)

func NoteSpriteIndex(n *Note) int {
	if n.typ == HoldMid {
		if n.Critical {
			return SpriteHoldTickCritical
		}
		return SpriteHoldTick
	}

	if n.Friction {
		switch {
		case n.Critical:
			return SpriteTraceCritical
		case n.IsFlick():
			return SpriteTraceFlick
		case n.IsHold():
			return SpriteTraceLong
		}
		return SpriteTraceNormal
	}

	switch {
	case n.Critical:
		return SpriteCritical
	case n.IsFlick():
		return SpriteFlick
	case n.IsHold():
		return SpriteLong
	}
	return SpriteTap
}

func CcNoteSpriteIndex(n *Note) int {
	kind := ccKindTap
	switch {
	case n.typ == HoldMid:
		kind = ccKindTick
	case n.IsFlick():
		kind = ccKindFlick
	case n.IsHold():
		kind = ccKindLong
	}

	index := kind * 4
	if n.Critical {
		index += 2
	}
	if n.Friction {
		index++
	}
	return index
}

// FrictionSpriteIndex picks the trace marker drawn over friction notes.
// Notes without friction get the normal marker.
func FrictionSpriteIndex(n *Note) int {
	switch {
	case n.Critical:
		return SpriteFrictionCritical
	case n.IsFlick():
		return SpriteFrictionFlick
	}
	return SpriteFrictionNormal
}

// FlickArrowSpriteIndex picks the arrow for the note's width. Left and
// right share the diagonal arrow, mirrored when drawn; notes without a
// flick get the up arrow.
func FlickArrowSpriteIndex(n *Note) int {
	index := SpriteFlickArrow
	if n.Critical {
		index = SpriteFlickArrowCritical
	}
	index += (arrowWidth(n) - 1) * 2
	if n.Flick == FlickLeft || n.Flick == FlickRight {
		index++
	}
	return index
}

func FlickArrowScale(n *Note) (float64, float64) {
	w := arrowWidth(n) - 1
	return FlickArrowWidths[w], FlickArrowHeights[w]
}

func arrowWidth(n *Note) int {
	w := int(n.Width)
	if w < 1 {
		return 1
	}
	if w > maxArrowWidth {
		return maxArrowWidth
	}
	return w
}
