package theme

import (
	"fmt"
	"image/color"

	"git.lost.host/meutraa/notechart/internal/game"
)

// DefaultTheme colors text with 24-bit ANSI escapes. A Plain theme returns
// text unchanged.
type DefaultTheme struct {
	Plain bool
}

func (t *DefaultTheme) RenderNote(n *game.Note, text string) string {
	return t.paint(getNoteColor(game.NoteSpriteIndex(n)), text)
}

func (t *DefaultTheme) RenderGuide(c game.GuideColor, text string) string {
	col, ok := guideColors[c]
	if !ok {
		col = guideColors[game.GuideNeutral]
	}
	return t.paint(col, text)
}

func (t *DefaultTheme) paint(c color.RGBA, text string) string {
	if t.Plain {
		return text
	}
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, text)
}

var (
	noteColors = map[int]color.RGBA{
		game.SpriteTap:              {R: 80, G: 220, B: 236},  // cyan
		game.SpriteLong:             {R: 60, G: 236, B: 106},  // green
		game.SpriteFlick:            {R: 236, G: 60, B: 106},  // pink
		game.SpriteCritical:         {R: 236, G: 195, B: 0},   // yellow
		game.SpriteTraceNormal:      {R: 160, G: 230, B: 240}, // pale cyan
		game.SpriteTraceLong:        {R: 150, G: 236, B: 170}, // pale green
		game.SpriteTraceFlick:       {R: 236, G: 150, B: 170}, // pale pink
		game.SpriteTraceCritical:    {R: 236, G: 220, B: 120}, // pale yellow
		game.SpriteHoldTick:         {R: 60, G: 236, B: 106},  // green
		game.SpriteHoldTickCritical: {R: 236, G: 195, B: 0},   // yellow
		-1:                          {R: 255, G: 255, B: 255}, // other white
	}
	guideColors = map[game.GuideColor]color.RGBA{
		game.GuideNeutral: {R: 200, G: 200, B: 200},
		game.GuideRed:     {R: 236, G: 30, B: 0},
		game.GuideGreen:   {R: 0, G: 236, B: 128},
		game.GuideBlue:    {R: 0, G: 118, B: 236},
		game.GuideYellow:  {R: 236, G: 195, B: 0},
		game.GuidePurple:  {R: 106, G: 0, B: 236},
		game.GuideCyan:    {R: 173, G: 236, B: 236},
		game.GuideBlack:   {R: 60, G: 60, B: 60},
	}
)

func getNoteColor(sprite int) color.RGBA {
	col, ok := noteColors[sprite]
	if !ok {
		return noteColors[-1]
	}
	return col
}
