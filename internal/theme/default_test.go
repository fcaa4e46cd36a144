package theme

import (
	"testing"

	"git.lost.host/meutraa/notechart/internal/game"
	"github.com/stretchr/testify/assert"
)

func TestRenderNote(t *testing.T) {
	var th Theme = &DefaultTheme{}

	n := game.NewNote(game.Tap)
	assert.Equal(t, "\033[38;2;80;220;236mtap\033[0m", th.RenderNote(&n, "tap"))

	n.Critical = true
	assert.Equal(t, "\033[38;2;236;195;0mtap\033[0m", th.RenderNote(&n, "tap"))
}

func TestRenderGuide(t *testing.T) {
	th := &DefaultTheme{}
	assert.Equal(t, "\033[38;2;0;118;236mg\033[0m", th.RenderGuide(game.GuideBlue, "g"))
	assert.Equal(t, th.RenderGuide(game.GuideNeutral, "g"), th.RenderGuide(game.GuideColorCount, "g"))
}

func TestPlain(t *testing.T) {
	th := &DefaultTheme{Plain: true}
	n := game.NewNote(game.HoldMid)
	assert.Equal(t, "mid", th.RenderNote(&n, "mid"))
	assert.Equal(t, "guide", th.RenderGuide(game.GuideRed, "guide"))
}

func TestEverySpriteHasAColor(t *testing.T) {
	for sprite := game.SpriteTap; sprite <= game.SpriteHoldTickCritical; sprite++ {
		_, ok := noteColors[sprite]
		assert.True(t, ok, "sprite %d", sprite)
	}
	assert.Equal(t, noteColors[-1], getNoteColor(game.SpriteFlickArrow))
}
