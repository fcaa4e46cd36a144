package theme

import "git.lost.host/meutraa/notechart/internal/game"

type Theme interface {
	RenderNote(n *game.Note, text string) string
	RenderGuide(c game.GuideColor, text string) string
}
