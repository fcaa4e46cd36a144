package parser

import "git.lost.host/meutraa/notechart/internal/score"

type Parser interface {
	Parse(file string) (*score.Score, error)
}
