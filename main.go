package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"

	"git.lost.host/meutraa/notechart/internal/config"
	"git.lost.host/meutraa/notechart/internal/game"
	"git.lost.host/meutraa/notechart/internal/parser"
	"git.lost.host/meutraa/notechart/internal/score"
	"git.lost.host/meutraa/notechart/internal/theme"
	"golang.org/x/term"
)

func main() {
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

func run() error {
	if err := config.Parse(os.Args[1:]); nil != err {
		return err
	}

	importConfig := parser.DefaultConfig()
	if *config.ImportConfig != "" {
		path, err := filepath.Abs(*config.ImportConfig)
		if nil != err {
			return err
		}
		c, err := config.ReadImport(os.DirFS(filepath.Dir(path)), filepath.Base(path))
		if nil != err {
			return fmt.Errorf("unable to read import config: %w", err)
		}
		importConfig = *c
	}

	var psr parser.Parser = &parser.DefaultParser{Config: importConfig}
	s, err := psr.Parse(*config.File)
	if nil != err {
		return err
	}
	log.Printf("Imported %v (%v notes, %v holds)\n", *config.File, s.NoteCount(), s.HoldCount())

	var th theme.Theme = &theme.DefaultTheme{Plain: !colorize(*config.Color)}
	if err := dumpNotes(os.Stdout, s, th); nil != err {
		return err
	}
	if *config.Holds {
		return dumpHolds(os.Stdout, s, th)
	}
	return nil
}

func colorize(mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func dumpNotes(w io.Writer, s *score.Score, th theme.Theme) error {
	fmt.Fprintf(w, "%5v %6v %5v %5v  %-8v %-5v %6v %3v %-13v %v\n",
		"id", "tick", "lane", "width", "type", "flick", "sprite", "cc", "arrow", "se")
	for _, n := range s.SortedNotes() {
		se, err := game.NoteSE(n, s)
		if nil != err {
			return err
		}
		arrow := "-"
		if n.IsFlick() {
			sx, sy := game.FlickArrowScale(n)
			arrow = fmt.Sprintf("%v@%vx%v", game.FlickArrowSpriteIndex(n), sx, sy)
		}
		sprite := fmt.Sprint(game.NoteSpriteIndex(n))
		if n.Friction {
			sprite = fmt.Sprintf("%v+%v", sprite, game.FrictionSpriteIndex(n))
		}
		fmt.Fprintf(w, "%5v %6v %5v %5v  %v %-5v %6v %3v %-13v %v\n",
			n.ID, n.Tick, n.Lane, n.Width,
			th.RenderNote(n, fmt.Sprintf("%-8v", n.Type())),
			n.Flick, sprite, game.CcNoteSpriteIndex(n), arrow, se)
	}
	return nil
}

func dumpHolds(w io.Writer, s *score.Score, th theme.Theme) error {
	ids := make([]int, 0, len(s.HoldNotes))
	for id := range s.HoldNotes {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		h := s.HoldNotes[id]
		loop, err := game.HoldLoopSE(h, s)
		if nil != err {
			return err
		}
		label := fmt.Sprintf("hold %v", id)
		if h.IsGuide() {
			label = th.RenderGuide(h.GuideColor, fmt.Sprintf("guide %v", id))
		}
		fmt.Fprintf(w, "%v: %v -> %v, fade %v, loop %q\n", label, h.StartType, h.EndType, h.Fade, loop)

		for i := -1; i <= len(h.Steps); i++ {
			nid, err := h.IDAt(i)
			if nil != err {
				return err
			}
			n, err := s.Note(nid)
			if nil != err {
				return err
			}
			step := "end"
			if st, err := h.Step(i); nil == err {
				step = fmt.Sprintf("%v %v", st.Type, st.Ease)
			}
			fmt.Fprintf(w, "  %3v  note %5v  tick %6v  %v\n", i, nid, n.Tick, step)
		}
	}
	return nil
}
