package testdata

import (
	"bytes"

	"git.lost.host/meutraa/notechart/internal/game"
	"git.lost.host/meutraa/notechart/internal/score"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Score IDs handed out by GetScore, in allocation order.
const (
	TapID         = 0
	FlickID       = 1
	HoldID        = 2 // Start of the hold, and the key of its chain
	HoldStepLate  = 3 // Tick 720
	HoldStepEarly = 4 // Tick 600
	HoldEndID     = 5
	GuideID       = 6
	GuideEndID    = 7
)

// GetScore builds a small chart: a tap, a critical flick, a hold with two
// steps given out of order, and a guide.
func GetScore() (*score.Score, error) {
	s := score.New()

	if _, err := s.AddNote(game.NewNoteAt(game.Tap, 0, 0, 3)); err != nil {
		return nil, err
	}

	flick := game.NewNoteAt(game.Tap, 480, 4, 4)
	flick.Flick = game.FlickLeft
	flick.Critical = true
	if _, err := s.AddNote(flick); err != nil {
		return nil, err
	}

	if _, err := s.AddHold(
		game.NewNoteAt(game.Hold, 480, 0, 3),
		[]game.Note{
			game.NewNoteAt(game.HoldMid, 720, 2, 3),
			game.NewNoteAt(game.HoldMid, 600, 1, 3),
		},
		game.NewNoteAt(game.HoldEnd, 960, 3, 3),
	); err != nil {
		return nil, err
	}

	guide, err := s.AddHold(
		game.NewNoteAt(game.Hold, 960, 6, 6),
		nil,
		game.NewNoteAt(game.HoldEnd, 1920, 6, 6),
	)
	if err != nil {
		return nil, err
	}
	h, err := s.Hold(guide)
	if err != nil {
		return nil, err
	}
	h.StartType = game.HoldGuide
	h.EndType = game.HoldGuide
	h.GuideColor = game.GuideYellow
	h.Fade = game.FadeIn

	return s, nil
}

// GetMIDI returns a single track SMF at 960 ticks per quarter. Key 60 is
// tapped on beats 0 and 1 at low velocity, key 64 is held from beat 2 to
// beat 4 at full velocity, and key 62 is left sounding.
func GetMIDI() ([]byte, error) {
	var track smf.Track
	track.Add(0, smf.MetaTempo(120))
	track.Add(0, midi.NoteOn(0, 60, 64))
	track.Add(240, midi.NoteOff(0, 60))
	track.Add(720, midi.NoteOn(0, 60, 64))
	track.Add(240, midi.NoteOff(0, 60))
	track.Add(720, midi.NoteOn(0, 64, 127))
	track.Add(1920, midi.NoteOff(0, 64))
	track.Add(0, midi.NoteOn(0, 62, 100))
	track.Close(960)

	mid := smf.New()
	mid.TimeFormat = smf.MetricTicks(960)
	if err := mid.Add(track); err != nil {
		return nil, err
	}

	var b bytes.Buffer
	if _, err := mid.WriteTo(&b); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
