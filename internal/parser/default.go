package parser

import (
	"errors"
	"fmt"
	"log"
	"math"
	"sort"

	"git.lost.host/meutraa/notechart/internal/game"
	"git.lost.host/meutraa/notechart/internal/score"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Config controls how MIDI notes are placed on the chart. Tick values are
// chart ticks, game.TicksPerBeat to the beat.
type Config struct {
	LowKey           uint8   `yaml:"low_key"`           // Key placed in lane 0
	Width            float64 `yaml:"width"`             // Width of every imported note
	CriticalVelocity uint8   `yaml:"critical_velocity"` // 0 disables critical notes
	HoldTicks        int     `yaml:"hold_ticks"`        // Shortest note imported as a hold, 0 disables holds
	StepTicks        int     `yaml:"step_ticks"`        // Spacing of hold steps, 0 disables steps
	Channel          int     `yaml:"channel"`           // -1 reads every channel
	FrictionChannel  int     `yaml:"friction_channel"`  // Notes on this channel become friction notes, -1 disables
}

func DefaultConfig() Config {
	return Config{
		LowKey:           60,
		Width:            3,
		CriticalVelocity: 120,
		HoldTicks:        game.TicksPerBeat,
		StepTicks:        game.TicksPerBeat / 2,
		Channel:          -1,
		FrictionChannel:  -1,
	}
}

func (c *Config) Validate() error {
	if c.Width < game.MinNoteWidth || c.Width > game.MaxNoteWidth {
		return fmt.Errorf("width %v not within [%d, %d]", c.Width, game.MinNoteWidth, game.MaxNoteWidth)
	}
	if c.Channel < -1 || c.Channel > 15 {
		return fmt.Errorf("channel %d not within [-1, 15]", c.Channel)
	}
	if c.FrictionChannel < -1 || c.FrictionChannel > 15 {
		return fmt.Errorf("friction_channel %d not within [-1, 15]", c.FrictionChannel)
	}
	if c.HoldTicks < 0 || c.StepTicks < 0 {
		return errors.New("hold_ticks and step_ticks must not be negative")
	}
	return nil
}

// DefaultParser imports Standard MIDI Files. Every note becomes a tap, or a
// hold when it sounds for at least HoldTicks.
type DefaultParser struct {
	Config Config
}

type span struct {
	start, end        int64 // Chart ticks
	ch, key, velocity uint8
}

func (p *DefaultParser) Parse(file string) (s *score.Score, e error) {
	// smf can panic on malformed input
	defer func() {
		if r := recover(); r != nil {
			e = fmt.Errorf("parsing %q: %v", file, r)
		}
	}()

	mid, err := smf.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("smf.ReadFile(%q): %w", file, err)
	}
	return p.Build(mid)
}

// Build places the notes of mid on a new score.
func (p *DefaultParser) Build(mid *smf.SMF) (*score.Score, error) {
	if err := p.Config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid import config: %w", err)
	}
	tpq, ok := mid.TimeFormat.(smf.MetricTicks)
	if !ok || tpq == 0 {
		return nil, fmt.Errorf("unsupported time format %v", mid.TimeFormat)
	}
	toChart := func(t int64) int64 {
		return t * game.TicksPerBeat / int64(tpq)
	}

	type key struct{ ch, note uint8 }
	sounding := map[key]span{}
	spans := []span{}
	eachEvent(mid, func(time int64, msg smf.Message) {
		var ch, note, velocity uint8
		switch {
		case msg.GetNoteStart(&ch, &note, &velocity):
			if p.Config.Channel >= 0 && int(ch) != p.Config.Channel {
				return
			}
			k := key{ch, note}
			if _, ok := sounding[k]; ok {
				return
			}
			sounding[k] = span{start: toChart(time), ch: ch, key: note, velocity: velocity}
		case msg.GetNoteEnd(&ch, &note):
			k := key{ch, note}
			sp, ok := sounding[k]
			if !ok {
				return
			}
			delete(sounding, k)
			sp.end = toChart(time)
			spans = append(spans, sp)
		}
	})
	for k := range sounding {
		log.Printf("dropping key %d on channel %d: never released", k.note, k.ch)
	}

	sort.SliceStable(spans, func(i, j int) bool {
		if spans[i].start != spans[j].start {
			return spans[i].start < spans[j].start
		}
		return spans[i].key < spans[j].key
	})

	s := score.New()
	for _, sp := range spans {
		if err := p.place(s, sp); err != nil {
			return nil, fmt.Errorf("key %d at tick %d: %w", sp.key, sp.start, err)
		}
	}
	return s, nil
}

func (p *DefaultParser) lane(key uint8) float64 {
	positions := game.NumLanes - int(math.Ceil(p.Config.Width)) + 1
	l := (int(key) - int(p.Config.LowKey)) % positions
	if l < 0 {
		l += positions
	}
	return float64(l)
}

func (p *DefaultParser) place(s *score.Score, sp span) error {
	c := &p.Config
	tick, end := int(sp.start), int(sp.end)
	lane := p.lane(sp.key)
	critical := c.CriticalVelocity > 0 && sp.velocity >= c.CriticalVelocity
	friction := c.FrictionChannel >= 0 && int(sp.ch) == c.FrictionChannel
	mark := func(n *game.Note) {
		if critical {
			game.ToggleCritical(n)
		}
		if friction {
			game.ToggleFriction(n)
		}
	}

	if c.HoldTicks == 0 || end-tick < c.HoldTicks {
		n := game.NewNoteAt(game.Tap, tick, lane, c.Width)
		mark(&n)
		_, err := s.AddNote(n)
		return err
	}

	start := game.NewNoteAt(game.Hold, tick, lane, c.Width)
	tail := game.NewNoteAt(game.HoldEnd, end, lane, c.Width)
	mark(&start)
	mark(&tail)

	var steps []game.Note
	if c.StepTicks > 0 {
		for t := tick + c.StepTicks; t < end; t += c.StepTicks {
			step := game.NewNoteAt(game.HoldMid, t, lane, c.Width)
			mark(&step)
			steps = append(steps, step)
		}
	}
	_, err := s.AddHold(start, steps, tail)
	return err
}
