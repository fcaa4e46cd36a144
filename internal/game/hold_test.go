package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chain(steps int) HoldNote {
	h := NewHoldNote(100, 200)
	for i := 0; i < steps; i++ {
		h.Steps = append(h.Steps, HoldStep{ID: 101 + i})
	}
	return h
}

func TestStep(t *testing.T) {
	for size := 0; size < 4; size++ {
		h := chain(size)

		s, err := h.Step(-1)
		require.NoError(t, err)
		assert.Same(t, &h.Start, s)

		for i := 0; i < size; i++ {
			s, err := h.Step(i)
			require.NoError(t, err)
			assert.Same(t, &h.Steps[i], s)
		}

		for _, index := range []int{-3, -2, size, size + 1} {
			s, err := h.Step(index)
			assert.Nil(t, s)
			assert.ErrorIs(t, err, ErrOutOfRange, "size %d index %d", size, index)
		}
	}
}

func TestStepIsMutable(t *testing.T) {
	h := chain(2)
	s, err := h.Step(1)
	require.NoError(t, err)
	s.Type = StepHidden
	assert.Equal(t, StepHidden, h.Steps[1].Type)
}

func TestIDAt(t *testing.T) {
	for size := 0; size < 4; size++ {
		h := chain(size)

		id, err := h.IDAt(-1)
		require.NoError(t, err)
		assert.Equal(t, 100, id)

		for i := 0; i < size; i++ {
			id, err := h.IDAt(i)
			require.NoError(t, err)
			assert.Equal(t, 101+i, id)
		}

		id, err = h.IDAt(size)
		require.NoError(t, err)
		assert.Equal(t, 200, id)

		for _, index := range []int{-2, size + 1} {
			_, err := h.IDAt(index)
			var ie *IndexError
			require.True(t, errors.As(err, &ie), "size %d index %d", size, index)
			assert.Equal(t, index, ie.Index)
			assert.Equal(t, size, ie.Len)
		}
	}
}

func TestIDs(t *testing.T) {
	h := chain(2)
	assert.Equal(t, []int{100, 101, 102, 200}, h.IDs())
	assert.Equal(t, 4, h.Len())
}

func TestIsGuide(t *testing.T) {
	for start := HoldNoteType(0); start < HoldNoteTypeCount; start++ {
		for end := HoldNoteType(0); end < HoldNoteTypeCount; end++ {
			h := HoldNote{StartType: start, EndType: end}
			expected := start == HoldGuide || end == HoldGuide
			assert.Equal(t, expected, h.IsGuide(), "start %v end %v", start, end)
		}
	}
}

func TestNewHoldNoteDefaults(t *testing.T) {
	h := NewHoldNote(1, 2)
	assert.Equal(t, HoldNormal, h.StartType)
	assert.Equal(t, HoldNormal, h.EndType)
	assert.Equal(t, FadeOut, h.Fade)
	assert.Equal(t, GuideGreen, h.GuideColor)
	assert.Equal(t, StepVisible, h.Start.Type)
	assert.Equal(t, EaseLinear, h.Start.Ease)
}
