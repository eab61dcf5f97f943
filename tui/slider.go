package tui

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
)

// Slider track characters
const (
	sliderFilled = '━'
	sliderEmpty  = '─'
	sliderKnob   = '●'
)

// SliderState is a bounded integer range control
type SliderState struct {
	Label string
	Unit  string
	Value int
	Min   int
	Max   int
	Step  int
}

// clamp keeps Value within bounds
func (s *SliderState) clamp() {
	if s.Value < s.Min {
		s.Value = s.Min
	}
	if s.Value > s.Max {
		s.Value = s.Max
	}
}

// Set stores v clamped to bounds
func (s *SliderState) Set(v int) {
	s.Value = v
	s.clamp()
}

// Fraction returns the knob position in [0, 1]
func (s *SliderState) Fraction() float64 {
	if s.Max <= s.Min {
		return 0
	}
	return float64(s.Value-s.Min) / float64(s.Max-s.Min)
}

// SetFraction moves the knob to frac of the range, snapping to Step
func (s *SliderState) SetFraction(frac float64) {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	raw := float64(s.Min) + frac*float64(s.Max-s.Min)
	step := s.Step
	if step < 1 {
		step = 1
	}
	steps := int((raw-float64(s.Min))/float64(step) + 0.5)
	s.Set(s.Min + steps*step)
}

// HandleKey adjusts the value, returns true if the key was consumed
func (s *SliderState) HandleKey(key tcell.Key, r rune) bool {
	step := s.Step
	if step < 1 {
		step = 1
	}
	switch key {
	case tcell.KeyLeft:
		s.Set(s.Value - step)
	case tcell.KeyRight:
		s.Set(s.Value + step)
	case tcell.KeyPgDn:
		s.Set(s.Value - 5*step)
	case tcell.KeyPgUp:
		s.Set(s.Value + 5*step)
	case tcell.KeyHome:
		s.Set(s.Min)
	case tcell.KeyEnd:
		s.Set(s.Max)
	case tcell.KeyRune:
		switch r {
		case 'h', '-':
			s.Set(s.Value - step)
		case 'l', '+', '=':
			s.Set(s.Value + step)
		default:
			return false
		}
	default:
		return false
	}
	return true
}

// SliderStyle defines slider colors
type SliderStyle struct {
	Label       tcell.Style
	Value       tcell.Style
	Track       tcell.Style
	Fill        tcell.Style
	Knob        tcell.Style
	FocusedKnob tcell.Style
}

// Slider draws label and value on row y, the track on row y+1
// Returns the absolute track rectangle for click-to-set
func (r Region) Slider(y int, s *SliderState, focused bool, style SliderStyle) Rect {
	label := s.Label
	if focused {
		label = "▸ " + label
	}
	r.Text(0, y, label, style.Label)
	r.TextRight(y, strconv.Itoa(s.Value)+s.Unit, style.Value)

	track := r.Sub(0, y+1, r.W, 1)
	if track.W < 1 {
		return Rect{}
	}
	knob := int(s.Fraction()*float64(track.W-1) + 0.5)
	for x := 0; x < track.W; x++ {
		switch {
		case x == knob:
			st := style.Knob
			if focused {
				st = style.FocusedKnob
			}
			track.Cell(x, 0, sliderKnob, st)
		case x < knob:
			track.Cell(x, 0, sliderFilled, style.Fill)
		default:
			track.Cell(x, 0, sliderEmpty, style.Track)
		}
	}
	return track.Rect()
}

// ClickTrack sets the value from an absolute x inside track
func (s *SliderState) ClickTrack(x int, track Rect) {
	if track.W <= 1 {
		s.Set(s.Min)
		return
	}
	s.SetFraction(float64(x-track.X) / float64(track.W-1))
}
