// Package display holds the operator-adjustable visual scale parameters
// They are independent of game state and live for the session only
package display

// Param identifies an adjustable setting
type Param uint8

const (
	ParamNumberSize Param = iota
	ParamZoom
	paramCount
)

// ParamCount is the number of adjustable settings
const ParamCount = int(paramCount)

// Current-number size bounds, in size units (pixels in the window shell)
const (
	NumberSizeMin     = 60
	NumberSizeMax     = 400
	NumberSizeDefault = 150
	NumberSizeStep    = 10
)

// Board zoom bounds, in percent
const (
	ZoomMin     = 50
	ZoomMax     = 150
	ZoomDefault = 100
	ZoomStep    = 5
)

// Board base dimensions at 100% zoom, in rem
const (
	BaseRowHeight  = 5.0
	BaseLetterSize = 3.0
	BaseNumberSize = 1.5
)

// PlaceholderRatio scales the empty-board placeholder against the number size
const PlaceholderRatio = 0.6

// Bounds describes a parameter's range and slider step
type Bounds struct {
	Min, Max, Default, Step int
	Label                   string
	Unit                    string
}

var paramBounds = [ParamCount]Bounds{
	ParamNumberSize: {NumberSizeMin, NumberSizeMax, NumberSizeDefault, NumberSizeStep, "Current Number Size", "px"},
	ParamZoom:       {ZoomMin, ZoomMax, ZoomDefault, ZoomStep, "Grid Zoom", "%"},
}

// BoundsOf returns the range of p
func BoundsOf(p Param) Bounds {
	if p >= paramCount {
		return Bounds{}
	}
	return paramBounds[p]
}

// Clamp returns v limited to [lo, hi]
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Settings holds the two display parameters
type Settings struct {
	values [ParamCount]int
}

// Default returns settings at their default values
func Default() Settings {
	return New(NumberSizeDefault, ZoomDefault)
}

// New returns settings with both values clamped into bounds
func New(numberSize, zoom int) Settings {
	var s Settings
	s.Set(ParamNumberSize, numberSize)
	s.Set(ParamZoom, zoom)
	return s
}

// Get returns the value of p
func (s Settings) Get(p Param) int {
	if p >= paramCount {
		return 0
	}
	return s.values[p]
}

// Set stores v for p clamped into bounds and returns the stored value
func (s *Settings) Set(p Param, v int) int {
	if p >= paramCount {
		return 0
	}
	b := paramBounds[p]
	s.values[p] = Clamp(v, b.Min, b.Max)
	return s.values[p]
}

// Adjust moves p by steps slider steps
func (s *Settings) Adjust(p Param, steps int) int {
	return s.Set(p, s.Get(p)+steps*BoundsOf(p).Step)
}

// NumberSize returns the current-number size
func (s Settings) NumberSize() int {
	return s.values[ParamNumberSize]
}

// Zoom returns the board zoom percent
func (s Settings) Zoom() int {
	return s.values[ParamZoom]
}

// Scale returns the board scale factor derived from zoom
func (s Settings) Scale() float64 {
	return float64(s.Zoom()) / 100
}

// PlaceholderSize returns the size used for the empty-board placeholder
func (s Settings) PlaceholderSize() float64 {
	return float64(s.NumberSize()) * PlaceholderRatio
}

// Dimensions are the board sizes after zoom, in rem
type Dimensions struct {
	RowHeight  float64
	LetterSize float64
	NumberSize float64
}

// Dimensions scales every board dimension by the single zoom factor
func (s Settings) Dimensions() Dimensions {
	k := s.Scale()
	return Dimensions{
		RowHeight:  BaseRowHeight * k,
		LetterSize: BaseLetterSize * k,
		NumberSize: BaseNumberSize * k,
	}
}
