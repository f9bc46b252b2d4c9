package exercises

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// now is swapped in tests
var now = time.Now

type Kind string

const (
	KindUnspecified Kind = "unspecified"
	KindCardio      Kind = "cardio"
	KindStrength    Kind = "strength"
	KindFlexibility Kind = "flexibility"
)

// Exercise is implemented by every exercise variant in this package.
// Values are immutable once constructed.
type Exercise interface {
	Name() string
	// Date is the day the exercise was done, in YYYY-MM-DD form
	Date() string
	Kind() Kind
	// Calories is the estimated number of calories burned
	Calories() float64
	// Duration is the exercise duration in minutes
	Duration() float64
	String() string

	isExercise()
}

type Option func(*base)

// WithDate sets the exercise date instead of the current local date.
// The value is stored as given.
func WithDate(date string) Option {
	return func(b *base) {
		b.date = date
	}
}

type base struct {
	name string
	date string
}

func newBase(name string, opts []Option) base {
	b := base{name: name}
	for _, opt := range opts {
		opt(&b)
	}
	if b.date == "" {
		b.date = now().Format(dateLayout)
	}
	return b
}

func (b base) Name() string { return b.name }
func (b base) Date() string { return b.date }
func (b base) isExercise()  {}

// Unspecified is an exercise of no particular kind. It burns no calories
// and takes no time.
type Unspecified struct {
	base
}

func NewUnspecified(name string, opts ...Option) *Unspecified {
	return &Unspecified{base: newBase(name, opts)}
}

func (u *Unspecified) Kind() Kind        { return KindUnspecified }
func (u *Unspecified) Calories() float64 { return 0 }
func (u *Unspecified) Duration() float64 { return 0 }

func (u *Unspecified) String() string {
	return fmt.Sprintf("%s: %s calories", u.name, formatWhole(u.Calories()))
}

type Cardio struct {
	base
	distance float64
	duration float64
}

// NewCardio creates a cardio exercise. Distance is in miles, duration in minutes.
func NewCardio(name string, distance, duration float64, opts ...Option) *Cardio {
	return &Cardio{
		base:     newBase(name, opts),
		distance: distance,
		duration: duration,
	}
}

func (c *Cardio) Kind() Kind        { return KindCardio }
func (c *Cardio) Distance() float64 { return c.distance }
func (c *Cardio) Duration() float64 { return c.duration }
func (c *Cardio) Calories() float64 { return c.distance * 100 }

func (c *Cardio) String() string {
	return fmt.Sprintf(
		"%s (%s miles, %s min): %s calories",
		c.name, formatDecimal(c.distance), formatDecimal(c.duration), formatWhole(c.Calories()),
	)
}

type Strength struct {
	base
	weight float64
	reps   int
	sets   int
}

// NewStrength creates a strength exercise. Weight is in pounds, reps are per set.
func NewStrength(name string, weight float64, reps, sets int, opts ...Option) *Strength {
	return &Strength{
		base:   newBase(name, opts),
		weight: weight,
		reps:   reps,
		sets:   sets,
	}
}

func (s *Strength) Kind() Kind      { return KindStrength }
func (s *Strength) Weight() float64 { return s.weight }
func (s *Strength) Reps() int       { return s.reps }
func (s *Strength) Sets() int       { return s.sets }

func (s *Strength) Calories() float64 {
	return s.weight * float64(s.reps) * float64(s.sets) * 0.05
}

// Duration is estimated from the number of sets, 3 minutes each.
func (s *Strength) Duration() float64 {
	return float64(s.sets) * 3
}

func (s *Strength) String() string {
	return fmt.Sprintf(
		"%s (%s lbs x %d reps x %d sets): %s calories",
		s.name, formatDecimal(s.weight), s.reps, s.sets, formatWhole(s.Calories()),
	)
}

type Flexibility struct {
	base
	duration  float64
	intensity Intensity
}

// NewFlexibility creates a flexibility exercise. The intensity label is case
// insensitive, an empty label means IntensityMedium.
func NewFlexibility(name string, duration float64, intensity string, opts ...Option) (*Flexibility, error) {
	in, err := ParseIntensity(intensity)
	if err != nil {
		return nil, err
	}
	return &Flexibility{
		base:      newBase(name, opts),
		duration:  duration,
		intensity: in,
	}, nil
}

func (f *Flexibility) Kind() Kind           { return KindFlexibility }
func (f *Flexibility) Duration() float64    { return f.duration }
func (f *Flexibility) Intensity() Intensity { return f.intensity }

func (f *Flexibility) Calories() float64 {
	return f.duration * 2.5 * f.intensity.Multiplier()
}

func (f *Flexibility) String() string {
	return fmt.Sprintf(
		"%s (%s min, %s intensity): %s calories",
		f.name, formatDecimal(f.duration), f.intensity, formatWhole(f.Calories()),
	)
}

// formatDecimal prints the shortest representation of v, always with a fractional part
func formatDecimal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !math.IsInf(v, 0) && !math.IsNaN(v) && !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func formatWhole(v float64) string {
	return strconv.FormatFloat(v, 'f', 0, 64)
}
