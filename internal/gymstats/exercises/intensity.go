package exercises

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArgument is returned when an exercise is constructed with a value
// outside its allowed set.
var ErrInvalidArgument = errors.New("invalid argument")

type Intensity string

const (
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"

	DefaultIntensity = IntensityMedium
)

var intensityMultipliers = map[Intensity]float64{
	IntensityLow:    1.0,
	IntensityMedium: 1.5,
	IntensityHigh:   2.0,
}

// ParseIntensity normalizes a user supplied label to lowercase and checks it.
// An empty label yields DefaultIntensity. Whitespace is not trimmed, a padded
// label is rejected like any other unknown one.
func ParseIntensity(label string) (Intensity, error) {
	label = strings.ToLower(label)
	if label == "" {
		return DefaultIntensity, nil
	}
	in := Intensity(label)
	if _, ok := intensityMultipliers[in]; !ok {
		return "", fmt.Errorf("%w: intensity must be 'low', 'medium', or 'high', got %q", ErrInvalidArgument, label)
	}
	return in, nil
}

// Multiplier returns the calorie multiplier, 0 for an unknown intensity.
func (i Intensity) Multiplier() float64 {
	return intensityMultipliers[i]
}

func (i Intensity) String() string {
	return string(i)
}
