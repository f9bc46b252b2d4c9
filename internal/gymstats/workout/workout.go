package workout

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/2beens/workouttracker/internal/gymstats/exercises"
)

const (
	emptySummary  = "Empty workout - no exercises added"
	summaryHeader = "--- Workout Summary ---"
)

// ErrTypeMismatch is returned when a value that is not a usable exercise
// is added to a workout.
var ErrTypeMismatch = errors.New("type mismatch")

// Workout is an ordered, append-only list of exercises.
// The zero value is an empty workout ready to use.
type Workout struct {
	exercises []exercises.Exercise
}

func New() *Workout {
	return &Workout{}
}

// Add appends the exercise. It fails with ErrTypeMismatch, leaving the workout
// unchanged, for nil values, for types other than the exercises package variants
// and for a Flexibility not built by exercises.NewFlexibility.
func (w *Workout) Add(exercise exercises.Exercise) error {
	if !isKnownExercise(exercise) {
		return fmt.Errorf("%w: only exercises can be added to a workout, got %T", ErrTypeMismatch, exercise)
	}
	w.exercises = append(w.exercises, exercise)
	return nil
}

func isKnownExercise(exercise exercises.Exercise) bool {
	switch ex := exercise.(type) {
	case *exercises.Cardio:
		return ex != nil
	case *exercises.Strength:
		return ex != nil
	case *exercises.Flexibility:
		// a zero value Flexibility has no intensity
		return ex != nil && ex.Intensity().Multiplier() != 0
	case *exercises.Unspecified:
		return ex != nil
	default:
		return false
	}
}

// Exercises returns a copy of the exercises in insertion order.
func (w *Workout) Exercises() []exercises.Exercise {
	return slices.Clone(w.exercises)
}

func (w *Workout) TotalCalories() float64 {
	var total float64
	for _, ex := range w.exercises {
		total += ex.Calories()
	}
	return total
}

// TotalDuration returns the sum of exercise durations, in minutes.
func (w *Workout) TotalDuration() float64 {
	var total float64
	for _, ex := range w.exercises {
		total += ex.Duration()
	}
	return total
}

func (w *Workout) Count() int {
	return len(w.exercises)
}

func (w *Workout) Len() int {
	return w.Count()
}

// Summary renders a multi-line report: a header, one numbered line per
// exercise and a totals line.
func (w *Workout) Summary() string {
	if len(w.exercises) == 0 {
		return emptySummary
	}

	lines := make([]string, 0, len(w.exercises)+2)
	lines = append(lines, summaryHeader)
	for i, ex := range w.exercises {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, ex))
	}
	lines = append(lines, fmt.Sprintf(
		"Total: %s calories, %s minutes",
		roundWhole(w.TotalCalories()), roundWhole(w.TotalDuration()),
	))

	return strings.Join(lines, "\n")
}

func (w *Workout) String() string {
	return fmt.Sprintf("Workout with %d exercises, %s calories", w.Count(), roundWhole(w.TotalCalories()))
}

func roundWhole(v float64) string {
	return strconv.FormatFloat(v, 'f', 0, 64)
}
