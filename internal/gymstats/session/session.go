// Package session runs an interactive prompt loop that collects exercises
// from a human operator and adds them to a single workout.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/2beens/workouttracker/internal/gymstats/exercises"
	"github.com/2beens/workouttracker/internal/gymstats/workout"
	"github.com/2beens/workouttracker/internal/metrics"

	log "github.com/sirupsen/logrus"
)

var errInvalidInput = errors.New("invalid input")

// maxLineLength bounds a single input line, longer lines are discarded
const maxLineLength = 4096

const (
	choiceCardio      = "1"
	choiceStrength    = "2"
	choiceFlexibility = "3"
	choiceFinish      = "4"
)

type Session struct {
	reader  *bufio.Reader
	out     io.Writer
	workout *workout.Workout
	metrics *metrics.Manager
}

func New(in io.Reader, out io.Writer, metricsManager *metrics.Manager) *Session {
	return &Session{
		reader:  bufio.NewReaderSize(in, maxLineLength+1),
		out:     out,
		workout: workout.New(),
		metrics: metricsManager,
	}
}

// Run reads menu choices until the operator finishes the workout or the input
// ends, then prints the workout summary. Bad entries are reported and the loop
// goes on. Only a failure to read the input is returned as an error.
func (s *Session) Run() (*workout.Workout, error) {
	s.println("=== Workout Tracker ===")
	s.println()

	for {
		s.println()
		s.println("Exercise type?")
		s.println("1. Cardio")
		s.println("2. Strength")
		s.println("3. Flexibility")
		s.println("4. Finish workout")

		choice, err := s.ask("\nChoice (1-4): ")
		if errors.Is(err, errInvalidInput) {
			log.Debugf("invalid menu input: %s", err)
			s.metrics.CounterInvalidChoices.Inc()
			s.printf("Error: %s\n", err)
			continue
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				log.Debugln("input closed, finishing workout")
				break
			}
			return s.workout, err
		}

		if choice == choiceFinish {
			break
		}

		finished, err := s.handleChoice(choice)
		if err != nil {
			return s.workout, err
		}
		if finished {
			break
		}
	}

	s.finish()
	return s.workout, nil
}

// handleChoice returns true when the input ended in the middle of an entry
func (s *Session) handleChoice(choice string) (bool, error) {
	var (
		kind     exercises.Kind
		exercise exercises.Exercise
		err      error
	)
	switch choice {
	case choiceCardio:
		kind = exercises.KindCardio
		exercise, err = s.readCardio()
	case choiceStrength:
		kind = exercises.KindStrength
		exercise, err = s.readStrength()
	case choiceFlexibility:
		kind = exercises.KindFlexibility
		exercise, err = s.readFlexibility()
	default:
		log.Debugf("invalid menu choice: [%s]", choice)
		s.metrics.CounterInvalidChoices.Inc()
		s.println("Invalid choice. Please enter 1-4.")
		return false, nil
	}

	switch {
	case err == nil:
	case errors.Is(err, io.EOF):
		return true, nil
	case errors.Is(err, errInvalidInput):
		log.Warnf("failed to read %s exercise: %s", kind, err)
		s.metrics.ExerciseRejected(kind, "invalid_input")
		s.printf("Error: %s\n", err)
		return false, nil
	case errors.Is(err, exercises.ErrInvalidArgument):
		log.Warnf("failed to create %s exercise: %s", kind, err)
		s.metrics.ExerciseRejected(kind, "invalid_argument")
		s.printf("Error: %s\n", err)
		return false, nil
	default:
		return false, err
	}

	// the readers only build package variants, Add cannot reject them
	if err := s.workout.Add(exercise); err != nil {
		return false, err
	}
	log.Debugf("exercise added: %s", exercise)
	s.metrics.ExerciseAdded(kind)
	s.println()
	s.printf("✓ Added: %s\n", exercise)
	return false, nil
}

func (s *Session) readCardio() (exercises.Exercise, error) {
	name, err := s.ask("Exercise name (e.g., Running, Cycling): ")
	if err != nil {
		return nil, err
	}
	distance, err := s.askFloat("Distance (miles): ")
	if err != nil {
		return nil, err
	}
	duration, err := s.askFloat("Duration (minutes): ")
	if err != nil {
		return nil, err
	}
	return exercises.NewCardio(name, distance, duration), nil
}

func (s *Session) readStrength() (exercises.Exercise, error) {
	name, err := s.ask("Exercise name (e.g., Bench Press, Squats): ")
	if err != nil {
		return nil, err
	}
	weight, err := s.askFloat("Weight (lbs): ")
	if err != nil {
		return nil, err
	}
	reps, err := s.askInt("Reps per set: ")
	if err != nil {
		return nil, err
	}
	sets, err := s.askInt("Number of sets: ")
	if err != nil {
		return nil, err
	}
	return exercises.NewStrength(name, weight, reps, sets), nil
}

func (s *Session) readFlexibility() (exercises.Exercise, error) {
	name, err := s.ask("Exercise name (e.g., Yoga, Stretching): ")
	if err != nil {
		return nil, err
	}
	duration, err := s.askFloat("Duration (minutes): ")
	if err != nil {
		return nil, err
	}
	intensity, err := s.ask("Intensity (low/medium/high): ")
	if err != nil {
		return nil, err
	}
	flexibility, err := exercises.NewFlexibility(name, duration, intensity)
	if err != nil {
		return nil, err
	}
	return flexibility, nil
}

func (s *Session) finish() {
	s.metrics.ObserveWorkout(s.workout)
	log.Infof("workout finished: %s", s.workout)

	s.println()
	s.println(s.workout.Summary())
	if shares := s.caloriesShareLine(); shares != "" {
		s.println(shares)
	}
	s.println()
	s.println("Workout complete! 💪")
}

// caloriesShareLine is empty unless calories come from more than one kind
func (s *Session) caloriesShareLine() string {
	share := s.workout.CaloriesShare()
	if len(share) < 2 {
		return ""
	}
	kinds := make([]string, 0, len(share))
	for kind := range share {
		kinds = append(kinds, string(kind))
	}
	slices.Sort(kinds)

	parts := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		parts = append(parts, fmt.Sprintf("%s %.2f%%", kind, share[exercises.Kind(kind)]))
	}
	return "Calories by kind: " + strings.Join(parts, ", ")
}

// ask prints the prompt and returns the next trimmed input line, or io.EOF
// when there is no more input. A line longer than maxLineLength is skipped
// and reported as errInvalidInput.
func (s *Session) ask(prompt string) (string, error) {
	s.printf("%s", prompt)
	line, err := s.reader.ReadSlice('\n')
	if errors.Is(err, bufio.ErrBufferFull) {
		for errors.Is(err, bufio.ErrBufferFull) {
			_, err = s.reader.ReadSlice('\n')
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", fmt.Errorf("%w - line longer than %d characters", errInvalidInput, maxLineLength)
	}
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		if len(line) == 0 {
			return "", io.EOF
		}
	}
	return strings.TrimSpace(string(line)), nil
}

func (s *Session) askFloat(prompt string) (float64, error) {
	raw, err := s.ask(prompt)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w - could not convert %q to a number", errInvalidInput, raw)
	}
	return v, nil
}

func (s *Session) askInt(prompt string) (int, error) {
	raw, err := s.ask(prompt)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w - could not convert %q to a whole number", errInvalidInput, raw)
	}
	return v, nil
}

func (s *Session) println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Session) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}
