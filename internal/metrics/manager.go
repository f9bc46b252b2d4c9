package metrics

import (
	"github.com/2beens/workouttracker/internal/gymstats/exercises"
	"github.com/2beens/workouttracker/internal/gymstats/workout"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterExercisesAdded    *prometheus.CounterVec
	CounterExercisesRejected *prometheus.CounterVec
	CounterInvalidChoices    prometheus.Counter

	// gauges
	GaugeWorkoutExercises *prometheus.GaugeVec
	GaugeWorkoutCalories  *prometheus.GaugeVec
	GaugeWorkoutMinutes   *prometheus.GaugeVec
}

func NewTestManager() *Manager {
	return NewManager("workout_tracker", "test_session", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("workout_tracker", "test_session", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterExercisesAdded := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "exercises_added_total",
		Help:      "The total number of exercises added to the workout",
	}, []string{"kind"})
	counterExercisesRejected := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "exercises_rejected_total",
		Help:      "The total number of exercise entries that failed",
	}, []string{"kind", "reason"})
	counterInvalidChoices := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "invalid_menu_choices_total",
		Help:      "The total number of unknown menu choices",
	})

	gaugeWorkoutExercises := factory.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workout_exercises",
		Help:      "Number of exercises in the finished workout",
	}, []string{"kind"})
	gaugeWorkoutCalories := factory.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workout_calories",
		Help:      "Calories burned in the finished workout",
	}, []string{"kind"})
	gaugeWorkoutMinutes := factory.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workout_duration_minutes",
		Help:      "Duration of the finished workout in minutes",
	}, []string{"kind"})

	return &Manager{
		CounterExercisesAdded:    counterExercisesAdded,
		CounterExercisesRejected: counterExercisesRejected,
		CounterInvalidChoices:    counterInvalidChoices,
		GaugeWorkoutExercises:    gaugeWorkoutExercises,
		GaugeWorkoutCalories:     gaugeWorkoutCalories,
		GaugeWorkoutMinutes:      gaugeWorkoutMinutes,
	}
}

// ObserveWorkout sets the workout gauges, one series per exercise kind
// present in the workout.
func (m *Manager) ObserveWorkout(w *workout.Workout) {
	for kind, stats := range w.Breakdown() {
		m.GaugeWorkoutExercises.WithLabelValues(string(kind)).Set(float64(stats.Count))
		m.GaugeWorkoutCalories.WithLabelValues(string(kind)).Set(stats.Calories)
		m.GaugeWorkoutMinutes.WithLabelValues(string(kind)).Set(stats.Duration)
	}
}

func (m *Manager) ExerciseAdded(kind exercises.Kind) {
	m.CounterExercisesAdded.WithLabelValues(string(kind)).Inc()
}

func (m *Manager) ExerciseRejected(kind exercises.Kind, reason string) {
	m.CounterExercisesRejected.WithLabelValues(string(kind), reason).Inc()
}
