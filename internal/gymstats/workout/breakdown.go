package workout

import "github.com/2beens/workouttracker/internal/gymstats/exercises"

// KindStats aggregates the exercises of a single kind
type KindStats struct {
	Count    int     `json:"count"`
	Calories float64 `json:"calories"`
	Duration float64 `json:"duration"`
}

// Breakdown groups the workout totals by exercise kind. Kinds without
// exercises are left out.
func (w *Workout) Breakdown() map[exercises.Kind]KindStats {
	kind2stats := make(map[exercises.Kind]KindStats)
	for _, ex := range w.exercises {
		stats := kind2stats[ex.Kind()]
		stats.Count++
		stats.Calories += ex.Calories()
		stats.Duration += ex.Duration()
		kind2stats[ex.Kind()] = stats
	}
	return kind2stats
}

// CaloriesShare returns the percentage of total calories burned by each kind,
// truncated to two decimals. It is empty when the workout burned no calories.
func (w *Workout) CaloriesShare() map[exercises.Kind]float64 {
	share := make(map[exercises.Kind]float64)
	total := w.TotalCalories()
	if total == 0 {
		return share
	}
	for kind, stats := range w.Breakdown() {
		p := stats.Calories / total * 100
		// leave only 2 decimals
		p = float64(int(p*100)) / 100
		share[kind] = p
	}
	return share
}
