package exercises_test

import (
	"testing"
	"time"

	"github.com/2beens/workouttracker/internal/gymstats/exercises"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestCardio(t *testing.T) {
	c := exercises.NewCardio("Running", 3.0, 30.0, exercises.WithDate("2024-01-15"))
	require.NotNil(t, c)

	assert.Equal(t, "Running", c.Name())
	assert.Equal(t, "2024-01-15", c.Date())
	assert.Equal(t, exercises.KindCardio, c.Kind())
	assert.Equal(t, 3.0, c.Distance())
	assert.Equal(t, 300.0, c.Calories())
	assert.Equal(t, 30.0, c.Duration())
	assert.Equal(t, "Running (3.0 miles, 30.0 min): 300 calories", c.String())
}

func TestCardio_CaloriesForRandomInputs(t *testing.T) {
	for i := 0; i < 100; i++ {
		distance := gofakeit.Float64Range(-50, 50)
		duration := gofakeit.Float64Range(0, 300)
		c := exercises.NewCardio(gofakeit.Word(), distance, duration)
		assert.Equal(t, distance*100, c.Calories())
		assert.Equal(t, duration, c.Duration())
	}
}

func TestStrength(t *testing.T) {
	s := exercises.NewStrength("Bench Press", 100.0, 10, 3)
	require.NotNil(t, s)

	assert.Equal(t, exercises.KindStrength, s.Kind())
	assert.Equal(t, 100.0, s.Weight())
	assert.Equal(t, 10, s.Reps())
	assert.Equal(t, 3, s.Sets())
	assert.InDelta(t, 150.0, s.Calories(), 1e-9)
	assert.Equal(t, 9.0, s.Duration())
	assert.Equal(t, "Bench Press (100.0 lbs x 10 reps x 3 sets): 150 calories", s.String())
}

func TestStrength_FormulasForRandomInputs(t *testing.T) {
	for i := 0; i < 100; i++ {
		weight := gofakeit.Float64Range(0, 500)
		reps := gofakeit.IntRange(0, 30)
		sets := gofakeit.IntRange(0, 10)
		s := exercises.NewStrength(gofakeit.Word(), weight, reps, sets)
		assert.Equal(t, weight*float64(reps)*float64(sets)*0.05, s.Calories())
		assert.Equal(t, float64(sets*3), s.Duration())
	}
}

func TestStrength_NegativeValuesAreNotClamped(t *testing.T) {
	s := exercises.NewStrength("Weird", -10, 10, -2)
	assert.InDelta(t, 10.0, s.Calories(), 1e-9)
	assert.Equal(t, -6.0, s.Duration())

	c := exercises.NewCardio("Backwards", -1, 0)
	assert.Equal(t, -100.0, c.Calories())
	assert.Equal(t, 0.0, c.Duration())
}

func TestStrength_DurationWithHugeSetCount(t *testing.T) {
	// sets*3 overflows int, the duration must not wrap around
	sets := 3074457345618258603
	s := exercises.NewStrength("Endless", 1, 1, sets)
	assert.Equal(t, float64(sets)*3, s.Duration())
	assert.Greater(t, s.Duration(), 0.0)
}

func TestFlexibility(t *testing.T) {
	f, err := exercises.NewFlexibility("Yoga", 20, "high")
	require.NoError(t, err)
	require.NotNil(t, f)

	assert.Equal(t, exercises.KindFlexibility, f.Kind())
	assert.Equal(t, exercises.IntensityHigh, f.Intensity())
	assert.Equal(t, 100.0, f.Calories())
	assert.Equal(t, 20.0, f.Duration())
	assert.Equal(t, "Yoga (20.0 min, high intensity): 100 calories", f.String())
}

func TestFlexibility_IntensityIsCaseInsensitive(t *testing.T) {
	testCases := []struct {
		label      string
		intensity  exercises.Intensity
		multiplier float64
	}{
		{"low", exercises.IntensityLow, 1.0},
		{"LOW", exercises.IntensityLow, 1.0},
		{"Low", exercises.IntensityLow, 1.0},
		{"medium", exercises.IntensityMedium, 1.5},
		{"MeDiUm", exercises.IntensityMedium, 1.5},
		{"high", exercises.IntensityHigh, 2.0},
		{"HIGH", exercises.IntensityHigh, 2.0},
		{"", exercises.IntensityMedium, 1.5},
	}

	for _, tc := range testCases {
		t.Run(tc.label, func(t *testing.T) {
			duration := gofakeit.Float64Range(0, 120)
			f, err := exercises.NewFlexibility("Stretching", duration, tc.label)
			require.NoError(t, err)
			assert.Equal(t, tc.intensity, f.Intensity())
			assert.Equal(t, duration*2.5*tc.multiplier, f.Calories())
		})
	}
}

func TestFlexibility_InvalidIntensity(t *testing.T) {
	for _, label := range []string{"extreme", "none", "med", "lowest"} {
		f, err := exercises.NewFlexibility("Yoga", 30, label)
		require.Error(t, err)
		assert.ErrorIs(t, err, exercises.ErrInvalidArgument)
		assert.Nil(t, f)
	}
}

func TestParseIntensity(t *testing.T) {
	in, err := exercises.ParseIntensity("High")
	require.NoError(t, err)
	assert.Equal(t, exercises.IntensityHigh, in)
	assert.Equal(t, 2.0, in.Multiplier())

	for _, label := range []string{"extreme", "  High ", "\tHIGH\n", " "} {
		_, err = exercises.ParseIntensity(label)
		assert.ErrorIs(t, err, exercises.ErrInvalidArgument, "label %q", label)
	}

	assert.Equal(t, 0.0, exercises.Intensity("bogus").Multiplier())
}

func TestUnspecified(t *testing.T) {
	u := exercises.NewUnspecified("Plank", exercises.WithDate("2024-02-01"))
	assert.Equal(t, exercises.KindUnspecified, u.Kind())
	assert.Equal(t, 0.0, u.Calories())
	assert.Equal(t, 0.0, u.Duration())
	assert.Equal(t, "Plank: 0 calories", u.String())
	assert.Equal(t, "2024-02-01", u.Date())
}

func TestDefaultDate_IsCapturedAtConstruction(t *testing.T) {
	day := time.Date(2023, 7, 9, 23, 59, 0, 0, time.Local)
	exercises.SetNow(t, func() time.Time { return day })

	c := exercises.NewCardio("Cycling", 10, 40)
	assert.Equal(t, "2023-07-09", c.Date())

	exercises.SetNow(t, func() time.Time { return day.Add(time.Hour) })
	assert.Equal(t, "2023-07-09", c.Date())
	assert.Equal(t, "2023-07-10", exercises.NewCardio("Cycling", 10, 40).Date())
}

func TestString_DecimalFields(t *testing.T) {
	c := exercises.NewCardio("Walk", 2.25, 41.5)
	assert.Equal(t, "Walk (2.25 miles, 41.5 min): 225 calories", c.String())

	f, err := exercises.NewFlexibility("Stretch", 10.5, "low")
	require.NoError(t, err)
	// 26.25 rounds to the nearest whole number
	assert.Equal(t, "Stretch (10.5 min, low intensity): 26 calories", f.String())
}
