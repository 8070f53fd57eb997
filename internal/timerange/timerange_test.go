package timerange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSymbolicModes(t *testing.T) {
	now := time.Now()
	cases := []struct {
		mode  string
		start time.Time
	}{
		{"1d", now.AddDate(0, 0, -1)},
		{"3d", now.AddDate(0, 0, -3)},
		{"7d", now.AddDate(0, 0, -7)},
		{"1m", now.AddDate(0, -1, 0)},
		{"1y", now.AddDate(-1, 0, 0)},
	}

	for _, tc := range cases {
		t.Run(tc.mode, func(t *testing.T) {
			r, err := Resolve(tc.mode, "", "")
			require.NoError(t, err)

			wantStart := time.Date(tc.start.Year(), tc.start.Month(), tc.start.Day(), 0, 0, 0, 0, time.Local)
			wantEnd := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, time.Local)
			assert.Equal(t, wantStart.Unix(), r.Start)
			assert.Equal(t, wantEnd.Unix(), r.End)
			assert.LessOrEqual(t, r.Start, r.End)
		})
	}
}

func TestResolveStartIsLocalMidnight(t *testing.T) {
	r, err := Resolve("7d", "", "")
	require.NoError(t, err)

	start := time.Unix(r.Start, 0)
	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, 0, start.Minute())
	assert.Equal(t, 0, start.Second())

	end := time.Unix(r.End, 0)
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	assert.Equal(t, 59, end.Second())
}

func TestResolveCustom(t *testing.T) {
	r, err := Resolve("custom", "2025-03-01", "2025-03-05")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local).Unix(), r.Start)
	assert.Equal(t, time.Date(2025, 3, 5, 23, 59, 59, 0, time.Local).Unix(), r.End)
}

func TestResolveCustomSingleDay(t *testing.T) {
	r, err := Resolve("custom", "2025-03-01", "2025-03-01")
	require.NoError(t, err)
	assert.Equal(t, int64(86399), r.End-r.Start)
}

func TestResolveCustomMissingDates(t *testing.T) {
	_, err := Resolve("custom", "2025-03-01", "")
	assert.ErrorIs(t, err, ErrMissingCustomRange)

	_, err = Resolve("custom", "", "2025-03-01")
	assert.ErrorIs(t, err, ErrMissingCustomRange)
}

func TestResolveCustomBadDate(t *testing.T) {
	_, err := Resolve("custom", "03/01/2025", "2025-03-05")
	assert.Error(t, err)
}

func TestResolveCustomInvertedAccepted(t *testing.T) {
	// validation is advisory, the resolver does not reorder
	r, err := Resolve("custom", "2025-03-05", "2025-03-01")
	require.NoError(t, err)
	assert.Greater(t, r.Start, r.End)
}

func TestResolveUnknownMode(t *testing.T) {
	for _, mode := range []string{"", "2d", "yesterday", "1D"} {
		_, err := Resolve(mode, "", "")
		assert.ErrorIs(t, err, ErrInvalidTimeMode, "mode %q", mode)
	}
}
