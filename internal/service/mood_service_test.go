package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMoodLogDate(t *testing.T) {
	t.Run("empty input uses the UTC calendar day", func(t *testing.T) {
		// 02:00 local at UTC+12 is still the previous day in UTC; the
		// stored date must match the clock Stats walks the streak with.
		loc := time.FixedZone("UTC+12", 12*60*60)
		now := time.Date(2026, 8, 29, 2, 0, 0, 0, loc)

		date, err := moodLogDate("", now)
		assert.NoError(t, err)
		assert.Equal(t, "2026-08-28", date.Format("2006-01-02"))

		y, m, d := now.UTC().Date()
		assert.Equal(t, time.Date(y, m, d, 0, 0, 0, 0, time.UTC), date)
	})

	t.Run("explicit date is taken as-is", func(t *testing.T) {
		date, err := moodLogDate("2026-01-15", time.Now())
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), date)
	})

	t.Run("malformed date is rejected", func(t *testing.T) {
		_, err := moodLogDate("15/01/2026", time.Now())
		assert.ErrorIs(t, err, ErrInvalidMoodDate)
	})
}
