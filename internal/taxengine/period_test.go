package taxengine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	p, err := ParsePeriod("2024-01-01", "2024-03-31")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01..2024-03-31", p.String())

	_, err = ParsePeriod("2024-04-01", "2024-03-31")
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = ParsePeriod("01/04/2024", "2024-03-31")
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = NewPeriod(time.Time{}, time.Now())
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestPeriod_Contains(t *testing.T) {
	p, err := ParsePeriod("2024-01-01", "2024-01-31")
	require.NoError(t, err)

	minsk := time.FixedZone("MSK", 3*60*60)
	assert.True(t, p.Contains(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, p.Contains(time.Date(2024, 1, 31, 23, 59, 0, 0, time.UTC)))
	assert.True(t, p.Contains(time.Date(2024, 1, 15, 1, 0, 0, 0, minsk)))
	assert.False(t, p.Contains(time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))
}

func TestPeriod_ContainsMonth(t *testing.T) {
	quarter, err := ParsePeriod("2024-01-01", "2024-03-31")
	require.NoError(t, err)
	assert.True(t, quarter.ContainsMonth(2024, 1))
	assert.True(t, quarter.ContainsMonth(2024, 3))
	assert.False(t, quarter.ContainsMonth(2024, 4))
	assert.False(t, quarter.ContainsMonth(2023, 12))

	// The first of the month is the reference date, so a window opening on the
	// 15th excludes its own month but includes the month starting on its end.
	midMonth, err := ParsePeriod("2024-01-15", "2024-03-01")
	require.NoError(t, err)
	assert.False(t, midMonth.ContainsMonth(2024, 1))
	assert.True(t, midMonth.ContainsMonth(2024, 2))
	assert.True(t, midMonth.ContainsMonth(2024, 3))

	from, to := mustPeriod(t, "2023-11-01", "2024-02-29").Years()
	assert.Equal(t, 2023, from)
	assert.Equal(t, 2024, to)
}

func mustPeriod(t *testing.T, start, end string) Period {
	t.Helper()
	p, err := ParsePeriod(start, end)
	require.NoError(t, err)
	return p
}
