package period_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/sbkgestion/stock-api/internal/domain/period"
)

func TestMonth_CoversWholeMonth(t *testing.T) {
	r := period.Month(2024, time.February) // leap year

	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), r.Start)
	assert.True(t, r.Contains(time.Date(2024, time.February, 29, 23, 59, 59, 0, time.UTC)),
		"the last day of the month belongs to the range")
	assert.False(t, r.Contains(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)))
}

func TestQuarter_Boundaries(t *testing.T) {
	tests := []struct {
		q          int
		startMonth time.Month
		lastMonth  time.Month
	}{
		{1, time.January, time.March},
		{2, time.April, time.June},
		{3, time.July, time.September},
		{4, time.October, time.December},
	}
	for _, tc := range tests {
		r := period.Quarter(2023, tc.q)
		assert.Equal(t, tc.startMonth, r.Start.Month(), "quarter %d start", tc.q)
		assert.Equal(t, tc.lastMonth, r.End.Month(), "quarter %d end", tc.q)
		assert.Equal(t, 2023, r.End.Year())
	}
}

func TestContains_ExcludesOutside(t *testing.T) {
	r := period.Month(2023, time.June)

	assert.True(t, r.Contains(r.Start))
	assert.True(t, r.Contains(r.End))
	assert.False(t, r.Contains(r.Start.Add(-time.Second)))
	assert.False(t, r.Contains(r.End.Add(time.Second)))
}
