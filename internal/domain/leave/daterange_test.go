package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRangesOverlap(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{
			name:   "disjoint ranges",
			aStart: date(2025, 3, 1), aEnd: date(2025, 3, 5),
			bStart: date(2025, 3, 6), bEnd: date(2025, 3, 10),
			want: false,
		},
		{
			name:   "partial overlap",
			aStart: date(2025, 3, 1), aEnd: date(2025, 3, 5),
			bStart: date(2025, 3, 4), bEnd: date(2025, 3, 8),
			want: true,
		},
		{
			name:   "shared boundary day",
			aStart: date(2025, 3, 1), aEnd: date(2025, 3, 5),
			bStart: date(2025, 3, 5), bEnd: date(2025, 3, 10),
			want: true,
		},
		{
			name:   "contained range",
			aStart: date(2025, 3, 1), aEnd: date(2025, 3, 31),
			bStart: date(2025, 3, 10), bEnd: date(2025, 3, 12),
			want: true,
		},
		{
			name:   "identical single day",
			aStart: date(2025, 3, 1), aEnd: date(2025, 3, 1),
			bStart: date(2025, 3, 1), bEnd: date(2025, 3, 1),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RangesOverlap(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// Overlap is symmetric.
			assert.Equal(t, tt.want, RangesOverlap(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestRangesOverlapIgnoresTimeOfDay(t *testing.T) {
	aEnd := time.Date(2025, 3, 5, 23, 59, 0, 0, time.UTC)
	bStart := time.Date(2025, 3, 5, 1, 0, 0, 0, time.UTC)

	assert.True(t, RangesOverlap(date(2025, 3, 1), aEnd, bStart, date(2025, 3, 10)))
}

func TestInclusiveDays(t *testing.T) {
	days, err := InclusiveDays(date(2025, 3, 1), date(2025, 3, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, days)

	days, err = InclusiveDays(date(2025, 3, 1), date(2025, 3, 7))
	require.NoError(t, err)
	assert.Equal(t, 7, days)

	days, err = InclusiveDays(date(2025, 12, 30), date(2026, 1, 2))
	require.NoError(t, err)
	assert.Equal(t, 4, days)
}

func TestInclusiveDaysReversedRange(t *testing.T) {
	_, err := InclusiveDays(date(2025, 5, 10), date(2025, 5, 5))
	assert.ErrorIs(t, err, ErrReversedDateRange)
}

func TestOverlapDays(t *testing.T) {
	assert.Equal(t, 2, OverlapDays(date(2025, 3, 1), date(2025, 3, 5), date(2025, 3, 4), date(2025, 3, 8)))
	assert.Equal(t, 0, OverlapDays(date(2025, 3, 1), date(2025, 3, 5), date(2025, 3, 6), date(2025, 3, 10)))
	assert.Equal(t, 1, OverlapDays(date(2025, 3, 1), date(2025, 3, 5), date(2025, 3, 5), date(2025, 3, 10)))
}
