package dateutil_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vhrodriguesv/clinicfin/internal/utils/dateutil"
)

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name   string
		start  time.Time
		months int
		want   time.Time
	}{
		{
			name:   "plain month step",
			start:  dateutil.Date(2024, time.January, 15),
			months: 1,
			want:   dateutil.Date(2024, time.February, 15),
		},
		{
			name:   "clamps jan 31 to feb 29 on leap year",
			start:  dateutil.Date(2024, time.January, 31),
			months: 1,
			want:   dateutil.Date(2024, time.February, 29),
		},
		{
			name:   "clamps jan 31 to feb 28 off leap year",
			start:  dateutil.Date(2023, time.January, 31),
			months: 1,
			want:   dateutil.Date(2023, time.February, 28),
		},
		{
			name:   "crosses year boundary",
			start:  dateutil.Date(2024, time.November, 30),
			months: 3,
			want:   dateutil.Date(2025, time.February, 28),
		},
		{
			name:   "zero months only truncates",
			start:  time.Date(2024, time.May, 10, 17, 45, 0, 0, time.UTC),
			months: 0,
			want:   dateutil.Date(2024, time.May, 10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(dateutil.AddMonths(tt.start, tt.months)))
		})
	}
}

func TestWithDayClamped(t *testing.T) {
	assert.Equal(t, dateutil.Date(2024, time.April, 30), dateutil.WithDayClamped(2024, time.April, 31))
	assert.Equal(t, dateutil.Date(2024, time.April, 10), dateutil.WithDayClamped(2024, time.April, 10))
	// Month overflow normalizes into the next year.
	assert.Equal(t, dateutil.Date(2025, time.January, 10), dateutil.WithDayClamped(2024, time.Month(13), 10))
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 2, dateutil.DaysBetween(dateutil.Date(2024, time.January, 15), dateutil.Date(2024, time.January, 17)))
	assert.Equal(t, -3, dateutil.DaysBetween(dateutil.Date(2024, time.January, 15), dateutil.Date(2024, time.January, 12)))
	assert.Equal(t, 0, dateutil.DaysBetween(
		time.Date(2024, time.January, 15, 23, 0, 0, 0, time.UTC),
		time.Date(2024, time.January, 15, 1, 0, 0, 0, time.UTC),
	))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, dateutil.DaysInMonth(2024, time.February))
	assert.Equal(t, 28, dateutil.DaysInMonth(2023, time.February))
	assert.Equal(t, 31, dateutil.DaysInMonth(2024, time.December))
}
