package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsPhoneRequired(t *testing.T) {
	today := date(2026, time.March, 1)

	tests := []struct {
		name string
		dob  time.Time
		want bool
	}{
		{"adult", date(1990, time.January, 1), true},
		{"exactly eighteen by year", date(2008, time.January, 1), true},
		{"birthday later this year still counts as eighteen", date(2008, time.December, 31), true},
		{"seventeen", date(2009, time.January, 1), false},
		{"child", date(2020, time.May, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPhoneRequired(tt.dob, today))
		})
	}
}

func TestAge_IgnoresMonthAndDay(t *testing.T) {
	assert.Equal(t, 18, Age(date(2008, time.December, 31), date(2026, time.January, 1)))
	assert.Equal(t, 0, Age(date(2026, time.June, 1), date(2026, time.January, 1)))
}
