package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		want  int
	}{
		{"January", 2024, 1, 31},
		{"Leap February", 2024, 2, 29},
		{"Non-leap February", 2023, 2, 28},
		{"April", 2024, 4, 30},
		{"December", 2024, 12, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysInMonth(tt.year, tt.month))
		})
	}
}

func TestParseClock(t *testing.T) {
	ci, err := ParseClock("08:00:00")
	assert.NoError(t, err)
	co, err := ParseClock("17:30:00")
	assert.NoError(t, err)
	assert.Equal(t, 9.5, co.Sub(ci).Hours())

	_, err = ParseClock("8am")
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	_, err := ParseDate("2024-09-01")
	assert.NoError(t, err)

	_, err = ParseDate("01/09/2024")
	assert.Error(t, err)
}
