package zodiac

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(month time.Month, day int) time.Time {
	return time.Date(1990, month, day, 0, 0, 0, 0, time.UTC)
}

func TestForDate(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want Sign
	}{
		{"start of year is capricorn", date(time.January, 1), Capricorn},
		{"capricorn boundary", date(time.January, 19), Capricorn},
		{"day after boundary is aquarius", date(time.January, 20), Aquarius},
		{"mid-april is aries", date(time.April, 12), Aries},
		{"aries boundary", date(time.April, 19), Aries},
		{"taurus start", date(time.April, 20), Taurus},
		{"mid-august is leo", date(time.August, 15), Leo},
		{"leo boundary", date(time.August, 22), Leo},
		{"virgo start", date(time.August, 23), Virgo},
		{"sagittarius end", date(time.December, 21), Sagittarius},
		{"end of year is capricorn", date(time.December, 31), Capricorn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ForDate(tt.date))
		})
	}
}

func TestParse(t *testing.T) {
	sign, err := Parse("  Leo ")
	require.NoError(t, err)
	assert.Equal(t, Leo, sign)

	sign, err = Parse("SCORPIO")
	require.NoError(t, err)
	assert.Equal(t, Scorpio, sign)

	_, err = Parse("ophiuchus")
	assert.Error(t, err)
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Aquarius", Aquarius.Title())
	assert.Equal(t, "", Sign("").Title())
}
