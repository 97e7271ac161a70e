package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHourStart(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "minutes and seconds discarded",
			in:   time.Date(2025, 6, 1, 19, 34, 12, 500, time.UTC),
			want: time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC),
		},
		{
			name: "already on the hour",
			in:   time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC),
			want: time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC),
		},
		{
			name: "midnight boundary",
			in:   time.Date(2025, 6, 1, 0, 59, 59, 0, time.UTC),
			want: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "half-hour offset zone keeps local hour start",
			in:   time.Date(2025, 6, 1, 19, 34, 0, 0, time.FixedZone("IST", 5*3600+1800)),
			want: time.Date(2025, 6, 1, 19, 0, 0, 0, time.FixedZone("IST", 5*3600+1800)),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HourStart(tc.in))
		})
	}
}

func TestFormatLong(t *testing.T) {
	got := FormatLong(time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC))
	assert.Equal(t, "day 01 of June, at 19:00h", got)
}

func TestFixedClock(t *testing.T) {
	at := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, at, Fixed(at).Now())
}
