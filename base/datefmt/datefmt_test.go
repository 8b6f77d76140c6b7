package datefmt

import (
	"testing"
	_ "time/tzdata"

	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	req := require.New(t)
	const ts = int64(1700000000) // 2023-11-14T22:13:20Z

	tests := []struct {
		name string
		opts []Option
		want string
	}{
		{"default", nil, "November 14, 2023"},
		{"short month", []Option{WithMonth(MonthShort)}, "Nov 14, 2023"},
		{"numeric month", []Option{WithMonth(MonthNumeric)}, "11/14/2023"},
		{"with time", []Option{WithTime()}, "November 14, 2023 at 22:13:20"},
		{"numeric with time", []Option{WithMonth(MonthNumeric), WithTime()}, "11/14/2023, 22:13:20"},
		{"timezone crosses midnight", []Option{WithTimezone("Asia/Tokyo")}, "November 15, 2023"},
		{"unknown timezone", []Option{WithTimezone("Mars/Olympus")}, "November 14, 2023"},
		{"unknown month style", []Option{WithMonth("roman")}, "November 14, 2023"},
	}
	for _, tt := range tests {
		req.Equal(tt.want, Format(ts, tt.opts...), tt.name)
	}
}

func TestFormatExpiry(t *testing.T) {
	require.Equal(t, "November 13, 2024", Format(1700000000+31536000))
}
