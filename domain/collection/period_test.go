package collection

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/warrantify/goapi/domain"
)

func TestMonthsToSeconds(t *testing.T) {
	req := require.New(t)
	for _, c := range []struct {
		months string
		want   uint64
	}{
		{"12", 31556952},
		{"1", 2629746},
		{"0", 0},
		{"-3", 0},
		// 0.5 * 2629746 = 1314873 exactly, 0.3 * 2629746 = 788923.8 rounds up
		{"0.5", 1314873},
		{"0.3", 788924},
		// the longest period that still fits in an int64
		{"3507324295523", 9223372036854427158},
	} {
		got, err := MonthsToSeconds(decimal.RequireFromString(c.months))
		req.NoError(err, c.months)
		req.Equal(c.want, got, c.months)
	}
}

func TestMonthsToSecondsTooLong(t *testing.T) {
	req := require.New(t)
	for _, m := range []string{"3507324295524", "10000000000000", "100000000000000000000"} {
		got, err := MonthsToSeconds(decimal.RequireFromString(m))
		req.ErrorIs(err, domain.ErrBadParamInput, m)
		req.Zero(got, m)
	}
}

func TestSecondsToMonthsRoundTrip(t *testing.T) {
	req := require.New(t)
	for _, m := range []string{"1", "6", "12", "24", "36", "12.5"} {
		months := decimal.RequireFromString(m)
		seconds, err := MonthsToSeconds(months)
		req.NoError(err)
		req.True(months.Equal(SecondsToMonths(seconds)), m)
	}
	// a 365 day year is a little short of twelve average months
	req.Equal("12", SecondsToMonths(31536000).String())
	req.Equal("0", SecondsToMonths(0).String())
}

func TestDemoCollections(t *testing.T) {
	req := require.New(t)
	demo := DemoCollections()
	req.Len(demo, 3)
	req.Equal(uint64(24), SumMinted(demo))

	// callers get their own copy
	demo[0].MintedCount = 100
	req.Equal(uint64(12), DemoCollections()[0].MintedCount)
}

func TestNewDemoOverview(t *testing.T) {
	req := require.New(t)
	o := NewDemoOverview(FallbackListFailed, 0)
	req.Equal(SourceDemo, o.Source)
	req.Equal(FallbackListFailed, o.FallbackReason)
	req.Equal(uint64(24), o.TotalMinted)
}

func TestFromInfo(t *testing.T) {
	req := require.New(t)
	c := FromInfo("0x1", &Info{BrandName: "Rolex", WarrantyPeriod: 31556952}, 3)
	req.Equal("Unknown Collection", c.DisplayName)
	req.Equal("Rolex", c.BrandName)
	req.Equal("Unknown Product", c.ProductName)
	req.Equal("UNK", c.Symbol)
	req.Equal("12", c.WarrantyMonths.String())
	req.Equal(uint64(3), c.MintedCount)
}
