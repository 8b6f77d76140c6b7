package collection

import (
	"github.com/shopspring/decimal"
	"github.com/warrantify/goapi/domain"
)

type demoCollection struct {
	address domain.Address
	name    string
	brand   string
	product string
	symbol  string
	months  int64
	count   uint64
	created string
}

var demoCollections = []demoCollection{
	{"demo1", "Premium Watches", "Luxury Brand", "Watch", "PW", 24, 12, "Created 2 weeks ago"},
	{"demo2", "Designer Bags", "Fashion House", "Bag", "DB", 12, 8, "Created 1 month ago"},
	{"demo3", "Electronics", "Tech Corp", "Device", "EL", 36, 4, "Created 2 months ago"},
}

// DemoCollections returns a fresh copy of the placeholder list served when
// live data is unavailable
func DemoCollections() []*Collection {
	res := make([]*Collection, 0, len(demoCollections))
	for _, d := range demoCollections {
		months := decimal.NewFromInt(d.months)
		seconds, _ := MonthsToSeconds(months)
		res = append(res, &Collection{
			Address:               d.address,
			DisplayName:           d.name,
			BrandName:             d.brand,
			ProductName:           d.product,
			Symbol:                d.symbol,
			WarrantyPeriodSeconds: seconds,
			WarrantyMonths:        months,
			MintedCount:           d.count,
			CreatedLabel:          d.created,
		})
	}
	return res
}
