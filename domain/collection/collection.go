package collection

import (
	"github.com/shopspring/decimal"
	"github.com/warrantify/goapi/base/ctx"
	"github.com/warrantify/goapi/domain"
)

// Info is the factory's record of a deployed collection
type Info struct {
	BrandName        string `json:"brandName"`
	ProductName      string `json:"productName"`
	CollectionName   string `json:"collectionName"`
	CollectionSymbol string `json:"collectionSymbol"`
	// seconds
	WarrantyPeriod uint64 `json:"warrantyPeriod"`
	// unix seconds
	CreationTime uint64 `json:"creationTime"`
}

func (i *Info) IsEmpty() bool {
	return i == nil || (len(i.BrandName) == 0 && len(i.CollectionName) == 0 && i.CreationTime == 0)
}

// Collection is the display record of one warranty collection
type Collection struct {
	Address               domain.Address  `json:"address"`
	DisplayName           string          `json:"name"`
	BrandName             string          `json:"brandName"`
	ProductName           string          `json:"productName"`
	Symbol                string          `json:"symbol"`
	WarrantyPeriodSeconds uint64          `json:"warrantyPeriodSeconds"`
	WarrantyMonths        decimal.Decimal `json:"warrantyMonths"`
	MintedCount           uint64          `json:"count"`
	CreatedLabel          string          `json:"date"`
}

// FromInfo builds the display record, substituting placeholders for blank fields
func FromInfo(address domain.Address, info *Info, minted uint64) *Collection {
	return &Collection{
		Address:               address,
		DisplayName:           orDefault(info.CollectionName, "Unknown Collection"),
		BrandName:             orDefault(info.BrandName, "Unknown Brand"),
		ProductName:           orDefault(info.ProductName, "Unknown Product"),
		Symbol:                orDefault(info.CollectionSymbol, "UNK"),
		WarrantyPeriodSeconds: info.WarrantyPeriod,
		WarrantyMonths:        SecondsToMonths(info.WarrantyPeriod),
		MintedCount:           minted,
		CreatedLabel:          "Recently created",
	}
}

func orDefault(s, def string) string {
	if len(s) == 0 {
		return def
	}
	return s
}

type Source string

const (
	SourceLive Source = "live"
	SourceDemo Source = "demo"
)

// FallbackReason tells why demo data was served. The demo payload itself is
// identical for every reason.
type FallbackReason string

const (
	FallbackNone                FallbackReason = ""
	FallbackWalletDisconnected  FallbackReason = "wallet_disconnected"
	FallbackListFailed          FallbackReason = "list_failed"
	FallbackNoCollections       FallbackReason = "no_collections"
	FallbackNoUsableCollections FallbackReason = "no_usable_collections"
)

type Overview struct {
	Collections    []*Collection  `json:"collections"`
	TotalDeployed  int            `json:"totalDeployed"`
	TotalMinted    uint64         `json:"totalMinted"`
	Source         Source         `json:"source"`
	FallbackReason FallbackReason `json:"fallbackReason,omitempty"`
}

func NewLiveOverview(collections []*Collection, totalDeployed int) *Overview {
	return &Overview{
		Collections:   collections,
		TotalDeployed: totalDeployed,
		TotalMinted:   SumMinted(collections),
		Source:        SourceLive,
	}
}

func NewDemoOverview(reason FallbackReason, totalDeployed int) *Overview {
	collections := DemoCollections()
	return &Overview{
		Collections:    collections,
		TotalDeployed:  totalDeployed,
		TotalMinted:    SumMinted(collections),
		Source:         SourceDemo,
		FallbackReason: reason,
	}
}

func SumMinted(collections []*Collection) uint64 {
	total := uint64(0)
	for _, c := range collections {
		total += c.MintedCount
	}
	return total
}

// CreateParams is the brand's form input for a new collection
type CreateParams struct {
	BrandName        string          `json:"brandName" form:"brandName"`
	ProductName      string          `json:"productName" form:"productName"`
	CollectionName   string          `json:"collectionName" form:"collectionName"`
	CollectionSymbol string          `json:"collectionSymbol" form:"collectionSymbol"`
	Description      string          `json:"description" form:"description"`
	WarrantyMonths   decimal.Decimal `json:"warrantPeriod" form:"warrantPeriod"`
}

// CreateTx is the argument list of the factory's createContract call
type CreateTx struct {
	BrandName        string
	ProductName      string
	CollectionName   string
	CollectionSymbol string
	WarrantyPeriod   uint64
}

type CreateResult struct {
	Receipt               *domain.TxReceipt `json:"receipt"`
	WarrantyPeriodSeconds uint64            `json:"warrantyPeriodSeconds"`
}

type RefreshKind string

const (
	// RefreshAll re-runs the whole aggregation, used after a collection is created
	RefreshAll RefreshKind = "all"
	// RefreshCounts only re-reads minted counts, used after a mint
	RefreshCounts RefreshKind = "counts"
)

type Usecase interface {
	List(c ctx.Ctx, wallet domain.Wallet) (*Overview, error)
	RefreshCounts(c ctx.Ctx, wallet domain.Wallet) (*Overview, error)
	ListOwned(c ctx.Ctx, wallet domain.Wallet) ([]*Collection, error)
	GetInfo(c ctx.Ctx, address domain.Address) (*Info, error)
	Create(c ctx.Ctx, wallet domain.Wallet, params *CreateParams) (*CreateResult, error)
	ScheduleRefresh(c ctx.Ctx, wallet domain.Wallet, kind RefreshKind)
}
