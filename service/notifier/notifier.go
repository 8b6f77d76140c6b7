package notifier

import (
	"github.com/warrantify/goapi/base/ctx"
	"github.com/warrantify/goapi/domain"
	"github.com/warrantify/goapi/domain/collection"
	"github.com/warrantify/goapi/domain/warranty"
)

// Notifier announces completed writes. Delivery is best effort, failures are
// only logged.
type Notifier interface {
	CollectionCreated(c ctx.Ctx, owner domain.Address, params *collection.CreateParams, res *collection.CreateResult)
	WarrantyMinted(c ctx.Ctx, collectionAddr domain.Address, serial string, res *warranty.MintResult)
}

type nop struct{}

func NewNop() Notifier {
	return nop{}
}

func (nop) CollectionCreated(ctx.Ctx, domain.Address, *collection.CreateParams, *collection.CreateResult) {}

func (nop) WarrantyMinted(ctx.Ctx, domain.Address, string, *warranty.MintResult) {}
