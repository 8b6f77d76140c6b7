package contract

import (
	"errors"
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	baseabi "github.com/warrantify/goapi/base/abi"
	bCtx "github.com/warrantify/goapi/base/ctx"
	"github.com/warrantify/goapi/domain"
	"github.com/warrantify/goapi/service/chain"
	"golang.org/x/xerrors"
)

type WarrantyContract interface {
	GetTokenValidity(ctx bCtx.Ctx, addr domain.Address, tokenId *big.Int) (bool, error)
	GetMintedCount(ctx bCtx.Ctx, addr domain.Address) (uint64, error)
	SubmitMint(ctx bCtx.Ctx, addr domain.Address, recipient domain.Address, uri string) (*domain.TxReceipt, error)
}

type Warranty struct {
	chainService chain.Client
	abi          ethabi.ABI
}

func NewWarranty(chainService chain.Client) *Warranty {
	return &Warranty{
		chainService: chainService,
		abi:          baseabi.WarrantyABI,
	}
}

func (w *Warranty) GetTokenValidity(ctx bCtx.Ctx, addr domain.Address, tokenId *big.Int) (bool, error) {
	method := "hasValidWarranty"
	unpacked, err := w.chainService.Call(ctx, addr.ToCommon(), w.abi, method, tokenId)
	if err != nil {
		var revert *chain.RevertError
		if errors.As(err, &revert) && revert.Reason == baseabi.RevertTokenIdInvalid {
			return false, xerrors.Errorf("%s #%s: %w", addr, tokenId, domain.ErrInvalidToken)
		}
		return false, toRemoteErr(err)
	}
	return unpacked[0].(bool), nil
}

func (w *Warranty) GetMintedCount(ctx bCtx.Ctx, addr domain.Address) (uint64, error) {
	method := "totalSupply"
	unpacked, err := w.chainService.Call(ctx, addr.ToCommon(), w.abi, method)
	if err != nil {
		return 0, toRemoteErr(err)
	}
	return toUint64(unpacked[0].(*big.Int)), nil
}

func (w *Warranty) SubmitMint(ctx bCtx.Ctx, addr domain.Address, recipient domain.Address, uri string) (*domain.TxReceipt, error) {
	method := "mint"
	return w.chainService.Transact(ctx, addr.ToCommon(), w.abi, method, recipient.ToCommon(), uri)
}
