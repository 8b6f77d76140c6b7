package contract

import (
	"errors"
	"math/big"
	"strings"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	baseabi "github.com/warrantify/goapi/base/abi"
	bCtx "github.com/warrantify/goapi/base/ctx"
	"github.com/warrantify/goapi/domain"
	"github.com/warrantify/goapi/domain/collection"
	"github.com/warrantify/goapi/service/chain"
	"golang.org/x/xerrors"
)

type FactoryContract interface {
	ListCollections(ctx bCtx.Ctx) ([]domain.Address, error)
	ListOwnedCollections(ctx bCtx.Ctx, owner domain.Address) ([]domain.Address, error)
	GetCollectionInfo(ctx bCtx.Ctx, addr domain.Address) (*collection.Info, error)
	SubmitCreateCollection(ctx bCtx.Ctx, tx *collection.CreateTx) (*domain.TxReceipt, error)
}

type Factory struct {
	chainService chain.Client
	abi          ethabi.ABI
	address      common.Address
}

func NewFactory(chainService chain.Client, address domain.Address) *Factory {
	return &Factory{
		chainService: chainService,
		abi:          baseabi.FactoryABI,
		address:      address.ToCommon(),
	}
}

func (f *Factory) ListCollections(ctx bCtx.Ctx) ([]domain.Address, error) {
	method := "getDeployedContracts"
	unpacked, err := f.chainService.Call(ctx, f.address, f.abi, method)
	if err != nil {
		return nil, toRemoteErr(err)
	}
	return toAddresses(unpacked[0].([]common.Address)), nil
}

func (f *Factory) ListOwnedCollections(ctx bCtx.Ctx, owner domain.Address) ([]domain.Address, error) {
	method := "getBrandOwnedCollections"
	unpacked, err := f.chainService.Call(ctx, f.address, f.abi, method, owner.ToCommon())
	if err != nil {
		return nil, toRemoteErr(err)
	}
	return toAddresses(unpacked[0].([]common.Address)), nil
}

func (f *Factory) GetCollectionInfo(ctx bCtx.Ctx, addr domain.Address) (*collection.Info, error) {
	method := "getBrandInfo"
	unpacked, err := f.chainService.Call(ctx, f.address, f.abi, method, addr.ToCommon())
	if err != nil {
		var revert *chain.RevertError
		if errors.As(err, &revert) && strings.Contains(strings.ToLower(revert.Reason), "does not exist") {
			return nil, xerrors.Errorf("%s: %w", addr, domain.ErrNotFound)
		}
		return nil, toRemoteErr(err)
	}
	raw := *ethabi.ConvertType(unpacked[0], new(baseabi.BrandInfo)).(*baseabi.BrandInfo)
	info := &collection.Info{
		BrandName:        raw.BrandName,
		ProductName:      raw.ProductName,
		CollectionName:   raw.CollectionName,
		CollectionSymbol: raw.CollectionSymbol,
		WarrantyPeriod:   toUint64(raw.WarrantyPeriod),
		CreationTime:     toUint64(raw.CreationTime),
	}
	if info.IsEmpty() {
		return nil, xerrors.Errorf("%s: %w", addr, domain.ErrNotFound)
	}
	return info, nil
}

func (f *Factory) SubmitCreateCollection(ctx bCtx.Ctx, tx *collection.CreateTx) (*domain.TxReceipt, error) {
	method := "createContract"
	return f.chainService.Transact(ctx, f.address, f.abi, method,
		tx.BrandName,
		tx.ProductName,
		tx.CollectionName,
		tx.CollectionSymbol,
		new(big.Int).SetUint64(tx.WarrantyPeriod),
	)
}

func toAddresses(addrs []common.Address) []domain.Address {
	res := make([]domain.Address, 0, len(addrs))
	for _, a := range addrs {
		res = append(res, domain.AddressFromCommon(a))
	}
	return res
}

func toUint64(v *big.Int) uint64 {
	if v == nil || !v.IsUint64() {
		return 0
	}
	return v.Uint64()
}

// toRemoteErr keeps classified errors and folds unknown reverts into ErrNetworkUnavailable
func toRemoteErr(err error) error {
	var revert *chain.RevertError
	if errors.As(err, &revert) {
		return xerrors.Errorf("%v: %w", err, domain.ErrNetworkUnavailable)
	}
	return err
}
