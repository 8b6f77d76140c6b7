package chain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"net"
	"sync"
	"time"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	bCtx "github.com/warrantify/goapi/base/ctx"
	"github.com/warrantify/goapi/base/ethereum"
	"github.com/warrantify/goapi/base/log"
	"github.com/warrantify/goapi/domain"
	"golang.org/x/xerrors"
)

var ErrNoSigner = errors.New("no signer configured")

const defaultTxTimeout = 2 * time.Minute

type ClientCfg struct {
	RpcUrl         string
	ChainId        domain.ChainId
	MaxConcurrency int
	// hex encoded operator key, empty for a read only client
	SignerKey string
	TxTimeout time.Duration
}

// Backend is what the client needs from a node connection
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
}

type Client interface {
	Call(ctx bCtx.Ctx, addr common.Address, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error)
	// Transact signs and sends a transaction, then waits until it is mined
	Transact(ctx bCtx.Ctx, addr common.Address, _abi abi.ABI, method string, params ...interface{}) (*domain.TxReceipt, error)
	BlockNumber(ctx bCtx.Ctx) (uint64, error)
	Signer() domain.Address
}

// RevertError is returned by Call when the contract reverts
type RevertError struct {
	Method string
	Reason string
}

func (e *RevertError) Error() string {
	return fmt.Sprintf("%s reverted: %s", e.Method, e.Reason)
}

type clientImpl struct {
	backend   Backend
	chainId   *big.Int
	key       *ecdsa.PrivateKey
	txTimeout time.Duration
	// serializes nonce assignment of the operator account
	sendMu sync.Mutex
}

func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	client, err := ethclient.DialContext(ctx, cfg.RpcUrl)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"url": cfg.RpcUrl,
		}).Error("failed to dial rpc")
		return nil, err
	}
	var key *ecdsa.PrivateKey
	if len(cfg.SignerKey) > 0 {
		if key, err = ethereum.LoadKey(cfg.SignerKey); err != nil {
			ctx.WithField("err", err).Error("ethereum.LoadKey failed")
			return nil, err
		}
	}
	return NewClientWithBackend(ethereum.NewTrottledClient(client, cfg.MaxConcurrency), cfg.ChainId, key, cfg.TxTimeout), nil
}

func NewClientWithBackend(backend Backend, chainId domain.ChainId, key *ecdsa.PrivateKey, txTimeout time.Duration) Client {
	if txTimeout <= 0 {
		txTimeout = defaultTxTimeout
	}
	return &clientImpl{
		backend:   backend,
		chainId:   big.NewInt(int64(chainId)),
		key:       key,
		txTimeout: txTimeout,
	}
}

func (c *clientImpl) Signer() domain.Address {
	if c.key == nil {
		return ""
	}
	return domain.AddressFromCommon(crypto.PubkeyToAddress(c.key.PublicKey))
}

func (c *clientImpl) Call(ctx bCtx.Ctx, addr common.Address, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, xerrors.Errorf("%v: %w", err, domain.ErrBadParamInput)
	}
	msg := goethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := c.backend.CallContract(ctx, msg, nil)
	if err != nil {
		if reason, ok := RevertReason(err); ok {
			ctx.WithFields(log.Fields{
				"method": method,
				"reason": reason,
			}).Info("call reverted")
			return nil, &RevertError{Method: method, Reason: reason}
		}
		ctx.WithFields(log.Fields{
			"method": method,
			"err":    err,
		}).Error("client.CallContract failed")
		return nil, xerrors.Errorf("%s: %v: %w", method, err, domain.ErrNetworkUnavailable)
	}
	if len(res) == 0 && len(_abi.Methods[method].Outputs) > 0 {
		return nil, xerrors.Errorf("%s returned no data: %w", method, domain.ErrEmptyResult)
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithField("err", err).Error("abi.Unpack failed")
		return nil, xerrors.Errorf("%s: %v: %w", method, err, domain.ErrEmptyResult)
	}
	return unpacked, nil
}

func (c *clientImpl) Transact(ctx bCtx.Ctx, addr common.Address, _abi abi.ABI, method string, params ...interface{}) (*domain.TxReceipt, error) {
	if c.key == nil {
		return nil, xerrors.Errorf("%v: %w", ErrNoSigner, domain.ErrTxRejected)
	}
	opts, err := bind.NewKeyedTransactorWithChainID(c.key, c.chainId)
	if err != nil {
		ctx.WithField("err", err).Error("bind.NewKeyedTransactorWithChainID failed")
		return nil, xerrors.Errorf("%v: %w", err, domain.ErrTxRejected)
	}
	opts.Context = ctx

	contract := bind.NewBoundContract(addr, _abi, c.backend, c.backend, nil)
	c.sendMu.Lock()
	tx, err := contract.Transact(opts, method, params...)
	c.sendMu.Unlock()
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"err":    err,
		}).Error("contract.Transact failed")
		return nil, classifySendErr(method, err)
	}

	ctx.WithFields(log.Fields{
		"method": method,
		"tx":     tx.Hash().Hex(),
	}).Info("transaction sent")

	waitCtx, cancel := bCtx.WithTimeout(ctx, c.txTimeout)
	defer cancel()
	receipt, err := bind.WaitMined(waitCtx, c.backend, tx)
	if err != nil {
		ctx.WithFields(log.Fields{
			"tx":  tx.Hash().Hex(),
			"err": err,
		}).Error("bind.WaitMined failed")
		return nil, xerrors.Errorf("waiting for %s: %v: %w", tx.Hash().Hex(), err, domain.ErrNetworkUnavailable)
	}

	res := toReceipt(receipt)
	if receipt.Status != types.ReceiptStatusSuccessful {
		ctx.WithField("tx", res.TxHash).Warn("transaction reverted")
		return res, xerrors.Errorf("%s reverted in tx %s: %w", method, res.TxHash, domain.ErrTxRejected)
	}
	return res, nil
}

func (c *clientImpl) BlockNumber(ctx bCtx.Ctx) (uint64, error) {
	header, err := c.backend.HeaderByNumber(ctx, nil)
	if err != nil {
		ctx.WithField("err", err).Error("backend.HeaderByNumber failed")
		return 0, xerrors.Errorf("%v: %w", err, domain.ErrNetworkUnavailable)
	}
	return header.Number.Uint64(), nil
}

// RevertReason extracts the reason string carried by a reverted call
func RevertReason(err error) (string, bool) {
	var dataErr rpc.DataError
	if !errors.As(err, &dataErr) {
		return "", false
	}
	data, ok := dataErr.ErrorData().(string)
	if !ok {
		return "", false
	}
	b, err := hexutil.Decode(data)
	if err != nil {
		return "", false
	}
	reason, err := abi.UnpackRevert(b)
	if err != nil {
		return "", false
	}
	return reason, true
}

func classifySendErr(method string, err error) error {
	var netErr net.Error
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || errors.As(err, &netErr) {
		return xerrors.Errorf("%s: %v: %w", method, err, domain.ErrNetworkUnavailable)
	}
	return xerrors.Errorf("%s: %v: %w", method, err, domain.ErrTxRejected)
}

func toReceipt(r *types.Receipt) *domain.TxReceipt {
	res := &domain.TxReceipt{
		TxHash:  domain.TxHash(r.TxHash.Hex()),
		Status:  r.Status,
		GasUsed: r.GasUsed,
	}
	if r.BlockNumber != nil {
		res.BlockNumber = r.BlockNumber.Uint64()
	}
	return res
}
