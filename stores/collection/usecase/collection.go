package usecase

import (
	"strings"
	"time"

	"github.com/viney-shih/goroutines"
	"golang.org/x/xerrors"

	"github.com/warrantify/goapi/base/ctx"
	"github.com/warrantify/goapi/base/goroutine"
	"github.com/warrantify/goapi/base/log"
	"github.com/warrantify/goapi/base/metrics"
	"github.com/warrantify/goapi/domain"
	"github.com/warrantify/goapi/domain/collection"
	"github.com/warrantify/goapi/service/cache"
	"github.com/warrantify/goapi/service/chain/contract"
	"github.com/warrantify/goapi/service/notifier"
)

const (
	defaultConcurrency  = 8
	defaultRefreshDelay = 2 * time.Second
	scheduleTimeout     = 3 * time.Second
)

type CollectionUseCaseCfg struct {
	Factory  contract.FactoryContract
	Warranty contract.WarrantyContract
	// getBrandInfo results, keyed by collection address
	InfoCache cache.Service
	// the list most recently served to each wallet
	SnapshotCache cache.Service
	Notifier      notifier.Notifier
	// on-chain owner of collections created by this service, falls back to
	// the caller's account when empty
	Operator     domain.Address
	Concurrency  int
	RefreshDelay time.Duration
}

type impl struct {
	factory      contract.FactoryContract
	warranty     contract.WarrantyContract
	infoCache    cache.Service
	snapshots    cache.Service
	notifier     notifier.Notifier
	operator     domain.Address
	concurrency  int
	refreshDelay time.Duration
	workerPool   *goroutines.Pool
	metrics      metrics.Service
}

func New(cfg *CollectionUseCaseCfg) collection.Usecase {
	im := &impl{
		factory:      cfg.Factory,
		warranty:     cfg.Warranty,
		infoCache:    cfg.InfoCache,
		snapshots:    cfg.SnapshotCache,
		notifier:     cfg.Notifier,
		operator:     cfg.Operator,
		concurrency:  cfg.Concurrency,
		refreshDelay: cfg.RefreshDelay,
		workerPool:   goroutines.NewPool(4, goroutines.WithTaskQueueLength(64), goroutines.WithPreAllocWorkers(1)),
		metrics:      metrics.New("collection"),
	}
	if im.concurrency <= 0 {
		im.concurrency = defaultConcurrency
	}
	if im.refreshDelay <= 0 {
		im.refreshDelay = defaultRefreshDelay
	}
	if im.notifier == nil {
		im.notifier = notifier.NewNop()
	}
	return im
}

func (im *impl) List(c ctx.Ctx, wallet domain.Wallet) (*collection.Overview, error) {
	defer im.metrics.BumpTime("list.time").End()

	if !wallet.IsConnected() {
		return im.demo(c, collection.FallbackWalletDisconnected, 0), nil
	}

	addrs, err := im.factory.ListCollections(c)
	if err != nil {
		c.WithField("err", err).Warn("factory.ListCollections failed, serving demo data")
		return im.hold(c, wallet, im.demo(c, collection.FallbackListFailed, 0)), nil
	}
	if len(addrs) == 0 {
		return im.hold(c, wallet, im.demo(c, collection.FallbackNoCollections, 0)), nil
	}

	collections := im.assemble(c, addrs)
	if len(collections) == 0 {
		return im.hold(c, wallet, im.demo(c, collection.FallbackNoUsableCollections, len(addrs))), nil
	}

	return im.hold(c, wallet, collection.NewLiveOverview(collections, len(addrs))), nil
}

func (im *impl) RefreshCounts(c ctx.Ctx, wallet domain.Wallet) (*collection.Overview, error) {
	defer im.metrics.BumpTime("refresh.time").End()

	if !wallet.IsConnected() {
		return im.demo(c, collection.FallbackWalletDisconnected, 0), nil
	}

	held := &collection.Overview{}
	if err := im.snapshots.Get(c, snapshotKey(wallet), held); err == cache.ErrNotFound {
		return im.List(c, wallet)
	} else if err != nil {
		c.WithField("err", err).Error("snapshots.Get failed")
		return im.List(c, wallet)
	}

	if held.Source == collection.SourceDemo {
		return held, nil
	}

	b := goroutines.NewBatch(im.concurrency, goroutines.WithBatchSize(len(held.Collections)))
	defer b.Close()
	for i := range held.Collections {
		idx := i
		b.Queue(func() (interface{}, error) {
			addr := held.Collections[idx].Address
			count, err := im.warranty.GetMintedCount(c, addr)
			if err != nil {
				return nil, xerrors.Errorf("%s: %w", addr, err)
			}
			return &countResult{idx, count}, nil
		})
	}
	b.QueueComplete()

	for ret := range b.Results() {
		if ret.Error() != nil {
			// keeps the previous count
			c.WithField("err", ret.Error()).Warn("warranty.GetMintedCount failed")
			continue
		}
		r := ret.Value().(*countResult)
		held.Collections[r.idx].MintedCount = r.count
	}
	held.TotalMinted = collection.SumMinted(held.Collections)

	return im.hold(c, wallet, held), nil
}

func (im *impl) ListOwned(c ctx.Ctx, wallet domain.Wallet) ([]*collection.Collection, error) {
	if !wallet.IsConnected() {
		return nil, domain.ErrWalletNotConnected
	}
	owner := im.operator
	if owner.IsEmpty() {
		owner = wallet.Account
	}
	addrs, err := im.factory.ListOwnedCollections(c, owner)
	if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"owner": owner,
		}).Error("factory.ListOwnedCollections failed")
		return nil, err
	}
	return im.assemble(c, addrs), nil
}

func (im *impl) GetInfo(c ctx.Ctx, address domain.Address) (*collection.Info, error) {
	info := &collection.Info{}
	err := im.infoCache.GetByFunc(c, address.ToLowerStr(), info, func() (interface{}, error) {
		return im.factory.GetCollectionInfo(c, address)
	})
	if err != nil {
		return nil, err
	}
	return info, nil
}

func (im *impl) Create(c ctx.Ctx, wallet domain.Wallet, params *collection.CreateParams) (*collection.CreateResult, error) {
	if !wallet.IsConnected() {
		return nil, domain.ErrWalletNotConnected
	}
	if err := validateCreateParams(params); err != nil {
		return nil, err
	}

	period, err := collection.MonthsToSeconds(params.WarrantyMonths)
	if err != nil {
		return nil, err
	}

	tx := &collection.CreateTx{
		BrandName:        strings.TrimSpace(params.BrandName),
		ProductName:      strings.TrimSpace(params.ProductName),
		CollectionName:   strings.TrimSpace(params.CollectionName),
		CollectionSymbol: strings.TrimSpace(params.CollectionSymbol),
		WarrantyPeriod:   period,
	}
	receipt, err := im.factory.SubmitCreateCollection(c, tx)
	if err != nil {
		c.WithFields(log.Fields{
			"err":        err,
			"collection": tx.CollectionName,
		}).Error("factory.SubmitCreateCollection failed")
		return nil, err
	}

	res := &collection.CreateResult{
		Receipt:               receipt,
		WarrantyPeriodSeconds: tx.WarrantyPeriod,
	}
	im.ScheduleRefresh(c, wallet, collection.RefreshAll)
	im.notify(c, func(detached ctx.Ctx) {
		im.notifier.CollectionCreated(detached, wallet.Account, params, res)
	})
	return res, nil
}

func (im *impl) ScheduleRefresh(c ctx.Ctx, wallet domain.Wallet, kind collection.RefreshKind) {
	if !wallet.IsConnected() {
		return
	}
	if kind == collection.RefreshAll {
		if err := im.snapshots.Del(c, snapshotKey(wallet)); err != nil {
			c.WithField("err", err).Warn("snapshots.Del failed")
		}
	}

	detached := ctx.Detach(c)
	time.AfterFunc(im.refreshDelay, func() {
		err := im.workerPool.ScheduleWithTimeout(scheduleTimeout, func() {
			goroutine.Run(func() {
				var err error
				switch kind {
				case collection.RefreshAll:
					_, err = im.List(detached, wallet)
				default:
					_, err = im.RefreshCounts(detached, wallet)
				}
				if err != nil {
					detached.WithFields(log.Fields{
						"err":  err,
						"kind": kind,
					}).Error("scheduled refresh failed")
				}
			}, im.recovered("refresh"))
		})
		if err != nil {
			detached.WithFields(log.Fields{
				"err":  err,
				"kind": kind,
			}).Error("failed to ScheduleWithTimeout")
		}
	})
}

// notify runs f on the worker pool, off the request path
func (im *impl) notify(c ctx.Ctx, f func(detached ctx.Ctx)) {
	detached := ctx.Detach(c)
	err := im.workerPool.ScheduleWithTimeout(scheduleTimeout, func() {
		goroutine.Run(func() {
			f(detached)
		}, im.recovered("notify"))
	})
	if err != nil {
		detached.WithField("err", err).Error("failed to ScheduleWithTimeout")
	}
}

func (im *impl) recovered(task string) goroutine.RecoverableGoOptionsFunc {
	return goroutine.WithAfterRecovered(func(interface{}, []byte) {
		im.metrics.BumpSum("panic", 1, "task", task)
	})
}

type countResult struct {
	idx   int
	count uint64
}

type collectionResult struct {
	idx        int
	collection *collection.Collection
}

// assemble loads every address concurrently. Addresses that fail are logged
// and left out, the rest keep their original order.
func (im *impl) assemble(c ctx.Ctx, addrs []domain.Address) []*collection.Collection {
	if len(addrs) == 0 {
		return []*collection.Collection{}
	}

	b := goroutines.NewBatch(im.concurrency, goroutines.WithBatchSize(len(addrs)))
	defer b.Close()
	for i := range addrs {
		idx := i
		b.Queue(func() (interface{}, error) {
			addr := addrs[idx]
			info, err := im.GetInfo(c, addr)
			if err != nil {
				return nil, xerrors.Errorf("GetInfo %s: %w", addr, err)
			}
			count, err := im.warranty.GetMintedCount(c, addr)
			if err != nil {
				return nil, xerrors.Errorf("GetMintedCount %s: %w", addr, err)
			}
			return &collectionResult{idx, collection.FromInfo(addr, info, count)}, nil
		})
	}
	b.QueueComplete()

	slots := make([]*collection.Collection, len(addrs))
	for ret := range b.Results() {
		if ret.Error() != nil {
			c.WithField("err", ret.Error()).Warn("skipping collection")
			im.metrics.BumpSum("assemble.skip", 1)
			continue
		}
		r := ret.Value().(*collectionResult)
		slots[r.idx] = r.collection
	}

	res := make([]*collection.Collection, 0, len(addrs))
	for _, col := range slots {
		if col != nil {
			res = append(res, col)
		}
	}
	return res
}

func (im *impl) demo(c ctx.Ctx, reason collection.FallbackReason, totalDeployed int) *collection.Overview {
	c.WithField("reason", reason).Info("serving demo collections")
	im.metrics.BumpSum("list.fallback", 1, "reason", string(reason))
	return collection.NewDemoOverview(reason, totalDeployed)
}

// hold stores o as the wallet's current list, last write wins
func (im *impl) hold(c ctx.Ctx, wallet domain.Wallet, o *collection.Overview) *collection.Overview {
	if err := im.snapshots.Set(c, snapshotKey(wallet), o); err != nil {
		c.WithField("err", err).Warn("snapshots.Set failed")
	}
	return o
}

func snapshotKey(wallet domain.Wallet) string {
	return wallet.Account.ToLowerStr()
}

func validateCreateParams(p *collection.CreateParams) error {
	required := []struct {
		field string
		value string
	}{
		{"brandName", p.BrandName},
		{"productName", p.ProductName},
		{"collectionName", p.CollectionName},
		{"collectionSymbol", p.CollectionSymbol},
		{"description", p.Description},
	}
	for _, r := range required {
		if len(strings.TrimSpace(r.value)) == 0 {
			return xerrors.Errorf("%s is required: %w", r.field, domain.ErrBadParamInput)
		}
	}
	if !p.WarrantyMonths.IsPositive() {
		return xerrors.Errorf("warranty period must be positive: %w", domain.ErrBadParamInput)
	}
	return nil
}
