package usecase

import (
	"errors"
	"net/url"
	"strings"

	"golang.org/x/xerrors"

	"github.com/warrantify/goapi/base/ctx"
	"github.com/warrantify/goapi/base/datefmt"
	"github.com/warrantify/goapi/base/goroutine"
	"github.com/warrantify/goapi/base/log"
	"github.com/warrantify/goapi/base/metrics"
	"github.com/warrantify/goapi/base/validator"
	"github.com/warrantify/goapi/domain"
	"github.com/warrantify/goapi/domain/collection"
	"github.com/warrantify/goapi/domain/file"
	"github.com/warrantify/goapi/domain/warranty"
	"github.com/warrantify/goapi/service/chain/contract"
	"github.com/warrantify/goapi/service/ens"
	"github.com/warrantify/goapi/service/notifier"
)

type WarrantyUseCaseCfg struct {
	Warranty   contract.WarrantyContract
	Collection collection.Usecase
	File       file.Usecase
	// optional, recipients must be hex addresses without it
	Ens      ens.ENS
	Notifier notifier.Notifier
}

type impl struct {
	warranty   contract.WarrantyContract
	collection collection.Usecase
	file       file.Usecase
	ens        ens.ENS
	notifier   notifier.Notifier
	metrics    metrics.Service
}

func New(cfg *WarrantyUseCaseCfg) warranty.Usecase {
	im := &impl{
		warranty:   cfg.Warranty,
		collection: cfg.Collection,
		file:       cfg.File,
		ens:        cfg.Ens,
		notifier:   cfg.Notifier,
		metrics:    metrics.New("warranty"),
	}
	if im.notifier == nil {
		im.notifier = notifier.NewNop()
	}
	return im
}

func (im *impl) Verify(c ctx.Ctx, collectionAddr, tokenId string, opts warranty.VerifyOptions) *warranty.VerificationResult {
	defer im.metrics.BumpTime("verify.time").End()

	id, ok := validator.ParseTokenId(tokenId)
	if !ok || !validator.IsWellFormedAddress(collectionAddr) {
		return failed(warranty.MsgInvalidFormat)
	}

	addr := domain.Address(collectionAddr)
	valid, err := im.warranty.GetTokenValidity(c, addr, id)
	if errors.Is(err, domain.ErrInvalidToken) {
		return failed(warranty.MsgTokenNotExist)
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":        err,
			"collection": addr,
			"tokenId":    tokenId,
		}).Error("warranty.GetTokenValidity failed")
		im.metrics.BumpSum("verify.err", 1)
		return failed(warranty.MsgVerifyFailed)
	}

	if !valid {
		return failed(warranty.MsgInvalid)
	}

	info, err := im.collection.GetInfo(c, addr)
	if err != nil {
		c.WithFields(log.Fields{
			"err":        err,
			"collection": addr,
		}).Error("collection.GetInfo failed")
		im.metrics.BumpSum("verify.err", 1)
		return failed(warranty.MsgVerifyFailed)
	}

	token := warranty.NewToken(addr, domain.TokenId(tokenId), valid, info.CreationTime, info.WarrantyPeriod)
	fmtOpts := formatOptions(opts)
	return &warranty.VerificationResult{
		IsValid: true,
		Message: warranty.MsgValid,
		ProductInfo: &warranty.ProductInfo{
			Name:       info.ProductName,
			Brand:      info.BrandName,
			IssueDate:  datefmt.Format(token.IssueTimestamp, fmtOpts...),
			ExpiryDate: datefmt.Format(token.ExpiryTimestamp, fmtOpts...),
		},
	}
}

func (im *impl) Mint(c ctx.Ctx, wallet domain.Wallet, p *warranty.MintParams) (*warranty.MintResult, error) {
	defer im.metrics.BumpTime("mint.time").End()

	if !wallet.IsConnected() {
		return nil, domain.ErrWalletNotConnected
	}
	if !validator.IsWellFormedAddress(p.Collection) {
		return nil, xerrors.Errorf("collection %q: %w", p.Collection, domain.ErrInvalidFormat)
	}
	serial := strings.TrimSpace(p.ProductSerial)
	if len(serial) == 0 {
		return nil, xerrors.Errorf("productSerial is required: %w", domain.ErrBadParamInput)
	}
	if len(strings.TrimSpace(p.Description)) == 0 {
		return nil, xerrors.Errorf("description is required: %w", domain.ErrBadParamInput)
	}
	if p.Image == nil && len(p.ImageData) == 0 {
		return nil, xerrors.Errorf("image is required: %w", domain.ErrUploadFailed)
	}

	recipient, err := im.resolveRecipient(c, p.Recipient)
	if err != nil {
		return nil, err
	}

	addr := domain.Address(p.Collection)
	info, err := im.collection.GetInfo(c, addr)
	if err != nil {
		// only the metadata name depends on it
		c.WithFields(log.Fields{
			"err":        err,
			"collection": addr,
		}).Warn("collection.GetInfo failed, minting without brand name")
		info = &collection.Info{}
	}

	image, err := im.uploadImage(c, p)
	if err != nil {
		return nil, err
	}

	meta := &warranty.Metadata{
		Name:            metadataName(info),
		Description:     p.Description,
		Image:           image.Uri,
		ProductSerialNo: serial,
		AdditionalData:  p.AdditionalData,
	}
	metaUp, err := im.file.UploadJson(c, meta, serial+".json")
	if err != nil {
		c.WithField("err", err).Error("file.UploadJson failed")
		return nil, err
	}

	mirrorUrl, err := im.file.MirrorJson(c, addr.ToLowerStr()+"/"+url.PathEscape(serial)+".json", meta)
	if err != nil {
		// the ipfs copy is authoritative
		c.WithField("err", err).Warn("file.MirrorJson failed")
	}

	receipt, err := im.warranty.SubmitMint(c, addr, recipient, metaUp.Uri)
	if err != nil {
		c.WithFields(log.Fields{
			"err":        err,
			"collection": addr,
			"recipient":  recipient,
		}).Error("warranty.SubmitMint failed")
		im.metrics.BumpSum("mint.err", 1)
		return nil, err
	}

	res := &warranty.MintResult{
		Receipt:     receipt,
		Recipient:   recipient,
		ImageUri:    image.Uri,
		MetadataUri: metaUp.Uri,
		MirrorUrl:   mirrorUrl,
	}
	im.collection.ScheduleRefresh(c, wallet, collection.RefreshCounts)
	detached := ctx.Detach(c)
	goroutine.RecoverableGo(func() {
		im.notifier.WarrantyMinted(detached, addr, serial, res)
	}, goroutine.WithAfterRecovered(func(interface{}, []byte) {
		im.metrics.BumpSum("panic", 1, "task", "notify")
	}))
	return res, nil
}

func (im *impl) uploadImage(c ctx.Ctx, p *warranty.MintParams) (*file.Upload, error) {
	var (
		up  *file.Upload
		err error
	)
	if p.Image != nil {
		up, err = im.file.UploadImage(c, p.Image, p.ImageName)
	} else {
		up, err = im.file.UploadDataUri(c, p.ImageData, p.ImageName)
	}
	if err != nil {
		c.WithField("err", err).Error("image upload failed")
		return nil, err
	}
	return up, nil
}

// resolveRecipient accepts a hex address or an ens name
func (im *impl) resolveRecipient(c ctx.Ctx, recipient string) (domain.Address, error) {
	r := strings.TrimSpace(recipient)
	if validator.IsWellFormedAddress(r) {
		return domain.Address(r), nil
	}
	if !ens.IsName(r) || im.ens == nil {
		return "", xerrors.Errorf("recipient %q: %w", r, domain.ErrInvalidAddress)
	}

	addr, err := im.ens.Resolve(c, r)
	if errors.Is(err, domain.ErrNotFound) {
		return "", xerrors.Errorf("recipient %q not registered: %w", r, domain.ErrInvalidAddress)
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":  err,
			"name": r,
		}).Error("ens.Resolve failed")
		return "", err
	}
	return addr, nil
}

func metadataName(info *collection.Info) string {
	if len(info.BrandName) > 0 {
		return info.BrandName
	}
	return collection.FromInfo("", info, 0).DisplayName
}

func formatOptions(opts warranty.VerifyOptions) []datefmt.Option {
	res := []datefmt.Option{}
	if len(opts.MonthStyle) > 0 {
		res = append(res, datefmt.WithMonth(datefmt.MonthStyle(opts.MonthStyle)))
	}
	if opts.WithTime {
		res = append(res, datefmt.WithTime())
	}
	if len(opts.Timezone) > 0 {
		res = append(res, datefmt.WithTimezone(opts.Timezone))
	}
	return res
}

func failed(msg string) *warranty.VerificationResult {
	return &warranty.VerificationResult{
		IsValid: false,
		Message: msg,
	}
}
