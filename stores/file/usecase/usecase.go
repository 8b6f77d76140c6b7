package usecase

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"io/ioutil"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/xerrors"

	"github.com/warrantify/goapi/base/ctx"
	"github.com/warrantify/goapi/base/log"
	"github.com/warrantify/goapi/domain"
	"github.com/warrantify/goapi/domain/file"
)

const (
	imgDataHeaderPrefix    = "data:image/"
	imgDataHeaderSuffix    = ";base64,"
	imgDataHeaderMaxLength = 50

	defaultMaxImageSize = 20 * 1024 * 1024
)

type FileUseCaseCfg struct {
	Store file.ContentStore
	// optional
	Mirror       file.MirrorRepository
	MaxImageSize int64
}

type impl struct {
	store        file.ContentStore
	mirror       file.MirrorRepository
	maxImageSize int64
}

func New(cfg *FileUseCaseCfg) file.Usecase {
	im := &impl{
		store:        cfg.Store,
		mirror:       cfg.Mirror,
		maxImageSize: cfg.MaxImageSize,
	}
	if im.maxImageSize <= 0 {
		im.maxImageSize = defaultMaxImageSize
	}
	return im
}

func (im *impl) UploadImage(c ctx.Ctx, body io.Reader, name string) (*file.Upload, error) {
	if body == nil {
		return nil, xerrors.Errorf("image is required: %w", domain.ErrUploadFailed)
	}

	data, err := ioutil.ReadAll(io.LimitReader(body, im.maxImageSize+1))
	if err != nil {
		c.WithField("err", err).Error("ioutil.ReadAll failed")
		return nil, xerrors.Errorf("%v: %w", err, domain.ErrUploadFailed)
	}
	if len(data) == 0 {
		return nil, xerrors.Errorf("image is empty: %w", domain.ErrUploadFailed)
	}
	if int64(len(data)) > im.maxImageSize {
		return nil, xerrors.Errorf("image exceeds %d bytes: %w", im.maxImageSize, domain.ErrUploadFailed)
	}

	mime := mimetype.Detect(data)
	if !strings.HasPrefix(mime.String(), "image/") {
		c.WithField("mime", mime.String()).Warn("not an image")
		return nil, xerrors.Errorf("unsupported content type %s: %w", mime.String(), domain.ErrUploadFailed)
	}
	if len(name) == 0 {
		name = "image" + mime.Extension()
	}

	cid, err := im.store.Pin(c, bytes.NewReader(data), name)
	if err != nil {
		c.WithField("err", err).Error("store.Pin failed")
		return nil, err
	}
	c.WithFields(log.Fields{
		"cid":  cid,
		"mime": mime.String(),
	}).Info("store.Pin success")

	return &file.Upload{
		Cid:  cid,
		Uri:  file.ToUri(cid),
		Mime: mime.String(),
	}, nil
}

func (im *impl) UploadDataUri(c ctx.Ctx, data string, name string) (*file.Upload, error) {
	reader, extension, err := im.parseImgData(data)
	if err != nil {
		c.WithField("err", err).Error("im.parseImgData failed")
		return nil, xerrors.Errorf("%v: %w", err, domain.ErrUploadFailed)
	}
	if len(name) == 0 {
		name = "image." + extension
	}
	return im.UploadImage(c, reader, name)
}

func (im *impl) UploadJson(c ctx.Ctx, value interface{}, name string) (*file.Upload, error) {
	cid, err := im.store.PinJson(c, value, name)
	if err != nil {
		c.WithField("err", err).Error("store.PinJson failed")
		return nil, err
	}
	c.WithField("cid", cid).Info("store.PinJson success")

	return &file.Upload{
		Cid:  cid,
		Uri:  file.ToUri(cid),
		Mime: "application/json",
	}, nil
}

func (im *impl) MirrorJson(c ctx.Ctx, path string, value interface{}) (string, error) {
	if im.mirror == nil {
		return "", nil
	}

	body, err := json.Marshal(value)
	if err != nil {
		c.WithField("err", err).Error("json.Marshal failed")
		return "", err
	}
	url, err := im.mirror.Store(c, path, body, "application/json")
	if err != nil {
		c.WithFields(log.Fields{
			"err":  err,
			"path": path,
		}).Error("mirror.Store failed")
		return "", err
	}
	return url, nil
}

func (im *impl) parseImgData(data string) (reader io.Reader, extension string, err error) {
	if !strings.HasPrefix(data, imgDataHeaderPrefix) {
		return nil, "", xerrors.New("image data has wrong prefix")
	}
	// search header suffix in a limited range
	searchLength := imgDataHeaderMaxLength
	if len(data) < searchLength {
		searchLength = len(data)
	}
	headerSuffixIdx := strings.Index(data[:searchLength], imgDataHeaderSuffix)
	if headerSuffixIdx == -1 {
		return nil, "", xerrors.New("can't find image data header suffix")
	}

	extension = data[len(imgDataHeaderPrefix):headerSuffixIdx]
	dataStartIdx := headerSuffixIdx + len(imgDataHeaderSuffix)
	decodedData, err := base64.StdEncoding.DecodeString(data[dataStartIdx:])
	if err != nil {
		return nil, "", err
	}
	return bytes.NewBuffer(decodedData), extension, nil
}
