package pinata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/warrantify/goapi/base/ctx"
	"github.com/warrantify/goapi/base/log"
	"github.com/warrantify/goapi/domain"
	"github.com/warrantify/goapi/domain/file"
	"golang.org/x/xerrors"
)

const (
	pinPath     = "/pinning/pinFileToIPFS"
	pinJsonPath = "/pinning/pinJSONToIPFS"
)

type pinataImpl struct {
	cfg    Config
	client *http.Client
}

func New(cfg Config, client *http.Client) file.ContentStore {
	if len(cfg.Endpoint) == 0 {
		cfg.Endpoint = DefaultEndpoint
	}
	cfg.Endpoint = strings.TrimSuffix(cfg.Endpoint, "/")
	if client == nil {
		client = http.DefaultClient
	}
	return &pinataImpl{cfg, client}
}

func (im *pinataImpl) pinOptions(name string) *PinOptions {
	return &PinOptions{
		Metadata: &PinataMetadata{
			Name:      name,
			KeyValues: im.cfg.KeyValues,
		},
		Options: &PinataOptions{CidVersion: im.cfg.CidVersion},
	}
}

func (im *pinataImpl) Pin(c ctx.Ctx, body io.Reader, name string) (string, error) {
	opts := im.pinOptions(name)

	var b bytes.Buffer

	w := multipart.NewWriter(&b)
	if fw, err := w.CreateFormFile("file", name); err != nil {
		c.WithField("err", err).Error("w.CreateFormField failed")
		return "", err
	} else if _, err := io.Copy(fw, body); err != nil {
		c.WithField("err", err).Error("io.Copy failed")
		return "", xerrors.Errorf("%v: %w", err, domain.ErrUploadFailed)
	}

	if b, err := json.Marshal(opts.Metadata); err != nil {
		c.WithField("err", err).Error("json.Marshal failed")
		return "", err
	} else if err := w.WriteField("pinataMetadata", string(b)); err != nil {
		return "", err
	}

	if b, err := json.Marshal(opts.Options); err != nil {
		c.WithField("err", err).Error("json.Marshal failed")
		return "", err
	} else if err := w.WriteField("pinataOptions", string(b)); err != nil {
		return "", err
	}

	if err := w.Close(); err != nil {
		return "", err
	}

	return im.post(c, pinPath, w.FormDataContentType(), &b)
}

func (im *pinataImpl) PinJson(c ctx.Ctx, value interface{}, name string) (string, error) {
	opts := im.pinOptions(name)
	opts.PinataContent = value

	body, err := json.Marshal(opts)
	if err != nil {
		c.WithField("err", err).Error("json.Marshal failed")
		return "", err
	}

	return im.post(c, pinJsonPath, "application/json", bytes.NewBuffer(body))
}

func (im *pinataImpl) post(c ctx.Ctx, path, contentType string, body io.Reader) (string, error) {
	url := fmt.Sprintf("%s%s", im.cfg.Endpoint, path)

	req, err := http.NewRequestWithContext(c, "POST", url, body)
	if err != nil {
		c.WithField("err", err).Error("http.NewRequest failed")
		return "", err
	}

	req.Header.Set("Content-Type", contentType)
	req.Header.Set("pinata_api_key", im.cfg.ApiKey)
	req.Header.Set("pinata_secret_api_key", im.cfg.ApiSecret)

	resp, err := im.client.Do(req)
	if err != nil {
		c.WithField("err", err).Error("client.Do failed")
		return "", xerrors.Errorf("%v: %w", err, domain.ErrUploadFailed)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errorBody, _ := io.ReadAll(resp.Body)
		c.WithFields(log.Fields{
			"status":    resp.StatusCode,
			"errorBody": string(errorBody),
		}).Error("Request failed")
		return "", xerrors.Errorf("%v: status %d: %w", ErrRequestFailed, resp.StatusCode, domain.ErrUploadFailed)
	}

	type payload struct {
		IpfsHash string `json:"IpfsHash"`
	}

	p := &payload{}

	if err := json.NewDecoder(resp.Body).Decode(p); err != nil {
		c.WithField("err", err).Error("json.NewDecoder.Decode failed")
		return "", xerrors.Errorf("%v: %w", err, domain.ErrUploadFailed)
	}
	if len(p.IpfsHash) == 0 {
		return "", xerrors.Errorf("empty IpfsHash: %w", domain.ErrUploadFailed)
	}

	return p.IpfsHash, nil
}
