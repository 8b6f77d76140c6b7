package ipfs

import (
	"bytes"
	"encoding/json"
	"io"
	"time"

	ipfsapi "github.com/ipfs/go-ipfs-api"
	"github.com/warrantify/goapi/base/ctx"
	"github.com/warrantify/goapi/base/log"
	"github.com/warrantify/goapi/domain"
	"github.com/warrantify/goapi/domain/file"
	"golang.org/x/xerrors"
)

type nodeImpl struct {
	shell *ipfsapi.Shell
}

// New pins content on a self hosted ipfs node through its http api
func New(apiUrl string, timeout time.Duration) file.ContentStore {
	shell := ipfsapi.NewShell(apiUrl)
	if timeout > 0 {
		shell.SetTimeout(timeout)
	}
	return &nodeImpl{shell: shell}
}

func (im *nodeImpl) Pin(c ctx.Ctx, body io.Reader, name string) (string, error) {
	cid, err := im.shell.Add(body, ipfsapi.Pin(true))
	if err != nil {
		c.WithFields(log.Fields{
			"err":  err,
			"name": name,
		}).Error("shell.Add failed")
		return "", xerrors.Errorf("%v: %w", err, domain.ErrUploadFailed)
	}
	return cid, nil
}

func (im *nodeImpl) PinJson(c ctx.Ctx, value interface{}, name string) (string, error) {
	b, err := json.Marshal(value)
	if err != nil {
		c.WithField("err", err).Error("json.Marshal failed")
		return "", err
	}
	return im.Pin(c, bytes.NewReader(b), name)
}
