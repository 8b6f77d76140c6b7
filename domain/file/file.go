package file

import (
	"io"

	"github.com/warrantify/goapi/base/ctx"
)

// ContentStore pins content on ipfs and returns its cid
type ContentStore interface {
	Pin(c ctx.Ctx, body io.Reader, name string) (cid string, err error)
	PinJson(c ctx.Ctx, value interface{}, name string) (cid string, err error)
}

// MirrorRepository keeps an http reachable copy of uploaded content
type MirrorRepository interface {
	Store(c ctx.Ctx, path string, body []byte, contentType string) (url string, err error)
}

type Upload struct {
	Cid  string `json:"cid"`
	Uri  string `json:"uri"`
	Mime string `json:"mime,omitempty"`
}

type Usecase interface {
	// UploadImage rejects content that is not an image
	UploadImage(c ctx.Ctx, body io.Reader, name string) (*Upload, error)
	// UploadDataUri accepts a base64 "data:image/<ext>;base64," uri
	UploadDataUri(c ctx.Ctx, data string, name string) (*Upload, error)
	UploadJson(c ctx.Ctx, value interface{}, name string) (*Upload, error)
	// MirrorJson returns an empty url when no mirror is configured
	MirrorJson(c ctx.Ctx, path string, value interface{}) (string, error)
}

// ToUri returns the ipfs:// form of a cid
func ToUri(cid string) string {
	return "ipfs://" + cid
}
