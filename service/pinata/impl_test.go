package pinata

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/warrantify/goapi/base/ctx"
	"github.com/warrantify/goapi/domain"
	"github.com/warrantify/goapi/domain/file"
)

type pinataSuite struct {
	suite.Suite
	server  *httptest.Server
	handler http.HandlerFunc
	im      file.ContentStore
}

func TestPinata(t *testing.T) {
	suite.Run(t, new(pinataSuite))
}

func (s *pinataSuite) SetupTest() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.handler(w, r)
	}))
	s.im = New(Config{
		Endpoint:   s.server.URL,
		ApiKey:     "key",
		ApiSecret:  "secret",
		CidVersion: CidVersion_1,
	}, s.server.Client())
}

func (s *pinataSuite) TearDownTest() {
	s.server.Close()
}

func (s *pinataSuite) TestPin() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal(pinPath, r.URL.Path)
		s.Equal("key", r.Header.Get("pinata_api_key"))
		s.Equal("secret", r.Header.Get("pinata_secret_api_key"))

		f, header, err := r.FormFile("file")
		s.Require().NoError(err)
		s.Equal("watch.png", header.Filename)
		body, _ := io.ReadAll(f)
		s.Equal("image bytes", string(body))

		meta := PinataMetadata{}
		s.NoError(json.Unmarshal([]byte(r.FormValue("pinataMetadata")), &meta))
		s.Equal("watch.png", meta.Name)
		s.JSONEq(`{"cidVersion":1}`, r.FormValue("pinataOptions"))

		w.Write([]byte(`{"IpfsHash":"QmImage"}`))
	}

	cid, err := s.im.Pin(ctx.Background(), strings.NewReader("image bytes"), "watch.png")
	s.NoError(err)
	s.Equal("QmImage", cid)
}

func (s *pinataSuite) TestPinJson() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal(pinJsonPath, r.URL.Path)
		s.Equal("application/json", r.Header.Get("Content-Type"))

		opts := struct {
			Metadata PinataMetadata    `json:"pinataMetadata"`
			Content  map[string]string `json:"pinataContent"`
		}{}
		s.NoError(json.NewDecoder(r.Body).Decode(&opts))
		s.Equal("metadata.json", opts.Metadata.Name)
		s.Equal("SN-1", opts.Content["productSerialNo"])

		w.Write([]byte(`{"IpfsHash":"QmMeta"}`))
	}

	cid, err := s.im.PinJson(ctx.Background(), map[string]string{"productSerialNo": "SN-1"}, "metadata.json")
	s.NoError(err)
	s.Equal("QmMeta", cid)
}

func (s *pinataSuite) TestRequestFailed() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid key"}`))
	}

	_, err := s.im.PinJson(ctx.Background(), map[string]string{}, "metadata.json")
	s.True(errors.Is(err, domain.ErrUploadFailed))
}

func (s *pinataSuite) TestEmptyHash() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}

	_, err := s.im.Pin(ctx.Background(), strings.NewReader("x"), "x.png")
	s.True(errors.Is(err, domain.ErrUploadFailed))
}
