package pinata

import (
	"errors"
)

var (
	ErrRequestFailed = errors.New("request failed")
)

const DefaultEndpoint = "https://api.pinata.cloud"

type PinataMetadata struct {
	Name string `json:"name,omitempty"`
	// can only store string, bool, int
	KeyValues map[string]interface{} `json:"keyvalues,omitempty"`
}

type PinataOptions struct {
	CidVersion CidVersion `json:"cidVersion"`
}

type CidVersion uint8

const (
	CidVersion_0 CidVersion = 0
	CidVersion_1 CidVersion = 1
)

type PinOptions struct {
	Metadata      *PinataMetadata `json:"pinataMetadata,omitempty"`
	Options       *PinataOptions  `json:"pinataOptions,omitempty"`
	PinataContent interface{}     `json:"pinataContent"`
}

type Config struct {
	Endpoint   string
	ApiKey     string
	ApiSecret  string
	CidVersion CidVersion
	// added to the key values of every pin
	KeyValues map[string]interface{}
}
