package warranty

import (
	"io"

	"github.com/warrantify/goapi/base/ctx"
	"github.com/warrantify/goapi/domain"
)

const (
	MsgInvalidFormat = "Invalid collection address or token ID format"
	MsgValid         = "Warranty is valid and active"
	MsgInvalid       = "Warranty is invalid or expired"
	MsgTokenNotExist = "Token ID does not exist"
	MsgVerifyFailed  = "Error occurred while verifying warranty. Please try again."
)

// Token is one issued warranty as seen by a verifier
type Token struct {
	CollectionAddress domain.Address `json:"collectionAddress"`
	TokenId           domain.TokenId `json:"tokenId"`
	Valid             bool           `json:"valid"`
	IssueTimestamp    int64          `json:"issueTimestamp"`
	ExpiryTimestamp   int64          `json:"expiryTimestamp"`
}

// NewToken derives the expiry from the collection's creation time and warranty period
func NewToken(address domain.Address, tokenId domain.TokenId, valid bool, creationTime, warrantyPeriod uint64) *Token {
	return &Token{
		CollectionAddress: address,
		TokenId:           tokenId,
		Valid:             valid,
		IssueTimestamp:    int64(creationTime),
		ExpiryTimestamp:   int64(creationTime + warrantyPeriod),
	}
}

type ProductInfo struct {
	Name       string `json:"name"`
	Brand      string `json:"brand"`
	IssueDate  string `json:"issueDate"`
	ExpiryDate string `json:"expiryDate"`
}

type VerificationResult struct {
	IsValid     bool         `json:"isValid"`
	Message     string       `json:"message"`
	ProductInfo *ProductInfo `json:"productInfo,omitempty"`
}

// Metadata is the json document a minted token points to
type Metadata struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	Image           string `json:"image"`
	ProductSerialNo string `json:"productSerialNo"`
	AdditionalData  string `json:"additionalData"`
}

type MintParams struct {
	Collection     string
	Recipient      string
	ProductSerial  string
	Description    string
	AdditionalData string
	// either Image or ImageData, a base64 data uri, must be set
	Image     io.Reader
	ImageName string
	ImageData string
}

type MintResult struct {
	Receipt     *domain.TxReceipt `json:"receipt"`
	Recipient   domain.Address    `json:"recipient"`
	ImageUri    string            `json:"imageUri"`
	MetadataUri string            `json:"metadataUri"`
	MirrorUrl   string            `json:"mirrorUrl,omitempty"`
}

// VerifyOptions controls how the dates of a valid warranty are rendered
type VerifyOptions struct {
	MonthStyle string
	WithTime   bool
	Timezone   string
}

type Usecase interface {
	// Verify never fails, every outcome is carried by the result message
	Verify(c ctx.Ctx, collection, tokenId string, opts VerifyOptions) *VerificationResult
	Mint(c ctx.Ctx, wallet domain.Wallet, params *MintParams) (*MintResult, error)
}
