package validator

import (
	"math/big"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var (
	addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	tokenIdPattern = regexp.MustCompile(`^[0-9]+$`)
)

// IsValidAddress returns is an address valid or not
func IsValidAddress(address string) bool {
	checksum := common.HexToAddress(address).Hex()
	return strings.ToLower(checksum) == strings.ToLower(address)
}

// IsWellFormedAddress reports whether address is exactly "0x" followed by 40 hex digits
func IsWellFormedAddress(address string) bool {
	return addressPattern.MatchString(address)
}

// ParseTokenId parses a base-10 non-negative integer of any size
func ParseTokenId(s string) (*big.Int, bool) {
	if !tokenIdPattern.MatchString(s) {
		return nil, false
	}
	return new(big.Int).SetString(s, 10)
}

func NewCustomValidator(v *validator.Validate) echo.Validator {
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
