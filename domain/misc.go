package domain

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

type ChainId int64

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

func (a Address) ToCommon() common.Address {
	return common.HexToAddress(string(a))
}

func AddressFromCommon(a common.Address) Address {
	return Address(a.Hex())
}

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

// ToBig returns the token id as a uint256 call argument
func (i TokenId) ToBig() (*big.Int, bool) {
	return new(big.Int).SetString(i.String(), 10)
}

type TxHash string

// TxReceipt is the confirmed result of a submitted transaction
type TxReceipt struct {
	TxHash      TxHash `json:"txHash"`
	BlockNumber uint64 `json:"blockNumber"`
	Status      uint64 `json:"status"`
	GasUsed     uint64 `json:"gasUsed"`
}

// Wallet is the connection state of the caller. An empty account means no
// wallet is connected and read paths serve demo data.
type Wallet struct {
	Account Address `json:"account"`
}

func DisconnectedWallet() Wallet {
	return Wallet{}
}

func ConnectedWallet(account Address) Wallet {
	return Wallet{Account: account}
}

func (w Wallet) IsConnected() bool {
	return !w.Account.IsEmpty()
}
