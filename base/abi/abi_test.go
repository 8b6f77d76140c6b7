package abi

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestFactoryMethods(t *testing.T) {
	req := require.New(t)
	for _, m := range []string{"getDeployedContracts", "getBrandOwnedCollections", "getBrandInfo", "createContract"} {
		_, ok := FactoryABI.Methods[m]
		req.True(ok, m)
	}

	data, err := FactoryABI.Pack("createContract", "Rolex", "Submariner", "Rolex Warranty", "RLX", big.NewInt(31556952))
	req.NoError(err)
	req.Equal(FactoryABI.Methods["createContract"].ID, data[:4])
}

func TestUnpackBrandInfo(t *testing.T) {
	req := require.New(t)
	method := FactoryABI.Methods["getBrandInfo"]
	expected := BrandInfo{
		BrandName:        "Rolex",
		ProductName:      "Submariner",
		CollectionName:   "Rolex Warranty",
		CollectionSymbol: "RLX",
		WarrantyPeriod:   big.NewInt(31556952),
		CreationTime:     big.NewInt(1700000000),
	}
	encoded, err := method.Outputs.Pack(expected)
	req.NoError(err)

	out, err := FactoryABI.Unpack("getBrandInfo", encoded)
	req.NoError(err)
	info := *abi.ConvertType(out[0], new(BrandInfo)).(*BrandInfo)
	req.Equal(expected, info)
}

func TestWarrantyMethods(t *testing.T) {
	req := require.New(t)
	data, err := WarrantyABI.Pack("mint", common.HexToAddress("0x00000000000000000000000000000000000000aa"), "ipfs://cid")
	req.NoError(err)
	req.Equal(WarrantyABI.Methods["mint"].ID, data[:4])

	encoded, err := WarrantyABI.Methods["hasValidWarranty"].Outputs.Pack(true)
	req.NoError(err)
	out, err := WarrantyABI.Unpack("hasValidWarranty", encoded)
	req.NoError(err)
	req.Equal(true, out[0])
}
