package abi

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

var FactoryABI abi.ABI

func init() {
	_abi, err := abi.JSON(strings.NewReader(factoryABIJson))
	if err != nil {
		panic("Failed to parse ABI")
	}
	FactoryABI = _abi
}

// BrandInfo is the tuple returned by getBrandInfo
type BrandInfo struct {
	BrandName        string
	ProductName      string
	CollectionName   string
	CollectionSymbol string
	WarrantyPeriod   *big.Int
	CreationTime     *big.Int
}

var factoryABIJson = `
[
  {
    "inputs": [],
    "name": "getDeployedContracts",
    "outputs": [
      {
        "internalType": "address[]",
        "name": "",
        "type": "address[]"
      }
    ],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [
      {
        "internalType": "address",
        "name": "brandOwner",
        "type": "address"
      }
    ],
    "name": "getBrandOwnedCollections",
    "outputs": [
      {
        "internalType": "address[]",
        "name": "",
        "type": "address[]"
      }
    ],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [
      {
        "internalType": "address",
        "name": "contractAddress",
        "type": "address"
      }
    ],
    "name": "getBrandInfo",
    "outputs": [
      {
        "components": [
          {
            "internalType": "string",
            "name": "brandName",
            "type": "string"
          },
          {
            "internalType": "string",
            "name": "productName",
            "type": "string"
          },
          {
            "internalType": "string",
            "name": "collectionName",
            "type": "string"
          },
          {
            "internalType": "string",
            "name": "collectionSymbol",
            "type": "string"
          },
          {
            "internalType": "uint256",
            "name": "warrantyPeriod",
            "type": "uint256"
          },
          {
            "internalType": "uint256",
            "name": "creationTime",
            "type": "uint256"
          }
        ],
        "internalType": "struct WarrantyFactory.BrandInfo",
        "name": "",
        "type": "tuple"
      }
    ],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [
      {
        "internalType": "string",
        "name": "brandName",
        "type": "string"
      },
      {
        "internalType": "string",
        "name": "productName",
        "type": "string"
      },
      {
        "internalType": "string",
        "name": "collectionName",
        "type": "string"
      },
      {
        "internalType": "string",
        "name": "collectionSymbol",
        "type": "string"
      },
      {
        "internalType": "uint256",
        "name": "warrantyPeriod",
        "type": "uint256"
      }
    ],
    "name": "createContract",
    "outputs": [],
    "stateMutability": "nonpayable",
    "type": "function"
  },
  {
    "anonymous": false,
    "inputs": [
      {
        "indexed": true,
        "internalType": "address",
        "name": "contractAddress",
        "type": "address"
      },
      {
        "indexed": true,
        "internalType": "address",
        "name": "brandOwner",
        "type": "address"
      }
    ],
    "name": "ContractDeployed",
    "type": "event"
  }
]
`
