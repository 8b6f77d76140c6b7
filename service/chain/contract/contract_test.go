package contract

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	baseabi "github.com/warrantify/goapi/base/abi"
	bCtx "github.com/warrantify/goapi/base/ctx"
	"github.com/warrantify/goapi/domain"
	"github.com/warrantify/goapi/domain/collection"
	"github.com/warrantify/goapi/service/chain"
	"github.com/warrantify/goapi/service/chain/mocks"
	"golang.org/x/xerrors"
)

const (
	factoryAddr    = domain.Address("0x00000000000000000000000000000000000000f0")
	collectionAddr = domain.Address("0x00000000000000000000000000000000000000c1")
)

type contractTestSuite struct {
	suite.Suite
	ctx      bCtx.Ctx
	client   *mocks.Client
	factory  *Factory
	warranty *Warranty
}

func TestContract(t *testing.T) {
	suite.Run(t, new(contractTestSuite))
}

func (s *contractTestSuite) SetupTest() {
	s.ctx = bCtx.Background()
	s.client = &mocks.Client{}
	s.factory = NewFactory(s.client, factoryAddr)
	s.warranty = NewWarranty(s.client)
}

func (s *contractTestSuite) TearDownTest() {
	s.client.AssertExpectations(s.T())
}

func (s *contractTestSuite) TestListCollections() {
	s.client.On("Call", mock.Anything, factoryAddr.ToCommon(), mock.Anything, "getDeployedContracts").
		Return([]interface{}{[]common.Address{collectionAddr.ToCommon(), common.HexToAddress("0x02")}}, nil).Once()
	addrs, err := s.factory.ListCollections(s.ctx)
	s.Require().NoError(err)
	s.Len(addrs, 2)
	s.True(addrs[0].Equals(collectionAddr))
}

func (s *contractTestSuite) TestListCollectionsFailed() {
	s.client.On("Call", mock.Anything, factoryAddr.ToCommon(), mock.Anything, "getDeployedContracts").
		Return(nil, xerrors.Errorf("dial: %w", domain.ErrNetworkUnavailable)).Once()
	_, err := s.factory.ListCollections(s.ctx)
	s.True(errors.Is(err, domain.ErrNetworkUnavailable))
}

func (s *contractTestSuite) TestListOwnedCollections() {
	owner := domain.Address("0x00000000000000000000000000000000000000b0")
	s.client.On("Call", mock.Anything, factoryAddr.ToCommon(), mock.Anything, "getBrandOwnedCollections", owner.ToCommon()).
		Return([]interface{}{[]common.Address{collectionAddr.ToCommon()}}, nil).Once()
	addrs, err := s.factory.ListOwnedCollections(s.ctx, owner)
	s.Require().NoError(err)
	s.Len(addrs, 1)
}

func (s *contractTestSuite) TestGetCollectionInfo() {
	raw := struct {
		BrandName        string   `json:"brandName"`
		ProductName      string   `json:"productName"`
		CollectionName   string   `json:"collectionName"`
		CollectionSymbol string   `json:"collectionSymbol"`
		WarrantyPeriod   *big.Int `json:"warrantyPeriod"`
		CreationTime     *big.Int `json:"creationTime"`
	}{"Rolex", "Submariner", "Rolex Warranty", "RLX", big.NewInt(31556952), big.NewInt(1700000000)}
	s.client.On("Call", mock.Anything, factoryAddr.ToCommon(), mock.Anything, "getBrandInfo", collectionAddr.ToCommon()).
		Return([]interface{}{raw}, nil).Once()

	info, err := s.factory.GetCollectionInfo(s.ctx, collectionAddr)
	s.Require().NoError(err)
	s.Equal(&collection.Info{
		BrandName:        "Rolex",
		ProductName:      "Submariner",
		CollectionName:   "Rolex Warranty",
		CollectionSymbol: "RLX",
		WarrantyPeriod:   31556952,
		CreationTime:     1700000000,
	}, info)
}

func (s *contractTestSuite) TestGetCollectionInfoEmpty() {
	s.client.On("Call", mock.Anything, factoryAddr.ToCommon(), mock.Anything, "getBrandInfo", collectionAddr.ToCommon()).
		Return([]interface{}{baseabi.BrandInfo{WarrantyPeriod: big.NewInt(0), CreationTime: big.NewInt(0)}}, nil).Once()
	_, err := s.factory.GetCollectionInfo(s.ctx, collectionAddr)
	s.True(errors.Is(err, domain.ErrNotFound))
}

func (s *contractTestSuite) TestGetCollectionInfoNotExist() {
	s.client.On("Call", mock.Anything, factoryAddr.ToCommon(), mock.Anything, "getBrandInfo", collectionAddr.ToCommon()).
		Return(nil, &chain.RevertError{Method: "getBrandInfo", Reason: "Contract does not exist"}).Once()
	_, err := s.factory.GetCollectionInfo(s.ctx, collectionAddr)
	s.True(errors.Is(err, domain.ErrNotFound))
}

func (s *contractTestSuite) TestSubmitCreateCollection() {
	receipt := &domain.TxReceipt{TxHash: "0xabc", Status: 1}
	s.client.On("Transact", mock.Anything, factoryAddr.ToCommon(), mock.Anything, "createContract",
		"Rolex", "Submariner", "Rolex Warranty", "RLX", big.NewInt(31556952)).
		Return(receipt, nil).Once()
	res, err := s.factory.SubmitCreateCollection(s.ctx, &collection.CreateTx{
		BrandName:        "Rolex",
		ProductName:      "Submariner",
		CollectionName:   "Rolex Warranty",
		CollectionSymbol: "RLX",
		WarrantyPeriod:   31556952,
	})
	s.Require().NoError(err)
	s.Equal(receipt, res)
}

func (s *contractTestSuite) TestGetTokenValidity() {
	s.client.On("Call", mock.Anything, collectionAddr.ToCommon(), mock.Anything, "hasValidWarranty", big.NewInt(1)).
		Return([]interface{}{true}, nil).Once()
	s.client.On("Call", mock.Anything, collectionAddr.ToCommon(), mock.Anything, "hasValidWarranty", big.NewInt(2)).
		Return([]interface{}{false}, nil).Once()
	s.client.On("Call", mock.Anything, collectionAddr.ToCommon(), mock.Anything, "hasValidWarranty", big.NewInt(3)).
		Return(nil, &chain.RevertError{Method: "hasValidWarranty", Reason: baseabi.RevertTokenIdInvalid}).Once()
	s.client.On("Call", mock.Anything, collectionAddr.ToCommon(), mock.Anything, "hasValidWarranty", big.NewInt(4)).
		Return(nil, &chain.RevertError{Method: "hasValidWarranty", Reason: "paused"}).Once()

	valid, err := s.warranty.GetTokenValidity(s.ctx, collectionAddr, big.NewInt(1))
	s.NoError(err)
	s.True(valid)

	valid, err = s.warranty.GetTokenValidity(s.ctx, collectionAddr, big.NewInt(2))
	s.NoError(err)
	s.False(valid)

	_, err = s.warranty.GetTokenValidity(s.ctx, collectionAddr, big.NewInt(3))
	s.True(errors.Is(err, domain.ErrInvalidToken))

	_, err = s.warranty.GetTokenValidity(s.ctx, collectionAddr, big.NewInt(4))
	s.False(errors.Is(err, domain.ErrInvalidToken))
	s.True(errors.Is(err, domain.ErrNetworkUnavailable))
}

func (s *contractTestSuite) TestGetMintedCount() {
	s.client.On("Call", mock.Anything, collectionAddr.ToCommon(), mock.Anything, "totalSupply").
		Return([]interface{}{big.NewInt(7)}, nil).Once()
	n, err := s.warranty.GetMintedCount(s.ctx, collectionAddr)
	s.NoError(err)
	s.Equal(uint64(7), n)
}

func (s *contractTestSuite) TestSubmitMint() {
	recipient := domain.Address("0x00000000000000000000000000000000000000aa")
	receipt := &domain.TxReceipt{TxHash: "0xdef", Status: 1}
	s.client.On("Transact", mock.Anything, collectionAddr.ToCommon(), mock.Anything, "mint", recipient.ToCommon(), "ipfs://meta").
		Return(receipt, nil).Once()
	res, err := s.warranty.SubmitMint(s.ctx, collectionAddr, recipient, "ipfs://meta")
	s.NoError(err)
	s.Equal(receipt, res)
}
