package chain

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/abi/bind/backends"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/suite"
	baseabi "github.com/warrantify/goapi/base/abi"
	bCtx "github.com/warrantify/goapi/base/ctx"
	"github.com/warrantify/goapi/domain"
	"golang.org/x/xerrors"
)

const (
	simulatedChainId = 1337
	// init code deploying a runtime that stops immediately
	stopContract = "0x6001600c60003960016000f300"
	// init code deploying a runtime that always reverts
	revertContract = "0x6005600c60003960056000f360006000fd"
)

type clientTestSuite struct {
	suite.Suite
	sim      *backends.SimulatedBackend
	client   Client
	stopAddr common.Address
	revAddr  common.Address
	done     chan struct{}
}

func TestClient(t *testing.T) {
	suite.Run(t, new(clientTestSuite))
}

func (s *clientTestSuite) SetupTest() {
	key, err := crypto.GenerateKey()
	s.Require().NoError(err)
	owner := crypto.PubkeyToAddress(key.PublicKey)
	s.sim = backends.NewSimulatedBackend(core.GenesisAlloc{
		owner: {Balance: new(big.Int).Mul(big.NewInt(1000), big.NewInt(1e18))},
	}, 10_000_000)

	auth, err := bind.NewKeyedTransactorWithChainID(key, big.NewInt(simulatedChainId))
	s.Require().NoError(err)
	s.stopAddr, _, _, err = bind.DeployContract(auth, abi.ABI{}, hexutil.MustDecode(stopContract), s.sim)
	s.Require().NoError(err)
	s.revAddr, _, _, err = bind.DeployContract(auth, abi.ABI{}, hexutil.MustDecode(revertContract), s.sim)
	s.Require().NoError(err)
	s.sim.Commit()

	s.client = NewClientWithBackend(s.sim, simulatedChainId, key, 10*time.Second)

	// keep mining so WaitMined returns
	s.done = make(chan struct{})
	go func() {
		ticker := time.NewTicker(50 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-s.done:
				return
			case <-ticker.C:
				s.sim.Commit()
			}
		}
	}()
}

func (s *clientTestSuite) TearDownTest() {
	close(s.done)
	s.sim.Close()
}

func (s *clientTestSuite) TestTransact() {
	ctx := bCtx.Background()
	receipt, err := s.client.Transact(ctx, s.stopAddr, baseabi.WarrantyABI, "mint", common.HexToAddress("0x00000000000000000000000000000000000000aa"), "ipfs://cid")
	s.Require().NoError(err)
	s.Equal(uint64(1), receipt.Status)
	s.NotEmpty(receipt.TxHash)
	s.NotZero(receipt.BlockNumber)
}

func (s *clientTestSuite) TestTransactRejected() {
	ctx := bCtx.Background()
	_, err := s.client.Transact(ctx, s.revAddr, baseabi.WarrantyABI, "mint", common.HexToAddress("0x00000000000000000000000000000000000000aa"), "ipfs://cid")
	s.True(errors.Is(err, domain.ErrTxRejected))
}

func (s *clientTestSuite) TestTransactWithoutSigner() {
	readOnly := NewClientWithBackend(s.sim, simulatedChainId, nil, 0)
	s.Empty(readOnly.Signer())
	_, err := readOnly.Transact(bCtx.Background(), s.stopAddr, baseabi.WarrantyABI, "mint", common.Address{}, "ipfs://cid")
	s.True(errors.Is(err, domain.ErrTxRejected))
}

func (s *clientTestSuite) TestCallEmptyResult() {
	_, err := s.client.Call(bCtx.Background(), s.stopAddr, baseabi.WarrantyABI, "totalSupply")
	s.True(errors.Is(err, domain.ErrEmptyResult))
}

func (s *clientTestSuite) TestCallBadParam() {
	_, err := s.client.Call(bCtx.Background(), s.stopAddr, baseabi.WarrantyABI, "hasValidWarranty", "not a number")
	s.True(errors.Is(err, domain.ErrBadParamInput))
}

func (s *clientTestSuite) TestBlockNumber() {
	n, err := s.client.BlockNumber(bCtx.Background())
	s.NoError(err)
	s.NotZero(n)
}

type dataError struct {
	data interface{}
}

func (e *dataError) Error() string {
	return "execution reverted"
}

func (e *dataError) ErrorData() interface{} {
	return e.data
}

func (s *clientTestSuite) TestRevertReason() {
	stringType, err := abi.NewType("string", "", nil)
	s.Require().NoError(err)
	packed, err := abi.Arguments{{Type: stringType}}.Pack(baseabi.RevertTokenIdInvalid)
	s.Require().NoError(err)
	data := append(crypto.Keccak256([]byte("Error(string)"))[:4], packed...)

	reason, ok := RevertReason(xerrors.Errorf("call: %w", &dataError{hexutil.Encode(data)}))
	s.True(ok)
	s.Equal(baseabi.RevertTokenIdInvalid, reason)

	_, ok = RevertReason(&dataError{"0x"})
	s.False(ok)
	_, ok = RevertReason(errors.New("connection refused"))
	s.False(ok)
}
