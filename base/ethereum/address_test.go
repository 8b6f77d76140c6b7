package ethereum

import (
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

func TestLoadKey(t *testing.T) {
	req := require.New(t)
	privateKey, publicKey, err := GenerateKey()
	req.NoError(err)
	encoded := hexutil.Encode(crypto.FromECDSA(privateKey))

	loaded, err := LoadKey(encoded)
	req.NoError(err)
	req.Equal(crypto.PubkeyToAddress(*publicKey), crypto.PubkeyToAddress(loaded.PublicKey))

	loaded, err = LoadKey(encoded[2:])
	req.NoError(err)
	req.Equal(crypto.PubkeyToAddress(*publicKey), crypto.PubkeyToAddress(loaded.PublicKey))

	_, err = LoadKey("not a key")
	req.Error(err)
}
