package transactionSigner

import (
	"context"
	"errors"
	"math/big"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeBackend records submitted transactions and serves canned receipts
type fakeBackend struct {
	mu       sync.Mutex
	sent     []*types.Transaction
	sendErr  error
	receipts map[common.Hash]*types.Receipt
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{receipts: make(map[common.Hash]*types.Receipt)}
}

func (f *fakeBackend) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, tx)
	return nil
}

func (f *fakeBackend) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if r, ok := f.receipts[txHash]; ok {
		return r, nil
	}
	return nil, errors.New("not found")
}

func (f *fakeBackend) CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error) {
	return nil, nil
}

var testChainID = big.NewInt(31337)

func unsignedTx() *types.Transaction {
	to := common.HexToAddress("0xd373FcAb6e5b7B8afD3890A49e99fB58B18c76b6")
	return types.NewTx(&types.DynamicFeeTx{
		ChainID:   testChainID,
		Nonce:     3,
		GasTipCap: big.NewInt(1),
		GasFeeCap: big.NewInt(2),
		Gas:       500000,
		To:        &to,
		Value:     big.NewInt(1000),
		Data:      []byte{0xa0, 0x71, 0x2d, 0x68},
	})
}

func TestPrivateKeySigner_GetTransactOpts(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	s, err := NewPrivateKeySigner(hexutil.Encode(crypto.FromECDSA(key)), testChainID, newFakeBackend(), zap.NewNop())
	require.NoError(t, err)
	require.Equal(t, crypto.PubkeyToAddress(key.PublicKey), s.GetFromAddress())

	ctx := context.Background()
	opts, err := s.GetTransactOpts(ctx)
	require.NoError(t, err)
	require.Equal(t, s.GetFromAddress(), opts.From)
	require.True(t, opts.NoSend)
	require.Equal(t, ctx, opts.Context)
}

func TestPrivateKeySigner_SignAndSendTransaction(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	backend := newFakeBackend()

	s, err := NewPrivateKeySigner(common.Bytes2Hex(crypto.FromECDSA(key)), testChainID, backend, zap.NewNop())
	require.NoError(t, err)

	t.Run("Signs unsigned transactions", func(t *testing.T) {
		sent, err := s.SignAndSendTransaction(context.Background(), unsignedTx())
		require.NoError(t, err)

		sender, err := types.Sender(types.LatestSignerForChainID(testChainID), sent)
		require.NoError(t, err)
		require.Equal(t, s.GetFromAddress(), sender)
		require.Len(t, backend.sent, 1)
		require.Equal(t, sent.Hash(), backend.sent[0].Hash())
	})

	t.Run("Keeps an existing signature", func(t *testing.T) {
		signed, err := types.SignTx(unsignedTx(), types.LatestSignerForChainID(testChainID), key)
		require.NoError(t, err)

		sent, err := s.SignAndSendTransaction(context.Background(), signed)
		require.NoError(t, err)
		require.Equal(t, signed.Hash(), sent.Hash())
	})

	t.Run("Surfaces send failures", func(t *testing.T) {
		backend.sendErr = errors.New("insufficient funds")
		defer func() { backend.sendErr = nil }()

		sent, err := s.SignAndSendTransaction(context.Background(), unsignedTx())
		require.Error(t, err)
		require.Nil(t, sent)
		require.Contains(t, err.Error(), "insufficient funds")
	})
}

func TestPrivateKeySigner_WaitForReceipt(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	backend := newFakeBackend()
	s, err := NewPrivateKeySigner(common.Bytes2Hex(crypto.FromECDSA(key)), testChainID, backend, zap.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	t.Run("Successful receipt", func(t *testing.T) {
		tx, err := s.SignAndSendTransaction(ctx, unsignedTx())
		require.NoError(t, err)
		backend.receipts[tx.Hash()] = &types.Receipt{TxHash: tx.Hash(), Status: types.ReceiptStatusSuccessful}

		receipt, err := s.WaitForReceipt(ctx, tx)
		require.NoError(t, err)
		require.Equal(t, tx.Hash(), receipt.TxHash)
	})

	t.Run("Reverted receipt", func(t *testing.T) {
		tx := unsignedTx()
		backend.receipts[tx.Hash()] = &types.Receipt{TxHash: tx.Hash(), Status: types.ReceiptStatusFailed}

		receipt, err := s.WaitForReceipt(ctx, tx)
		require.Error(t, err)
		require.NotNil(t, receipt)
		require.Contains(t, err.Error(), "failed with status 0")
	})
}

func TestNewPrivateKeySigner_Errors(t *testing.T) {
	_, err := NewPrivateKeySigner("0xnothex", testChainID, newFakeBackend(), zap.NewNop())
	require.Error(t, err)

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	_, err = NewPrivateKeySigner(common.Bytes2Hex(crypto.FromECDSA(key)), nil, newFakeBackend(), zap.NewNop())
	require.Error(t, err)
}

func TestNewTransactionSigner(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	address := crypto.PubkeyToAddress(key.PublicKey)

	t.Run("From private key", func(t *testing.T) {
		s, err := NewTransactionSigner(&SignerConfig{PrivateKey: common.Bytes2Hex(crypto.FromECDSA(key))}, testChainID, newFakeBackend(), zap.NewNop())
		require.NoError(t, err)
		require.Equal(t, address, s.GetFromAddress())
	})

	t.Run("From keystore", func(t *testing.T) {
		keyJSON, err := keystore.EncryptKey(&keystore.Key{
			Id:         uuid.New(),
			Address:    address,
			PrivateKey: key,
		}, "hunter2", keystore.LightScryptN, keystore.LightScryptP)
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "key.json")
		require.NoError(t, os.WriteFile(path, keyJSON, 0o600))

		s, err := NewTransactionSigner(&SignerConfig{KeystorePath: path, KeystorePassword: "hunter2"}, testChainID, newFakeBackend(), zap.NewNop())
		require.NoError(t, err)
		require.Equal(t, address, s.GetFromAddress())

		_, err = NewTransactionSigner(&SignerConfig{KeystorePath: path, KeystorePassword: "wrong"}, testChainID, newFakeBackend(), zap.NewNop())
		require.Error(t, err)
	})

	t.Run("No key", func(t *testing.T) {
		_, err := NewTransactionSigner(&SignerConfig{}, testChainID, newFakeBackend(), zap.NewNop())
		require.Error(t, err)
	})
}
