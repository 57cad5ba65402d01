package transactionSigner

import (
	"context"
	"fmt"
	"math/big"
	"os"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

// ITransactionSigner provides methods for signing Ethereum transactions
type ITransactionSigner interface {
	// GetTransactOpts returns transaction options that build signed
	// transactions without broadcasting them
	GetTransactOpts(ctx context.Context) (*bind.TransactOpts, error)

	// SignAndSendTransaction signs a transaction if needed and submits it to
	// the network. It returns as soon as the node accepts the transaction.
	SignAndSendTransaction(ctx context.Context, tx *types.Transaction) (*types.Transaction, error)

	// WaitForReceipt blocks until the transaction is mined
	WaitForReceipt(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)

	// GetFromAddress returns the address that will be used for signing
	GetFromAddress() common.Address
}

// Backend is the subset of an RPC client the signers need.
// *ethclient.Client satisfies it.
type Backend interface {
	bind.DeployBackend
	SendTransaction(ctx context.Context, tx *types.Transaction) error
}

type SignerConfig struct {
	PrivateKey       string `json:"privateKey" yaml:"privateKey"`
	KeystorePath     string `json:"keystorePath" yaml:"keystorePath"`
	KeystorePassword string `json:"keystorePassword" yaml:"keystorePassword"`
}

func NewTransactionSigner(cfg *SignerConfig, chainID *big.Int, backend Backend, logger *zap.Logger) (ITransactionSigner, error) {
	if cfg.PrivateKey != "" {
		return NewPrivateKeySigner(cfg.PrivateKey, chainID, backend, logger)
	}
	if cfg.KeystorePath != "" {
		return NewKeystoreSigner(cfg.KeystorePath, cfg.KeystorePassword, chainID, backend, logger)
	}
	return nil, fmt.Errorf("private key cannot be empty")
}

// NewKeystoreSigner decrypts a go-ethereum JSON keystore file and returns a
// signer for the key inside it.
func NewKeystoreSigner(path string, password string, chainID *big.Int, backend Backend, logger *zap.Logger) (*PrivateKeySigner, error) {
	keyJSON, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keystore file: %w", err)
	}

	key, err := keystore.DecryptKey(keyJSON, password)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt keystore file: %w", err)
	}

	return newPrivateKeySigner(key.PrivateKey, chainID, backend, logger)
}
