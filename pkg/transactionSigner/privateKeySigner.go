package transactionSigner

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"
)

// PrivateKeySigner implements ITransactionSigner with an in-memory ECDSA key
type PrivateKeySigner struct {
	backend     Backend
	logger      *zap.Logger
	chainID     *big.Int
	privateKey  *ecdsa.PrivateKey
	fromAddress common.Address
}

// NewPrivateKeySigner creates a signer from a hex encoded private key
func NewPrivateKeySigner(privateKeyHex string, chainID *big.Int, backend Backend, logger *zap.Logger) (*PrivateKeySigner, error) {
	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(privateKeyHex, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}
	return newPrivateKeySigner(privateKey, chainID, backend, logger)
}

func newPrivateKeySigner(privateKey *ecdsa.PrivateKey, chainID *big.Int, backend Backend, logger *zap.Logger) (*PrivateKeySigner, error) {
	if chainID == nil {
		return nil, fmt.Errorf("chain ID cannot be nil")
	}
	return &PrivateKeySigner{
		backend:     backend,
		logger:      logger,
		chainID:     chainID,
		privateKey:  privateKey,
		fromAddress: crypto.PubkeyToAddress(privateKey.PublicKey),
	}, nil
}

// GetTransactOpts returns keyed transaction options with NoSend set, so bound
// contract calls produce a signed transaction that is submitted separately.
func (s *PrivateKeySigner) GetTransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(s.privateKey, s.chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create keyed transactor: %w", err)
	}
	opts.Context = ctx
	opts.NoSend = true
	return opts, nil
}

// SignAndSendTransaction signs tx unless it already carries our signature and
// submits it. It does not wait for the transaction to be mined.
func (s *PrivateKeySigner) SignAndSendTransaction(ctx context.Context, tx *types.Transaction) (*types.Transaction, error) {
	signer := types.LatestSignerForChainID(s.chainID)

	sender, err := types.Sender(signer, tx)
	if err != nil || sender != s.fromAddress {
		tx, err = types.SignTx(tx, signer, s.privateKey)
		if err != nil {
			return nil, fmt.Errorf("failed to sign transaction: %w", err)
		}
	}

	s.logger.Sugar().Infow("SignAndSendTransaction: sending transaction",
		"from", s.fromAddress.Hex(),
		"to", toHex(tx.To()),
		"value", tx.Value().String(),
		"gasLimit", tx.Gas(),
		"nonce", tx.Nonce(),
	)

	if err := s.backend.SendTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to send transaction: %w", err)
	}

	s.logger.Sugar().Infow("SignAndSendTransaction: transaction sent", "txHash", tx.Hash().Hex())
	return tx, nil
}

// WaitForReceipt waits for tx to be mined and fails if it reverted
func (s *PrivateKeySigner) WaitForReceipt(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	receipt, err := bind.WaitMined(ctx, s.backend, tx)
	if err != nil {
		return nil, fmt.Errorf("failed to wait for transaction receipt: %w", err)
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		s.logger.Sugar().Errorw("WaitForReceipt: transaction failed",
			"txHash", receipt.TxHash.Hex(),
			"status", receipt.Status,
			"gasUsed", receipt.GasUsed,
		)
		return receipt, fmt.Errorf("transaction %s failed with status %d", receipt.TxHash.Hex(), receipt.Status)
	}

	s.logger.Sugar().Infow("WaitForReceipt: transaction succeeded",
		"txHash", receipt.TxHash.Hex(),
		"gasUsed", receipt.GasUsed,
	)
	return receipt, nil
}

// GetFromAddress returns the address that will be used for signing
func (s *PrivateKeySigner) GetFromAddress() common.Address {
	return s.fromAddress
}

func toHex(addr *common.Address) string {
	if addr == nil {
		return ""
	}
	return addr.Hex()
}
