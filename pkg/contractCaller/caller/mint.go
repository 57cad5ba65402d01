package caller

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ascendant-nft/mint-go/pkg/merkle"
	"github.com/ethereum/go-ethereum/core/types"
)

// Mint submits a public mint of count tokens paying value wei
func (cc *ContractCaller) Mint(ctx context.Context, count uint64, value *big.Int) (*types.Transaction, error) {
	txOpts, err := cc.buildTransactionOpts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build transaction options: %w", err)
	}
	txOpts.Value = value
	txOpts.GasLimit = cc.gasLimits.Mint

	tx, err := cc.collection.Mint(txOpts, new(big.Int).SetUint64(count))
	if err != nil {
		return nil, fmt.Errorf("failed to create mint transaction for %d tokens: %w", count, err)
	}

	cc.logger.Sugar().Infow("Submitting mint",
		"count", count,
		"value", value.String(),
	)

	return cc.signAndSendTransaction(ctx, tx, "Mint")
}

// WhitelistMint submits a whitelist mint carrying the caller's merkle proof.
// An empty proof is sent as-is; the contract decides whether to accept it.
func (cc *ContractCaller) WhitelistMint(ctx context.Context, count uint64, proof [][32]byte, value *big.Int) (*types.Transaction, error) {
	txOpts, err := cc.buildTransactionOpts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build transaction options: %w", err)
	}
	txOpts.Value = value
	txOpts.GasLimit = cc.gasLimits.WhitelistMint

	if proof == nil {
		proof = [][32]byte{}
	}

	tx, err := cc.collection.WhitelistMint(txOpts, new(big.Int).SetUint64(count), proof)
	if err != nil {
		return nil, fmt.Errorf("failed to create whitelist mint transaction for %d tokens: %w", count, err)
	}

	cc.logger.Sugar().Infow("Submitting whitelist mint",
		"count", count,
		"value", value.String(),
		"proof", merkle.HexProof(proof),
	)

	return cc.signAndSendTransaction(ctx, tx, "WhitelistMint")
}

func (cc *ContractCaller) WaitForReceipt(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	if cc.signer == nil {
		return nil, fmt.Errorf("no transaction signer configured")
	}
	return cc.signer.WaitForReceipt(ctx, tx)
}
