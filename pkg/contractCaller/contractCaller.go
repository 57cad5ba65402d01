package contractCaller

import (
	"context"
	"math/big"

	ethereumTypes "github.com/ethereum/go-ethereum/core/types"
)

// IContractCaller is the collection contract surface used by the minter.
// Mint and WhitelistMint return once the transaction has been submitted;
// confirmation is a separate WaitForReceipt call.
type IContractCaller interface {
	// IsWhitelistOnly reads the contract's onlyWhitelisted gating flag
	IsWhitelistOnly(ctx context.Context) (bool, error)

	// GetPrice returns the price of a single mint in wei
	GetPrice(ctx context.Context) (*big.Int, error)

	GetTotalMinted(ctx context.Context) (uint64, error)

	GetMaxSupply(ctx context.Context) (uint64, error)

	Mint(ctx context.Context, count uint64, value *big.Int) (*ethereumTypes.Transaction, error)

	WhitelistMint(
		ctx context.Context,
		count uint64,
		proof [][32]byte,
		value *big.Int,
	) (*ethereumTypes.Transaction, error)

	WaitForReceipt(ctx context.Context, tx *ethereumTypes.Transaction) (*ethereumTypes.Receipt, error)
}
