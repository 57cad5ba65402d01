package minter

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ascendant-nft/mint-go/pkg/contractCaller"
	"github.com/ascendant-nft/mint-go/pkg/merkle"
	"github.com/ascendant-nft/mint-go/pkg/wallet"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrWalletNotConnected = errors.New("wallet not connected")
	ErrInvalidCount       = errors.New("mint count must be greater than zero")
)

// ProofProvider returns the merkle proof for an address. Non-members get an
// empty proof and false.
type ProofProvider interface {
	ProofFor(addr common.Address) ([][32]byte, bool)
}

type MintResult struct {
	AttemptID uuid.UUID
	Account   common.Address
	State     GatingState
	Proof     [][32]byte
	Value     *big.Int
	Tx        *types.Transaction
}

// Summary is the collection readout shown above the mint button
type Summary struct {
	Price       *big.Int
	TotalMinted uint64
	MaxSupply   uint64
	Gated       bool
}

type Minter struct {
	caller contractCaller.IContractCaller
	wallet wallet.IWalletConnector
	proofs ProofProvider
	logger *zap.Logger
}

func NewMinter(
	caller contractCaller.IContractCaller,
	walletConnector wallet.IWalletConnector,
	proofs ProofProvider,
	logger *zap.Logger,
) *Minter {
	return &Minter{
		caller: caller,
		wallet: walletConnector,
		proofs: proofs,
		logger: logger,
	}
}

// Mint reads the gating flag and price fresh, then submits either mint or
// whitelistMint for the connected account. In whitelist-only mode an account
// without a proof still submits with an empty one and the contract rejects it.
func (m *Minter) Mint(ctx context.Context, count uint64) (*MintResult, error) {
	if count == 0 {
		return nil, ErrInvalidCount
	}
	account, ok := m.wallet.CurrentAddress()
	if !ok {
		return nil, ErrWalletNotConnected
	}

	attemptID := uuid.New()
	sugar := m.logger.Sugar().With("attemptId", attemptID.String(), "account", account.Hex())

	gated, err := m.caller.IsWhitelistOnly(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read gating flag: %w", err)
	}
	state := GatingStateFromFlag(gated)

	price, err := m.caller.GetPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read mint price: %w", err)
	}
	value := new(big.Int).Mul(price, new(big.Int).SetUint64(count))

	var proof [][32]byte
	if state == Gated {
		var member bool
		proof, member = m.proofs.ProofFor(account)
		if !member {
			sugar.Warnw("Account is not on the whitelist, submitting with an empty proof")
		}
	}
	call := Decide(state, count, proof)

	sugar.Infow("Submitting mint",
		"method", call.Method,
		"count", call.Count,
		"value", value.String(),
		"gating", state.String(),
	)

	var tx *types.Transaction
	switch call.Method {
	case MethodWhitelistMint:
		tx, err = m.caller.WhitelistMint(ctx, call.Count, call.Proof, value)
	default:
		tx, err = m.caller.Mint(ctx, call.Count, value)
	}
	if err != nil {
		sugar.Errorw("Mint failed", "method", call.Method, "error", err)
		return nil, fmt.Errorf("%s failed: %w", call.Method, err)
	}

	sugar.Infow("Mint submitted", "txHash", tx.Hash().Hex())
	return &MintResult{
		AttemptID: attemptID,
		Account:   account,
		State:     state,
		Proof:     call.Proof,
		Value:     value,
		Tx:        tx,
	}, nil
}

// Summary reads price, supply and the gating flag for display
func (m *Minter) Summary(ctx context.Context) (*Summary, error) {
	price, err := m.caller.GetPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read mint price: %w", err)
	}
	total, err := m.caller.GetTotalMinted(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read total minted: %w", err)
	}
	maxSupply, err := m.caller.GetMaxSupply(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read max supply: %w", err)
	}
	gated, err := m.caller.IsWhitelistOnly(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read gating flag: %w", err)
	}
	return &Summary{
		Price:       price,
		TotalMinted: total,
		MaxSupply:   maxSupply,
		Gated:       gated,
	}, nil
}

// WaitForConfirmation blocks until the mint transaction is mined
func (m *Minter) WaitForConfirmation(ctx context.Context, result *MintResult) (*types.Receipt, error) {
	return m.caller.WaitForReceipt(ctx, result.Tx)
}

// StatusForError turns a mint failure into the status line shown to the user
func StatusForError(err error) string {
	switch {
	case err == nil:
		return "✅ Mint submitted."
	case errors.Is(err, ErrWalletNotConnected):
		return wallet.StatusDisconnected
	case errors.Is(err, ErrInvalidCount):
		return "😥 Choose at least one token to mint."
	default:
		return "😥 Something went wrong: " + err.Error()
	}
}

// MintedLine formats the supply readout, e.g. "1234/7000 Minted"
func (s *Summary) MintedLine() string {
	return fmt.Sprintf("%d/%d Minted", s.TotalMinted, s.MaxSupply)
}

// PriceEther formats the per-mint price in ether
func (s *Summary) PriceEther() string {
	f := new(big.Float).Quo(new(big.Float).SetInt(s.Price), big.NewFloat(1e18))
	return f.Text('f', -1)
}

// ProofHex is a convenience for logging the proof of a result
func (r *MintResult) ProofHex() []string {
	return merkle.HexProof(r.Proof)
}
