package whitelist

import (
	"fmt"

	"github.com/ascendant-nft/mint-go/pkg/merkle"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// Whitelist holds the merkle tree built from the static address list.
// It is built once at startup and is read-only afterwards, so a single
// instance can be shared by every caller.
type Whitelist struct {
	tree   *merkle.MerkleTree
	logger *zap.Logger
}

// New builds the whitelist tree. Any malformed address fails the build.
func New(addresses []string, logger *zap.Logger, opts ...merkle.Option) (*Whitelist, error) {
	tree, err := merkle.BuildTree(addresses, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build whitelist tree: %w", err)
	}

	logger.Sugar().Infow("Built whitelist merkle tree",
		"addresses", len(addresses),
		"leaves", len(tree.Leaves),
		"duplicates", tree.Duplicates,
		"root", common.Hash(tree.Root).Hex(),
	)
	if tree.Duplicates > 0 {
		logger.Sugar().Warnw("Address list contains duplicates, extra entries were dropped",
			"duplicates", tree.Duplicates,
		)
	}

	return &Whitelist{
		tree:   tree,
		logger: logger,
	}, nil
}

// NewFromFile loads the address list at path and builds the whitelist tree.
func NewFromFile(path string, logger *zap.Logger, opts ...merkle.Option) (*Whitelist, error) {
	addresses, err := LoadAddresses(path)
	if err != nil {
		return nil, err
	}
	return New(addresses, logger, opts...)
}

func (w *Whitelist) Root() common.Hash {
	return common.Hash(w.tree.Root)
}

func (w *Whitelist) Size() int {
	return len(w.tree.Leaves)
}

func (w *Whitelist) Contains(addr common.Address) bool {
	return w.tree.Contains(addr)
}

// ProofFor returns the inclusion proof for addr. Addresses outside the
// whitelist get an empty proof and false; the contract is left to reject them.
func (w *Whitelist) ProofFor(addr common.Address) ([][32]byte, bool) {
	proof, err := w.tree.GetProof(addr)
	if err != nil {
		w.logger.Sugar().Debugw("No whitelist proof for address", "address", addr.Hex(), "error", err)
		return [][32]byte{}, false
	}
	return proof.Proof, true
}

// Verify checks a proof for addr against this whitelist's root.
func (w *Whitelist) Verify(addr common.Address, proof [][32]byte) bool {
	return merkle.Verify(w.tree.Root, addr, proof)
}
