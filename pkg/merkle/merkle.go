package merkle

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

type buildOptions struct {
	preserveOrder bool
	hasher        HashType
}

// Option configures BuildTree.
type Option func(*buildOptions)

// WithPreservedLeafOrder keeps leaves in input order instead of sorting them.
// Roots built this way depend on the order of the address list.
func WithPreservedLeafOrder() Option {
	return func(o *buildOptions) {
		o.preserveOrder = true
	}
}

// WithHasher overrides the default keccak256 hash function.
func WithHasher(h HashType) Option {
	return func(o *buildOptions) {
		o.hasher = h
	}
}

// ParseAddress parses a 0x-prefixed, 40 hex digit address.
func ParseAddress(s string) (common.Address, error) {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "0x") && !strings.HasPrefix(trimmed, "0X") {
		return common.Address{}, fmt.Errorf("%w: %q is missing the 0x prefix", ErrInvalidAddress, s)
	}
	if !common.IsHexAddress(trimmed) {
		return common.Address{}, fmt.Errorf("%w: %q is not a 20 byte hex address", ErrInvalidAddress, s)
	}
	return common.HexToAddress(trimmed), nil
}

// HashAddress returns the leaf for an address: keccak256 over its 20 raw bytes,
// the same value as keccak256(abi.encodePacked(addr)) on chain.
func HashAddress(addr common.Address) [32]byte {
	return hashAddress(DefaultHasher(), addr)
}

func hashAddress(h HashType, addr common.Address) [32]byte {
	return hashBytes(h, addr.Bytes())
}

// BuildTree creates a merkle tree from a list of hex addresses.
//
// Any malformed address fails the whole build. Repeated addresses are dropped,
// keeping the first occurrence. Leaves are sorted ascending unless
// WithPreservedLeafOrder is given. Pairs are hashed in sorted order and an odd
// node at the end of a level is carried up unchanged.
//
// An empty list produces a tree whose root is EmptyRoot.
func BuildTree(addresses []string, opts ...Option) (*MerkleTree, error) {
	o := &buildOptions{hasher: DefaultHasher()}
	for _, opt := range opts {
		opt(o)
	}

	leaves := make([][32]byte, 0, len(addresses))
	seen := make(map[[32]byte]struct{}, len(addresses))
	duplicates := 0
	for i, raw := range addresses {
		addr, err := ParseAddress(raw)
		if err != nil {
			return nil, fmt.Errorf("address list entry %d: %w", i, err)
		}
		leaf := hashAddress(o.hasher, addr)
		if _, ok := seen[leaf]; ok {
			duplicates++
			continue
		}
		seen[leaf] = struct{}{}
		leaves = append(leaves, leaf)
	}

	if !o.preserveOrder {
		sort.Slice(leaves, func(i, j int) bool {
			return bytes.Compare(leaves[i][:], leaves[j][:]) < 0
		})
	}

	index := make(map[[32]byte]int, len(leaves))
	for i, leaf := range leaves {
		index[leaf] = i
	}

	tree := &MerkleTree{
		Leaves:     leaves,
		Root:       EmptyRoot,
		Duplicates: duplicates,
		index:      index,
		hasher:     o.hasher,
	}
	if len(leaves) == 0 {
		return tree, nil
	}

	levels := [][][32]byte{leaves}
	currentLevel := leaves
	for len(currentLevel) > 1 {
		nextLevel := make([][32]byte, 0, (len(currentLevel)+1)/2)
		for i := 0; i < len(currentLevel); i += 2 {
			if i+1 == len(currentLevel) {
				nextLevel = append(nextLevel, currentLevel[i])
				continue
			}
			nextLevel = append(nextLevel, hashPair(o.hasher, currentLevel[i], currentLevel[i+1]))
		}
		levels = append(levels, nextLevel)
		currentLevel = nextLevel
	}

	tree.levels = levels
	tree.Root = currentLevel[0]
	return tree, nil
}

// GenerateProof creates a merkle proof for the leaf at the given index.
func (mt *MerkleTree) GenerateProof(leafIndex int) (*MerkleProof, error) {
	if leafIndex < 0 || leafIndex >= len(mt.Leaves) {
		return nil, fmt.Errorf("leaf index %d out of bounds (tree has %d leaves)", leafIndex, len(mt.Leaves))
	}

	proof := make([][32]byte, 0, len(mt.levels))
	index := leafIndex
	for level := 0; level < len(mt.levels)-1; level++ {
		currentLevel := mt.levels[level]

		siblingIndex := index + 1
		if index%2 == 1 {
			siblingIndex = index - 1
		}
		// last node of an odd level is carried up without a sibling
		if siblingIndex < len(currentLevel) {
			proof = append(proof, currentLevel[siblingIndex])
		}

		index = index / 2
	}

	return &MerkleProof{
		LeafIndex: leafIndex,
		Leaf:      mt.Leaves[leafIndex],
		Proof:     proof,
	}, nil
}

// GetProof looks up the proof for an address. It returns ErrLeafNotFound when
// the address is not one of the tree's leaves.
func (mt *MerkleTree) GetProof(addr common.Address) (*MerkleProof, error) {
	leaf := hashAddress(mt.hasher, addr)
	leafIndex, ok := mt.index[leaf]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLeafNotFound, addr.Hex())
	}
	return mt.GenerateProof(leafIndex)
}

// Contains reports whether the address is one of the tree's leaves.
func (mt *MerkleTree) Contains(addr common.Address) bool {
	_, ok := mt.index[hashAddress(mt.hasher, addr)]
	return ok
}

// VerifyProof recomputes the root from the proof's leaf and siblings and
// compares it with root.
func VerifyProof(proof *MerkleProof, root [32]byte) bool {
	if proof == nil {
		return false
	}
	return verifyLeaf(DefaultHasher(), proof.Leaf, proof.Proof, root)
}

// Verify checks that addr is committed to by root using the given sibling path.
func Verify(root [32]byte, addr common.Address, proof [][32]byte) bool {
	h := DefaultHasher()
	return verifyLeaf(h, hashAddress(h, addr), proof, root)
}

func verifyLeaf(h HashType, leaf [32]byte, proof [][32]byte, root [32]byte) bool {
	current := leaf
	for _, sibling := range proof {
		current = hashPair(h, current, sibling)
	}
	return current == root
}

// HexProof renders a proof as 0x-prefixed hex strings.
func HexProof(proof [][32]byte) []string {
	out := make([]string, len(proof))
	for i, p := range proof {
		out[i] = hexutil.Encode(p[:])
	}
	return out
}
