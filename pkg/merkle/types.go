package merkle

import "errors"

var (
	// ErrInvalidAddress is returned when an entry of the address list is not a
	// 0x-prefixed 20 byte hex string.
	ErrInvalidAddress = errors.New("invalid address")

	// ErrLeafNotFound is returned by proof lookups for addresses that are not in
	// the tree. It is an expected outcome for non-whitelisted callers.
	ErrLeafNotFound = errors.New("leaf not found in merkle tree")
)

// EmptyRoot is the root of a tree built from an empty address list.
var EmptyRoot = [32]byte{}

// MerkleTree is a binary keccak256 merkle tree over address leaves.
// Pairs are hashed in sorted order so proofs verify without position bits.
type MerkleTree struct {
	// Leaves contains the deduplicated leaf hashes in tree order
	Leaves [][32]byte

	// Root is the merkle root hash, EmptyRoot when there are no leaves
	Root [32]byte

	// Duplicates is the number of input addresses dropped as repeats
	Duplicates int

	// levels stores all tree levels for proof generation
	// levels[0] = leaves, levels[len-1] = root
	levels [][][32]byte

	// index maps a leaf hash to its position in Leaves
	index map[[32]byte]int

	hasher HashType
}

// MerkleProof represents a proof that a leaf is included in the tree.
type MerkleProof struct {
	// LeafIndex is the index of the leaf in the tree's leaves
	LeafIndex int

	// Leaf is the hash of the leaf being proven
	Leaf [32]byte

	// Proof contains the sibling hashes from leaf to root.
	// Levels where the node was carried up unpaired contribute no entry.
	Proof [][32]byte
}
