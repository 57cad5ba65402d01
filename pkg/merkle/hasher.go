package merkle

import (
	"bytes"

	"github.com/wealdtech/go-merkletree/v2/keccak256"
)

// HashType is the hash function used for leaves and internal nodes.
type HashType interface {
	Hash(data ...[]byte) []byte
	HashName() string
}

// DefaultHasher is keccak256, matching Solidity's keccak256 builtin.
func DefaultHasher() HashType {
	return keccak256.New()
}

func hashBytes(h HashType, data ...[]byte) [32]byte {
	var out [32]byte
	copy(out[:], h.Hash(data...))
	return out
}

// hashPair hashes two nodes after ordering them bytewise, so the parent does
// not depend on which side each child came from.
func hashPair(h HashType, a, b [32]byte) [32]byte {
	if bytes.Compare(a[:], b[:]) > 0 {
		a, b = b, a
	}
	return hashBytes(h, a[:], b[:])
}
