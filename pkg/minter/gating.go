package minter

import "fmt"

// GatingState mirrors the collection's onlyWhitelisted flag
type GatingState int

const (
	Open GatingState = iota
	Gated
)

func GatingStateFromFlag(onlyWhitelisted bool) GatingState {
	if onlyWhitelisted {
		return Gated
	}
	return Open
}

func (s GatingState) String() string {
	switch s {
	case Open:
		return "open"
	case Gated:
		return "whitelist-only"
	default:
		return fmt.Sprintf("GatingState(%d)", int(s))
	}
}

const (
	MethodMint          = "mint"
	MethodWhitelistMint = "whitelistMint"
)

// MintCall describes the contract call chosen for a mint attempt. Proof is
// only set for whitelistMint and is never nil there, even when empty.
type MintCall struct {
	Method string
	Count  uint64
	Proof  [][32]byte
}

// Decide picks the contract method for the given gating state. Open mints
// ignore the proof entirely.
func Decide(state GatingState, count uint64, proof [][32]byte) MintCall {
	if state != Gated {
		return MintCall{Method: MethodMint, Count: count}
	}
	if proof == nil {
		proof = [][32]byte{}
	}
	return MintCall{Method: MethodWhitelistMint, Count: count, Proof: proof}
}
