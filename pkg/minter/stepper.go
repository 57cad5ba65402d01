package minter

import (
	"context"
	"fmt"
	"sync"

	"github.com/ascendant-nft/mint-go/pkg/config"
)

// Limits bounds the mint quantity. Open mints step between MinCount and
// OpenMaxCount; a whitelist-only collection pins the count to GatedCount.
type Limits struct {
	OpenMaxCount uint64
	GatedCount   uint64
	MinCount     uint64
}

func DefaultLimits() Limits {
	return LimitsFromConfig(config.DefaultStepperLimits())
}

func LimitsFromConfig(c config.StepperLimits) Limits {
	return Limits{
		OpenMaxCount: c.OpenMaxCount,
		GatedCount:   c.GatedCount,
		MinCount:     c.MinCount,
	}
}

// GateReader is the part of the contract gateway the stepper needs
type GateReader interface {
	IsWhitelistOnly(ctx context.Context) (bool, error)
}

// Stepper is the quantity selector shown next to the mint button
type Stepper struct {
	mu     sync.Mutex
	count  uint64
	limits Limits
	gate   GateReader
}

func NewStepper(gate GateReader, limits Limits) *Stepper {
	return &Stepper{
		count:  limits.MinCount,
		limits: limits,
		gate:   gate,
	}
}

// Increment re-reads the gating flag before stepping. While the collection is
// whitelist-only the count is reset to GatedCount instead of growing.
func (s *Stepper) Increment(ctx context.Context) (uint64, error) {
	gated, err := s.gate.IsWhitelistOnly(ctx)
	if err != nil {
		return s.Count(), fmt.Errorf("failed to read gating flag: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if GatingStateFromFlag(gated) == Gated {
		s.count = s.limits.GatedCount
	} else if s.count < s.limits.OpenMaxCount {
		s.count++
	}
	return s.count, nil
}

func (s *Stepper) Decrement() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.count > s.limits.MinCount {
		s.count--
	}
	return s.count
}

func (s *Stepper) Count() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}
