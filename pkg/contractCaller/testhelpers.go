package contractCaller

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	ethTypes "github.com/ethereum/go-ethereum/core/types"
)

// MintCallRecord captures one Mint or WhitelistMint call made against the stub
type MintCallRecord struct {
	Method string
	Count  uint64
	Proof  [][32]byte
	Value  *big.Int
}

// MockContractCallerStub provides an in-memory implementation of IContractCaller for testing
type MockContractCallerStub struct {
	mu sync.Mutex

	Gated       bool
	Price       *big.Int
	TotalMinted uint64
	MaxSupply   uint64

	ReadErr error
	MintErr error

	Calls     []MintCallRecord
	FlagReads int
	nonce     uint64
}

// NewMockContractCallerStub returns a stub with the collection's default price and supply
func NewMockContractCallerStub(gated bool) *MockContractCallerStub {
	return &MockContractCallerStub{
		Gated:     gated,
		Price:     big.NewInt(50000000000000000),
		MaxSupply: 7000,
	}
}

func (m *MockContractCallerStub) SetGated(gated bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Gated = gated
}

func (m *MockContractCallerStub) IsWhitelistOnly(ctx context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FlagReads++
	if m.ReadErr != nil {
		return false, m.ReadErr
	}
	return m.Gated, nil
}

func (m *MockContractCallerStub) GetPrice(ctx context.Context) (*big.Int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	return new(big.Int).Set(m.Price), nil
}

func (m *MockContractCallerStub) GetTotalMinted(ctx context.Context) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ReadErr != nil {
		return 0, m.ReadErr
	}
	return m.TotalMinted, nil
}

func (m *MockContractCallerStub) GetMaxSupply(ctx context.Context) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ReadErr != nil {
		return 0, m.ReadErr
	}
	return m.MaxSupply, nil
}

func (m *MockContractCallerStub) Mint(ctx context.Context, count uint64, value *big.Int) (*ethTypes.Transaction, error) {
	return m.record(MintCallRecord{Method: "mint", Count: count, Value: value})
}

func (m *MockContractCallerStub) WhitelistMint(ctx context.Context, count uint64, proof [][32]byte, value *big.Int) (*ethTypes.Transaction, error) {
	return m.record(MintCallRecord{Method: "whitelistMint", Count: count, Proof: proof, Value: value})
}

func (m *MockContractCallerStub) WaitForReceipt(ctx context.Context, tx *ethTypes.Transaction) (*ethTypes.Receipt, error) {
	return &ethTypes.Receipt{Status: ethTypes.ReceiptStatusSuccessful, TxHash: tx.Hash()}, nil
}

func (m *MockContractCallerStub) record(call MintCallRecord) (*ethTypes.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, call)
	if m.MintErr != nil {
		return nil, m.MintErr
	}
	m.nonce++
	to := common.HexToAddress("0xd373FcAb6e5b7B8afD3890A49e99fB58B18c76b6")
	return ethTypes.NewTx(&ethTypes.LegacyTx{
		Nonce: m.nonce,
		To:    &to,
		Value: call.Value,
	}), nil
}

// LastCall returns the most recent mint call, or false if none was made
func (m *MockContractCallerStub) LastCall() (MintCallRecord, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Calls) == 0 {
		return MintCallRecord{}, false
	}
	return m.Calls[len(m.Calls)-1], true
}
