package wallet

import (
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"
	"go.uber.org/zap"
)

const (
	StatusConnected    = "👆🏽 Ready to mint. Pick a quantity and press mint."
	StatusDisconnected = "🦊 Connect to Metamask using the top right button."
)

// AccountChange is published whenever the connected account changes. Address
// is the zero address and Connected is false after a disconnect.
type AccountChange struct {
	Address   common.Address
	Connected bool
}

// IWalletConnector exposes the currently selected account and a stream of
// account changes.
type IWalletConnector interface {
	CurrentAddress() (common.Address, bool)
	SubscribeAccountChanges(ch chan<- AccountChange) event.Subscription
}

// Connector holds the active account in process. Connect and Disconnect play
// the role of the wallet's accountsChanged notifications.
type Connector struct {
	mu        sync.RWMutex
	address   common.Address
	connected bool

	feed   event.Feed
	logger *zap.Logger
}

var _ IWalletConnector = (*Connector)(nil)

func NewConnector(logger *zap.Logger) *Connector {
	return &Connector{logger: logger}
}

// Connect selects addr as the active account and notifies subscribers.
// Reconnecting the same account is a no-op.
func (c *Connector) Connect(addr common.Address) {
	c.mu.Lock()
	if c.connected && c.address == addr {
		c.mu.Unlock()
		return
	}
	c.address = addr
	c.connected = true
	c.mu.Unlock()

	c.logger.Sugar().Infow("Wallet connected", "address", addr.Hex())
	c.feed.Send(AccountChange{Address: addr, Connected: true})
}

func (c *Connector) Disconnect() {
	c.mu.Lock()
	if !c.connected {
		c.mu.Unlock()
		return
	}
	c.address = common.Address{}
	c.connected = false
	c.mu.Unlock()

	c.logger.Sugar().Infow("Wallet disconnected")
	c.feed.Send(AccountChange{})
}

func (c *Connector) CurrentAddress() (common.Address, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.address, c.connected
}

// SubscribeAccountChanges registers ch for account change notifications.
// Sends block until every subscriber has received the change, so ch should
// be buffered or drained promptly.
func (c *Connector) SubscribeAccountChanges(ch chan<- AccountChange) event.Subscription {
	return c.feed.Subscribe(ch)
}

// Status returns the user facing status line for the current connection state
func (c *Connector) Status() string {
	if _, ok := c.CurrentAddress(); ok {
		return StatusConnected
	}
	return StatusDisconnected
}

// ShortAddress renders the first six characters of an address, e.g. "0xd373"
func ShortAddress(addr common.Address) string {
	return addr.Hex()[:6]
}
