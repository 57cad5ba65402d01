package main

import (
	"fmt"
	"strings"

	"github.com/ascendant-nft/mint-go/pkg/config"
	"github.com/ascendant-nft/mint-go/pkg/contractCaller/caller"
	"github.com/ascendant-nft/mint-go/pkg/logger"
	"github.com/ascendant-nft/mint-go/pkg/merkle"
	"github.com/ascendant-nft/mint-go/pkg/minter"
	"github.com/ascendant-nft/mint-go/pkg/transactionSigner"
	"github.com/ascendant-nft/mint-go/pkg/wallet"
	"github.com/ascendant-nft/mint-go/pkg/whitelist"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func buildConfig(c *cli.Context) *config.MintClientConfig {
	return &config.MintClientConfig{
		RpcUrl:            c.String(rpcURLFlag.Name),
		ChainID:           config.ChainId(c.Uint(chainIDFlag.Name)),
		ContractAddress:   c.String(contractAddressFlag.Name),
		WhitelistFile:     c.String(whitelistFlag.Name),
		PreserveLeafOrder: c.Bool(preserveLeafOrderFlag.Name),
		PrivateKey:        c.String(privateKeyFlag.Name),
		KeystorePath:      c.String(keystorePathFlag.Name),
		KeystorePassword:  c.String(keystorePasswordFlag.Name),
		GasLimits:         config.DefaultGasLimits(),
		StepperLimits:     config.DefaultStepperLimits(),
		RPCRateLimit:      c.Float64(rpcRateLimitFlag.Name),
		Debug:             c.Bool(verboseFlag.Name),
	}
}

func newLogger(cfg *config.MintClientConfig) (*zap.Logger, error) {
	l, err := logger.NewLogger(&logger.LoggerConfig{Debug: cfg.Debug})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return l, nil
}

func loadWhitelist(cfg *config.MintClientConfig, l *zap.Logger) (*whitelist.Whitelist, error) {
	if cfg.WhitelistFile == "" {
		return nil, fmt.Errorf("--%s is required", whitelistFlag.Name)
	}
	var opts []merkle.Option
	if cfg.PreserveLeafOrder {
		opts = append(opts, merkle.WithPreservedLeafOrder())
	}
	return whitelist.NewFromFile(cfg.WhitelistFile, l, opts...)
}

// chainClients dials the RPC node and binds the collection contract. signer
// may be nil for read-only commands.
type chainClients struct {
	ethClient *ethclient.Client
	caller    *caller.ContractCaller
	signer    transactionSigner.ITransactionSigner
}

func dialChain(c *cli.Context, cfg *config.MintClientConfig, l *zap.Logger, withSigner bool) (*chainClients, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if withSigner {
		if err := cfg.ValidateSigner(); err != nil {
			return nil, fmt.Errorf("invalid signer configuration: %w", err)
		}
	}

	ethClient, err := ethclient.DialContext(c.Context, cfg.RpcUrl)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.RpcUrl, err)
	}

	chainID, err := ethClient.ChainID(c.Context)
	if err != nil {
		ethClient.Close()
		return nil, fmt.Errorf("failed to read chain id: %w", err)
	}
	if chainID.Uint64() != uint64(cfg.ChainID) {
		ethClient.Close()
		return nil, fmt.Errorf("rpc node is on chain %s, expected %d (%s)", chainID, cfg.ChainID, cfg.ChainName)
	}

	var signer transactionSigner.ITransactionSigner
	if withSigner {
		signer, err = transactionSigner.NewTransactionSigner(&transactionSigner.SignerConfig{
			PrivateKey:       cfg.PrivateKey,
			KeystorePath:     cfg.KeystorePath,
			KeystorePassword: cfg.KeystorePassword,
		}, chainID, ethClient, l)
		if err != nil {
			ethClient.Close()
			return nil, fmt.Errorf("failed to create transaction signer: %w", err)
		}
	}

	cc, err := caller.NewContractCaller(ethClient, signer, &caller.ContractCallerConfig{
		ContractAddress: common.HexToAddress(cfg.ContractAddress),
		GasLimits:       cfg.GasLimits,
		RPCRateLimit:    cfg.RPCRateLimit,
	}, l)
	if err != nil {
		ethClient.Close()
		return nil, fmt.Errorf("failed to create contract caller: %w", err)
	}

	return &chainClients{ethClient: ethClient, caller: cc, signer: signer}, nil
}

// rootCommand handles the root subcommand
func rootCommand(c *cli.Context) error {
	cfg := buildConfig(c)
	l, err := newLogger(cfg)
	if err != nil {
		return err
	}

	wl, err := loadWhitelist(cfg, l)
	if err != nil {
		return err
	}

	fmt.Printf("🌳 Merkle root: %s\n", wl.Root().Hex())
	fmt.Printf("  Leaves: %d\n", wl.Size())
	return nil
}

// proofCommand handles the proof subcommand
func proofCommand(c *cli.Context) error {
	cfg := buildConfig(c)
	l, err := newLogger(cfg)
	if err != nil {
		return err
	}

	addr, err := merkle.ParseAddress(c.String("address"))
	if err != nil {
		return err
	}

	wl, err := loadWhitelist(cfg, l)
	if err != nil {
		return err
	}

	proof, ok := wl.ProofFor(addr)
	if !ok {
		fmt.Printf("❌ %s is not whitelisted\n", addr.Hex())
		return nil
	}

	fmt.Printf("✅ Proof for %s (root %s):\n", addr.Hex(), wl.Root().Hex())
	for _, p := range merkle.HexProof(proof) {
		fmt.Printf("  %s\n", p)
	}
	return nil
}

// verifyCommand handles the verify subcommand
func verifyCommand(c *cli.Context) error {
	addr, err := merkle.ParseAddress(c.String("address"))
	if err != nil {
		return err
	}

	root, err := parseHash(c.String("root"))
	if err != nil {
		return fmt.Errorf("invalid root: %w", err)
	}

	var proof [][32]byte
	for _, entry := range c.StringSlice("proof") {
		for _, part := range strings.Split(entry, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			h, err := parseHash(part)
			if err != nil {
				return fmt.Errorf("invalid proof element %q: %w", part, err)
			}
			proof = append(proof, h)
		}
	}

	if merkle.Verify(root, addr, proof) {
		fmt.Printf("✅ Proof is valid for %s\n", addr.Hex())
		return nil
	}
	return fmt.Errorf("proof is not valid for %s against root %s", addr.Hex(), hexutil.Encode(root[:]))
}

// statusCommand handles the status subcommand
func statusCommand(c *cli.Context) error {
	cfg := buildConfig(c)
	l, err := newLogger(cfg)
	if err != nil {
		return err
	}

	clients, err := dialChain(c, cfg, l, false)
	if err != nil {
		return err
	}
	defer clients.ethClient.Close()

	m := minter.NewMinter(clients.caller, wallet.NewConnector(l), nil, l)
	summary, err := m.Summary(c.Context)
	if err != nil {
		return err
	}

	state := minter.GatingStateFromFlag(summary.Gated)
	fmt.Printf("📊 Collection %s on %s\n", cfg.ContractAddress, cfg.ChainName)
	fmt.Printf("  %s\n", summary.MintedLine())
	fmt.Printf("  Price Per Mint: %s ETH\n", summary.PriceEther())
	fmt.Printf("  Minting: %s\n", state)
	return nil
}

// mintCommand handles the mint subcommand
func mintCommand(c *cli.Context) error {
	cfg := buildConfig(c)
	l, err := newLogger(cfg)
	if err != nil {
		return err
	}

	wl, err := loadWhitelist(cfg, l)
	if err != nil {
		return err
	}

	clients, err := dialChain(c, cfg, l, true)
	if err != nil {
		return err
	}
	defer clients.ethClient.Close()

	connector := wallet.NewConnector(l)
	connector.Connect(clients.signer.GetFromAddress())
	fmt.Printf("🦊 Connected: %s\n", wallet.ShortAddress(clients.signer.GetFromAddress()))

	count, err := stepTo(c, clients.caller, cfg.StepperLimits, c.Uint64("count"))
	if err != nil {
		return err
	}
	if count != c.Uint64("count") {
		fmt.Printf("⚠️  Quantity adjusted to %d\n", count)
	}

	m := minter.NewMinter(clients.caller, connector, wl, l)
	result, err := m.Mint(c.Context, count)
	if err != nil {
		fmt.Println(minter.StatusForError(err))
		return err
	}

	fmt.Println(minter.StatusForError(nil))
	fmt.Printf("  Method: %s (%s)\n", methodFor(result.State), result.State)
	fmt.Printf("  Value: %s wei\n", result.Value.String())
	fmt.Printf("  Tx: %s\n", result.Tx.Hash().Hex())

	if !c.Bool("wait") {
		return nil
	}

	receipt, err := m.WaitForConfirmation(c.Context, result)
	if err != nil {
		return fmt.Errorf("mint transaction failed: %w", err)
	}
	fmt.Printf("✅ Mined in block %s\n", receipt.BlockNumber)
	return nil
}

// stepTo walks the quantity stepper up to the requested count so the same
// limits apply as in the interactive flow.
func stepTo(c *cli.Context, gate minter.GateReader, limits config.StepperLimits, requested uint64) (uint64, error) {
	stepper := minter.NewStepper(gate, minter.LimitsFromConfig(limits))
	for stepper.Count() < requested {
		before := stepper.Count()
		after, err := stepper.Increment(c.Context)
		if err != nil {
			return 0, err
		}
		if after <= before {
			break
		}
	}
	for stepper.Count() > requested && stepper.Count() > limits.MinCount {
		stepper.Decrement()
	}
	return stepper.Count(), nil
}

func methodFor(state minter.GatingState) string {
	return minter.Decide(state, 0, nil).Method
}

func parseHash(s string) ([32]byte, error) {
	b, err := hexutil.Decode(strings.TrimSpace(s))
	if err != nil {
		return [32]byte{}, err
	}
	if len(b) != 32 {
		return [32]byte{}, fmt.Errorf("expected 32 bytes, got %d", len(b))
	}
	var out [32]byte
	copy(out[:], b)
	return out, nil
}
