package config

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"k8s.io/apimachinery/pkg/util/validation/field"
)

// Environment variable names for the mint client configuration
const (
	EnvMintRPCURL            = "MINT_RPC_URL"
	EnvMintChainID           = "MINT_CHAIN_ID"
	EnvMintContractAddress   = "MINT_CONTRACT_ADDRESS"
	EnvMintWhitelistFile     = "MINT_WHITELIST_FILE"
	EnvMintPreserveLeafOrder = "MINT_PRESERVE_LEAF_ORDER"
	EnvMintPrivateKey        = "MINT_PRIVATE_KEY"
	EnvMintKeystorePath      = "MINT_KEYSTORE_PATH"
	EnvMintKeystorePassword  = "MINT_KEYSTORE_PASSWORD"
	EnvMintRPCRateLimit      = "MINT_RPC_RATE_LIMIT"
	EnvMintVerbose           = "MINT_VERBOSE"
)

type ChainId uint

const (
	ChainId_EthereumMainnet ChainId = 1
	ChainId_EthereumSepolia ChainId = 11155111
	ChainId_EthereumAnvil   ChainId = 31337
)

type ChainName string

const (
	ChainName_EthereumMainnet ChainName = "mainnet"
	ChainName_EthereumSepolia ChainName = "sepolia"
	ChainName_EthereumAnvil   ChainName = "devnet"
)

var ChainIdToName = map[ChainId]ChainName{
	ChainId_EthereumMainnet: ChainName_EthereumMainnet,
	ChainId_EthereumSepolia: ChainName_EthereumSepolia,
	ChainId_EthereumAnvil:   ChainName_EthereumAnvil,
}
var ChainNameToId = map[ChainName]ChainId{
	ChainName_EthereumMainnet: ChainId_EthereumMainnet,
	ChainName_EthereumSepolia: ChainId_EthereumSepolia,
	ChainName_EthereumAnvil:   ChainId_EthereumAnvil,
}

// Gas limits used for the two mint paths. The whitelist path carries a proof
// and verifies it on chain, so it gets a much larger budget.
const (
	DefaultMintGasLimit          uint64 = 500000
	DefaultWhitelistMintGasLimit uint64 = 3000000
)

// Quantity stepper defaults: up to 4 per public mint, exactly 1 while the
// whitelist gate is on.
const (
	DefaultOpenMaxCount uint64 = 4
	DefaultGatedCount   uint64 = 1
	DefaultMinCount     uint64 = 1
)

// DefaultRPCRateLimit is the number of read calls per second sent to the RPC node
const DefaultRPCRateLimit = 10.0

// GasLimits holds the gas limit for each mint path
type GasLimits struct {
	Mint          uint64 `json:"mint"`
	WhitelistMint uint64 `json:"whitelist_mint"`
}

func DefaultGasLimits() GasLimits {
	return GasLimits{
		Mint:          DefaultMintGasLimit,
		WhitelistMint: DefaultWhitelistMintGasLimit,
	}
}

// StepperLimits bounds the quantity stepper in each gating state
type StepperLimits struct {
	OpenMaxCount uint64 `json:"open_max_count"`
	GatedCount   uint64 `json:"gated_count"`
	MinCount     uint64 `json:"min_count"`
}

func DefaultStepperLimits() StepperLimits {
	return StepperLimits{
		OpenMaxCount: DefaultOpenMaxCount,
		GatedCount:   DefaultGatedCount,
		MinCount:     DefaultMinCount,
	}
}

// MintClientConfig represents the complete configuration for the mint client
type MintClientConfig struct {
	// Chain configuration
	RpcUrl    string    `json:"rpc_url"`
	ChainID   ChainId   `json:"chain_id"`
	ChainName ChainName `json:"chain_name"`

	// Collection contract
	ContractAddress string `json:"contract_address"`

	// Whitelist address list and tree layout
	WhitelistFile     string `json:"whitelist_file"`
	PreserveLeafOrder bool   `json:"preserve_leaf_order"`

	// Signing key, either a raw hex key or an encrypted keystore file
	PrivateKey       string `json:"private_key"`
	KeystorePath     string `json:"keystore_path"`
	KeystorePassword string `json:"keystore_password"`

	GasLimits     GasLimits     `json:"gas_limits"`
	StepperLimits StepperLimits `json:"stepper_limits"`
	RPCRateLimit  float64       `json:"rpc_rate_limit"`

	Debug bool `json:"debug"`
}

// Validate checks the chain and contract settings needed by every command.
func (c *MintClientConfig) Validate() error {
	var allErrors field.ErrorList

	if c.RpcUrl == "" {
		allErrors = append(allErrors, field.Required(field.NewPath("rpcUrl"), "rpc url is required"))
	}

	chainName, exists := ChainIdToName[c.ChainID]
	if !exists {
		allErrors = append(allErrors, field.NotSupported(field.NewPath("chainId"), c.ChainID, supportedChainIDValues()))
	} else {
		c.ChainName = chainName
	}

	if c.ContractAddress == "" {
		allErrors = append(allErrors, field.Required(field.NewPath("contractAddress"), "contract address is required"))
	} else if !common.IsHexAddress(c.ContractAddress) {
		allErrors = append(allErrors, field.Invalid(field.NewPath("contractAddress"), c.ContractAddress, "invalid address format"))
	}

	if c.GasLimits.Mint == 0 {
		allErrors = append(allErrors, field.Invalid(field.NewPath("gasLimits", "mint"), c.GasLimits.Mint, "must be greater than 0"))
	}
	if c.GasLimits.WhitelistMint == 0 {
		allErrors = append(allErrors, field.Invalid(field.NewPath("gasLimits", "whitelistMint"), c.GasLimits.WhitelistMint, "must be greater than 0"))
	}

	allErrors = append(allErrors, c.StepperLimits.validate(field.NewPath("stepperLimits"))...)

	if c.RPCRateLimit <= 0 {
		allErrors = append(allErrors, field.Invalid(field.NewPath("rpcRateLimit"), c.RPCRateLimit, "must be greater than 0"))
	}

	if len(allErrors) > 0 {
		return allErrors.ToAggregate()
	}
	return nil
}

// ValidateSigner checks the signing key settings, required only for commands
// that submit transactions.
func (c *MintClientConfig) ValidateSigner() error {
	var allErrors field.ErrorList

	hasKey := c.PrivateKey != ""
	hasKeystore := c.KeystorePath != ""
	switch {
	case !hasKey && !hasKeystore:
		allErrors = append(allErrors, field.Required(field.NewPath("privateKey"), "a private key or keystore path is required"))
	case hasKey && hasKeystore:
		allErrors = append(allErrors, field.Forbidden(field.NewPath("keystorePath"), "cannot be combined with privateKey"))
	case hasKey:
		key := strings.TrimPrefix(c.PrivateKey, "0x")
		if len(key) != 64 {
			allErrors = append(allErrors, field.Invalid(field.NewPath("privateKey"), "<redacted>",
				fmt.Sprintf("must be 32 bytes (64 hex chars), got %d chars", len(key))))
		}
	}

	if len(allErrors) > 0 {
		return allErrors.ToAggregate()
	}
	return nil
}

func (s StepperLimits) validate(path *field.Path) field.ErrorList {
	var allErrors field.ErrorList
	if s.MinCount == 0 {
		allErrors = append(allErrors, field.Invalid(path.Child("minCount"), s.MinCount, "must be greater than 0"))
	}
	if s.OpenMaxCount < s.MinCount {
		allErrors = append(allErrors, field.Invalid(path.Child("openMaxCount"), s.OpenMaxCount, "must be at least minCount"))
	}
	if s.GatedCount < s.MinCount {
		allErrors = append(allErrors, field.Invalid(path.Child("gatedCount"), s.GatedCount, "must be at least minCount"))
	}
	return allErrors
}

func supportedChainIDValues() []string {
	ids := GetSupportedChainIDs()
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = fmt.Sprintf("%d", id)
	}
	return out
}

// GetSupportedChainIDs returns all supported chain IDs
func GetSupportedChainIDs() []ChainId {
	return []ChainId{
		ChainId_EthereumMainnet,
		ChainId_EthereumSepolia,
		ChainId_EthereumAnvil,
	}
}

// GetSupportedChainIDsString returns supported chain IDs as strings for CLI help
func GetSupportedChainIDsString() string {
	return fmt.Sprintf("%d (mainnet), %d (sepolia), %d (anvil)",
		ChainId_EthereumMainnet, ChainId_EthereumSepolia, ChainId_EthereumAnvil)
}
