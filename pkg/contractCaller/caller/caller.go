package caller

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ascendant-nft/mint-go/pkg/bindings/NFTCollection"
	"github.com/ascendant-nft/mint-go/pkg/config"
	"github.com/ascendant-nft/mint-go/pkg/transactionSigner"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type ContractCallerConfig struct {
	ContractAddress common.Address
	GasLimits       config.GasLimits
	// RPCRateLimit caps read calls per second
	RPCRateLimit float64
}

type ContractCaller struct {
	collection      *NFTCollection.NFTCollection
	contractAddress common.Address
	signer          transactionSigner.ITransactionSigner
	gasLimits       config.GasLimits
	readLimiter     *rate.Limiter
	logger          *zap.Logger
}

// NewContractCaller binds the collection contract. signer may be nil when
// only read calls are needed.
func NewContractCaller(
	backend bind.ContractBackend,
	signer transactionSigner.ITransactionSigner,
	cfg *ContractCallerConfig,
	logger *zap.Logger,
) (*ContractCaller, error) {
	collection, err := NFTCollection.NewNFTCollection(cfg.ContractAddress, backend)
	if err != nil {
		return nil, fmt.Errorf("failed to create collection contract instance: %w", err)
	}

	limit := cfg.RPCRateLimit
	if limit <= 0 {
		limit = config.DefaultRPCRateLimit
	}
	burst := int(limit)
	if burst < 1 {
		burst = 1
	}

	gasLimits := cfg.GasLimits
	if gasLimits.Mint == 0 {
		gasLimits.Mint = config.DefaultMintGasLimit
	}
	if gasLimits.WhitelistMint == 0 {
		gasLimits.WhitelistMint = config.DefaultWhitelistMintGasLimit
	}

	logger.Sugar().Infow("Using collection contract",
		"address", cfg.ContractAddress.Hex(),
		"mintGasLimit", gasLimits.Mint,
		"whitelistMintGasLimit", gasLimits.WhitelistMint,
	)

	return &ContractCaller{
		collection:      collection,
		contractAddress: cfg.ContractAddress,
		signer:          signer,
		gasLimits:       gasLimits,
		readLimiter:     rate.NewLimiter(rate.Limit(limit), burst),
		logger:          logger,
	}, nil
}

func (cc *ContractCaller) callOpts(ctx context.Context) (*bind.CallOpts, error) {
	if err := cc.readLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rpc rate limiter: %w", err)
	}
	return &bind.CallOpts{Context: ctx}, nil
}

func (cc *ContractCaller) IsWhitelistOnly(ctx context.Context) (bool, error) {
	opts, err := cc.callOpts(ctx)
	if err != nil {
		return false, err
	}
	gated, err := cc.collection.OnlyWhitelisted(opts)
	if err != nil {
		return false, fmt.Errorf("failed to read onlyWhitelisted: %w", err)
	}
	return gated, nil
}

func (cc *ContractCaller) GetPrice(ctx context.Context) (*big.Int, error) {
	opts, err := cc.callOpts(ctx)
	if err != nil {
		return nil, err
	}
	price, err := cc.collection.Cost(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to read mint price: %w", err)
	}
	return price, nil
}

func (cc *ContractCaller) GetTotalMinted(ctx context.Context) (uint64, error) {
	opts, err := cc.callOpts(ctx)
	if err != nil {
		return 0, err
	}
	total, err := cc.collection.TotalSupply(opts)
	if err != nil {
		return 0, fmt.Errorf("failed to read total supply: %w", err)
	}
	return total.Uint64(), nil
}

func (cc *ContractCaller) GetMaxSupply(ctx context.Context) (uint64, error) {
	opts, err := cc.callOpts(ctx)
	if err != nil {
		return 0, err
	}
	maxSupply, err := cc.collection.MaxSupply(opts)
	if err != nil {
		return 0, fmt.Errorf("failed to read max supply: %w", err)
	}
	return maxSupply.Uint64(), nil
}
