package main

import (
	"log"
	"os"

	"github.com/ascendant-nft/mint-go/pkg/config"
	"github.com/urfave/cli/v2"
)

var (
	rpcURLFlag = &cli.StringFlag{
		Name:    "rpc-url",
		Usage:   "Ethereum RPC URL",
		Value:   "http://localhost:8545",
		EnvVars: []string{config.EnvMintRPCURL},
	}
	chainIDFlag = &cli.UintFlag{
		Name:    "chain-id",
		Usage:   "Chain ID: " + config.GetSupportedChainIDsString(),
		Value:   uint(config.ChainId_EthereumAnvil),
		EnvVars: []string{config.EnvMintChainID},
	}
	contractAddressFlag = &cli.StringFlag{
		Name:    "contract-address",
		Usage:   "NFT collection contract address",
		EnvVars: []string{config.EnvMintContractAddress},
	}
	whitelistFlag = &cli.StringFlag{
		Name:    "whitelist",
		Usage:   "Path to the whitelist address list (.json array or one address per line)",
		EnvVars: []string{config.EnvMintWhitelistFile},
	}
	preserveLeafOrderFlag = &cli.BoolFlag{
		Name:    "preserve-leaf-order",
		Usage:   "Build the tree in file order instead of sorting leaves",
		EnvVars: []string{config.EnvMintPreserveLeafOrder},
	}
	privateKeyFlag = &cli.StringFlag{
		Name:    "private-key",
		Usage:   "Hex private key used to sign mint transactions",
		EnvVars: []string{config.EnvMintPrivateKey},
	}
	keystorePathFlag = &cli.StringFlag{
		Name:    "keystore-path",
		Usage:   "Encrypted keystore file used to sign mint transactions",
		EnvVars: []string{config.EnvMintKeystorePath},
	}
	keystorePasswordFlag = &cli.StringFlag{
		Name:    "keystore-password",
		Usage:   "Passphrase for the keystore file",
		EnvVars: []string{config.EnvMintKeystorePassword},
	}
	rpcRateLimitFlag = &cli.Float64Flag{
		Name:    "rpc-rate-limit",
		Usage:   "Maximum contract reads per second",
		Value:   config.DefaultRPCRateLimit,
		EnvVars: []string{config.EnvMintRPCRateLimit},
	}
	verboseFlag = &cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "Enable debug logging",
		EnvVars: []string{config.EnvMintVerbose},
	}
)

func main() {
	app := &cli.App{
		Name:  "mint-client",
		Usage: "Mint from an NFT collection with optional merkle whitelist gating",
		Description: `A client for minting from a collection contract that can restrict minting to a merkle whitelist.

This client can:
- Build the whitelist merkle tree and print its root
- Print or verify the merkle proof for an address
- Show the collection price, supply and gating state
- Submit mint or whitelistMint transactions depending on the gating state`,
		Version: "1.0.0",
		Flags: []cli.Flag{
			rpcURLFlag,
			chainIDFlag,
			contractAddressFlag,
			whitelistFlag,
			preserveLeafOrderFlag,
			rpcRateLimitFlag,
			verboseFlag,
		},
		Commands: []*cli.Command{
			{
				Name:   "root",
				Usage:  "Build the whitelist merkle tree and print its root",
				Action: rootCommand,
			},
			{
				Name:  "proof",
				Usage: "Print the merkle proof for an address",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "address",
						Usage:    "Address to look up",
						Required: true,
					},
				},
				Action: proofCommand,
			},
			{
				Name:  "verify",
				Usage: "Verify a merkle proof offline",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "address",
						Usage:    "Address the proof is for",
						Required: true,
					},
					&cli.StringSliceFlag{
						Name:  "proof",
						Usage: "Proof element as 0x-prefixed 32 byte hex (repeat or comma separate)",
					},
					&cli.StringFlag{
						Name:     "root",
						Usage:    "Merkle root as 0x-prefixed 32 byte hex",
						Required: true,
					},
				},
				Action: verifyCommand,
			},
			{
				Name:   "status",
				Usage:  "Show price, minted supply and gating state",
				Action: statusCommand,
			},
			{
				Name:  "mint",
				Usage: "Mint tokens, using the whitelist proof when the collection is gated",
				Flags: []cli.Flag{
					&cli.Uint64Flag{
						Name:  "count",
						Usage: "Number of tokens to mint",
						Value: config.DefaultMinCount,
					},
					&cli.BoolFlag{
						Name:  "wait",
						Usage: "Wait for the transaction to be mined",
					},
					privateKeyFlag,
					keystorePathFlag,
					keystorePasswordFlag,
				},
				Action: mintCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
