package chain

import (
	"context"
	"crypto/ecdsa"
	_ "embed"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rizwanmoulvi/tloot-social-pooling-platform/internal/config"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

const (
	// USDTDecimals is the precision of pool amounts (entry, ticket price, pooled).
	USDTDecimals int32 = 6
	// TokenDecimals is the precision of TLOOT and of the native coin.
	TokenDecimals int32 = 18
)

var (
	//go:embed abi/pool_manager.json
	poolManagerABIJSON string
	//go:embed abi/token.json
	tokenABIJSON string
)

type Options struct {
	RPCURL             string
	ChainID            int64
	ExplorerURL        string
	PoolManagerAddress string
	TokenAddress       string
	USDTAddress        string
	OperatorKey        string
	ReceiptTimeout     time.Duration
	Retry              retry.Strategy
}

func OptionsFromConfig(cfg config.ChainConfig) Options {
	return Options{
		RPCURL:             cfg.RPCURL,
		ChainID:            cfg.ChainID,
		ExplorerURL:        cfg.ExplorerURL,
		PoolManagerAddress: cfg.PoolManagerAddress,
		TokenAddress:       cfg.TokenAddress,
		USDTAddress:        cfg.USDTAddress,
		OperatorKey:        cfg.OperatorKey,
		ReceiptTimeout:     cfg.ReceiptTimeout,
		Retry: retry.Strategy{
			Attempts: cfg.RetryAttempts,
			Delay:    cfg.RetryDelay,
			Backoff:  2,
		},
	}
}

// Client wraps a JSON-RPC connection and the three external contracts the
// platform talks to: the pool manager, the TLOOT token and the USDT token.
type Client struct {
	eth      *ethclient.Client
	chainID  *big.Int
	explorer string

	poolManagerABI abi.ABI
	tokenABI       abi.ABI

	poolManagerAddr common.Address
	tokenAddr       common.Address
	usdtAddr        common.Address

	poolManager *bind.BoundContract
	token       *bind.BoundContract
	usdt        *bind.BoundContract

	operator       *ecdsa.PrivateKey
	receiptTimeout time.Duration
	strategy       retry.Strategy
	logger         logger.Logger
}

func New(ctx context.Context, opts Options, log logger.Logger) (*Client, error) {
	for name, addr := range map[string]string{
		"pool manager": opts.PoolManagerAddress,
		"token":        opts.TokenAddress,
		"usdt":         opts.USDTAddress,
	} {
		if !common.IsHexAddress(addr) {
			return nil, fmt.Errorf("invalid %s address %q", name, addr)
		}
	}

	eth, err := ethclient.DialContext(ctx, opts.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("dial rpc: %w", err)
	}

	c, err := newClient(eth, opts, log)
	if err != nil {
		eth.Close()
		return nil, err
	}
	return c, nil
}

func newClient(eth *ethclient.Client, opts Options, log logger.Logger) (*Client, error) {
	pmABI, err := abi.JSON(strings.NewReader(poolManagerABIJSON))
	if err != nil {
		return nil, fmt.Errorf("parse pool manager abi: %w", err)
	}
	tokABI, err := abi.JSON(strings.NewReader(tokenABIJSON))
	if err != nil {
		return nil, fmt.Errorf("parse token abi: %w", err)
	}

	strategy := opts.Retry
	if strategy.Attempts < 1 {
		strategy.Attempts = 1
	}

	receiptTimeout := opts.ReceiptTimeout
	if receiptTimeout <= 0 {
		receiptTimeout = time.Minute
	}

	c := &Client{
		eth:             eth,
		chainID:         big.NewInt(opts.ChainID),
		explorer:        strings.TrimRight(opts.ExplorerURL, "/"),
		poolManagerABI:  pmABI,
		tokenABI:        tokABI,
		poolManagerAddr: common.HexToAddress(opts.PoolManagerAddress),
		tokenAddr:       common.HexToAddress(opts.TokenAddress),
		usdtAddr:        common.HexToAddress(opts.USDTAddress),
		receiptTimeout:  receiptTimeout,
		strategy:        strategy,
		logger:          log,
	}
	c.poolManager = bind.NewBoundContract(c.poolManagerAddr, pmABI, eth, eth, eth)
	c.token = bind.NewBoundContract(c.tokenAddr, tokABI, eth, eth, eth)
	c.usdt = bind.NewBoundContract(c.usdtAddr, tokABI, eth, eth, eth)

	if opts.OperatorKey != "" {
		key, err := ParseKey(opts.OperatorKey)
		if err != nil {
			return nil, fmt.Errorf("operator key: %w", err)
		}
		c.operator = key
	}

	return c, nil
}

func (c *Client) Close() {
	c.eth.Close()
}

// CanWrite reports whether an operator key is configured.
func (c *Client) CanWrite() bool {
	return c.operator != nil
}

func (c *Client) PoolManagerAddress() string {
	return c.poolManagerAddr.Hex()
}

// OperatorAddress returns the operator account, or an empty string in read-only mode.
func (c *Client) OperatorAddress() string {
	if c.operator == nil {
		return ""
	}
	return crypto.PubkeyToAddress(c.operator.PublicKey).Hex()
}

func (c *Client) OperatorKey() (*ecdsa.PrivateKey, error) {
	if c.operator == nil {
		return nil, ErrNoOperator
	}
	return c.operator, nil
}

func (c *Client) TxURL(hash string) string {
	if c.explorer == "" {
		return ""
	}
	return c.explorer + "/tx/" + hash
}

// ParseKey accepts a hex private key with or without the 0x prefix.
func ParseKey(hexKey string) (*ecdsa.PrivateKey, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}
	return key, nil
}

// withRetry runs a read call under the client's retry strategy.
func (c *Client) withRetry(ctx context.Context, op string, fn func() error) error {
	attempt := 0
	err := retry.DoContext(ctx, c.strategy, func() error {
		attempt++
		err := fn()
		if err != nil {
			c.logger.Debug("rpc call failed",
				logger.String("op", op),
				logger.Int("attempt", attempt),
				logger.String("error", err.Error()),
			)
		}
		return err
	})
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return fmt.Errorf("%s: %w", op, err)
}

func (c *Client) call(ctx context.Context, contract *bind.BoundContract, method string, params ...interface{}) ([]interface{}, error) {
	var out []interface{}
	err := c.withRetry(ctx, method, func() error {
		out = nil
		return contract.Call(&bind.CallOpts{Context: ctx}, &out, method, params...)
	})
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: empty result", method)
	}
	return out, nil
}
