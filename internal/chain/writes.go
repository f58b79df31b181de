package chain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/rizwanmoulvi/tloot-social-pooling-platform/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/logger"
)

type poolCreatedLog struct {
	PoolId    *big.Int
	PoolType  uint8
	Creator   common.Address
	EventName string
}

type userJoinedLog struct {
	PoolId      *big.Int
	User        common.Address
	Amount      *big.Int
	TlootMinted *big.Int
}

// CreatePool submits createPool from the operator account, waits for one
// confirmation and returns the id decoded from PoolCreated.
func (c *Client) CreatePool(ctx context.Context, in domain.CreatePoolTx) (int64, *domain.TxResult, error) {
	key, err := c.OperatorKey()
	if err != nil {
		return 0, nil, err
	}

	receipt, res, err := c.transact(ctx, key, c.poolManager, "createPool",
		PoolTypeToChain(in.Type),
		in.EventName,
		ToBaseUnits(in.EntryAmount, USDTDecimals),
		ToBaseUnits(in.TicketPrice, USDTDecimals),
		big.NewInt(int64(in.MaxParticipants)),
		big.NewInt(in.Deadline.Unix()),
	)
	if err != nil {
		return 0, nil, err
	}

	for _, l := range receipt.Logs {
		if l.Address != c.poolManagerAddr {
			continue
		}
		var ev poolCreatedLog
		if err := c.poolManager.UnpackLog(&ev, "PoolCreated", *l); err != nil {
			continue
		}
		return ev.PoolId.Int64(), res, nil
	}

	return 0, res, fmt.Errorf("PoolCreated: %w", domain.ErrEventNotEmitted)
}

// JoinPool joins a pool from the given account. USDT is approved first when
// the current allowance does not cover the entry amount.
func (c *Client) JoinPool(ctx context.Context, key *ecdsa.PrivateKey, poolID int64) (*domain.JoinEvent, error) {
	pool, err := c.GetPool(ctx, poolID)
	if err != nil {
		return nil, fmt.Errorf("get pool: %w", err)
	}
	from := crypto.PubkeyToAddress(key.PublicKey).Hex()

	balance, err := c.USDTBalance(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("usdt balance: %w", err)
	}
	if balance.LessThan(pool.EntryAmount) {
		return nil, fmt.Errorf("%w: insufficient USDT balance, need %s", domain.ErrValidation, pool.EntryAmount.String())
	}

	allowance, err := c.USDTAllowance(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("usdt allowance: %w", err)
	}
	if allowance.LessThan(pool.EntryAmount) {
		c.logger.Info("approving usdt",
			logger.String("owner", from),
			logger.String("amount", pool.EntryAmount.String()),
		)
		if _, _, err = c.transact(ctx, key, c.usdt, "approve",
			c.poolManagerAddr, ToBaseUnits(pool.EntryAmount, USDTDecimals),
		); err != nil {
			return nil, fmt.Errorf("approve usdt: %w", err)
		}
	}

	receipt, res, err := c.transact(ctx, key, c.poolManager, "joinPool", big.NewInt(poolID))
	if err != nil {
		return nil, err
	}

	ev, err := c.decodeJoin(receipt, *res)
	if err != nil {
		return nil, err
	}
	return ev, nil
}

func (c *Client) CompletePayment(ctx context.Context, key *ecdsa.PrivateKey, poolID int64) (*domain.TxResult, error) {
	_, res, err := c.transact(ctx, key, c.poolManager, "completePayment", big.NewInt(poolID))
	return res, err
}

func (c *Client) FinalizePool(ctx context.Context, poolID int64) (*domain.TxResult, error) {
	key, err := c.OperatorKey()
	if err != nil {
		return nil, err
	}
	_, res, err := c.transact(ctx, key, c.poolManager, "finalizePool", big.NewInt(poolID))
	return res, err
}

func (c *Client) TransferUSDT(ctx context.Context, key *ecdsa.PrivateKey, to string, amount decimal.Decimal) (*domain.TxResult, error) {
	if !common.IsHexAddress(to) {
		return nil, fmt.Errorf("%w: invalid recipient %q", domain.ErrValidation, to)
	}
	_, res, err := c.transact(ctx, key, c.usdt, "transfer",
		common.HexToAddress(to), ToBaseUnits(amount, USDTDecimals),
	)
	return res, err
}

func (c *Client) GrantRole(ctx context.Context, role [32]byte, account string) (*domain.TxResult, error) {
	key, err := c.OperatorKey()
	if err != nil {
		return nil, err
	}
	_, res, err := c.transact(ctx, key, c.token, "grantRole", role, common.HexToAddress(account))
	return res, err
}

// TransferNative sends the chain's native coin (MNT on Mantle).
func (c *Client) TransferNative(ctx context.Context, key *ecdsa.PrivateKey, to string, amount decimal.Decimal) (*domain.TxResult, error) {
	if !common.IsHexAddress(to) {
		return nil, fmt.Errorf("%w: invalid recipient %q", domain.ErrValidation, to)
	}
	from := crypto.PubkeyToAddress(key.PublicKey)
	toAddr := common.HexToAddress(to)
	value := ToBaseUnits(amount, TokenDecimals)

	nonce, err := c.eth.PendingNonceAt(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("pending nonce: %w", err)
	}
	gasPrice, err := c.eth.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("suggest gas price: %w", err)
	}
	gas, err := c.eth.EstimateGas(ctx, ethereum.CallMsg{From: from, To: &toAddr, Value: value})
	if err != nil {
		return nil, fmt.Errorf("estimate gas: %w", err)
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &toAddr,
		Value:    value,
		Gas:      gas,
		GasPrice: gasPrice,
	})
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(c.chainID), key)
	if err != nil {
		return nil, fmt.Errorf("sign tx: %w", err)
	}
	if err = c.eth.SendTransaction(ctx, signed); err != nil {
		return nil, fmt.Errorf("send tx: %w", err)
	}

	_, res, err := c.wait(ctx, signed)
	return res, err
}

// JoinFromReceipt loads a confirmed joinPool transaction and decodes its
// UserJoined event. A transaction without a receipt yet is ErrTxPending.
func (c *Client) JoinFromReceipt(ctx context.Context, txHash string) (*domain.JoinEvent, error) {
	hash := common.HexToHash(txHash)
	var receipt *types.Receipt
	err := c.withRetry(ctx, "eth_getTransactionReceipt", func() error {
		var err error
		receipt, err = c.eth.TransactionReceipt(ctx, hash)
		return err
	})
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return nil, fmt.Errorf("%s: %w", txHash, domain.ErrTxPending)
		}
		return nil, err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, domain.ErrTxFailed
	}

	return c.decodeJoin(receipt, c.txResult(receipt))
}

func (c *Client) decodeJoin(receipt *types.Receipt, res domain.TxResult) (*domain.JoinEvent, error) {
	for _, l := range receipt.Logs {
		if l.Address != c.poolManagerAddr {
			continue
		}
		var ev userJoinedLog
		if err := c.poolManager.UnpackLog(&ev, "UserJoined", *l); err != nil {
			continue
		}
		return &domain.JoinEvent{
			PoolID:      ev.PoolId.Int64(),
			User:        ev.User.Hex(),
			Amount:      ToDecimal(ev.Amount, USDTDecimals),
			TlootMinted: ToDecimal(ev.TlootMinted, TokenDecimals),
			Tx:          res,
		}, nil
	}
	return nil, fmt.Errorf("UserJoined: %w", domain.ErrEventNotEmitted)
}

func (c *Client) transact(
	ctx context.Context,
	key *ecdsa.PrivateKey,
	contract *bind.BoundContract,
	method string,
	params ...interface{},
) (*types.Receipt, *domain.TxResult, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(key, c.chainID)
	if err != nil {
		return nil, nil, fmt.Errorf("transactor: %w", err)
	}
	opts.Context = ctx

	tx, err := contract.Transact(opts, method, params...)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", method, err)
	}

	c.logger.Info("transaction submitted",
		logger.String("method", method),
		logger.String("hash", tx.Hash().Hex()),
	)

	return c.wait(ctx, tx)
}

// wait blocks until the transaction is mined or the receipt timeout expires.
func (c *Client) wait(ctx context.Context, tx *types.Transaction) (*types.Receipt, *domain.TxResult, error) {
	waitCtx, cancel := context.WithTimeout(ctx, c.receiptTimeout)
	defer cancel()

	receipt, err := bind.WaitMined(waitCtx, c.eth, tx)
	if err != nil {
		return nil, nil, fmt.Errorf("wait for %s: %w", tx.Hash().Hex(), err)
	}

	res := c.txResult(receipt)
	if receipt.Status != types.ReceiptStatusSuccessful {
		return receipt, &res, fmt.Errorf("%s: %w", res.Hash, domain.ErrTxFailed)
	}
	return receipt, &res, nil
}

func (c *Client) txResult(r *types.Receipt) domain.TxResult {
	hash := strings.ToLower(r.TxHash.Hex())
	res := domain.TxResult{
		Hash:        hash,
		GasUsed:     r.GasUsed,
		ExplorerURL: c.TxURL(hash),
	}
	if r.BlockNumber != nil {
		res.BlockNumber = r.BlockNumber.Uint64()
	}
	return res
}
