package chain

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/rizwanmoulvi/tloot-social-pooling-platform/internal/domain"
	"github.com/shopspring/decimal"
)

var ErrNoOperator = domain.ErrReadOnly

// poolRecord matches the getPool tuple; field names follow abi.ToCamelCase.
type poolRecord struct {
	Id              *big.Int
	PoolType        uint8
	Status          uint8
	Creator         common.Address
	EventName       string
	EntryAmount     *big.Int
	TicketPrice     *big.Int
	MaxParticipants *big.Int
	Deadline        *big.Int
	TotalPooled     *big.Int
	Winner          common.Address
	Participants    []common.Address
}

func (r *poolRecord) toDomain() *domain.ChainPool {
	p := &domain.ChainPool{
		ID:              r.Id.Int64(),
		Type:            PoolTypeFromChain(r.PoolType),
		Status:          PoolStatusFromChain(r.Status),
		Creator:         r.Creator.Hex(),
		EventName:       r.EventName,
		EntryAmount:     ToDecimal(r.EntryAmount, USDTDecimals),
		TicketPrice:     ToDecimal(r.TicketPrice, USDTDecimals),
		MaxParticipants: int(r.MaxParticipants.Int64()),
		Deadline:        time.Unix(r.Deadline.Int64(), 0).UTC(),
		TotalPooled:     ToDecimal(r.TotalPooled, USDTDecimals),
		Participants:    make([]string, 0, len(r.Participants)),
	}
	if r.Winner != (common.Address{}) {
		p.Winner = r.Winner.Hex()
	}
	for _, a := range r.Participants {
		p.Participants = append(p.Participants, a.Hex())
	}
	return p
}

func PoolTypeFromChain(v uint8) domain.PoolType {
	if v == 0 {
		return domain.PoolTypeLuckyDraw
	}
	return domain.PoolTypeCommitToClaim
}

func PoolTypeToChain(t domain.PoolType) uint8 {
	if t == domain.PoolTypeCommitToClaim {
		return 1
	}
	return 0
}

func PoolStatusFromChain(v uint8) domain.PoolStatus {
	switch v {
	case 0:
		return domain.PoolStatusActive
	case 1:
		return domain.PoolStatusCompleted
	default:
		return domain.PoolStatusCancelled
	}
}

// ToDecimal converts base units into a decimal amount.
func ToDecimal(v *big.Int, decimals int32) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(v, -decimals)
}

// ToBaseUnits converts a decimal amount into base units, truncating extra precision.
func ToBaseUnits(d decimal.Decimal, decimals int32) *big.Int {
	return d.Shift(decimals).BigInt()
}

func (c *Client) PoolCount(ctx context.Context) (int64, error) {
	out, err := c.call(ctx, c.poolManager, "poolCount")
	if err != nil {
		return 0, err
	}
	n := *abi.ConvertType(out[0], new(*big.Int)).(**big.Int)
	return n.Int64(), nil
}

func (c *Client) GetPool(ctx context.Context, id int64) (*domain.ChainPool, error) {
	out, err := c.call(ctx, c.poolManager, "getPool", big.NewInt(id))
	if err != nil {
		return nil, err
	}
	rec := abi.ConvertType(out[0], new(poolRecord)).(*poolRecord)
	if rec.Id == nil || rec.Id.Sign() == 0 {
		return nil, fmt.Errorf("pool %d: %w", id, domain.ErrPoolNotFound)
	}
	return rec.toDomain(), nil
}

// PoolWinners reads getPoolWinners and falls back to the single winner field
// for managers that do not expose it.
func (c *Client) PoolWinners(ctx context.Context, id int64) ([]string, error) {
	var out []interface{}
	err := c.poolManager.Call(&bind.CallOpts{Context: ctx}, &out, "getPoolWinners", big.NewInt(id))
	if err == nil && len(out) > 0 {
		return hexAddresses(*abi.ConvertType(out[0], new([]common.Address)).(*[]common.Address)), nil
	}

	p, perr := c.GetPool(ctx, id)
	if perr != nil {
		return nil, perr
	}
	if p.Winner == "" {
		return []string{}, nil
	}
	return []string{p.Winner}, nil
}

func (c *Client) HasJoined(ctx context.Context, id int64, user string) (bool, error) {
	return c.boolCall(ctx, c.poolManager, "hasJoined", big.NewInt(id), common.HexToAddress(user))
}

func (c *Client) HasCompletedPayment(ctx context.Context, id int64, user string) (bool, error) {
	return c.boolCall(ctx, c.poolManager, "hasCompletedPayment", big.NewInt(id), common.HexToAddress(user))
}

// TokenBalance returns the TLOOT balance of an account.
func (c *Client) TokenBalance(ctx context.Context, address string) (decimal.Decimal, error) {
	v, err := c.bigCall(ctx, c.token, "balanceOf", common.HexToAddress(address))
	if err != nil {
		return decimal.Zero, err
	}
	return ToDecimal(v, TokenDecimals), nil
}

func (c *Client) USDTBalance(ctx context.Context, address string) (decimal.Decimal, error) {
	v, err := c.bigCall(ctx, c.usdt, "balanceOf", common.HexToAddress(address))
	if err != nil {
		return decimal.Zero, err
	}
	return ToDecimal(v, USDTDecimals), nil
}

// USDTAllowance returns how much the pool manager may pull from owner.
func (c *Client) USDTAllowance(ctx context.Context, owner string) (decimal.Decimal, error) {
	v, err := c.bigCall(ctx, c.usdt, "allowance", common.HexToAddress(owner), c.poolManagerAddr)
	if err != nil {
		return decimal.Zero, err
	}
	return ToDecimal(v, USDTDecimals), nil
}

func (c *Client) NativeBalance(ctx context.Context, address string) (decimal.Decimal, error) {
	var bal *big.Int
	err := c.withRetry(ctx, "eth_getBalance", func() error {
		var err error
		bal, err = c.eth.BalanceAt(ctx, common.HexToAddress(address), nil)
		return err
	})
	if err != nil {
		return decimal.Zero, err
	}
	return ToDecimal(bal, TokenDecimals), nil
}

func (c *Client) TokenInfo(ctx context.Context) (*domain.TokenInfo, error) {
	name, err := c.stringCall(ctx, c.token, "name")
	if err != nil {
		return nil, err
	}
	symbol, err := c.stringCall(ctx, c.token, "symbol")
	if err != nil {
		return nil, err
	}
	supply, err := c.bigCall(ctx, c.token, "totalSupply")
	if err != nil {
		return nil, err
	}
	return &domain.TokenInfo{
		Name:        name,
		Symbol:      symbol,
		TotalSupply: ToDecimal(supply, TokenDecimals),
	}, nil
}

// RoleID reads a role constant such as ADMIN_ROLE or MINTER_ROLE from the token.
func (c *Client) RoleID(ctx context.Context, name string) ([32]byte, error) {
	out, err := c.call(ctx, c.token, name)
	if err != nil {
		return [32]byte{}, err
	}
	return *abi.ConvertType(out[0], new([32]byte)).(*[32]byte), nil
}

func (c *Client) HasRole(ctx context.Context, role [32]byte, account string) (bool, error) {
	return c.boolCall(ctx, c.token, "hasRole", role, common.HexToAddress(account))
}

func (c *Client) boolCall(ctx context.Context, contract *bind.BoundContract, method string, params ...interface{}) (bool, error) {
	out, err := c.call(ctx, contract, method, params...)
	if err != nil {
		return false, err
	}
	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

func (c *Client) bigCall(ctx context.Context, contract *bind.BoundContract, method string, params ...interface{}) (*big.Int, error) {
	out, err := c.call(ctx, contract, method, params...)
	if err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

func (c *Client) stringCall(ctx context.Context, contract *bind.BoundContract, method string, params ...interface{}) (string, error) {
	out, err := c.call(ctx, contract, method, params...)
	if err != nil {
		return "", err
	}
	return *abi.ConvertType(out[0], new(string)).(*string), nil
}

func hexAddresses(in []common.Address) []string {
	res := make([]string, 0, len(in))
	for _, a := range in {
		res = append(res, a.Hex())
	}
	return res
}
