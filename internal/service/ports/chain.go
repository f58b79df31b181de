package ports

import (
	"context"

	"github.com/rizwanmoulvi/tloot-social-pooling-platform/internal/domain"
	"github.com/shopspring/decimal"
)

type PoolChain interface {
	PoolCount(ctx context.Context) (int64, error)
	GetPool(ctx context.Context, id int64) (*domain.ChainPool, error)
	PoolWinners(ctx context.Context, id int64) ([]string, error)
	HasCompletedPayment(ctx context.Context, id int64, user string) (bool, error)
	CreatePool(ctx context.Context, in domain.CreatePoolTx) (int64, *domain.TxResult, error)
	FinalizePool(ctx context.Context, id int64) (*domain.TxResult, error)
	JoinFromReceipt(ctx context.Context, txHash string) (*domain.JoinEvent, error)
	PoolManagerAddress() string
	OperatorAddress() string
	CanWrite() bool
}

type TokenReader interface {
	TokenBalance(ctx context.Context, address string) (decimal.Decimal, error)
}
