// Package ops holds the operator workflows behind poolctl. Every workflow is a
// sequence of call-and-wait steps that prints its progress.
package ops

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/rizwanmoulvi/tloot-social-pooling-platform/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/logger"
)

// Roles that CheckRoles reports on the TLOOT token.
var Roles = []string{"DEFAULT_ADMIN_ROLE", "ADMIN_ROLE", "MINTER_ROLE"}

type Chain interface {
	PoolCount(ctx context.Context) (int64, error)
	GetPool(ctx context.Context, id int64) (*domain.ChainPool, error)
	PoolWinners(ctx context.Context, id int64) ([]string, error)
	HasJoined(ctx context.Context, id int64, user string) (bool, error)
	TokenBalance(ctx context.Context, address string) (decimal.Decimal, error)
	USDTBalance(ctx context.Context, address string) (decimal.Decimal, error)
	NativeBalance(ctx context.Context, address string) (decimal.Decimal, error)
	TokenInfo(ctx context.Context) (*domain.TokenInfo, error)
	RoleID(ctx context.Context, name string) ([32]byte, error)
	HasRole(ctx context.Context, role [32]byte, account string) (bool, error)
	GrantRole(ctx context.Context, role [32]byte, account string) (*domain.TxResult, error)
	CreatePool(ctx context.Context, in domain.CreatePoolTx) (int64, *domain.TxResult, error)
	JoinPool(ctx context.Context, key *ecdsa.PrivateKey, poolID int64) (*domain.JoinEvent, error)
	FinalizePool(ctx context.Context, id int64) (*domain.TxResult, error)
	CompletePayment(ctx context.Context, key *ecdsa.PrivateKey, poolID int64) (*domain.TxResult, error)
	TransferNative(ctx context.Context, key *ecdsa.PrivateKey, to string, amount decimal.Decimal) (*domain.TxResult, error)
	TransferUSDT(ctx context.Context, key *ecdsa.PrivateKey, to string, amount decimal.Decimal) (*domain.TxResult, error)
	OperatorKey() (*ecdsa.PrivateKey, error)
	OperatorAddress() string
}

type Runner struct {
	chain  Chain
	out    io.Writer
	pace   time.Duration
	logger logger.Logger
}

// NewRunner builds a Runner. pace is the pause between wallets in bulk
// workflows; the public RPC rate-limits bursts of transactions.
func NewRunner(chain Chain, out io.Writer, pace time.Duration, logger logger.Logger) *Runner {
	return &Runner{
		chain:  chain,
		out:    out,
		pace:   pace,
		logger: logger,
	}
}

// Wallet is a freshly generated account.
type Wallet struct {
	Address    string
	PrivateKey string
	key        *ecdsa.PrivateKey
}

func NewWallet() (*Wallet, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}
	return &Wallet{
		Address:    crypto.PubkeyToAddress(key.PublicKey).Hex(),
		PrivateKey: fmt.Sprintf("0x%x", crypto.FromECDSA(key)),
		key:        key,
	}, nil
}

func (r *Runner) Balance(ctx context.Context, address string) error {
	if !domain.IsAddress(address) {
		return fmt.Errorf("%w: invalid address %q", domain.ErrValidation, address)
	}

	tloot, err := r.chain.TokenBalance(ctx, address)
	if err != nil {
		return fmt.Errorf("tloot balance: %w", err)
	}
	usdt, err := r.chain.USDTBalance(ctx, address)
	if err != nil {
		return fmt.Errorf("usdt balance: %w", err)
	}
	native, err := r.chain.NativeBalance(ctx, address)
	if err != nil {
		return fmt.Errorf("native balance: %w", err)
	}

	r.printf("Address: %s\n", address)
	r.printf("  TLOOT: %s\n", tloot.String())
	r.printf("  USDT:  %s\n", usdt.String())
	r.printf("  MNT:   %s\n", native.String())
	return nil
}

// Transfer sends native coin from the operator account.
func (r *Runner) Transfer(ctx context.Context, to string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	key, err := r.chain.OperatorKey()
	if err != nil {
		return err
	}

	r.printf("Sending %s MNT from %s to %s\n", amount.String(), r.chain.OperatorAddress(), to)
	tx, err := r.chain.TransferNative(ctx, key, to, amount)
	if err != nil {
		return fmt.Errorf("transfer: %w", err)
	}
	r.printTx(tx)
	return nil
}

func (r *Runner) ShowPool(ctx context.Context, id int64) error {
	p, err := r.chain.GetPool(ctx, id)
	if err != nil {
		return err
	}

	r.printf("Pool #%d %q\n", p.ID, p.EventName)
	r.printf("  type:         %s\n", p.Type)
	r.printf("  status:       %s\n", p.Status)
	r.printf("  creator:      %s\n", p.Creator)
	r.printf("  entry:        %s USDT\n", p.EntryAmount.String())
	r.printf("  ticket price: %s USDT\n", p.TicketPrice.String())
	r.printf("  pooled:       %s USDT\n", p.TotalPooled.String())
	r.printf("  participants: %d/%d\n", len(p.Participants), p.MaxParticipants)
	r.printf("  deadline:     %s\n", p.Deadline.Format(time.RFC3339))
	if p.Winner != "" {
		r.printf("  winner:       %s\n", p.Winner)
	}
	return nil
}

// ListPools prints every pool; unreadable pools are reported and skipped.
func (r *Runner) ListPools(ctx context.Context) error {
	count, err := r.chain.PoolCount(ctx)
	if err != nil {
		return fmt.Errorf("pool count: %w", err)
	}
	r.printf("Total pools: %d\n", count)

	for id := int64(1); id <= count; id++ {
		p, err := r.chain.GetPool(ctx, id)
		if err != nil {
			r.logger.Warn("skipping pool",
				logger.Int64("pool_id", id),
				logger.String("error", err.Error()),
			)
			continue
		}
		r.printf("#%-4d %-16s %-10s %3d/%-3d %s\n",
			p.ID, p.Type, p.Status, len(p.Participants), p.MaxParticipants, p.EventName)
	}
	return nil
}

func (r *Runner) CreatePool(ctx context.Context, in domain.CreatePoolTx) error {
	if strings.TrimSpace(in.EventName) == "" {
		return fmt.Errorf("%w: event name is required", domain.ErrValidation)
	}
	if !in.EntryAmount.IsPositive() || !in.TicketPrice.IsPositive() {
		return fmt.Errorf("%w: entry amount and ticket price must be positive", domain.ErrValidation)
	}
	if in.MaxParticipants < 1 {
		return fmt.Errorf("%w: max participants must be at least 1", domain.ErrValidation)
	}

	r.printf("Creating %s pool %q\n", in.Type, in.EventName)
	id, tx, err := r.chain.CreatePool(ctx, in)
	if err != nil {
		return fmt.Errorf("create pool: %w", err)
	}
	r.printTx(tx)
	r.printf("Pool created: #%d\n", id)
	return nil
}

// JoinPool joins from the operator account and prints the TLOOT minted as
// the balance difference.
func (r *Runner) JoinPool(ctx context.Context, id int64) error {
	key, err := r.chain.OperatorKey()
	if err != nil {
		return err
	}
	from := r.chain.OperatorAddress()

	p, err := r.chain.GetPool(ctx, id)
	if err != nil {
		return err
	}
	if err = joinable(p); err != nil {
		return err
	}
	joined, err := r.chain.HasJoined(ctx, id, from)
	if err != nil {
		return fmt.Errorf("has joined: %w", err)
	}
	if joined {
		return domain.ErrAlreadyJoined
	}

	before, err := r.chain.TokenBalance(ctx, from)
	if err != nil {
		return fmt.Errorf("tloot balance: %w", err)
	}

	r.printf("Joining pool #%d with %s USDT\n", id, p.EntryAmount.String())
	ev, err := r.chain.JoinPool(ctx, key, id)
	if err != nil {
		return fmt.Errorf("join pool: %w", err)
	}
	r.printTx(&ev.Tx)

	after, err := r.chain.TokenBalance(ctx, from)
	if err != nil {
		return fmt.Errorf("tloot balance: %w", err)
	}
	r.printf("TLOOT reward: %s\n", after.Sub(before).String())
	return nil
}

// FillPool joins the pool from new wallets until it is full. Each wallet gets
// gas in native coin and the entry amount in USDT from the operator.
func (r *Runner) FillPool(ctx context.Context, id int64, gas decimal.Decimal) (int, error) {
	operator, err := r.chain.OperatorKey()
	if err != nil {
		return 0, err
	}

	p, err := r.chain.GetPool(ctx, id)
	if err != nil {
		return 0, err
	}
	if err = joinable(p); err != nil {
		return 0, err
	}

	missing := p.MaxParticipants - len(p.Participants)
	r.printf("Pool #%d needs %d more participants\n", id, missing)

	filled := 0
	for i := 1; i <= missing; i++ {
		if err = ctx.Err(); err != nil {
			return filled, err
		}

		w, err := NewWallet()
		if err != nil {
			return filled, err
		}
		r.printf("[%d/%d] %s\n", i, missing, w.Address)

		if err = r.joinFrom(ctx, operator, w, p, gas); err != nil {
			r.logger.Error("wallet failed to join",
				logger.Int64("pool_id", id),
				logger.String("wallet", w.Address),
				logger.String("error", err.Error()),
			)
			r.printf("  failed: %v\n", err)
		} else {
			filled++
		}

		if i < missing {
			r.sleep(ctx)
		}
	}

	r.printf("Joined %d of %d wallets\n", filled, missing)
	if filled == 0 && missing > 0 {
		return 0, fmt.Errorf("no wallet joined pool %d", id)
	}
	return filled, nil
}

func (r *Runner) joinFrom(ctx context.Context, operator *ecdsa.PrivateKey, w *Wallet, p *domain.ChainPool, gas decimal.Decimal) error {
	if _, err := r.chain.TransferNative(ctx, operator, w.Address, gas); err != nil {
		return fmt.Errorf("fund gas: %w", err)
	}
	if _, err := r.chain.TransferUSDT(ctx, operator, w.Address, p.EntryAmount); err != nil {
		return fmt.Errorf("fund usdt: %w", err)
	}
	ev, err := r.chain.JoinPool(ctx, w.key, p.ID)
	if err != nil {
		return fmt.Errorf("join: %w", err)
	}
	r.printf("  joined in %s, minted %s TLOOT\n", ev.Tx.Hash, ev.TlootMinted.String())
	return nil
}

// CompletePayment pays the remaining ticket price of a commit-to-claim pool
// from the operator account.
func (r *Runner) CompletePayment(ctx context.Context, id int64) error {
	key, err := r.chain.OperatorKey()
	if err != nil {
		return err
	}

	p, err := r.chain.GetPool(ctx, id)
	if err != nil {
		return err
	}
	if p.Type != domain.PoolTypeCommitToClaim {
		return fmt.Errorf("%w: pool %d is not commit-to-claim", domain.ErrValidation, id)
	}

	r.printf("Completing payment for pool #%d\n", id)
	tx, err := r.chain.CompletePayment(ctx, key, id)
	if err != nil {
		return fmt.Errorf("complete payment: %w", err)
	}
	r.printTx(tx)
	return nil
}

// FinalizePool draws the winners. A pool that is no longer active only has its
// winners printed.
func (r *Runner) FinalizePool(ctx context.Context, id int64) error {
	p, err := r.chain.GetPool(ctx, id)
	if err != nil {
		return err
	}

	if p.Status == domain.PoolStatusActive {
		r.printf("Finalizing pool #%d (%d participants)\n", id, len(p.Participants))
		tx, err := r.chain.FinalizePool(ctx, id)
		if err != nil {
			return fmt.Errorf("finalize pool: %w", err)
		}
		r.printTx(tx)
	} else {
		r.printf("Pool #%d is already %s\n", id, p.Status)
	}

	winners, err := r.chain.PoolWinners(ctx, id)
	if err != nil {
		return fmt.Errorf("pool winners: %w", err)
	}
	if len(winners) == 0 {
		r.printf("No winners\n")
		return nil
	}
	r.printf("Winners:\n")
	for _, w := range winners {
		r.printf("  %s\n", w)
	}
	return nil
}

// CreateWallets generates count wallets and, when fund is positive, sends each
// of them that much native coin from the operator.
func (r *Runner) CreateWallets(ctx context.Context, count int, fund decimal.Decimal) ([]*Wallet, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: count must be at least 1", domain.ErrValidation)
	}

	var operator *ecdsa.PrivateKey
	if fund.IsPositive() {
		key, err := r.chain.OperatorKey()
		if err != nil {
			return nil, err
		}
		operator = key
	}

	wallets := make([]*Wallet, 0, count)
	for i := 1; i <= count; i++ {
		w, err := NewWallet()
		if err != nil {
			return wallets, err
		}
		wallets = append(wallets, w)
		r.printf("[%d/%d] %s %s\n", i, count, w.Address, w.PrivateKey)

		if operator == nil {
			continue
		}
		tx, err := r.chain.TransferNative(ctx, operator, w.Address, fund)
		if err != nil {
			return wallets, fmt.Errorf("fund %s: %w", w.Address, err)
		}
		r.printf("  funded %s MNT in %s\n", fund.String(), tx.Hash)
		if i < count {
			r.sleep(ctx)
		}
	}
	return wallets, nil
}

func (r *Runner) CheckRoles(ctx context.Context, account string) error {
	if !domain.IsAddress(account) {
		return fmt.Errorf("%w: invalid address %q", domain.ErrValidation, account)
	}

	r.printf("Roles of %s:\n", account)
	for _, name := range Roles {
		role, err := r.chain.RoleID(ctx, name)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		has, err := r.chain.HasRole(ctx, role, account)
		if err != nil {
			return fmt.Errorf("has %s: %w", name, err)
		}
		r.printf("  %-18s %t\n", name, has)
	}
	return nil
}

// GrantRole grants a named role unless the account already holds it.
func (r *Runner) GrantRole(ctx context.Context, name, account string) error {
	if !domain.IsAddress(account) {
		return fmt.Errorf("%w: invalid address %q", domain.ErrValidation, account)
	}

	role, err := r.chain.RoleID(ctx, name)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	has, err := r.chain.HasRole(ctx, role, account)
	if err != nil {
		return fmt.Errorf("has %s: %w", name, err)
	}
	if has {
		r.printf("%s already has %s\n", account, name)
		return nil
	}

	tx, err := r.chain.GrantRole(ctx, role, account)
	if err != nil {
		return fmt.Errorf("grant %s: %w", name, err)
	}
	r.printTx(tx)
	r.printf("Granted %s to %s\n", name, account)
	return nil
}

func (r *Runner) TokenInfo(ctx context.Context) error {
	info, err := r.chain.TokenInfo(ctx)
	if err != nil {
		return err
	}
	r.printf("Name:         %s\n", info.Name)
	r.printf("Symbol:       %s\n", info.Symbol)
	r.printf("Total supply: %s\n", info.TotalSupply.String())
	return nil
}

func joinable(p *domain.ChainPool) error {
	if p.Status != domain.PoolStatusActive {
		return fmt.Errorf("%w: pool %d is %s", domain.ErrPoolClosed, p.ID, p.Status)
	}
	if p.MaxParticipants > 0 && len(p.Participants) >= p.MaxParticipants {
		return fmt.Errorf("%w: pool %d is full", domain.ErrPoolClosed, p.ID)
	}
	return nil
}

func (r *Runner) sleep(ctx context.Context) {
	if r.pace <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(r.pace):
	}
}

func (r *Runner) printTx(tx *domain.TxResult) {
	if tx == nil {
		return
	}
	r.printf("  tx:    %s\n", tx.Hash)
	r.printf("  block: %d, gas used: %d\n", tx.BlockNumber, tx.GasUsed)
	if tx.ExplorerURL != "" {
		r.printf("  %s\n", tx.ExplorerURL)
	}
}

func (r *Runner) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}
