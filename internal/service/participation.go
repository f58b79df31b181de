package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/rizwanmoulvi/tloot-social-pooling-platform/internal/domain"
	"github.com/rizwanmoulvi/tloot-social-pooling-platform/internal/service/ports"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/logger"
)

var txHashRe = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

type ParticipationService struct {
	repo     ports.ParticipationRepo
	poolRepo ports.PoolRepo
	userRepo ports.UserRepo
	chain    ports.PoolChain
	notifier ports.PoolNotifier
	logger   logger.Logger
}

func NewParticipationService(
	repo ports.ParticipationRepo,
	poolRepo ports.PoolRepo,
	userRepo ports.UserRepo,
	chain ports.PoolChain,
	notifier ports.PoolNotifier,
	logger logger.Logger,
) *ParticipationService {
	return &ParticipationService{
		repo:     repo,
		poolRepo: poolRepo,
		userRepo: userRepo,
		chain:    chain,
		notifier: notifier,
		logger:   logger,
	}
}

// RecordJoin records a participation from a confirmed joinPool transaction.
func (s *ParticipationService) RecordJoin(ctx context.Context, poolID int64, txHash string) (*domain.Participation, error) {
	if !txHashRe.MatchString(txHash) {
		return nil, fmt.Errorf("%w: invalid tx_hash", domain.ErrValidation)
	}

	pool, err := s.poolRepo.GetByID(ctx, poolID)
	if err != nil {
		return nil, fmt.Errorf("get pool: %w", err)
	}

	ev, err := s.chain.JoinFromReceipt(ctx, txHash)
	if err != nil {
		return nil, fmt.Errorf("read join receipt: %w", err)
	}
	if ev.PoolID != poolID {
		return nil, fmt.Errorf("%w: transaction joined pool %d", domain.ErrJoinMismatch, ev.PoolID)
	}

	address := domain.NormalizeAddress(ev.User)
	if err = s.userRepo.Ensure(ctx, address); err != nil {
		return nil, fmt.Errorf("ensure user: %w", err)
	}

	status := domain.ParticipationJoined
	if pool.Type == domain.PoolTypeCommitToClaim {
		status = domain.ParticipationPendingPayment
	}

	now := time.Now().UTC()
	p := &domain.Participation{
		ID:                uuid.New().String(),
		PoolID:            poolID,
		UserAddress:       address,
		Status:            status,
		AmountContributed: ev.Amount,
		Entries:           1,
		TokenRewards:      ev.TlootMinted,
		TxHash:            ev.Tx.Hash,
		JoinedAt:          now,
		UpdatedAt:         now,
	}
	if err = s.repo.Create(ctx, p); err != nil {
		if !errors.Is(err, domain.ErrAlreadyJoined) {
			return nil, fmt.Errorf("create participation: %w", err)
		}
		return s.attachReceipt(ctx, p, err)
	}

	if err = s.userRepo.AddReward(ctx, address, domain.RewardFor(pool.Type, "", status)); err != nil {
		s.logger.Error("failed to award join xp",
			logger.String("address", address),
			logger.String("error", err.Error()),
		)
	}

	pool.CurrentParticipants++
	pool.CurrentAmount = pool.CurrentAmount.Add(ev.Amount)
	pool.SyncedAt = now
	if err = s.poolRepo.Upsert(ctx, pool); err != nil {
		s.logger.Error("failed to update pool after join",
			logger.Int64("pool_id", poolID),
			logger.String("error", err.Error()),
		)
	}

	s.logger.Info("participation recorded",
		logger.Int64("pool_id", poolID),
		logger.String("address", address),
		logger.String("tx_hash", p.TxHash),
	)

	s.notify(ctx, address, pool, s.notifier.NotifyJoined)

	return p, nil
}

// attachReceipt fills in the receipt data of a participation that a sync found
// before the join was reported. A participation that already has a receipt is
// a duplicate join.
func (s *ParticipationService) attachReceipt(ctx context.Context, joined *domain.Participation, dupErr error) (*domain.Participation, error) {
	existing, err := s.repo.Get(ctx, joined.PoolID, joined.UserAddress)
	if err != nil || existing.TxHash != "" {
		return nil, fmt.Errorf("create participation: %w", dupErr)
	}

	existing.TxHash = joined.TxHash
	existing.AmountContributed = joined.AmountContributed
	existing.TokenRewards = joined.TokenRewards
	existing.UpdatedAt = joined.UpdatedAt
	if err = s.repo.Save(ctx, existing); err != nil {
		return nil, fmt.Errorf("save participation: %w", err)
	}

	return existing, nil
}

// Reconcile derives participation statuses for every on-chain participant of
// the pool and applies rewards for status changes. CLAIMED is never changed.
func (s *ParticipationService) Reconcile(ctx context.Context, pool *domain.Pool, cp *domain.ChainPool) error {
	existing, err := s.repo.ListByPool(ctx, pool.ID)
	if err != nil {
		return fmt.Errorf("list participations: %w", err)
	}
	byAddress := make(map[string]*domain.Participation, len(existing))
	for _, p := range existing {
		byAddress[p.UserAddress] = p
	}

	winners := make(map[string]struct{}, len(pool.Winners))
	for _, w := range pool.Winners {
		winners[domain.NormalizeAddress(w)] = struct{}{}
	}

	now := time.Now().UTC()
	for _, raw := range cp.Participants {
		address := domain.NormalizeAddress(raw)
		current := byAddress[address]
		if current != nil && current.Status == domain.ParticipationClaimed {
			continue
		}

		next, err := s.deriveStatus(ctx, pool, address, winners, now)
		if err != nil {
			s.logger.Warn("failed to derive participation status",
				logger.Int64("pool_id", pool.ID),
				logger.String("address", address),
				logger.String("error", err.Error()),
			)
			continue
		}

		var prev domain.ParticipationStatus
		if current != nil {
			prev = current.Status
		}
		if prev == next {
			continue
		}

		if err = s.applyStatus(ctx, pool, address, current, next, now); err != nil {
			if errors.Is(err, domain.ErrStaleParticipation) || errors.Is(err, domain.ErrAlreadyJoined) {
				s.logger.Debug("participation changed concurrently",
					logger.Int64("pool_id", pool.ID),
					logger.String("address", address),
				)
				continue
			}
			s.logger.Warn("failed to update participation",
				logger.Int64("pool_id", pool.ID),
				logger.String("address", address),
				logger.String("error", err.Error()),
			)
			continue
		}

		if reward := domain.RewardFor(pool.Type, prev, next); !reward.IsZero() {
			if err = s.userRepo.AddReward(ctx, address, reward); err != nil {
				s.logger.Error("failed to apply reward",
					logger.String("address", address),
					logger.String("error", err.Error()),
				)
			}
		}

		switch next {
		case domain.ParticipationWon:
			s.notify(ctx, address, pool, s.notifier.NotifyWon)
		case domain.ParticipationLost:
			s.notify(ctx, address, pool, s.notifier.NotifyLost)
		case domain.ParticipationDefaulted:
			s.notify(ctx, address, pool, s.notifier.NotifyDefaulted)
		}
	}

	return nil
}

func (s *ParticipationService) deriveStatus(
	ctx context.Context,
	pool *domain.Pool,
	address string,
	winners map[string]struct{},
	now time.Time,
) (domain.ParticipationStatus, error) {
	if pool.Type == domain.PoolTypeLuckyDraw {
		if pool.Status != domain.PoolStatusCompleted || len(winners) == 0 {
			return domain.ParticipationJoined, nil
		}
		if _, ok := winners[address]; ok {
			return domain.ParticipationWon, nil
		}
		return domain.ParticipationLost, nil
	}

	paid, err := s.chain.HasCompletedPayment(ctx, pool.ID, address)
	if err != nil {
		return "", err
	}
	if paid {
		return domain.ParticipationWon, nil
	}

	deadline := pool.Deadline
	if pool.PaymentDeadline != nil {
		deadline = *pool.PaymentDeadline
	}
	if now.After(deadline) {
		return domain.ParticipationDefaulted, nil
	}
	return domain.ParticipationPendingPayment, nil
}

func (s *ParticipationService) applyStatus(
	ctx context.Context,
	pool *domain.Pool,
	address string,
	current *domain.Participation,
	next domain.ParticipationStatus,
	now time.Time,
) error {
	if current == nil {
		if err := s.userRepo.Ensure(ctx, address); err != nil {
			return fmt.Errorf("ensure user: %w", err)
		}
		p := &domain.Participation{
			ID:                uuid.New().String(),
			PoolID:            pool.ID,
			UserAddress:       address,
			Status:            next,
			AmountContributed: pool.EntryAmount,
			Entries:           1,
			TokenRewards:      decimal.Zero,
			JoinedAt:          now,
			UpdatedAt:         now,
		}
		if next == domain.ParticipationWon {
			p.WonAt = &now
		}
		return s.repo.Create(ctx, p)
	}

	prev := current.Status
	current.Status = next
	current.UpdatedAt = now
	if next == domain.ParticipationWon && current.WonAt == nil {
		current.WonAt = &now
	}
	return s.repo.Transition(ctx, current, prev)
}

// Claim moves a winning participation to CLAIMED and reports the platform fee.
func (s *ParticipationService) Claim(ctx context.Context, poolID int64, address string) (*domain.Claim, error) {
	if !domain.IsAddress(address) {
		return nil, fmt.Errorf("%w: invalid address %q", domain.ErrValidation, address)
	}
	address = domain.NormalizeAddress(address)

	pool, err := s.poolRepo.GetByID(ctx, poolID)
	if err != nil {
		return nil, fmt.Errorf("get pool: %w", err)
	}

	p, err := s.repo.Get(ctx, poolID, address)
	if err != nil {
		return nil, fmt.Errorf("get participation: %w", err)
	}
	if p.Status != domain.ParticipationWon {
		return nil, fmt.Errorf("%w: status is %s", domain.ErrNotClaimable, p.Status)
	}

	now := time.Now().UTC()
	prev := p.Status
	p.Status = domain.ParticipationClaimed
	p.ClaimedAt = &now
	p.UpdatedAt = now
	if err = s.repo.Transition(ctx, p, prev); err != nil {
		if errors.Is(err, domain.ErrStaleParticipation) {
			return nil, fmt.Errorf("%w: already claimed", domain.ErrNotClaimable)
		}
		return nil, fmt.Errorf("save participation: %w", err)
	}

	if err = s.userRepo.AddReward(ctx, address, domain.RewardFor(pool.Type, prev, p.Status)); err != nil {
		s.logger.Error("failed to award claim xp",
			logger.String("address", address),
			logger.String("error", err.Error()),
		)
	}

	s.logger.Info("ticket claimed",
		logger.Int64("pool_id", poolID),
		logger.String("address", address),
	)

	return &domain.Claim{
		Participation: p,
		Fee:           domain.ClaimFee(pool.Event.TicketPrice),
	}, nil
}

func (s *ParticipationService) ListByUser(ctx context.Context, address string) ([]*domain.Participation, error) {
	if !domain.IsAddress(address) {
		return nil, fmt.Errorf("%w: invalid address %q", domain.ErrValidation, address)
	}
	return s.repo.ListByUser(ctx, domain.NormalizeAddress(address))
}

func (s *ParticipationService) notify(
	ctx context.Context,
	address string,
	pool *domain.Pool,
	send func(context.Context, *domain.User, *domain.Pool),
) {
	user, err := s.userRepo.GetByAddress(ctx, address)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Error("failed to get user for notification",
				logger.String("address", address),
				logger.String("error", err.Error()),
			)
		}
		return
	}

	go send(context.WithoutCancel(ctx), user, pool)
}
