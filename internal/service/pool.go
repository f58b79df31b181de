package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rizwanmoulvi/tloot-social-pooling-platform/internal/domain"
	"github.com/rizwanmoulvi/tloot-social-pooling-platform/internal/service/ports"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/logger"
)

type participationReconciler interface {
	Reconcile(ctx context.Context, pool *domain.Pool, cp *domain.ChainPool) error
}

type PoolService struct {
	repo       ports.PoolRepo
	chain      ports.PoolChain
	reconciler participationReconciler
	logger     logger.Logger
}

func NewPoolService(
	repo ports.PoolRepo,
	chain ports.PoolChain,
	reconciler participationReconciler,
	logger logger.Logger,
) *PoolService {
	return &PoolService{
		repo:       repo,
		chain:      chain,
		reconciler: reconciler,
		logger:     logger,
	}
}

// LoadPools mirrors every pool the manager knows about. Pools that fail to load
// are logged and skipped; the number of pools stored is returned.
func (s *PoolService) LoadPools(ctx context.Context) (int, error) {
	count, err := s.chain.PoolCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("pool count: %w", err)
	}

	loaded := 0
	for id := int64(1); id <= count; id++ {
		if ctx.Err() != nil {
			return loaded, ctx.Err()
		}
		if _, err = s.SyncPool(ctx, id); err != nil {
			s.logger.Warn("failed to load pool",
				logger.Int64("pool_id", id),
				logger.String("error", err.Error()),
			)
			continue
		}
		loaded++
	}

	s.logger.Info("pools loaded",
		logger.Int64("count", count),
		logger.Int("loaded", loaded),
	)

	return loaded, nil
}

// SyncPool re-reads one pool from chain, merges it with stored metadata and
// local-only fields, stores it and reconciles its participations.
func (s *PoolService) SyncPool(ctx context.Context, id int64) (*domain.Pool, error) {
	cp, err := s.chain.GetPool(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("read pool: %w", err)
	}

	winners := []string{}
	if cp.Status == domain.PoolStatusCompleted {
		winners, err = s.chain.PoolWinners(ctx, id)
		if err != nil {
			s.logger.Warn("failed to read pool winners",
				logger.Int64("pool_id", id),
				logger.String("error", err.Error()),
			)
			winners = []string{}
			if cp.Winner != "" {
				winners = append(winners, cp.Winner)
			}
		}
	}

	meta, err := s.repo.GetMetadata(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get metadata: %w", err)
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil && !errors.Is(err, domain.ErrPoolNotFound) {
		return nil, fmt.Errorf("get stored pool: %w", err)
	}

	pool := s.mergePool(cp, winners, meta, existing)
	if err = s.repo.Upsert(ctx, pool); err != nil {
		return nil, fmt.Errorf("store pool: %w", err)
	}

	if err = s.reconciler.Reconcile(ctx, pool, cp); err != nil {
		s.logger.Warn("failed to reconcile participations",
			logger.Int64("pool_id", id),
			logger.String("error", err.Error()),
		)
	}

	return pool, nil
}

func (s *PoolService) mergePool(
	cp *domain.ChainPool,
	winners []string,
	meta *domain.PoolMetadata,
	existing *domain.Pool,
) *domain.Pool {
	now := time.Now().UTC()

	pool := &domain.Pool{
		ID: cp.ID,
		Event: domain.Event{
			ID:          strconv.FormatInt(cp.ID, 10),
			Name:        cp.EventName,
			Description: domain.DefaultDescription,
			Date:        cp.Deadline.Add(domain.EventDateOffset),
			Venue:       domain.DefaultVenue,
			TicketPrice: cp.TicketPrice,
			Category:    domain.DefaultCategory(cp.Type),
		},
		Type:                cp.Type,
		Status:              localStatus(cp, now),
		TargetAmount:        cp.TicketPrice,
		CurrentAmount:       cp.TotalPooled,
		MaxParticipants:     cp.MaxParticipants,
		CurrentParticipants: len(cp.Participants),
		EntryAmount:         cp.EntryAmount,
		Deadline:            cp.Deadline,
		TicketsReserved:     1,
		WinnerCount:         1,
		Winners:             normalizeAll(winners),
		CreatorAddress:      domain.NormalizeAddress(cp.Creator),
		IsUserCreated:       true,
		ContractAddress:     domain.NormalizeAddress(s.chain.PoolManagerAddress()),
		CreatedAt:           now,
		SyncedAt:            now,
	}

	if meta != nil {
		pool.Event.Description = meta.Description
		pool.Event.Venue = meta.Venue
		pool.Event.Date = meta.Date
		pool.Event.Category = meta.Category
	}

	if pool.Type == domain.PoolTypeCommitToClaim {
		commitment := cp.EntryAmount
		paymentDeadline := pool.Event.Date.Add(-domain.EventDateOffset)
		pool.CommitmentAmount = &commitment
		pool.PaymentDeadline = &paymentDeadline
		pool.TicketOwnerAddress = pool.CreatorAddress
	}

	// Fields that exist only in the local record survive a resync.
	if existing != nil {
		pool.CreatedAt = existing.CreatedAt
		pool.TargetAmount = existing.TargetAmount
		pool.TicketsReserved = existing.TicketsReserved
		pool.WinnerCount = existing.WinnerCount
		pool.IsUserCreated = existing.IsUserCreated
		if existing.PaymentDeadline != nil {
			pool.PaymentDeadline = existing.PaymentDeadline
		}
		if existing.TicketOwnerAddress != "" {
			pool.TicketOwnerAddress = existing.TicketOwnerAddress
		}
	}

	return pool
}

// localStatus refines the chain status: an open pool that is full awaits the
// draw (FILLING), an open pool past its deadline is EXPIRED.
func localStatus(cp *domain.ChainPool, now time.Time) domain.PoolStatus {
	if cp.Status != domain.PoolStatusActive {
		return cp.Status
	}
	if cp.MaxParticipants > 0 && len(cp.Participants) >= cp.MaxParticipants {
		return domain.PoolStatusFilling
	}
	if !cp.Deadline.IsZero() && now.After(cp.Deadline) {
		return domain.PoolStatusExpired
	}
	return domain.PoolStatusActive
}

// CreatePool submits the pool on chain and stores an optimistic local record
// with its event metadata. The next sync overwrites chain-derived fields.
func (s *PoolService) CreatePool(ctx context.Context, in domain.CreatePoolInput) (*domain.Pool, *domain.TxResult, error) {
	if err := validateCreatePool(&in); err != nil {
		return nil, nil, err
	}
	if !s.chain.CanWrite() {
		return nil, nil, domain.ErrReadOnly
	}

	now := time.Now().UTC()
	deadline := now.Add(time.Duration(in.DaysUntilDeadline) * 24 * time.Hour)
	maxParticipants := in.MaxParticipants
	if in.PoolType == domain.PoolTypeCommitToClaim {
		maxParticipants = 1
	}

	id, tx, err := s.chain.CreatePool(ctx, domain.CreatePoolTx{
		Type:            in.PoolType,
		EventName:       in.EventName,
		EntryAmount:     in.EntryAmount,
		TicketPrice:     in.TicketPrice,
		MaxParticipants: maxParticipants,
		Deadline:        deadline,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create pool on chain: %w", err)
	}

	eventDate := in.EventDate
	if eventDate.IsZero() {
		eventDate = deadline.Add(domain.EventDateOffset)
	}
	creator := domain.NormalizeAddress(s.chain.OperatorAddress())

	pool := &domain.Pool{
		ID: id,
		Event: domain.Event{
			ID:          strconv.FormatInt(id, 10),
			Name:        in.EventName,
			Description: orDefault(in.EventDescription, domain.DefaultDescription),
			Date:        eventDate,
			Venue:       orDefault(in.EventVenue, domain.DefaultVenue),
			TicketPrice: in.TicketPrice,
			Category:    orDefault(in.EventCategory, domain.DefaultCategory(in.PoolType)),
		},
		Type:            in.PoolType,
		Status:          domain.PoolStatusActive,
		TargetAmount:    in.TicketPrice.Mul(decimal.NewFromInt(int64(in.WinnerCount))),
		CurrentAmount:   decimal.Zero,
		MaxParticipants: maxParticipants,
		EntryAmount:     in.EntryAmount,
		Deadline:        deadline,
		TicketsReserved: in.WinnerCount,
		WinnerCount:     in.WinnerCount,
		Winners:         []string{},
		CreatorAddress:  creator,
		IsUserCreated:   true,
		ContractAddress: domain.NormalizeAddress(s.chain.PoolManagerAddress()),
		CreatedAt:       now,
		SyncedAt:        now,
	}
	if in.PoolType == domain.PoolTypeCommitToClaim {
		commitment := in.EntryAmount
		paymentDeadline := eventDate.Add(-domain.EventDateOffset)
		pool.CommitmentAmount = &commitment
		pool.PaymentDeadline = &paymentDeadline
		pool.TicketOwnerAddress = creator
	}

	if err = s.repo.Upsert(ctx, pool); err != nil {
		return nil, tx, fmt.Errorf("store created pool: %w", err)
	}
	if err = s.repo.SaveMetadata(ctx, &domain.PoolMetadata{
		PoolID:      id,
		Description: pool.Event.Description,
		Venue:       pool.Event.Venue,
		Date:        pool.Event.Date,
		Category:    pool.Event.Category,
	}); err != nil {
		return nil, tx, fmt.Errorf("store pool metadata: %w", err)
	}

	s.logger.Info("pool created",
		logger.Int64("pool_id", id),
		logger.String("type", string(in.PoolType)),
		logger.String("tx_hash", tx.Hash),
	)

	return pool, tx, nil
}

func validateCreatePool(in *domain.CreatePoolInput) error {
	in.EventName = strings.TrimSpace(in.EventName)
	if in.EventName == "" {
		return fmt.Errorf("%w: event_name is required", domain.ErrValidation)
	}
	if !in.PoolType.Valid() {
		return fmt.Errorf("%w: unknown pool type %q", domain.ErrValidation, in.PoolType)
	}
	if !in.EntryAmount.IsPositive() {
		return fmt.Errorf("%w: entry_amount must be positive", domain.ErrValidation)
	}
	if !in.TicketPrice.IsPositive() {
		return fmt.Errorf("%w: ticket_price must be positive", domain.ErrValidation)
	}
	if in.PoolType == domain.PoolTypeLuckyDraw && in.MaxParticipants <= 0 {
		return fmt.Errorf("%w: max_participants must be positive", domain.ErrValidation)
	}
	if in.DaysUntilDeadline <= 0 {
		return fmt.Errorf("%w: days_until_deadline must be positive", domain.ErrValidation)
	}
	if in.WinnerCount == 0 {
		in.WinnerCount = 1
	}
	if in.WinnerCount < 0 {
		return fmt.Errorf("%w: winner_count must be positive", domain.ErrValidation)
	}
	// a commit-to-claim pool has a single participant who is the winner
	if in.PoolType == domain.PoolTypeCommitToClaim {
		in.WinnerCount = 1
	}
	if !in.EventDate.IsZero() && in.EventDate.Before(time.Now()) {
		return fmt.Errorf("%w: event_date must be in the future", domain.ErrValidation)
	}
	return nil
}

func (s *PoolService) GetByID(ctx context.Context, id int64) (*domain.Pool, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns stored pools that pass every set filter, newest first.
func (s *PoolService) List(ctx context.Context, filters domain.PoolFilters) ([]*domain.Pool, error) {
	pools, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pools: %w", err)
	}

	res := make([]*domain.Pool, 0, len(pools))
	for _, p := range pools {
		if filters.Match(p) {
			res = append(res, p)
		}
	}

	return res, nil
}

func (s *PoolService) ListByCreator(ctx context.Context, address string) ([]*domain.Pool, error) {
	if !domain.IsAddress(address) {
		return nil, fmt.Errorf("%w: invalid address %q", domain.ErrValidation, address)
	}
	return s.repo.ListByCreator(ctx, domain.NormalizeAddress(address))
}

// SetMetadata stores off-chain event details and applies them to the pool.
func (s *PoolService) SetMetadata(ctx context.Context, meta domain.PoolMetadata) (*domain.Pool, error) {
	if meta.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", domain.ErrValidation)
	}

	pool, err := s.repo.GetByID(ctx, meta.PoolID)
	if err != nil {
		return nil, fmt.Errorf("get pool: %w", err)
	}

	meta.Description = orDefault(meta.Description, domain.DefaultDescription)
	meta.Venue = orDefault(meta.Venue, domain.DefaultVenue)
	meta.Category = orDefault(meta.Category, domain.DefaultCategory(pool.Type))

	if err = s.repo.SaveMetadata(ctx, &meta); err != nil {
		return nil, fmt.Errorf("save metadata: %w", err)
	}

	pool.Event.Description = meta.Description
	pool.Event.Venue = meta.Venue
	pool.Event.Date = meta.Date
	pool.Event.Category = meta.Category
	if err = s.repo.Upsert(ctx, pool); err != nil {
		return nil, fmt.Errorf("store pool: %w", err)
	}

	return pool, nil
}

// FinalizeDue finalizes lucky-draw pools that are full or past their deadline.
// It does nothing without an operator key.
func (s *PoolService) FinalizeDue(ctx context.Context) (int, error) {
	if !s.chain.CanWrite() {
		s.logger.Debug("skipping finalize, chain client is read-only")
		return 0, nil
	}

	pools, err := s.repo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list pools: %w", err)
	}

	finalized := 0
	for _, p := range pools {
		if p.Type != domain.PoolTypeLuckyDraw {
			continue
		}
		if p.Status != domain.PoolStatusFilling && p.Status != domain.PoolStatusExpired {
			continue
		}
		if p.CurrentParticipants == 0 {
			continue
		}

		tx, err := s.chain.FinalizePool(ctx, p.ID)
		if err != nil {
			s.logger.Error("failed to finalize pool",
				logger.Int64("pool_id", p.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		finalized++

		s.logger.Info("pool finalized",
			logger.Int64("pool_id", p.ID),
			logger.String("tx_hash", tx.Hash),
		)

		if _, err = s.SyncPool(ctx, p.ID); err != nil {
			s.logger.Warn("failed to sync finalized pool",
				logger.Int64("pool_id", p.ID),
				logger.String("error", err.Error()),
			)
		}
	}

	return finalized, nil
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func normalizeAll(addrs []string) []string {
	res := make([]string, 0, len(addrs))
	for _, a := range addrs {
		res = append(res, domain.NormalizeAddress(a))
	}
	return res
}
