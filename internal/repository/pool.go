package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/lib/pq"
	"github.com/rizwanmoulvi/tloot-social-pooling-platform/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const poolColumns = `id, event_name, event_description, event_date, event_venue, event_category,
		ticket_price, pool_type, status, target_amount, current_amount,
		max_participants, current_participants, entry_amount, commitment_amount,
		deadline, payment_deadline, tickets_reserved, winner_count, winners,
		creator_address, is_user_created, ticket_owner_address, contract_address,
		created_at, synced_at`

type PoolRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPoolRepo(db *dbpg.DB) *PoolRepository {
	return &PoolRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Upsert inserts the pool or overwrites every field except created_at.
func (r *PoolRepository) Upsert(ctx context.Context, p *domain.Pool) error {
	query := `INSERT INTO pools (` + poolColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			          $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26)
			  ON CONFLICT (id) DO UPDATE SET
			      event_name = EXCLUDED.event_name,
			      event_description = EXCLUDED.event_description,
			      event_date = EXCLUDED.event_date,
			      event_venue = EXCLUDED.event_venue,
			      event_category = EXCLUDED.event_category,
			      ticket_price = EXCLUDED.ticket_price,
			      pool_type = EXCLUDED.pool_type,
			      status = EXCLUDED.status,
			      target_amount = EXCLUDED.target_amount,
			      current_amount = EXCLUDED.current_amount,
			      max_participants = EXCLUDED.max_participants,
			      current_participants = EXCLUDED.current_participants,
			      entry_amount = EXCLUDED.entry_amount,
			      commitment_amount = EXCLUDED.commitment_amount,
			      deadline = EXCLUDED.deadline,
			      payment_deadline = EXCLUDED.payment_deadline,
			      tickets_reserved = EXCLUDED.tickets_reserved,
			      winner_count = EXCLUDED.winner_count,
			      winners = EXCLUDED.winners,
			      creator_address = EXCLUDED.creator_address,
			      is_user_created = EXCLUDED.is_user_created,
			      ticket_owner_address = EXCLUDED.ticket_owner_address,
			      contract_address = EXCLUDED.contract_address,
			      synced_at = EXCLUDED.synced_at`

	var commitment decimal.NullDecimal
	if p.CommitmentAmount != nil {
		commitment = decimal.NewNullDecimal(*p.CommitmentAmount)
	}
	var paymentDeadline sql.NullTime
	if p.PaymentDeadline != nil {
		paymentDeadline = sql.NullTime{Time: *p.PaymentDeadline, Valid: true}
	}
	winners := p.Winners
	if winners == nil {
		winners = []string{}
	}

	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		p.ID, p.Event.Name, p.Event.Description, p.Event.Date, p.Event.Venue, p.Event.Category,
		p.Event.TicketPrice, p.Type, p.Status, p.TargetAmount, p.CurrentAmount,
		p.MaxParticipants, p.CurrentParticipants, p.EntryAmount, commitment,
		p.Deadline, paymentDeadline, p.TicketsReserved, p.WinnerCount, pq.Array(winners),
		p.CreatorAddress, p.IsUserCreated, p.TicketOwnerAddress, p.ContractAddress,
		p.CreatedAt, p.SyncedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert pool: %w", err)
	}

	return nil
}

func (r *PoolRepository) GetByID(ctx context.Context, id int64) (*domain.Pool, error) {
	query := `SELECT ` + poolColumns + `
			  FROM pools
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get pool: %w", err)
	}

	p, err := scanPool(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPoolNotFound
		}
		return nil, fmt.Errorf("scan pool: %w", err)
	}

	return p, nil
}

// List returns every mirrored pool, newest first.
func (r *PoolRepository) List(ctx context.Context) ([]*domain.Pool, error) {
	query := `SELECT ` + poolColumns + `
			  FROM pools
			  ORDER BY id DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list pools: %w", err)
	}
	defer rows.Close()

	return collectPools(rows)
}

func (r *PoolRepository) ListByCreator(ctx context.Context, address string) ([]*domain.Pool, error) {
	query := `SELECT ` + poolColumns + `
			  FROM pools
			  WHERE lower(creator_address) = lower($1)
			  ORDER BY id DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, address)
	if err != nil {
		return nil, fmt.Errorf("list pools by creator: %w", err)
	}
	defer rows.Close()

	return collectPools(rows)
}

func (r *PoolRepository) SaveMetadata(ctx context.Context, m *domain.PoolMetadata) error {
	query := `INSERT INTO pool_metadata (pool_id, description, venue, event_date, category)
			  VALUES ($1, $2, $3, $4, $5)
			  ON CONFLICT (pool_id) DO UPDATE SET
			      description = EXCLUDED.description,
			      venue = EXCLUDED.venue,
			      event_date = EXCLUDED.event_date,
			      category = EXCLUDED.category`

	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, m.PoolID, m.Description, m.Venue, m.Date, m.Category)
	if err != nil {
		return fmt.Errorf("save pool metadata: %w", err)
	}

	return nil
}

func (r *PoolRepository) GetMetadata(ctx context.Context, poolID int64) (*domain.PoolMetadata, error) {
	query := `SELECT pool_id, description, venue, event_date, category
			  FROM pool_metadata
			  WHERE pool_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, poolID)
	if err != nil {
		return nil, fmt.Errorf("get pool metadata: %w", err)
	}

	var m domain.PoolMetadata
	if err = row.Scan(&m.PoolID, &m.Description, &m.Venue, &m.Date, &m.Category); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan pool metadata: %w", err)
	}

	return &m, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanPool(s scanner) (*domain.Pool, error) {
	var (
		p               domain.Pool
		commitment      decimal.NullDecimal
		paymentDeadline sql.NullTime
		winners         pq.StringArray
	)
	if err := s.Scan(
		&p.ID, &p.Event.Name, &p.Event.Description, &p.Event.Date, &p.Event.Venue, &p.Event.Category,
		&p.Event.TicketPrice, &p.Type, &p.Status, &p.TargetAmount, &p.CurrentAmount,
		&p.MaxParticipants, &p.CurrentParticipants, &p.EntryAmount, &commitment,
		&p.Deadline, &paymentDeadline, &p.TicketsReserved, &p.WinnerCount, &winners,
		&p.CreatorAddress, &p.IsUserCreated, &p.TicketOwnerAddress, &p.ContractAddress,
		&p.CreatedAt, &p.SyncedAt,
	); err != nil {
		return nil, err
	}

	p.Event.ID = strconv.FormatInt(p.ID, 10)
	if commitment.Valid {
		p.CommitmentAmount = &commitment.Decimal
	}
	if paymentDeadline.Valid {
		p.PaymentDeadline = &paymentDeadline.Time
	}
	p.Winners = []string(winners)
	if p.Winners == nil {
		p.Winners = []string{}
	}

	return &p, nil
}

func collectPools(rows *sql.Rows) ([]*domain.Pool, error) {
	var res []*domain.Pool
	for rows.Next() {
		p, err := scanPool(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pool: %w", err)
		}
		res = append(res, p)
	}

	return res, rows.Err()
}
