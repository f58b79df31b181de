package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/rizwanmoulvi/tloot-social-pooling-platform/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const participationColumns = `id, pool_id, user_address, status, amount_contributed, entries,
		token_rewards, tx_hash, joined_at, won_at, claimed_at, updated_at`

type ParticipationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewParticipationRepo(db *dbpg.DB) *ParticipationRepository {
	return &ParticipationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ParticipationRepository) Create(ctx context.Context, p *domain.Participation) error {
	query := `INSERT INTO participations (` + participationColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		p.ID, p.PoolID, p.UserAddress, p.Status, p.AmountContributed, p.Entries,
		p.TokenRewards, p.TxHash, p.JoinedAt, p.WonAt, p.ClaimedAt, p.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyJoined
		}
		return fmt.Errorf("insert participation: %w", err)
	}

	return nil
}

// Save updates the mutable part of a participation identified by pool and user.
func (r *ParticipationRepository) Save(ctx context.Context, p *domain.Participation) error {
	query := `UPDATE participations
			  SET status = $3, amount_contributed = $4, entries = $5, token_rewards = $6,
			      tx_hash = $7, won_at = $8, claimed_at = $9, updated_at = $10
			  WHERE pool_id = $1 AND user_address = $2`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		p.PoolID, p.UserAddress, p.Status, p.AmountContributed, p.Entries, p.TokenRewards,
		p.TxHash, p.WonAt, p.ClaimedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update participation: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("participation rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrParticipationNotFound
	}

	return nil
}

// Transition writes p only while the stored status is still prev, so that two
// concurrent reconciles cannot both apply the same status change.
func (r *ParticipationRepository) Transition(ctx context.Context, p *domain.Participation, prev domain.ParticipationStatus) error {
	query := `UPDATE participations
			  SET status = $3, amount_contributed = $4, entries = $5, token_rewards = $6,
			      tx_hash = $7, won_at = $8, claimed_at = $9, updated_at = $10
			  WHERE pool_id = $1 AND user_address = $2 AND status = $11`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		p.PoolID, p.UserAddress, p.Status, p.AmountContributed, p.Entries, p.TokenRewards,
		p.TxHash, p.WonAt, p.ClaimedAt, p.UpdatedAt, prev,
	)
	if err != nil {
		return fmt.Errorf("transition participation: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("participation rows affected: %w", err)
	}
	if rows != 1 {
		return domain.ErrStaleParticipation
	}

	return nil
}

func (r *ParticipationRepository) Get(ctx context.Context, poolID int64, address string) (*domain.Participation, error) {
	query := `SELECT ` + participationColumns + `
			  FROM participations
			  WHERE pool_id = $1 AND user_address = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, poolID, address)
	if err != nil {
		return nil, fmt.Errorf("get participation: %w", err)
	}

	p, err := scanParticipation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrParticipationNotFound
		}
		return nil, fmt.Errorf("scan participation: %w", err)
	}

	return p, nil
}

func (r *ParticipationRepository) ListByPool(ctx context.Context, poolID int64) ([]*domain.Participation, error) {
	query := `SELECT ` + participationColumns + `
			  FROM participations
			  WHERE pool_id = $1
			  ORDER BY joined_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, poolID)
	if err != nil {
		return nil, fmt.Errorf("list participations by pool: %w", err)
	}
	defer rows.Close()

	return collectParticipations(rows)
}

func (r *ParticipationRepository) ListByUser(ctx context.Context, address string) ([]*domain.Participation, error) {
	query := `SELECT ` + participationColumns + `
			  FROM participations
			  WHERE user_address = $1
			  ORDER BY joined_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, address)
	if err != nil {
		return nil, fmt.Errorf("list participations by user: %w", err)
	}
	defer rows.Close()

	return collectParticipations(rows)
}

func scanParticipation(s scanner) (*domain.Participation, error) {
	var (
		p         domain.Participation
		wonAt     sql.NullTime
		claimedAt sql.NullTime
	)
	if err := s.Scan(
		&p.ID, &p.PoolID, &p.UserAddress, &p.Status, &p.AmountContributed, &p.Entries,
		&p.TokenRewards, &p.TxHash, &p.JoinedAt, &wonAt, &claimedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if wonAt.Valid {
		p.WonAt = &wonAt.Time
	}
	if claimedAt.Valid {
		p.ClaimedAt = &claimedAt.Time
	}

	return &p, nil
}

func collectParticipations(rows *sql.Rows) ([]*domain.Participation, error) {
	var res []*domain.Participation
	for rows.Next() {
		p, err := scanParticipation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan participation: %w", err)
		}
		res = append(res, p)
	}

	return res, rows.Err()
}
