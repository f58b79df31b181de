package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rizwanmoulvi/tloot-social-pooling-platform/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type UserRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewUserRepo(db *dbpg.DB) *UserRepository {
	return &UserRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Register stores a user profile. A profile created earlier by Ensure is
// kept, with the chat id attached; a profile that already has a chat id is
// taken.
func (r *UserRepository) Register(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `INSERT INTO users (address, telegram_chat_id, xp, reputation, created_at)
			  VALUES ($1, $2, $3, $4, $5)
			  ON CONFLICT (address) DO UPDATE SET telegram_chat_id = EXCLUDED.telegram_chat_id
			  WHERE users.telegram_chat_id IS NULL
			  RETURNING address, telegram_chat_id, xp, reputation, created_at`

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		user.Address, user.TelegramChatID, user.XP, user.Reputation, user.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("register user: %w", err)
	}

	var u domain.User
	if err = row.Scan(&u.Address, &u.TelegramChatID, &u.XP, &u.Reputation, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAddressTaken
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return &u, nil
}

// Ensure creates an empty profile for address unless one already exists.
func (r *UserRepository) Ensure(ctx context.Context, address string) error {
	query := `INSERT INTO users (address, created_at)
			  VALUES ($1, $2)
			  ON CONFLICT (address) DO NOTHING`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, address, time.Now().UTC()); err != nil {
		return fmt.Errorf("ensure user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByAddress(ctx context.Context, address string) (*domain.User, error) {
	query := `SELECT address, telegram_chat_id, xp, reputation, created_at
    		  FROM users
    		  WHERE address = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, address)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	var u domain.User
	if err = row.Scan(&u.Address, &u.TelegramChatID, &u.XP, &u.Reputation, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return &u, nil
}

// List returns users ordered as a leaderboard: most XP first.
func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	query := `SELECT address, telegram_chat_id, xp, reputation, created_at
			  FROM users
			  ORDER BY xp DESC, address`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var res []*domain.User
	for rows.Next() {
		var u domain.User
		if err = rows.Scan(&u.Address, &u.TelegramChatID, &u.XP, &u.Reputation, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		res = append(res, &u)
	}

	return res, rows.Err()
}

func (r *UserRepository) AddReward(ctx context.Context, address string, reward domain.Reward) error {
	query := `UPDATE users
			  SET xp = xp + $2, reputation = reputation + $3
			  WHERE address = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, address, reward.XP, reward.Reputation)
	if err != nil {
		return fmt.Errorf("add reward: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("user rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}
