package repository

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/rizwanmoulvi/tloot-social-pooling-platform/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

var fastStrategy = retry.Strategy{Attempts: 1, Delay: time.Millisecond, Backoff: 1}

func newMockDB(t *testing.T) (*dbpg.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		sqlDB.Close()
	})
	return &dbpg.DB{Master: sqlDB}, mock
}

func poolRow(id int64, creator string) []driver.Value {
	now := time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)
	return []driver.Value{
		id, "Eras Tour", "desc", now.AddDate(0, 2, 0), "Wembley", "Concert",
		"250", "LUCKY_DRAW", "ACTIVE", "250", "20",
		50, 2, "10", nil,
		now.AddDate(0, 1, 0), nil, 1, 1, "{}",
		creator, true, "", "0xe4478d8dcab3f8daf7b167d21fadc7e3f20599da",
		now, now,
	}
}

var poolColumnNames = []string{
	"id", "event_name", "event_description", "event_date", "event_venue", "event_category",
	"ticket_price", "pool_type", "status", "target_amount", "current_amount",
	"max_participants", "current_participants", "entry_amount", "commitment_amount",
	"deadline", "payment_deadline", "tickets_reserved", "winner_count", "winners",
	"creator_address", "is_user_created", "ticket_owner_address", "contract_address",
	"created_at", "synced_at",
}

func TestPoolRepository_Upsert(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPoolRepo(db)
	repo.strategy = fastStrategy

	commitment := decimal.NewFromInt(10)
	pool := &domain.Pool{
		ID:               3,
		Event:            domain.Event{Name: "Finals", TicketPrice: decimal.NewFromInt(100)},
		Type:             domain.PoolTypeCommitToClaim,
		Status:           domain.PoolStatusActive,
		CommitmentAmount: &commitment,
		Winners:          nil,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO pools")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Upsert(context.Background(), pool))
}

func TestPoolRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPoolRepo(db)
	repo.strategy = fastStrategy

	mock.ExpectQuery(regexp.QuoteMeta("FROM pools")).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(poolColumnNames).AddRow(poolRow(2, "0xabc")...))

	p, err := repo.GetByID(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, int64(2), p.ID)
	assert.Equal(t, "2", p.Event.ID)
	assert.Equal(t, domain.PoolTypeLuckyDraw, p.Type)
	assert.True(t, decimal.NewFromInt(10).Equal(p.EntryAmount))
	assert.Nil(t, p.CommitmentAmount)
	assert.Nil(t, p.PaymentDeadline)
	assert.Equal(t, []string{}, p.Winners)
}

func TestPoolRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPoolRepo(db)
	repo.strategy = fastStrategy

	mock.ExpectQuery(regexp.QuoteMeta("FROM pools")).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(poolColumnNames))

	_, err := repo.GetByID(context.Background(), 9)

	assert.ErrorIs(t, err, domain.ErrPoolNotFound)
}

func TestPoolRepository_ListByCreator(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPoolRepo(db)
	repo.strategy = fastStrategy

	mock.ExpectQuery(regexp.QuoteMeta("WHERE lower(creator_address) = lower($1)")).
		WithArgs("0xABC").
		WillReturnRows(sqlmock.NewRows(poolColumnNames).
			AddRow(poolRow(5, "0xabc")...).
			AddRow(poolRow(4, "0xabc")...))

	pools, err := repo.ListByCreator(context.Background(), "0xABC")

	require.NoError(t, err)
	require.Len(t, pools, 2)
	assert.Equal(t, int64(5), pools[0].ID)
}

func TestPoolRepository_GetMetadata_Missing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPoolRepo(db)
	repo.strategy = fastStrategy

	mock.ExpectQuery(regexp.QuoteMeta("FROM pool_metadata")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"pool_id", "description", "venue", "event_date", "category"}))

	m, err := repo.GetMetadata(context.Background(), 1)

	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestParticipationRepository_Create_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewParticipationRepo(db)
	repo.strategy = fastStrategy

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO participations")).
		WillReturnError(&pq.Error{Code: "23505"})

	err := repo.Create(context.Background(), &domain.Participation{ID: "p-1", PoolID: 1, UserAddress: "0xabc"})

	assert.ErrorIs(t, err, domain.ErrAlreadyJoined)
}

func TestParticipationRepository_Save_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewParticipationRepo(db)
	repo.strategy = fastStrategy

	mock.ExpectExec(regexp.QuoteMeta("UPDATE participations")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Save(context.Background(), &domain.Participation{PoolID: 1, UserAddress: "0xabc"})

	assert.ErrorIs(t, err, domain.ErrParticipationNotFound)
}

func TestParticipationRepository_Transition(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewParticipationRepo(db)
	repo.strategy = fastStrategy

	mock.ExpectExec(regexp.QuoteMeta("WHERE pool_id = $1 AND user_address = $2 AND status = $11")).
		WithArgs(int64(1), "0xabc", domain.ParticipationWon, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), domain.ParticipationJoined).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Transition(context.Background(), &domain.Participation{
		PoolID: 1, UserAddress: "0xabc", Status: domain.ParticipationWon,
	}, domain.ParticipationJoined)

	require.NoError(t, err)
}

func TestParticipationRepository_Transition_Stale(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewParticipationRepo(db)
	repo.strategy = fastStrategy

	mock.ExpectExec(regexp.QuoteMeta("AND status = $11")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Transition(context.Background(), &domain.Participation{
		PoolID: 1, UserAddress: "0xabc", Status: domain.ParticipationWon,
	}, domain.ParticipationJoined)

	assert.ErrorIs(t, err, domain.ErrStaleParticipation)
}

func TestParticipationRepository_ListByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewParticipationRepo(db)
	repo.strategy = fastStrategy

	joined := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	won := joined.Add(time.Hour)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE user_address = $1")).
		WithArgs("0xabc").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "pool_id", "user_address", "status", "amount_contributed", "entries",
			"token_rewards", "tx_hash", "joined_at", "won_at", "claimed_at", "updated_at",
		}).AddRow("p-1", int64(1), "0xabc", "WON", "10", 1, "100", "0xhash", joined, won, nil, won))

	res, err := repo.ListByUser(context.Background(), "0xabc")

	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, domain.ParticipationWon, res[0].Status)
	require.NotNil(t, res[0].WonAt)
	assert.Equal(t, won, *res[0].WonAt)
	assert.Nil(t, res[0].ClaimedAt)
}

var userColumnNames = []string{"address", "telegram_chat_id", "xp", "reputation", "created_at"}

func TestUserRepository_Register_AttachesChatToSyncedUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)
	repo.strategy = fastStrategy

	chatID := int64(42)
	created := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (address) DO UPDATE SET telegram_chat_id = EXCLUDED.telegram_chat_id")).
		WithArgs("0xabc", &chatID, 0, 0, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(userColumnNames).AddRow("0xabc", int64(42), 60, 5, created))

	u, err := repo.Register(context.Background(), &domain.User{Address: "0xabc", TelegramChatID: &chatID, CreatedAt: time.Now()})

	require.NoError(t, err)
	assert.Equal(t, 60, u.XP)
	assert.Equal(t, 5, u.Reputation)
	require.NotNil(t, u.TelegramChatID)
	assert.Equal(t, int64(42), *u.TelegramChatID)
	assert.Equal(t, created, u.CreatedAt)
}

func TestUserRepository_Register_AddressTaken(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)
	repo.strategy = fastStrategy

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnRows(sqlmock.NewRows(userColumnNames))

	_, err := repo.Register(context.Background(), &domain.User{Address: "0xabc"})

	assert.ErrorIs(t, err, domain.ErrAddressTaken)
}

func TestUserRepository_GetByAddress_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)
	repo.strategy = fastStrategy

	mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
		WithArgs("0xabc").
		WillReturnRows(sqlmock.NewRows(userColumnNames))

	_, err := repo.GetByAddress(context.Background(), "0xabc")

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepository_AddReward(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)
	repo.strategy = fastStrategy

	mock.ExpectExec(regexp.QuoteMeta("SET xp = xp + $2, reputation = reputation + $3")).
		WithArgs("0xabc", 60, 5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.AddReward(context.Background(), "0xabc", domain.Reward{XP: 60, Reputation: 5})

	require.NoError(t, err)
}

func TestUserRepository_AddReward_UnknownUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)
	repo.strategy = fastStrategy

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.AddReward(context.Background(), "0xabc", domain.Reward{XP: 10})

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
