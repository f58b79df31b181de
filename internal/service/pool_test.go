package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rizwanmoulvi/tloot-social-pooling-platform/internal/domain"
	"github.com/rizwanmoulvi/tloot-social-pooling-platform/internal/service/ports/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

const (
	managerAddr  = "0xE4478d8dcab3f8daf7b167d21fadc7e3f20599da"
	operatorAddr = "0x1111111111111111111111111111111111111111"
	aliceAddr    = "0x2222222222222222222222222222222222222222"
	bobAddr      = "0x3333333333333333333333333333333333333333"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type poolDeps struct {
	poolRepo *mocks.MockPoolRepo
	partRepo *mocks.MockParticipationRepo
	userRepo *mocks.MockUserRepo
	chain    *mocks.MockPoolChain
	notifier *mocks.MockPoolNotifier
}

func newPoolService(t *testing.T) (*PoolService, poolDeps) {
	t.Helper()
	d := poolDeps{
		poolRepo: mocks.NewMockPoolRepo(t),
		partRepo: mocks.NewMockParticipationRepo(t),
		userRepo: mocks.NewMockUserRepo(t),
		chain:    mocks.NewMockPoolChain(t),
		notifier: mocks.NewMockPoolNotifier(t),
	}
	log := newTestLogger(t)
	participations := NewParticipationService(d.partRepo, d.poolRepo, d.userRepo, d.chain, d.notifier, log)
	return NewPoolService(d.poolRepo, d.chain, participations, log), d
}

func chainPool(id int64, deadline time.Time, participants ...string) *domain.ChainPool {
	return &domain.ChainPool{
		ID:              id,
		Type:            domain.PoolTypeLuckyDraw,
		Status:          domain.PoolStatusActive,
		Creator:         operatorAddr,
		EventName:       "Eras Tour",
		EntryAmount:     decimal.NewFromInt(10),
		TicketPrice:     decimal.NewFromInt(250),
		MaxParticipants: 50,
		Deadline:        deadline,
		TotalPooled:     decimal.NewFromInt(int64(10 * len(participants))),
		Participants:    participants,
	}
}

func TestPoolService_LoadPools_SkipsFailingPools(t *testing.T) {
	svc, d := newPoolService(t)
	deadline := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)

	d.chain.EXPECT().PoolCount(mock.Anything).Return(int64(2), nil)
	d.chain.EXPECT().GetPool(mock.Anything, int64(1)).Return(nil, errors.New("execution reverted"))
	d.chain.EXPECT().GetPool(mock.Anything, int64(2)).Return(chainPool(2, deadline, aliceAddr), nil)
	d.chain.EXPECT().PoolManagerAddress().Return(managerAddr)
	d.poolRepo.EXPECT().GetMetadata(mock.Anything, int64(2)).Return(nil, nil)
	d.poolRepo.EXPECT().GetByID(mock.Anything, int64(2)).Return(nil, domain.ErrPoolNotFound)
	d.partRepo.EXPECT().ListByPool(mock.Anything, int64(2)).Return([]*domain.Participation{
		{PoolID: 2, UserAddress: "0x2222222222222222222222222222222222222222", Status: domain.ParticipationJoined},
	}, nil)

	var stored *domain.Pool
	d.poolRepo.EXPECT().Upsert(mock.Anything, mock.Anything).
		Run(func(_ context.Context, p *domain.Pool) { stored = p }).
		Return(nil)

	loaded, err := svc.LoadPools(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, loaded)
	require.NotNil(t, stored)
	assert.Equal(t, domain.DefaultVenue, stored.Event.Venue)
	assert.Equal(t, domain.DefaultDescription, stored.Event.Description)
	assert.Equal(t, "Entertainment", stored.Event.Category)
	assert.Equal(t, deadline.Add(30*24*time.Hour), stored.Event.Date)
	assert.True(t, decimal.NewFromInt(250).Equal(stored.TargetAmount))
	assert.Equal(t, domain.PoolStatusActive, stored.Status)
	assert.Equal(t, 1, stored.CurrentParticipants)
	assert.Equal(t, 1, stored.TicketsReserved)
	assert.Equal(t, 1, stored.WinnerCount)
	assert.Equal(t, "0xe4478d8dcab3f8daf7b167d21fadc7e3f20599da", stored.ContractAddress)
}

func TestPoolService_LoadPools_CountError(t *testing.T) {
	svc, d := newPoolService(t)

	d.chain.EXPECT().PoolCount(mock.Anything).Return(int64(0), errors.New("rpc down"))

	_, err := svc.LoadPools(context.Background())

	require.Error(t, err)
}

func TestPoolService_SyncPool_KeepsLocalFieldsAndMetadata(t *testing.T) {
	svc, d := newPoolService(t)
	deadline := time.Now().Add(48 * time.Hour).UTC()
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	eventDate := time.Date(2026, 12, 24, 20, 0, 0, 0, time.UTC)

	d.chain.EXPECT().GetPool(mock.Anything, int64(4)).Return(chainPool(4, deadline), nil)
	d.chain.EXPECT().PoolManagerAddress().Return(managerAddr)
	d.poolRepo.EXPECT().GetMetadata(mock.Anything, int64(4)).Return(&domain.PoolMetadata{
		PoolID: 4, Description: "Stadium show", Venue: "Wembley", Date: eventDate, Category: "Concert",
	}, nil)
	d.poolRepo.EXPECT().GetByID(mock.Anything, int64(4)).Return(&domain.Pool{
		ID:              4,
		TargetAmount:    decimal.NewFromInt(750),
		TicketsReserved: 3,
		WinnerCount:     3,
		IsUserCreated:   true,
		CreatedAt:       created,
	}, nil)
	d.poolRepo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil)
	d.partRepo.EXPECT().ListByPool(mock.Anything, int64(4)).Return(nil, nil)

	p, err := svc.SyncPool(context.Background(), 4)

	require.NoError(t, err)
	assert.Equal(t, "Wembley", p.Event.Venue)
	assert.Equal(t, "Concert", p.Event.Category)
	assert.Equal(t, eventDate, p.Event.Date)
	assert.True(t, decimal.NewFromInt(750).Equal(p.TargetAmount))
	assert.Equal(t, 3, p.WinnerCount)
	assert.Equal(t, created, p.CreatedAt)
}

func TestPoolService_SyncPool_CompletedPoolSettlesParticipants(t *testing.T) {
	svc, d := newPoolService(t)
	deadline := time.Now().Add(-time.Hour).UTC()
	cp := chainPool(5, deadline, aliceAddr, bobAddr)
	cp.Status = domain.PoolStatusCompleted
	cp.Winner = aliceAddr

	alice := &domain.User{Address: "0x2222222222222222222222222222222222222222"}
	bob := &domain.User{Address: "0x3333333333333333333333333333333333333333"}

	d.chain.EXPECT().GetPool(mock.Anything, int64(5)).Return(cp, nil)
	d.chain.EXPECT().PoolWinners(mock.Anything, int64(5)).Return([]string{aliceAddr}, nil)
	d.chain.EXPECT().PoolManagerAddress().Return(managerAddr)
	d.poolRepo.EXPECT().GetMetadata(mock.Anything, int64(5)).Return(nil, nil)
	d.poolRepo.EXPECT().GetByID(mock.Anything, int64(5)).Return(nil, domain.ErrPoolNotFound)
	d.poolRepo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil)
	d.partRepo.EXPECT().ListByPool(mock.Anything, int64(5)).Return([]*domain.Participation{
		{PoolID: 5, UserAddress: alice.Address, Status: domain.ParticipationJoined},
		{PoolID: 5, UserAddress: bob.Address, Status: domain.ParticipationJoined},
	}, nil)
	d.partRepo.EXPECT().Transition(mock.Anything, mock.MatchedBy(func(p *domain.Participation) bool {
		return p.UserAddress == alice.Address && p.Status == domain.ParticipationWon && p.WonAt != nil
	}), domain.ParticipationJoined).Return(nil)
	d.partRepo.EXPECT().Transition(mock.Anything, mock.MatchedBy(func(p *domain.Participation) bool {
		return p.UserAddress == bob.Address && p.Status == domain.ParticipationLost
	}), domain.ParticipationJoined).Return(nil)
	d.userRepo.EXPECT().AddReward(mock.Anything, alice.Address, domain.Reward{XP: domain.XPPerWin}).Return(nil)
	d.userRepo.EXPECT().GetByAddress(mock.Anything, alice.Address).Return(alice, nil)
	d.userRepo.EXPECT().GetByAddress(mock.Anything, bob.Address).Return(bob, nil)
	d.notifier.EXPECT().NotifyWon(mock.Anything, alice, mock.Anything).Return()
	d.notifier.EXPECT().NotifyLost(mock.Anything, bob, mock.Anything).Return()

	p, err := svc.SyncPool(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, domain.PoolStatusCompleted, p.Status)
	assert.Equal(t, []string{alice.Address}, p.Winners)

	time.Sleep(50 * time.Millisecond)
}

func TestPoolService_SyncPool_FullPoolIsFilling(t *testing.T) {
	svc, d := newPoolService(t)
	cp := chainPool(6, time.Now().Add(time.Hour), aliceAddr, bobAddr)
	cp.MaxParticipants = 2

	d.chain.EXPECT().GetPool(mock.Anything, int64(6)).Return(cp, nil)
	d.chain.EXPECT().PoolManagerAddress().Return(managerAddr)
	d.poolRepo.EXPECT().GetMetadata(mock.Anything, int64(6)).Return(nil, nil)
	d.poolRepo.EXPECT().GetByID(mock.Anything, int64(6)).Return(nil, domain.ErrPoolNotFound)
	d.poolRepo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil)
	d.partRepo.EXPECT().ListByPool(mock.Anything, int64(6)).Return(nil, errors.New("db down"))

	p, err := svc.SyncPool(context.Background(), 6)

	require.NoError(t, err)
	assert.Equal(t, domain.PoolStatusFilling, p.Status)
	assert.True(t, p.IsFull())
}

func TestPoolService_CreatePool_ReadOnly(t *testing.T) {
	svc, d := newPoolService(t)

	d.chain.EXPECT().CanWrite().Return(false)

	_, _, err := svc.CreatePool(context.Background(), domain.CreatePoolInput{
		EventName:         "Finals",
		PoolType:          domain.PoolTypeLuckyDraw,
		EntryAmount:       decimal.NewFromInt(10),
		TicketPrice:       decimal.NewFromInt(100),
		MaxParticipants:   10,
		DaysUntilDeadline: 7,
	})

	assert.ErrorIs(t, err, domain.ErrReadOnly)
}

func TestPoolService_CreatePool_Validation(t *testing.T) {
	svc, _ := newPoolService(t)

	tests := []struct {
		name  string
		input domain.CreatePoolInput
	}{
		{"empty name", domain.CreatePoolInput{PoolType: domain.PoolTypeLuckyDraw}},
		{"unknown type", domain.CreatePoolInput{EventName: "x", PoolType: "RAFFLE"}},
		{"zero entry", domain.CreatePoolInput{EventName: "x", PoolType: domain.PoolTypeLuckyDraw, TicketPrice: decimal.NewFromInt(1)}},
		{"no deadline", domain.CreatePoolInput{
			EventName: "x", PoolType: domain.PoolTypeLuckyDraw, MaxParticipants: 2,
			EntryAmount: decimal.NewFromInt(1), TicketPrice: decimal.NewFromInt(1),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.CreatePool(context.Background(), tt.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestPoolService_CreatePool_CommitToClaim(t *testing.T) {
	svc, d := newPoolService(t)
	eventDate := time.Now().Add(90 * 24 * time.Hour).UTC().Truncate(time.Second)
	tx := &domain.TxResult{Hash: "0xabc", BlockNumber: 10}

	d.chain.EXPECT().CanWrite().Return(true)
	d.chain.EXPECT().CreatePool(mock.Anything, mock.MatchedBy(func(in domain.CreatePoolTx) bool {
		return in.MaxParticipants == 1 && in.Type == domain.PoolTypeCommitToClaim
	})).Return(int64(7), tx, nil)
	d.chain.EXPECT().OperatorAddress().Return(operatorAddr)
	d.chain.EXPECT().PoolManagerAddress().Return(managerAddr)
	d.poolRepo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil)
	d.poolRepo.EXPECT().SaveMetadata(mock.Anything, mock.MatchedBy(func(m *domain.PoolMetadata) bool {
		return m.PoolID == 7 && m.Venue == "O2 Arena" && m.Category == domain.DefaultCategory(domain.PoolTypeCommitToClaim)
	})).Return(nil)

	pool, res, err := svc.CreatePool(context.Background(), domain.CreatePoolInput{
		EventName:         "Finals",
		EventVenue:        "O2 Arena",
		EventDate:         eventDate,
		PoolType:          domain.PoolTypeCommitToClaim,
		EntryAmount:       decimal.NewFromInt(25),
		TicketPrice:       decimal.NewFromInt(120),
		MaxParticipants:   20,
		WinnerCount:       2,
		DaysUntilDeadline: 14,
	})

	require.NoError(t, err)
	assert.Equal(t, tx, res)
	assert.Equal(t, int64(7), pool.ID)
	assert.Equal(t, 1, pool.MaxParticipants)
	// winner_count is forced to one for a single-participant pool
	assert.True(t, decimal.NewFromInt(120).Equal(pool.TargetAmount))
	require.NotNil(t, pool.CommitmentAmount)
	assert.True(t, decimal.NewFromInt(25).Equal(*pool.CommitmentAmount))
	require.NotNil(t, pool.PaymentDeadline)
	assert.Equal(t, eventDate.Add(-30*24*time.Hour), *pool.PaymentDeadline)
	assert.Equal(t, "0x1111111111111111111111111111111111111111", pool.TicketOwnerAddress)
	assert.Equal(t, 1, pool.TicketsReserved)
	assert.Equal(t, 1, pool.WinnerCount)
	assert.WithinDuration(t, time.Now().Add(14*24*time.Hour), pool.Deadline, time.Minute)
}

func TestPoolService_List_AppliesFilters(t *testing.T) {
	svc, d := newPoolService(t)

	d.poolRepo.EXPECT().List(mock.Anything).Return([]*domain.Pool{
		{ID: 3, Type: domain.PoolTypeLuckyDraw, EntryAmount: decimal.NewFromInt(5), Event: domain.Event{Name: "Jazz night"}},
		{ID: 2, Type: domain.PoolTypeCommitToClaim, EntryAmount: decimal.NewFromInt(50), Event: domain.Event{Name: "Cup final"}},
		{ID: 1, Type: domain.PoolTypeLuckyDraw, EntryAmount: decimal.NewFromInt(20), Event: domain.Event{Name: "Jazz brunch"}},
	}, nil)

	res, err := svc.List(context.Background(), domain.PoolFilters{
		Type:      domain.PoolTypeLuckyDraw,
		MinAmount: decimal.NewFromInt(10),
		Search:    "JAZZ",
	})

	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, int64(1), res[0].ID)
}

func TestPoolService_ListByCreator_InvalidAddress(t *testing.T) {
	svc, _ := newPoolService(t)

	_, err := svc.ListByCreator(context.Background(), "alice")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPoolService_SetMetadata(t *testing.T) {
	svc, d := newPoolService(t)
	date := time.Date(2027, 3, 1, 19, 0, 0, 0, time.UTC)

	d.poolRepo.EXPECT().GetByID(mock.Anything, int64(2)).Return(&domain.Pool{ID: 2, Type: domain.PoolTypeLuckyDraw}, nil)
	d.poolRepo.EXPECT().SaveMetadata(mock.Anything, mock.Anything).Return(nil)
	d.poolRepo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil)

	p, err := svc.SetMetadata(context.Background(), domain.PoolMetadata{PoolID: 2, Venue: "Wembley", Date: date})

	require.NoError(t, err)
	assert.Equal(t, "Wembley", p.Event.Venue)
	assert.Equal(t, date, p.Event.Date)
	assert.Equal(t, domain.DefaultDescription, p.Event.Description)
	assert.Equal(t, "Entertainment", p.Event.Category)
}

func TestPoolService_SetMetadata_PoolNotFound(t *testing.T) {
	svc, d := newPoolService(t)

	d.poolRepo.EXPECT().GetByID(mock.Anything, int64(9)).Return(nil, domain.ErrPoolNotFound)

	_, err := svc.SetMetadata(context.Background(), domain.PoolMetadata{PoolID: 9, Date: time.Now()})

	assert.ErrorIs(t, err, domain.ErrPoolNotFound)
}

func TestPoolService_FinalizeDue_ReadOnly(t *testing.T) {
	svc, d := newPoolService(t)

	d.chain.EXPECT().CanWrite().Return(false)

	n, err := svc.FinalizeDue(context.Background())

	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestPoolService_FinalizeDue(t *testing.T) {
	svc, d := newPoolService(t)

	d.chain.EXPECT().CanWrite().Return(true)
	d.poolRepo.EXPECT().List(mock.Anything).Return([]*domain.Pool{
		{ID: 1, Type: domain.PoolTypeLuckyDraw, Status: domain.PoolStatusFilling, CurrentParticipants: 2},
		{ID: 2, Type: domain.PoolTypeLuckyDraw, Status: domain.PoolStatusActive, CurrentParticipants: 1},
		{ID: 3, Type: domain.PoolTypeCommitToClaim, Status: domain.PoolStatusExpired, CurrentParticipants: 1},
		{ID: 4, Type: domain.PoolTypeLuckyDraw, Status: domain.PoolStatusExpired, CurrentParticipants: 0},
		{ID: 5, Type: domain.PoolTypeLuckyDraw, Status: domain.PoolStatusExpired, CurrentParticipants: 3},
	}, nil)
	d.chain.EXPECT().FinalizePool(mock.Anything, int64(1)).Return(&domain.TxResult{Hash: "0x01"}, nil)
	d.chain.EXPECT().FinalizePool(mock.Anything, int64(5)).Return(nil, errors.New("reverted"))
	d.chain.EXPECT().GetPool(mock.Anything, int64(1)).Return(nil, errors.New("rpc down"))

	n, err := svc.FinalizeDue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
