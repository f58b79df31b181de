package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPool_IsFull(t *testing.T) {
	p := &Pool{MaxParticipants: 3, CurrentParticipants: 2}
	assert.False(t, p.IsFull())

	p.CurrentParticipants = 3
	assert.True(t, p.IsFull())

	unlimited := &Pool{CurrentParticipants: 10}
	assert.False(t, unlimited.IsFull())
}

func TestPool_Progress(t *testing.T) {
	tests := []struct {
		name    string
		target  decimal.Decimal
		current decimal.Decimal
		want    float64
	}{
		{"no target", decimal.Zero, decimal.NewFromInt(10), 0},
		{"quarter", decimal.NewFromInt(200), decimal.NewFromInt(50), 25},
		{"overfunded", decimal.NewFromInt(100), decimal.NewFromInt(150), 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Pool{TargetAmount: tt.target, CurrentAmount: tt.current}
			assert.InDelta(t, tt.want, p.Progress(), 0.0001)
		})
	}
}

func TestPoolFilters_Match(t *testing.T) {
	pool := &Pool{
		Type:        PoolTypeLuckyDraw,
		Status:      PoolStatusActive,
		EntryAmount: decimal.NewFromInt(10),
		Event: Event{
			Name:     "Taylor Swift Eras Tour",
			Venue:    "Wembley Stadium",
			Category: "Entertainment",
		},
	}

	tests := []struct {
		name    string
		filters PoolFilters
		want    bool
	}{
		{"empty", PoolFilters{}, true},
		{"type match", PoolFilters{Type: PoolTypeLuckyDraw}, true},
		{"type mismatch", PoolFilters{Type: PoolTypeCommitToClaim}, false},
		{"status mismatch", PoolFilters{Status: PoolStatusCompleted}, false},
		{"category", PoolFilters{Category: "Entertainment"}, true},
		{"category mismatch", PoolFilters{Category: "Sports"}, false},
		{"min below", PoolFilters{MinAmount: decimal.NewFromInt(5)}, true},
		{"min above", PoolFilters{MinAmount: decimal.NewFromInt(11)}, false},
		{"max above", PoolFilters{MaxAmount: decimal.NewFromInt(10)}, true},
		{"max below", PoolFilters{MaxAmount: decimal.NewFromInt(9)}, false},
		{"search name", PoolFilters{Search: "eras"}, true},
		{"search venue", PoolFilters{Search: "WEMBLEY"}, true},
		{"search category", PoolFilters{Search: "entertain"}, true},
		{"search miss", PoolFilters{Search: "coldplay"}, false},
		{"combined", PoolFilters{Type: PoolTypeLuckyDraw, Search: "tour", MaxAmount: decimal.NewFromInt(20)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filters.Match(pool))
		})
	}
}

func TestDefaultCategory(t *testing.T) {
	assert.Equal(t, "Entertainment", DefaultCategory(PoolTypeLuckyDraw))
	assert.Equal(t, "Event", DefaultCategory(PoolTypeCommitToClaim))
}

func TestPoolType_Valid(t *testing.T) {
	assert.True(t, PoolTypeLuckyDraw.Valid())
	assert.True(t, PoolTypeCommitToClaim.Valid())
	assert.False(t, PoolType("RAFFLE").Valid())
}
