package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type PoolType string

const (
	PoolTypeLuckyDraw     PoolType = "LUCKY_DRAW"
	PoolTypeCommitToClaim PoolType = "COMMIT_TO_CLAIM"
)

func (t PoolType) Valid() bool {
	return t == PoolTypeLuckyDraw || t == PoolTypeCommitToClaim
}

type PoolStatus string

const (
	PoolStatusActive    PoolStatus = "ACTIVE"
	PoolStatusFilling   PoolStatus = "FILLING"
	PoolStatusCompleted PoolStatus = "COMPLETED"
	PoolStatusExpired   PoolStatus = "EXPIRED"
	PoolStatusCancelled PoolStatus = "CANCELLED"
)

// Event is the ticketed event a pool collects funds for. Only the name lives on
// chain; the rest comes from pool metadata or fallback defaults.
type Event struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	Venue       string          `json:"venue"`
	TicketPrice decimal.Decimal `json:"ticket_price"`
	Category    string          `json:"category"`
}

// Pool mirrors a SimplePoolManager pool record.
type Pool struct {
	ID                  int64            `json:"id"`
	Event               Event            `json:"event"`
	Type                PoolType         `json:"type"`
	Status              PoolStatus       `json:"status"`
	TargetAmount        decimal.Decimal  `json:"target_amount"`
	CurrentAmount       decimal.Decimal  `json:"current_amount"`
	MaxParticipants     int              `json:"max_participants"`
	CurrentParticipants int              `json:"current_participants"`
	EntryAmount         decimal.Decimal  `json:"entry_amount"`
	CommitmentAmount    *decimal.Decimal `json:"commitment_amount,omitempty"`
	Deadline            time.Time        `json:"deadline"`
	PaymentDeadline     *time.Time       `json:"payment_deadline,omitempty"`
	TicketsReserved     int              `json:"tickets_reserved"`
	WinnerCount         int              `json:"winner_count"`
	Winners             []string         `json:"winners"`
	CreatorAddress      string           `json:"creator_address"`
	IsUserCreated       bool             `json:"is_user_created"`
	TicketOwnerAddress  string           `json:"ticket_owner_address,omitempty"`
	ContractAddress     string           `json:"contract_address"`
	CreatedAt           time.Time        `json:"created_at"`
	SyncedAt            time.Time        `json:"synced_at"`
}

func (p *Pool) IsFull() bool {
	return p.MaxParticipants > 0 && p.CurrentParticipants >= p.MaxParticipants
}

// Progress returns the funded share of the target in percent, capped at 100.
func (p *Pool) Progress() float64 {
	if !p.TargetAmount.IsPositive() {
		return 0
	}
	pct := p.CurrentAmount.Div(p.TargetAmount).Mul(decimal.NewFromInt(100))
	if pct.GreaterThan(decimal.NewFromInt(100)) {
		return 100
	}
	return pct.InexactFloat64()
}

// PoolMetadata holds event details that are not stored on chain.
type PoolMetadata struct {
	PoolID      int64     `json:"pool_id"`
	Description string    `json:"description"`
	Venue       string    `json:"venue"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category"`
}

type PoolFilters struct {
	Type      PoolType
	Status    PoolStatus
	Category  string
	MinAmount decimal.Decimal
	MaxAmount decimal.Decimal
	Search    string
}

// Match reports whether the pool passes every filter that is set. Zero amounts
// and empty strings mean "unset".
func (f PoolFilters) Match(p *Pool) bool {
	if f.Type != "" && p.Type != f.Type {
		return false
	}
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.Category != "" && p.Event.Category != f.Category {
		return false
	}
	if !f.MinAmount.IsZero() && p.EntryAmount.LessThan(f.MinAmount) {
		return false
	}
	if !f.MaxAmount.IsZero() && p.EntryAmount.GreaterThan(f.MaxAmount) {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		return strings.Contains(strings.ToLower(p.Event.Name), q) ||
			strings.Contains(strings.ToLower(p.Event.Venue), q) ||
			strings.Contains(strings.ToLower(p.Event.Category), q)
	}
	return true
}

type CreatePoolInput struct {
	EventName         string
	EventDescription  string
	EventVenue        string
	EventDate         time.Time
	EventCategory     string
	TicketPrice       decimal.Decimal
	PoolType          PoolType
	EntryAmount       decimal.Decimal
	MaxParticipants   int
	WinnerCount       int
	DaysUntilDeadline int
}

const (
	DefaultVenue       = "Venue TBA"
	DefaultDescription = "Event details will be shared after pool closes"
	// EventDateOffset is how long after the pool deadline the event is assumed
	// to happen when no metadata exists.
	EventDateOffset = 30 * 24 * time.Hour
)

// DefaultCategory is the category shown for pools without metadata.
func DefaultCategory(t PoolType) string {
	if t == PoolTypeLuckyDraw {
		return "Entertainment"
	}
	return "Event"
}
