package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ParticipationStatus string

const (
	ParticipationJoined         ParticipationStatus = "JOINED"
	ParticipationWon            ParticipationStatus = "WON"
	ParticipationLost           ParticipationStatus = "LOST"
	ParticipationClaimed        ParticipationStatus = "CLAIMED"
	ParticipationPendingPayment ParticipationStatus = "PENDING_PAYMENT"
	ParticipationDefaulted      ParticipationStatus = "DEFAULTED"
)

const (
	XPPerPoolJoin              = 10
	XPPerWin                   = 50
	XPPerClaim                 = 25
	ReputationBoostOnPayment   = 5
	ReputationPenaltyOnDefault = -20
	ClaimFeePercentage         = 20
)

type Participation struct {
	ID                string              `json:"id"`
	PoolID            int64               `json:"pool_id"`
	UserAddress       string              `json:"user_address"`
	Status            ParticipationStatus `json:"status"`
	AmountContributed decimal.Decimal     `json:"amount_contributed"`
	Entries           int                 `json:"entries"`
	TokenRewards      decimal.Decimal     `json:"token_rewards"`
	TxHash            string              `json:"tx_hash,omitempty"`
	JoinedAt          time.Time           `json:"joined_at"`
	WonAt             *time.Time          `json:"won_at,omitempty"`
	ClaimedAt         *time.Time          `json:"claimed_at,omitempty"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

// Reward is the XP and reputation change caused by a status transition.
type Reward struct {
	XP         int
	Reputation int
}

func (r Reward) IsZero() bool {
	return r.XP == 0 && r.Reputation == 0
}

// RewardFor returns what a participant of a pool of type t earns when moving
// from prev to next. prev is empty for a participation seen for the first time.
// A commit-to-claim participant only reaches WON by completing the payment.
func RewardFor(t PoolType, prev, next ParticipationStatus) Reward {
	if prev == next {
		return Reward{}
	}

	var r Reward
	if prev == "" {
		r.XP += XPPerPoolJoin
	}
	switch next {
	case ParticipationWon:
		r.XP += XPPerWin
		if t == PoolTypeCommitToClaim {
			r.Reputation += ReputationBoostOnPayment
		}
	case ParticipationClaimed:
		r.XP += XPPerClaim
	case ParticipationDefaulted:
		r.Reputation += ReputationPenaltyOnDefault
	}
	return r
}

// Claim is a successful ticket claim with the platform fee owed on it.
type Claim struct {
	Participation *Participation  `json:"participation"`
	Fee           decimal.Decimal `json:"fee"`
}

// ClaimFee returns the platform share of a ticket price.
func ClaimFee(ticketPrice decimal.Decimal) decimal.Decimal {
	return ticketPrice.Mul(decimal.NewFromInt(ClaimFeePercentage)).Div(decimal.NewFromInt(100))
}
