package dto

import (
	"time"

	"github.com/rizwanmoulvi/tloot-social-pooling-platform/internal/domain"
)

type EventResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Venue       string `json:"venue"`
	TicketPrice string `json:"ticket_price"`
	Category    string `json:"category"`
}

type PoolResponse struct {
	ID                  int64         `json:"id"`
	Event               EventResponse `json:"event"`
	Type                string        `json:"type"`
	Status              string        `json:"status"`
	TargetAmount        string        `json:"target_amount"`
	CurrentAmount       string        `json:"current_amount"`
	Progress            float64       `json:"progress"`
	MaxParticipants     int           `json:"max_participants"`
	CurrentParticipants int           `json:"current_participants"`
	EntryAmount         string        `json:"entry_amount"`
	CommitmentAmount    *string       `json:"commitment_amount,omitempty"`
	Deadline            string        `json:"deadline"`
	PaymentDeadline     *string       `json:"payment_deadline,omitempty"`
	TicketsReserved     int           `json:"tickets_reserved"`
	WinnerCount         int           `json:"winner_count"`
	Winners             []string      `json:"winners"`
	CreatorAddress      string        `json:"creator_address"`
	IsUserCreated       bool          `json:"is_user_created"`
	TicketOwnerAddress  string        `json:"ticket_owner_address,omitempty"`
	ContractAddress     string        `json:"contract_address"`
	CreatedAt           string        `json:"created_at"`
	SyncedAt            string        `json:"synced_at"`
}

type TxResponse struct {
	Hash        string `json:"hash"`
	BlockNumber uint64 `json:"block_number"`
	GasUsed     uint64 `json:"gas_used"`
	ExplorerURL string `json:"explorer_url,omitempty"`
}

type CreatePoolResponse struct {
	Pool PoolResponse `json:"pool"`
	Tx   TxResponse   `json:"tx"`
}

type ParticipationResponse struct {
	ID                string  `json:"id"`
	PoolID            int64   `json:"pool_id"`
	UserAddress       string  `json:"user_address"`
	Status            string  `json:"status"`
	AmountContributed string  `json:"amount_contributed"`
	Entries           int     `json:"entries"`
	TokenRewards      string  `json:"token_rewards"`
	TxHash            string  `json:"tx_hash,omitempty"`
	JoinedAt          string  `json:"joined_at"`
	WonAt             *string `json:"won_at,omitempty"`
	ClaimedAt         *string `json:"claimed_at,omitempty"`
}

type ClaimResponse struct {
	Participation ParticipationResponse `json:"participation"`
	Fee           string                `json:"fee"`
}

type UserResponse struct {
	Address        string `json:"address"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	XP             int    `json:"xp"`
	Level          int    `json:"level"`
	Reputation     int    `json:"reputation"`
	CreatedAt      string `json:"created_at"`
}

type ProfileResponse struct {
	UserResponse
	TokenBalance string `json:"token_balance"`
	PoolsJoined  int    `json:"pools_joined"`
	PoolsWon     int    `json:"pools_won"`
}

type SyncResponse struct {
	Loaded int `json:"loaded"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToPoolResponse(p *domain.Pool) PoolResponse {
	resp := PoolResponse{
		ID: p.ID,
		Event: EventResponse{
			ID:          p.Event.ID,
			Name:        p.Event.Name,
			Description: p.Event.Description,
			Date:        p.Event.Date.Format(time.RFC3339),
			Venue:       p.Event.Venue,
			TicketPrice: p.Event.TicketPrice.String(),
			Category:    p.Event.Category,
		},
		Type:                string(p.Type),
		Status:              string(p.Status),
		TargetAmount:        p.TargetAmount.String(),
		CurrentAmount:       p.CurrentAmount.String(),
		Progress:            p.Progress(),
		MaxParticipants:     p.MaxParticipants,
		CurrentParticipants: p.CurrentParticipants,
		EntryAmount:         p.EntryAmount.String(),
		Deadline:            p.Deadline.Format(time.RFC3339),
		TicketsReserved:     p.TicketsReserved,
		WinnerCount:         p.WinnerCount,
		Winners:             p.Winners,
		CreatorAddress:      p.CreatorAddress,
		IsUserCreated:       p.IsUserCreated,
		TicketOwnerAddress:  p.TicketOwnerAddress,
		ContractAddress:     p.ContractAddress,
		CreatedAt:           p.CreatedAt.Format(time.RFC3339),
		SyncedAt:            p.SyncedAt.Format(time.RFC3339),
	}
	if resp.Winners == nil {
		resp.Winners = []string{}
	}
	if p.CommitmentAmount != nil {
		v := p.CommitmentAmount.String()
		resp.CommitmentAmount = &v
	}
	if p.PaymentDeadline != nil {
		resp.PaymentDeadline = formatTime(p.PaymentDeadline)
	}
	return resp
}

func ToTxResponse(tx *domain.TxResult) TxResponse {
	if tx == nil {
		return TxResponse{}
	}
	return TxResponse{
		Hash:        tx.Hash,
		BlockNumber: tx.BlockNumber,
		GasUsed:     tx.GasUsed,
		ExplorerURL: tx.ExplorerURL,
	}
}

func ToParticipationResponse(p *domain.Participation) ParticipationResponse {
	return ParticipationResponse{
		ID:                p.ID,
		PoolID:            p.PoolID,
		UserAddress:       p.UserAddress,
		Status:            string(p.Status),
		AmountContributed: p.AmountContributed.String(),
		Entries:           p.Entries,
		TokenRewards:      p.TokenRewards.String(),
		TxHash:            p.TxHash,
		JoinedAt:          p.JoinedAt.Format(time.RFC3339),
		WonAt:             formatTime(p.WonAt),
		ClaimedAt:         formatTime(p.ClaimedAt),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		Address:        u.Address,
		TelegramChatID: u.TelegramChatID,
		XP:             u.XP,
		Level:          u.Level(),
		Reputation:     u.Reputation,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

func ToProfileResponse(p *domain.UserProfile) ProfileResponse {
	return ProfileResponse{
		UserResponse: ToUserResponse(&p.User),
		TokenBalance: p.TokenBalance.String(),
		PoolsJoined:  p.PoolsJoined,
		PoolsWon:     p.PoolsWon,
	}
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
