package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChainPool is a pool record exactly as the pool manager reports it.
type ChainPool struct {
	ID              int64
	Type            PoolType
	Status          PoolStatus
	Creator         string
	EventName       string
	EntryAmount     decimal.Decimal
	TicketPrice     decimal.Decimal
	MaxParticipants int
	Deadline        time.Time
	TotalPooled     decimal.Decimal
	Winner          string
	Participants    []string
}

// CreatePoolTx is the argument set of createPool.
type CreatePoolTx struct {
	Type            PoolType
	EventName       string
	EntryAmount     decimal.Decimal
	TicketPrice     decimal.Decimal
	MaxParticipants int
	Deadline        time.Time
}

type TxResult struct {
	Hash        string `json:"hash"`
	BlockNumber uint64 `json:"block_number"`
	GasUsed     uint64 `json:"gas_used"`
	ExplorerURL string `json:"explorer_url"`
}

// JoinEvent is a decoded UserJoined log.
type JoinEvent struct {
	PoolID      int64
	User        string
	Amount      decimal.Decimal
	TlootMinted decimal.Decimal
	Tx          TxResult
}

type TokenInfo struct {
	Name        string
	Symbol      string
	TotalSupply decimal.Decimal
}
