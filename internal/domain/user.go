package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	Address        string    `json:"address"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	XP             int       `json:"xp"`
	Reputation     int       `json:"reputation"`
	CreatedAt      time.Time `json:"created_at"`
}

// Level derives the GameFi level from XP: one level per 100 XP, starting at 1.
func (u *User) Level() int {
	return u.XP/100 + 1
}

type UserProfile struct {
	User
	Level        int             `json:"level"`
	TokenBalance decimal.Decimal `json:"token_balance"`
	PoolsJoined  int             `json:"pools_joined"`
	PoolsWon     int             `json:"pools_won"`
}

type CreateUserInput struct {
	Address        string
	TelegramChatID *int64
}
