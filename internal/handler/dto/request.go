package dto

type CreatePoolRequest struct {
	EventName         string `json:"event_name" binding:"required"`
	EventDescription  string `json:"event_description"`
	EventVenue        string `json:"event_venue"`
	EventDate         string `json:"event_date"`
	EventCategory     string `json:"event_category"`
	TicketPrice       string `json:"ticket_price" binding:"required"`
	PoolType          string `json:"pool_type" binding:"required,oneof=LUCKY_DRAW COMMIT_TO_CLAIM"`
	EntryAmount       string `json:"entry_amount" binding:"required"`
	MaxParticipants   int    `json:"max_participants" binding:"gte=0"`
	WinnerCount       int    `json:"winner_count" binding:"gte=0"`
	DaysUntilDeadline int    `json:"days_until_deadline" binding:"required,gt=0"`
}

type MetadataRequest struct {
	Description string `json:"description"`
	Venue       string `json:"venue"`
	Date        string `json:"date" binding:"required"`
	Category    string `json:"category"`
}

type JoinRequest struct {
	TxHash string `json:"tx_hash" binding:"required"`
}

type ClaimRequest struct {
	Address string `json:"address" binding:"required"`
}

type CreateUserRequest struct {
	Address        string `json:"address" binding:"required"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

// PoolFilterQuery binds the listing query string.
type PoolFilterQuery struct {
	Type      string `form:"type"`
	Status    string `form:"status"`
	Category  string `form:"category"`
	MinAmount string `form:"min_amount"`
	MaxAmount string `form:"max_amount"`
	Search    string `form:"search"`
}
