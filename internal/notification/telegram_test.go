package notification

import (
	"context"
	"testing"
	"time"

	"github.com/rizwanmoulvi/tloot-social-pooling-platform/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func testPool() *domain.Pool {
	return &domain.Pool{
		ID: 4,
		Event: domain.Event{
			Name:  "Eras Tour",
			Venue: "Wembley",
			Date:  time.Date(2026, 8, 15, 19, 30, 0, 0, time.UTC),
		},
		EntryAmount:         decimal.RequireFromString("12.5"),
		CurrentParticipants: 3,
		MaxParticipants:     50,
		Deadline:            time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestMessages(t *testing.T) {
	p := testPool()

	assert.Contains(t, joinedText(p), "pool #4")
	assert.Contains(t, joinedText(p), "12.5 USDT")
	assert.Contains(t, joinedText(p), "3/50")
	assert.Contains(t, joinedText(p), "01 Jul 2026 00:00")

	assert.Contains(t, wonText(p), "Wembley")
	assert.Contains(t, wonText(p), "15 Aug 2026 19:30")
	assert.Contains(t, wonText(p), "20% platform fee")

	assert.Contains(t, lostText(p), "Eras Tour")
	assert.Contains(t, defaultedText(p), "Reputation -20")
}

func TestTelegramNotifier_DisabledWithoutToken(t *testing.T) {
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)

	n, err := NewTelegramNotifier("", log)
	require.NoError(t, err)

	chatID := int64(42)
	assert.NotPanics(t, func() {
		n.NotifyWon(context.Background(), &domain.User{TelegramChatID: &chatID}, testPool())
		n.NotifyJoined(context.Background(), &domain.User{}, testPool())
	})
}
