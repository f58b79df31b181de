package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rizwanmoulvi/tloot-social-pooling-platform/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const dateLayout = "02 Jan 2006 15:04"

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyJoined(ctx context.Context, user *domain.User, pool *domain.Pool) {
	n.send(ctx, user.TelegramChatID, joinedText(pool))
}

func (n *TelegramNotifier) NotifyWon(ctx context.Context, user *domain.User, pool *domain.Pool) {
	n.send(ctx, user.TelegramChatID, wonText(pool))
}

func (n *TelegramNotifier) NotifyLost(ctx context.Context, user *domain.User, pool *domain.Pool) {
	n.send(ctx, user.TelegramChatID, lostText(pool))
}

func (n *TelegramNotifier) NotifyDefaulted(ctx context.Context, user *domain.User, pool *domain.Pool) {
	n.send(ctx, user.TelegramChatID, defaultedText(pool))
}

func joinedText(pool *domain.Pool) string {
	return fmt.Sprintf(
		"*You joined pool #%d*\n\n"+"Event: %s\n"+"Entry: %s USDT\n"+"Participants: %d/%d\n"+"Deadline (UTC): %s",
		pool.ID, pool.Event.Name, pool.EntryAmount.String(),
		pool.CurrentParticipants, pool.MaxParticipants,
		pool.Deadline.UTC().Format(dateLayout),
	)
}

func wonText(pool *domain.Pool) string {
	return fmt.Sprintf(
		"*You won a ticket!*\n\n"+"Event: %s\n"+"Venue: %s\n"+"Date (UTC): %s\n"+"Claim it from pool #%d. A %d%% platform fee applies.",
		pool.Event.Name, pool.Event.Venue, pool.Event.Date.UTC().Format(dateLayout),
		pool.ID, domain.ClaimFeePercentage,
	)
}

func lostText(pool *domain.Pool) string {
	return fmt.Sprintf(
		"*Pool #%d has been drawn*\n\n"+"Event: %s\n"+"You were not selected this time. Your TLOOT rewards stay in your wallet.",
		pool.ID, pool.Event.Name,
	)
}

func defaultedText(pool *domain.Pool) string {
	return fmt.Sprintf(
		"*Payment deadline missed*\n\n"+"Event: %s\n"+"Your commitment in pool #%d was not completed in time. Reputation %d.",
		pool.Event.Name, pool.ID, domain.ReputationPenaltyOnDefault,
	)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
