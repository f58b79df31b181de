package ports

import (
	"context"

	"github.com/rizwanmoulvi/tloot-social-pooling-platform/internal/domain"
)

type PoolNotifier interface {
	NotifyJoined(ctx context.Context, user *domain.User, pool *domain.Pool)
	NotifyWon(ctx context.Context, user *domain.User, pool *domain.Pool)
	NotifyLost(ctx context.Context, user *domain.User, pool *domain.Pool)
	NotifyDefaulted(ctx context.Context, user *domain.User, pool *domain.Pool)
}
