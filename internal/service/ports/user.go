package ports

import (
	"context"

	"github.com/rizwanmoulvi/tloot-social-pooling-platform/internal/domain"
)

type UserRepo interface {
	Register(ctx context.Context, user *domain.User) (*domain.User, error)
	Ensure(ctx context.Context, address string) error
	GetByAddress(ctx context.Context, address string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	AddReward(ctx context.Context, address string, reward domain.Reward) error
}
