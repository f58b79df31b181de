package ports

import (
	"context"

	"github.com/rizwanmoulvi/tloot-social-pooling-platform/internal/domain"
)

type ParticipationRepo interface {
	Create(ctx context.Context, p *domain.Participation) error
	Save(ctx context.Context, p *domain.Participation) error
	Transition(ctx context.Context, p *domain.Participation, prev domain.ParticipationStatus) error
	Get(ctx context.Context, poolID int64, address string) (*domain.Participation, error)
	ListByPool(ctx context.Context, poolID int64) ([]*domain.Participation, error)
	ListByUser(ctx context.Context, address string) ([]*domain.Participation, error)
}
