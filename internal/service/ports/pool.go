package ports

import (
	"context"

	"github.com/rizwanmoulvi/tloot-social-pooling-platform/internal/domain"
)

type PoolRepo interface {
	Upsert(ctx context.Context, p *domain.Pool) error
	GetByID(ctx context.Context, id int64) (*domain.Pool, error)
	List(ctx context.Context) ([]*domain.Pool, error)
	ListByCreator(ctx context.Context, address string) ([]*domain.Pool, error)
	SaveMetadata(ctx context.Context, m *domain.PoolMetadata) error
	// GetMetadata returns nil without error when the pool has no metadata.
	GetMetadata(ctx context.Context, poolID int64) (*domain.PoolMetadata, error)
}
