package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rizwanmoulvi/tloot-social-pooling-platform/internal/domain"
	"github.com/rizwanmoulvi/tloot-social-pooling-platform/internal/service/ports"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/logger"
)

type UserService struct {
	repo              ports.UserRepo
	participationRepo ports.ParticipationRepo
	token             ports.TokenReader
	logger            logger.Logger
}

func NewUserService(
	repo ports.UserRepo,
	participationRepo ports.ParticipationRepo,
	token ports.TokenReader,
	logger logger.Logger,
) *UserService {
	return &UserService{
		repo:              repo,
		participationRepo: participationRepo,
		token:             token,
		logger:            logger,
	}
}

func (s *UserService) Register(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	if !domain.IsAddress(input.Address) {
		return nil, fmt.Errorf("%w: address must be 0x followed by 40 hex characters", domain.ErrValidation)
	}

	user := &domain.User{
		Address:        domain.NormalizeAddress(input.Address),
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      time.Now().UTC(),
	}

	stored, err := s.repo.Register(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("register user: %w", err)
	}

	return stored, nil
}

// Profile assembles GameFi stats for an address. A failed balance read is
// logged and reported as zero.
func (s *UserService) Profile(ctx context.Context, address string) (*domain.UserProfile, error) {
	if !domain.IsAddress(address) {
		return nil, fmt.Errorf("%w: invalid address %q", domain.ErrValidation, address)
	}
	address = domain.NormalizeAddress(address)

	user, err := s.repo.GetByAddress(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	participations, err := s.participationRepo.ListByUser(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("list participations: %w", err)
	}

	profile := &domain.UserProfile{
		User:         *user,
		Level:        user.Level(),
		TokenBalance: decimal.Zero,
		PoolsJoined:  len(participations),
	}
	for _, p := range participations {
		if p.Status == domain.ParticipationWon || p.Status == domain.ParticipationClaimed {
			profile.PoolsWon++
		}
	}

	balance, err := s.token.TokenBalance(ctx, address)
	if err != nil {
		s.logger.Warn("failed to read token balance",
			logger.String("address", address),
			logger.String("error", err.Error()),
		)
	} else {
		profile.TokenBalance = balance
	}

	return profile, nil
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}
