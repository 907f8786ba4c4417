package usecases

import (
	"context"
	"fmt"

	"shop/internal/domain/subscriber"
	"shop/internal/shared/logger"
)

type CountSubscribersUseCase struct {
	subscriberRepo subscriber.Repository
	logger         logger.Interface
}

func NewCountSubscribersUseCase(subscriberRepo subscriber.Repository, logger logger.Interface) *CountSubscribersUseCase {
	return &CountSubscribersUseCase{
		subscriberRepo: subscriberRepo,
		logger:         logger,
	}
}

func (uc *CountSubscribersUseCase) Execute(ctx context.Context) (int64, error) {
	count, err := uc.subscriberRepo.Count(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count subscribers", "error", err)
		return 0, fmt.Errorf("failed to count subscribers: %w", err)
	}
	return count, nil
}
