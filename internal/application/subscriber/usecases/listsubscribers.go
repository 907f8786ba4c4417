package usecases

import (
	"context"
	"fmt"

	"shop/internal/application/subscriber/dto"
	"shop/internal/domain/subscriber"
	"shop/internal/shared/logger"
)

type ListSubscribersUseCase struct {
	subscriberRepo subscriber.Repository
	logger         logger.Interface
}

func NewListSubscribersUseCase(subscriberRepo subscriber.Repository, logger logger.Interface) *ListSubscribersUseCase {
	return &ListSubscribersUseCase{
		subscriberRepo: subscriberRepo,
		logger:         logger,
	}
}

func (uc *ListSubscribersUseCase) Execute(ctx context.Context) ([]*dto.SubscriberDTO, error) {
	subscribers, err := uc.subscriberRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list subscribers", "error", err)
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}

	return dto.ToSubscriberDTOList(subscribers), nil
}
