package usecases

import (
	"context"
	"fmt"

	"shop/internal/application/subscriber/dto"
	"shop/internal/domain/subscriber"
	"shop/internal/shared/errors"
	"shop/internal/shared/logger"
)

type GetSubscriberUseCase struct {
	subscriberRepo subscriber.Repository
	logger         logger.Interface
}

func NewGetSubscriberUseCase(subscriberRepo subscriber.Repository, logger logger.Interface) *GetSubscriberUseCase {
	return &GetSubscriberUseCase{
		subscriberRepo: subscriberRepo,
		logger:         logger,
	}
}

func (uc *GetSubscriberUseCase) Execute(ctx context.Context, subscriberID uint) (*dto.SubscriberDTO, error) {
	s, err := uc.subscriberRepo.GetByID(ctx, subscriberID)
	if err != nil {
		uc.logger.Errorw("failed to get subscriber", "error", err, "subscriber_id", subscriberID)
		return nil, fmt.Errorf("failed to get subscriber: %w", err)
	}
	if s == nil {
		return nil, errors.NewNotFoundError(subscriber.NotFoundMessage(subscriberID))
	}

	return dto.ToSubscriberDTO(s), nil
}
