package usecases

import (
	"context"
	"fmt"

	"shop/internal/application/subscriber/dto"
	"shop/internal/domain/subscriber"
	"shop/internal/shared/errors"
	"shop/internal/shared/logger"
)

type AddSubscriberCommand struct {
	FirstName string
	LastName  string
}

type AddSubscriberUseCase struct {
	subscriberRepo subscriber.Repository
	logger         logger.Interface
}

func NewAddSubscriberUseCase(subscriberRepo subscriber.Repository, logger logger.Interface) *AddSubscriberUseCase {
	return &AddSubscriberUseCase{
		subscriberRepo: subscriberRepo,
		logger:         logger,
	}
}

func (uc *AddSubscriberUseCase) Execute(ctx context.Context, cmd AddSubscriberCommand) (*dto.SubscriberDTO, error) {
	uc.logger.Infow("executing add subscriber use case")

	s, err := subscriber.NewSubscriber(cmd.FirstName, cmd.LastName)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.subscriberRepo.Create(ctx, s); err != nil {
		uc.logger.Errorw("failed to create subscriber", "error", err)
		return nil, fmt.Errorf("failed to create subscriber: %w", err)
	}

	uc.logger.Infow("subscriber created successfully", "subscriber_id", s.ID())
	return dto.ToSubscriberDTO(s), nil
}
