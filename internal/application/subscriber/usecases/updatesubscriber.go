package usecases

import (
	"context"
	"fmt"

	"shop/internal/application/subscriber/dto"
	"shop/internal/domain/subscriber"
	"shop/internal/shared/errors"
	"shop/internal/shared/logger"
)

type UpdateSubscriberCommand struct {
	ID        uint
	FirstName string
	LastName  string
}

type UpdateSubscriberUseCase struct {
	subscriberRepo subscriber.Repository
	logger         logger.Interface
}

func NewUpdateSubscriberUseCase(subscriberRepo subscriber.Repository, logger logger.Interface) *UpdateSubscriberUseCase {
	return &UpdateSubscriberUseCase{
		subscriberRepo: subscriberRepo,
		logger:         logger,
	}
}

func (uc *UpdateSubscriberUseCase) Execute(ctx context.Context, cmd UpdateSubscriberCommand) (*dto.SubscriberDTO, error) {
	uc.logger.Infow("executing update subscriber use case", "subscriber_id", cmd.ID)

	s, err := uc.subscriberRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		uc.logger.Errorw("failed to get subscriber", "error", err, "subscriber_id", cmd.ID)
		return nil, fmt.Errorf("failed to get subscriber: %w", err)
	}
	if s == nil {
		return nil, errors.NewNotFoundError(subscriber.NotFoundMessage(cmd.ID))
	}

	if err := s.Rename(cmd.FirstName, cmd.LastName); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.subscriberRepo.Update(ctx, s); err != nil {
		uc.logger.Errorw("failed to update subscriber", "error", err, "subscriber_id", cmd.ID)
		return nil, fmt.Errorf("failed to update subscriber: %w", err)
	}

	uc.logger.Infow("subscriber updated successfully", "subscriber_id", cmd.ID)
	return dto.ToSubscriberDTO(s), nil
}
