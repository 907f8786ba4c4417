package usecases

import (
	"context"
	"fmt"

	"shop/internal/application/subscriber/dto"
	"shop/internal/domain/subscriber"
	"shop/internal/domain/subscription"
	"shop/internal/shared/db"
	"shop/internal/shared/errors"
	"shop/internal/shared/logger"
)

type DeleteSubscriberUseCase struct {
	subscriberRepo subscriber.Repository
	linkRepo       subscription.LinkRepository
	txMgr          db.Transactor
	logger         logger.Interface
}

func NewDeleteSubscriberUseCase(
	subscriberRepo subscriber.Repository,
	linkRepo subscription.LinkRepository,
	txMgr db.Transactor,
	logger logger.Interface,
) *DeleteSubscriberUseCase {
	return &DeleteSubscriberUseCase{
		subscriberRepo: subscriberRepo,
		linkRepo:       linkRepo,
		txMgr:          txMgr,
		logger:         logger,
	}
}

// Execute deletes the subscriber together with its links, so no product keeps
// listing it. The returned view is the subscriber as it was before deletion.
func (uc *DeleteSubscriberUseCase) Execute(ctx context.Context, subscriberID uint) (*dto.SubscriberDTO, error) {
	uc.logger.Infow("executing delete subscriber use case", "subscriber_id", subscriberID)

	var deleted *subscriber.Subscriber
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		s, err := uc.subscriberRepo.GetByID(txCtx, subscriberID)
		if err != nil {
			uc.logger.Errorw("failed to get subscriber", "error", err, "subscriber_id", subscriberID)
			return fmt.Errorf("failed to get subscriber: %w", err)
		}
		if s == nil {
			return errors.NewNotFoundError(subscriber.NotFoundMessage(subscriberID))
		}

		if err := uc.linkRepo.DeleteBySubscriberID(txCtx, subscriberID); err != nil {
			uc.logger.Errorw("failed to unlink subscriber", "error", err, "subscriber_id", subscriberID)
			return fmt.Errorf("failed to unlink subscriber: %w", err)
		}

		if err := uc.subscriberRepo.Delete(txCtx, subscriberID); err != nil {
			uc.logger.Errorw("failed to delete subscriber", "error", err, "subscriber_id", subscriberID)
			return fmt.Errorf("failed to delete subscriber: %w", err)
		}

		deleted = s
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("subscriber deleted successfully", "subscriber_id", subscriberID)
	return dto.ToSubscriberDTO(deleted), nil
}
