package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"shop/internal/application/subscriber/dto"
	"shop/internal/domain/product"
	"shop/internal/domain/subscriber"
	"shop/internal/domain/subscription"
	"shop/internal/shared/db"
	"shop/internal/shared/logger"
)

type LinkProductCommand struct {
	SubscriberID uint
	ProductID    uint
}

// LinkResult is the outcome of a link attempt. Subscriber is set only when
// Outcome is subscription.OutcomeLinked; Message is set only for rejections.
type LinkResult struct {
	Outcome    subscription.Outcome
	Message    string
	Subscriber *dto.SubscriberDTO
}

// rejectedError aborts the link transaction without being a fault.
type rejectedError struct {
	rejection subscription.Rejection
}

func (e *rejectedError) Error() string {
	return e.rejection.Message
}

type LinkProductUseCase struct {
	subscriberRepo subscriber.Repository
	productRepo    product.Repository
	linkRepo       subscription.LinkRepository
	txMgr          db.Transactor
	logger         logger.Interface
}

func NewLinkProductUseCase(
	subscriberRepo subscriber.Repository,
	productRepo product.Repository,
	linkRepo subscription.LinkRepository,
	txMgr db.Transactor,
	logger logger.Interface,
) *LinkProductUseCase {
	return &LinkProductUseCase{
		subscriberRepo: subscriberRepo,
		productRepo:    productRepo,
		linkRepo:       linkRepo,
		txMgr:          txMgr,
		logger:         logger,
	}
}

// Execute links a product to a subscriber. Business rejections come back as a
// LinkResult with a rejection outcome and a nil error; only faults return an error.
func (uc *LinkProductUseCase) Execute(ctx context.Context, cmd LinkProductCommand) (*LinkResult, error) {
	uc.logger.Infow("executing link product use case",
		"subscriber_id", cmd.SubscriberID,
		"product_id", cmd.ProductID,
	)

	var linked *subscriber.Subscriber
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		sub, err := uc.subscriberRepo.GetByID(txCtx, cmd.SubscriberID)
		if err != nil {
			uc.logger.Errorw("failed to get subscriber", "error", err, "subscriber_id", cmd.SubscriberID)
			return fmt.Errorf("failed to get subscriber: %w", err)
		}
		if sub == nil {
			return reject(subscription.OutcomeSubscriberNotFound, subscriber.NotFoundMessage(cmd.SubscriberID))
		}

		prod, err := uc.productRepo.GetByID(txCtx, cmd.ProductID)
		if err != nil {
			uc.logger.Errorw("failed to get product", "error", err, "product_id", cmd.ProductID)
			return fmt.Errorf("failed to get product: %w", err)
		}
		if prod == nil {
			return reject(subscription.OutcomeProductNotFound, product.NotFoundMessage(cmd.ProductID))
		}

		// a product off sale is refused before the existence query
		if rejection := subscription.CheckOnSale(prod); rejection != nil {
			return &rejectedError{rejection: *rejection}
		}

		exists, err := uc.linkRepo.Exists(txCtx, sub.ID(), prod.ID())
		if err != nil {
			uc.logger.Errorw("failed to check link", "error", err,
				"subscriber_id", sub.ID(), "product_id", prod.ID())
			return fmt.Errorf("failed to check link: %w", err)
		}
		if rejection := subscription.CheckDuplicate(sub, prod, exists); rejection != nil {
			return &rejectedError{rejection: *rejection}
		}

		link, err := subscription.NewLink(sub.ID(), prod.ID())
		if err != nil {
			return fmt.Errorf("failed to build link: %w", err)
		}
		if err := uc.linkRepo.Create(txCtx, link); err != nil {
			if stderrors.Is(err, subscription.ErrLinkExists) {
				return reject(subscription.OutcomeAlreadyLinked,
					subscription.AlreadyLinkedMessage(prod.Name(), sub.FirstName(), sub.LastName()))
			}
			uc.logger.Errorw("failed to create link", "error", err,
				"subscriber_id", sub.ID(), "product_id", prod.ID())
			return fmt.Errorf("failed to create link: %w", err)
		}

		linked, err = uc.subscriberRepo.GetByID(txCtx, sub.ID())
		if err != nil {
			return fmt.Errorf("failed to reload subscriber: %w", err)
		}
		if linked == nil {
			return fmt.Errorf("subscriber %d vanished during link", sub.ID())
		}
		return nil
	})

	var rejected *rejectedError
	if stderrors.As(err, &rejected) {
		uc.logger.Infow("link rejected",
			"subscriber_id", cmd.SubscriberID,
			"product_id", cmd.ProductID,
			"outcome", rejected.rejection.Outcome,
		)
		return &LinkResult{
			Outcome: rejected.rejection.Outcome,
			Message: rejected.rejection.Message,
		}, nil
	}
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("product linked successfully",
		"subscriber_id", cmd.SubscriberID,
		"product_id", cmd.ProductID,
	)
	return &LinkResult{
		Outcome:    subscription.OutcomeLinked,
		Subscriber: dto.ToSubscriberDTO(linked),
	}, nil
}

func reject(outcome subscription.Outcome, message string) error {
	return &rejectedError{rejection: subscription.Rejection{Outcome: outcome, Message: message}}
}
