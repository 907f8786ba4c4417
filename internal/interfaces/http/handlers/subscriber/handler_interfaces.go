package subscriber

import (
	"context"

	"shop/internal/application/subscriber/dto"
	"shop/internal/application/subscriber/usecases"
)

// Use case interfaces for Handler

type addSubscriberUseCase interface {
	Execute(ctx context.Context, cmd usecases.AddSubscriberCommand) (*dto.SubscriberDTO, error)
}

type getSubscriberUseCase interface {
	Execute(ctx context.Context, subscriberID uint) (*dto.SubscriberDTO, error)
}

type listSubscribersUseCase interface {
	Execute(ctx context.Context) ([]*dto.SubscriberDTO, error)
}

type countSubscribersUseCase interface {
	Execute(ctx context.Context) (int64, error)
}

type updateSubscriberUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateSubscriberCommand) (*dto.SubscriberDTO, error)
}

type deleteSubscriberUseCase interface {
	Execute(ctx context.Context, subscriberID uint) (*dto.SubscriberDTO, error)
}

type linkProductUseCase interface {
	Execute(ctx context.Context, cmd usecases.LinkProductCommand) (*usecases.LinkResult, error)
}
