package http

import (
	productUsecases "shop/internal/application/product/usecases"
	subscriberUsecases "shop/internal/application/subscriber/usecases"
	"shop/internal/shared/logger"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Product
	addProductUC         *productUsecases.AddProductUseCase
	getProductUC         *productUsecases.GetProductUseCase
	listProductsUC       *productUsecases.ListProductsUseCase
	listCreatedBetweenUC *productUsecases.ListProductsCreatedBetweenUseCase
	countProductsUC      *productUsecases.CountProductsUseCase
	updateProductUC      *productUsecases.UpdateProductUseCase
	deleteProductUC      *productUsecases.DeleteProductUseCase

	// Subscriber
	addSubscriberUC    *subscriberUsecases.AddSubscriberUseCase
	getSubscriberUC    *subscriberUsecases.GetSubscriberUseCase
	listSubscribersUC  *subscriberUsecases.ListSubscribersUseCase
	countSubscribersUC *subscriberUsecases.CountSubscribersUseCase
	updateSubscriberUC *subscriberUsecases.UpdateSubscriberUseCase
	deleteSubscriberUC *subscriberUsecases.DeleteSubscriberUseCase
	linkProductUC      *subscriberUsecases.LinkProductUseCase
}

func newUseCases(repos *repositories, log logger.Interface) *allUseCases {
	return &allUseCases{
		addProductUC:         productUsecases.NewAddProductUseCase(repos.productRepo, log),
		getProductUC:         productUsecases.NewGetProductUseCase(repos.productRepo, log),
		listProductsUC:       productUsecases.NewListProductsUseCase(repos.productRepo, log),
		listCreatedBetweenUC: productUsecases.NewListProductsCreatedBetweenUseCase(repos.productRepo, log),
		countProductsUC:      productUsecases.NewCountProductsUseCase(repos.productRepo, log),
		updateProductUC:      productUsecases.NewUpdateProductUseCase(repos.productRepo, log),
		deleteProductUC:      productUsecases.NewDeleteProductUseCase(repos.productRepo, repos.linkRepo, repos.txMgr, log),

		addSubscriberUC:    subscriberUsecases.NewAddSubscriberUseCase(repos.subscriberRepo, log),
		getSubscriberUC:    subscriberUsecases.NewGetSubscriberUseCase(repos.subscriberRepo, log),
		listSubscribersUC:  subscriberUsecases.NewListSubscribersUseCase(repos.subscriberRepo, log),
		countSubscribersUC: subscriberUsecases.NewCountSubscribersUseCase(repos.subscriberRepo, log),
		updateSubscriberUC: subscriberUsecases.NewUpdateSubscriberUseCase(repos.subscriberRepo, log),
		deleteSubscriberUC: subscriberUsecases.NewDeleteSubscriberUseCase(repos.subscriberRepo, repos.linkRepo, repos.txMgr, log),
		linkProductUC: subscriberUsecases.NewLinkProductUseCase(
			repos.subscriberRepo, repos.productRepo, repos.linkRepo, repos.txMgr, log,
		),
	}
}
