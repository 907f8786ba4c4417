package http

import (
	"shop/internal/interfaces/http/handlers"
	productHandlers "shop/internal/interfaces/http/handlers/product"
	subscriberHandlers "shop/internal/interfaces/http/handlers/subscriber"
	"shop/internal/shared/logger"
)

// allHandlers holds all HTTP handlers.
type allHandlers struct {
	healthHandler     *handlers.HealthHandler
	productHandler    *productHandlers.Handler
	subscriberHandler *subscriberHandlers.Handler
}

func newHandlers(ucs *allUseCases, pinger handlers.Pinger, log logger.Interface) *allHandlers {
	return &allHandlers{
		healthHandler: handlers.NewHealthHandler(pinger, log),
		productHandler: productHandlers.NewHandler(
			ucs.addProductUC,
			ucs.getProductUC,
			ucs.listProductsUC,
			ucs.listCreatedBetweenUC,
			ucs.countProductsUC,
			ucs.updateProductUC,
			ucs.deleteProductUC,
			log,
		),
		subscriberHandler: subscriberHandlers.NewHandler(
			ucs.addSubscriberUC,
			ucs.getSubscriberUC,
			ucs.listSubscribersUC,
			ucs.countSubscribersUC,
			ucs.updateSubscriberUC,
			ucs.deleteSubscriberUC,
			ucs.linkProductUC,
			log,
		),
	}
}
