// Package subscriber serves the /api/subscribers endpoints.
package subscriber

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"shop/internal/application/subscriber/usecases"
	productdomain "shop/internal/domain/product"
	subscriberdomain "shop/internal/domain/subscriber"
	"shop/internal/shared/logger"
	"shop/internal/shared/utils"
)

type Handler struct {
	addUC    addSubscriberUseCase
	getUC    getSubscriberUseCase
	listUC   listSubscribersUseCase
	countUC  countSubscribersUseCase
	updateUC updateSubscriberUseCase
	deleteUC deleteSubscriberUseCase
	linkUC   linkProductUseCase
	logger   logger.Interface
}

func NewHandler(
	addUC addSubscriberUseCase,
	getUC getSubscriberUseCase,
	listUC listSubscribersUseCase,
	countUC countSubscribersUseCase,
	updateUC updateSubscriberUseCase,
	deleteUC deleteSubscriberUseCase,
	linkUC linkProductUseCase,
	logger logger.Interface,
) *Handler {
	return &Handler{
		addUC:    addUC,
		getUC:    getUC,
		listUC:   listUC,
		countUC:  countUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		linkUC:   linkUC,
		logger:   logger,
	}
}

// AddSubscriber
// @Summary Add subscriber
// @Tags Subscribers
// @Accept json
// @Produce json
// @Param subscriber body SubscriberRequest true "Subscriber"
// @Success 201 {object} dto.SubscriberDTO
// @Failure 400 {object} map[string]string
// @Router /subscribers [post]
func (h *Handler) AddSubscriber(c *gin.Context) {
	var req SubscriberRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	result, err := h.addUC.Execute(c.Request.Context(), req.ToAddCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// GetSubscriber
// @Summary Get subscriber
// @Tags Subscribers
// @Produce json
// @Param id path int true "Subscriber ID"
// @Success 200 {object} dto.SubscriberDTO
// @Failure 400 {string} string "Subscriber with id {id} not found."
// @Router /subscribers/{id} [get]
func (h *Handler) GetSubscriber(c *gin.Context) {
	id, raw, ok := utils.ParseIDParam(c, "id")
	if !ok {
		utils.MessageResponse(c, http.StatusBadRequest, subscriberdomain.NotFoundMessage(raw))
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// ListSubscribers
// @Summary List subscribers
// @Tags Subscribers
// @Produce json
// @Success 200 {array} dto.SubscriberDTO
// @Router /subscribers [get]
func (h *Handler) ListSubscribers(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to list subscribers", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// CountSubscribers
// @Summary Count subscribers
// @Tags Subscribers
// @Produce plain
// @Success 200 {string} string "{n} subscribers in the database."
// @Router /subscribers/total [get]
func (h *Handler) CountSubscribers(c *gin.Context) {
	n, err := h.countUC.Execute(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to count subscribers", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.MessageResponse(c, http.StatusOK, fmt.Sprintf("%d subscribers in the database.", n))
}

// UpdateSubscriber
// @Summary Update subscriber names
// @Tags Subscribers
// @Accept json
// @Produce json
// @Param id path int true "Subscriber ID"
// @Param subscriber body SubscriberRequest true "Subscriber"
// @Success 201 {object} dto.SubscriberDTO
// @Failure 400 {object} map[string]string
// @Router /subscribers/{id} [put]
func (h *Handler) UpdateSubscriber(c *gin.Context) {
	id, raw, ok := utils.ParseIDParam(c, "id")
	if !ok {
		utils.MessageResponse(c, http.StatusBadRequest, subscriberdomain.NotFoundMessage(raw))
		return
	}

	var req SubscriberRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), req.ToUpdateCommand(id))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// DeleteSubscriber
// @Summary Delete subscriber
// @Tags Subscribers
// @Produce json
// @Param id path int true "Subscriber ID"
// @Success 200 {object} dto.SubscriberDTO
// @Failure 400 {string} string "Subscriber with id {id} not found."
// @Router /subscribers/{id} [delete]
func (h *Handler) DeleteSubscriber(c *gin.Context) {
	id, raw, ok := utils.ParseIDParam(c, "id")
	if !ok {
		utils.MessageResponse(c, http.StatusBadRequest, subscriberdomain.NotFoundMessage(raw))
		return
	}

	result, err := h.deleteUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// LinkProduct links a product to a subscriber. Rejections are answered with 201
// and the rejection text, the same status as a successful link. The subscriber
// id shares the :id wildcard with the other subscriber routes.
// @Summary Link product to subscriber
// @Tags Subscribers
// @Produce json
// @Param id path int true "Subscriber ID"
// @Param productId path int true "Product ID"
// @Success 201 {object} dto.SubscriberDTO
// @Router /subscribers/{id}/products/{productId} [post]
func (h *Handler) LinkProduct(c *gin.Context) {
	subscriberID, rawSubscriber, ok := utils.ParseIDParam(c, "id")
	if !ok {
		utils.MessageResponse(c, http.StatusCreated, subscriberdomain.NotFoundMessage(rawSubscriber))
		return
	}
	productID, rawProduct, ok := utils.ParseIDParam(c, "productId")
	if !ok {
		utils.MessageResponse(c, http.StatusCreated, productdomain.NotFoundMessage(rawProduct))
		return
	}

	result, err := h.linkUC.Execute(c.Request.Context(), usecases.LinkProductCommand{
		SubscriberID: subscriberID,
		ProductID:    productID,
	})
	if err != nil {
		h.logger.Errorw("failed to link product",
			"subscriber_id", subscriberID,
			"product_id", productID,
			"error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	if result.Outcome.IsRejection() {
		utils.MessageResponse(c, http.StatusCreated, result.Message)
		return
	}

	utils.CreatedResponse(c, result.Subscriber)
}
