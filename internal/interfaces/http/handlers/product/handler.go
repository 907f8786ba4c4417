// Package product serves the /api/products endpoints.
package product

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"shop/internal/application/product/usecases"
	productdomain "shop/internal/domain/product"
	"shop/internal/shared/biztime"
	"shop/internal/shared/logger"
	"shop/internal/shared/utils"
)

type Handler struct {
	addUC            addProductUseCase
	getUC            getProductUseCase
	listUC           listProductsUseCase
	createdBetweenUC listProductsCreatedBetweenUseCase
	countUC          countProductsUseCase
	updateUC         updateProductUseCase
	deleteUC         deleteProductUseCase
	logger           logger.Interface
}

func NewHandler(
	addUC addProductUseCase,
	getUC getProductUseCase,
	listUC listProductsUseCase,
	createdBetweenUC listProductsCreatedBetweenUseCase,
	countUC countProductsUseCase,
	updateUC updateProductUseCase,
	deleteUC deleteProductUseCase,
	logger logger.Interface,
) *Handler {
	return &Handler{
		addUC:            addUC,
		getUC:            getUC,
		listUC:           listUC,
		createdBetweenUC: createdBetweenUC,
		countUC:          countUC,
		updateUC:         updateUC,
		deleteUC:         deleteUC,
		logger:           logger,
	}
}

// AddProduct creates a product
// @Summary Add product
// @Tags Products
// @Accept json
// @Produce json
// @Param product body ProductRequest true "Product"
// @Success 201 {object} dto.ProductDTO
// @Failure 400 {object} map[string]string
// @Router /products [post]
func (h *Handler) AddProduct(c *gin.Context) {
	var req ProductRequest
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

// GetProduct returns one product
// @Summary Get product
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} dto.ProductDTO
// @Failure 400 {string} string "Product with id {id} not found."
// @Router /products/{id} [get]
func (h *Handler) GetProduct(c *gin.Context) {
	id, raw, ok := utils.ParseIDParam(c, "id")
	if !ok {
		utils.MessageResponse(c, http.StatusBadRequest, productdomain.NotFoundMessage(raw))
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// ListProducts returns every product in creation order
// @Summary List products
// @Tags Products
// @Produce json
// @Success 200 {array} dto.ProductDTO
// @Router /products [get]
func (h *Handler) ListProducts(c *gin.Context) {
	h.list(c, usecases.ScopeAll)
}

// ListPopularProducts returns products ordered by subscriber count
// @Summary List products by popularity
// @Tags Products
// @Produce json
// @Success 200 {array} dto.ProductDTO
// @Router /products/total/popular [get]
func (h *Handler) ListPopularProducts(c *gin.Context) {
	h.list(c, usecases.ScopePopular)
}

func (h *Handler) list(c *gin.Context, scope usecases.Scope) {
	result, err := h.listUC.Execute(c.Request.Context(), scope)
	if err != nil {
		h.logger.Errorw("failed to list products", "scope", scope, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// ListProductsCreatedBetween returns products created inside an inclusive range
// @Summary List products created between two dates
// @Tags Products
// @Produce json
// @Param startDate query string true "Range start (yyyy-MM-ddTHH:mm:ss, RFC 3339 or yyyy-MM-dd)"
// @Param endDate query string true "Range end (yyyy-MM-ddTHH:mm:ss, RFC 3339 or yyyy-MM-dd)"
// @Success 200 {array} dto.ProductDTO
// @Failure 400 {object} map[string]string
// @Router /products/date-range [get]
func (h *Handler) ListProductsCreatedBetween(c *gin.Context) {
	fields := map[string]string{}

	start, err := parseBound(c, "startDate", biztime.ParseRangeStart)
	if err != nil {
		fields["startDate"] = err.Error()
	}
	end, err := parseBound(c, "endDate", biztime.ParseRangeEnd)
	if err != nil {
		fields["endDate"] = err.Error()
	}
	if len(fields) > 0 {
		utils.FieldErrorsResponse(c, fields)
		return
	}

	result, err := h.createdBetweenUC.Execute(c.Request.Context(), usecases.CreatedBetweenQuery{Start: start, End: end})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// CountProducts counts every product
// @Summary Count products
// @Tags Products
// @Produce plain
// @Success 200 {string} string "{n} products in the database."
// @Router /products/total [get]
func (h *Handler) CountProducts(c *gin.Context) {
	h.count(c, usecases.ScopeAll, "%d products in the database.")
}

// CountSoldProducts counts products with at least one subscriber
// @Summary Count sold products
// @Tags Products
// @Produce plain
// @Success 200 {string} string "{n} sold products."
// @Router /products/total/sold [get]
func (h *Handler) CountSoldProducts(c *gin.Context) {
	h.count(c, usecases.ScopeSold, "%d sold products.")
}

// CountActiveProducts counts products under sale
// @Summary Count active products
// @Tags Products
// @Produce plain
// @Success 200 {string} string "{n} active products."
// @Router /products/total/active [get]
func (h *Handler) CountActiveProducts(c *gin.Context) {
	h.count(c, usecases.ScopeActive, "%d active products.")
}

func (h *Handler) count(c *gin.Context, scope usecases.Scope, format string) {
	n, err := h.countUC.Execute(c.Request.Context(), scope)
	if err != nil {
		h.logger.Errorw("failed to count products", "scope", scope, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.MessageResponse(c, http.StatusOK, fmt.Sprintf(format, n))
}

// UpdateProduct replaces name and sale status
// @Summary Update product
// @Tags Products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param product body ProductRequest true "Product"
// @Success 201 {object} dto.ProductDTO
// @Failure 400 {object} map[string]string
// @Router /products/{id} [put]
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, raw, ok := utils.ParseIDParam(c, "id")
	if !ok {
		utils.MessageResponse(c, http.StatusBadRequest, productdomain.NotFoundMessage(raw))
		return
	}

	var req ProductRequest
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

// DeleteProduct removes a product and its links
// @Summary Delete product
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} dto.ProductDTO
// @Failure 400 {string} string "Product with id {id} not found."
// @Router /products/{id} [delete]
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, raw, ok := utils.ParseIDParam(c, "id")
	if !ok {
		utils.MessageResponse(c, http.StatusBadRequest, productdomain.NotFoundMessage(raw))
		return
	}

	result, err := h.deleteUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}
