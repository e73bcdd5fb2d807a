package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/ap_reconciliation_app/internal/core/ports/services"
	"github.com/SscSPs/ap_reconciliation_app/internal/dto"
	"github.com/SscSPs/ap_reconciliation_app/internal/middleware"
)

// purchaseOrderHandler handles HTTP requests related to purchase orders.
type purchaseOrderHandler struct {
	poService portssvc.PurchaseOrderSvcFacade
}

// RegisterPurchaseOrderRoutes registers routes related to purchase orders.
func RegisterPurchaseOrderRoutes(rg *gin.RouterGroup, poService portssvc.PurchaseOrderSvcFacade) {
	RegisterValidators()
	h := &purchaseOrderHandler{poService: poService}

	pos := rg.Group("/purchase-orders")
	{
		pos.POST("", h.createPurchaseOrder)
		pos.GET("/:poID", h.getPurchaseOrder)
	}
}

// createPurchaseOrder godoc
// @Summary Create a purchase order
// @Description Stores a purchase order that invoices can later be matched against
// @Tags purchase-orders
// @Accept json
// @Produce json
// @Param purchase_order body dto.CreatePurchaseOrderRequest true "Purchase order"
// @Success 201 {object} dto.PurchaseOrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "PO number already exists for the vendor"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /purchase-orders [post]
func (h *purchaseOrderHandler) createPurchaseOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePurchaseOrder", slog.String("error", err.Error()))
		respondBindError(c, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	po, err := h.poService.CreatePurchaseOrder(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create purchase order")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPurchaseOrderResponse(po))
}

// getPurchaseOrder godoc
// @Summary Get a purchase order by ID
// @Tags purchase-orders
// @Produce json
// @Param poID path string true "Purchase order ID"
// @Success 200 {object} dto.PurchaseOrderResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /purchase-orders/{poID} [get]
func (h *purchaseOrderHandler) getPurchaseOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("purchase_order_id", c.Param("poID")))

	po, err := h.poService.GetPurchaseOrderByID(c.Request.Context(), c.Param("poID"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve purchase order")
		return
	}
	c.JSON(http.StatusOK, dto.ToPurchaseOrderResponse(po))
}
