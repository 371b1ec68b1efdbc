// internal/handlers/order.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/dukan-admin/internal/drawer"
	"github.com/javajoker/dukan-admin/internal/i18n"
	"github.com/javajoker/dukan-admin/internal/models"
	"github.com/javajoker/dukan-admin/internal/services"
	"github.com/javajoker/dukan-admin/internal/utils"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

type UpdateStatusRequest struct {
	Status models.OrderStatus `json:"status" validate:"required,order_status"`
}

// GET /orders?q=&view=orders&refresh=1
// Rows are returned per line item unless view=orders asks for whole orders.
func (h *OrderHandler) GetOrders(c *gin.Context) {
	if err := h.orderService.Sync(c.Request.Context(), refreshRequested(c)); err != nil {
		respondError(c, err)
		return
	}

	query := c.Query("q")

	if c.Query("view") == "orders" {
		orders := h.orderService.Search(query)
		utils.SuccessResponseWithMeta(c, orders, gin.H{"query": query, "total": len(orders)})
		return
	}

	rows := h.orderService.Rows(query)
	utils.SuccessResponseWithMeta(c, rows, gin.H{"query": query, "total": len(rows)})
}

// GET /orders/:id/items/:itemId
func (h *OrderHandler) OpenDrawer(c *gin.Context) {
	sess := utils.GetSessionFromContext(c)

	detail, err := h.orderService.OpenDrawer(sess, c.Param("id"), c.Param("itemId"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, detail)
}

// DELETE /orders/drawer
func (h *OrderHandler) CloseDrawer(c *gin.Context) {
	h.orderService.CloseDrawer(utils.GetSessionFromContext(c))
	utils.SuccessResponse(c, nil)
}

// PUT /orders/:id/items/:itemId/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	sess := utils.GetSessionFromContext(c)

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	detail, err := h.orderService.ChangeStatus(c.Request.Context(), sess, c.Param("id"), c.Param("itemId"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	drawerResponse(c, i18n.T(lang, i18n.KeyOrderStatusUpdated), detail)
}

// POST /orders/:id/items/:itemId/cancel
func (h *OrderHandler) RequestCancel(c *gin.Context) {
	sess := utils.GetSessionFromContext(c)

	detail, err := h.orderService.RequestCancel(sess, c.Param("id"), c.Param("itemId"))
	if err != nil {
		respondError(c, err)
		return
	}

	drawerResponse(c, i18n.T(utils.GetLangFromContext(c), i18n.KeyOrderConfirmRequired), detail)
}

// DELETE /orders/:id/items/:itemId/cancel
func (h *OrderHandler) AbortCancel(c *gin.Context) {
	sess := utils.GetSessionFromContext(c)

	detail, err := h.orderService.AbortCancel(sess, c.Param("id"), c.Param("itemId"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, detail)
}

// POST /orders/:id/items/:itemId/cancel/confirm
func (h *OrderHandler) ConfirmCancel(c *gin.Context) {
	sess := utils.GetSessionFromContext(c)

	detail, err := h.orderService.ConfirmCancel(c.Request.Context(), sess, c.Param("id"), c.Param("itemId"))
	if err != nil {
		respondError(c, err)
		return
	}

	drawerResponse(c, i18n.T(utils.GetLangFromContext(c), i18n.KeyOrderCancelled), detail)
}

func drawerResponse(c *gin.Context, message string, detail drawer.Detail) {
	utils.SuccessResponse(c, gin.H{
		"message": message,
		"drawer":  detail,
	})
}
