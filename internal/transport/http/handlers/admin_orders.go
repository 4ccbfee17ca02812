package handlers

import (
	"net/http"

	"shop-service/internal/models"
	"shop-service/internal/service"
	"shop-service/internal/transport/http/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AdminOrderHandler struct {
	orders service.OrderService
	log    *zap.Logger
}

func NewAdminOrderHandler(orders service.OrderService, log *zap.Logger) *AdminOrderHandler {
	return &AdminOrderHandler{orders: orders, log: log}
}

func orderID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError("invalid id"))
		return uuid.Nil, false
	}
	return id, true
}

func (h *AdminOrderHandler) respond(c *gin.Context, ord *models.Order, err error) {
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResponse(ord))
}

// List godoc
// @Summary Список заказов с фильтрами по статусам
// @Router /admin/orders [get]
func (h *AdminOrderHandler) List(c *gin.Context) {
	limit, offset := pagination(c, 20)

	f := service.ListFilter{Limit: limit, Offset: offset}
	if raw := c.Query("user_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.NewError("invalid user_id"))
			return
		}
		f.UserID = &id
	}
	if raw := c.Query("status"); raw != "" {
		st := models.OrderStatus(raw)
		f.Status = &st
	}
	if raw := c.Query("payment_status"); raw != "" {
		ps := models.PaymentStatus(raw)
		f.PaymentStatus = &ps
	}

	orders, total, err := h.orders.ListOrders(c.Request.Context(), f)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	resp := dto.OrderListResponse{Orders: make([]dto.OrderResponse, 0, len(orders)), Total: total}
	for i := range orders {
		resp.Orders = append(resp.Orders, dto.ToOrderResponse(&orders[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary Заказ по ID
// @Router /admin/orders/{id} [get]
func (h *AdminOrderHandler) Get(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	ord, err := h.orders.GetOrder(c.Request.Context(), id)
	h.respond(c, ord, err)
}

// AddItem godoc
// @Summary Добавление строки в заказ, итог пересчитывается
// @Router /admin/orders/{id}/items [post]
func (h *AdminOrderHandler) AddItem(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var req dto.AddOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError("invalid request body"))
		return
	}

	ord, err := h.orders.AddItem(c.Request.Context(), id, req.ProductID, req.Quantity)
	h.respond(c, ord, err)
}

// UpdateItem godoc
// @Summary Изменение строки заказа, итог пересчитывается
// @Router /admin/orders/{id}/items/{itemID} [patch]
func (h *AdminOrderHandler) UpdateItem(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	itemID, err := uuid.Parse(c.Param("itemID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError("invalid item id"))
		return
	}

	var req dto.UpdateOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError("invalid request body"))
		return
	}

	ord, err := h.orders.UpdateItem(c.Request.Context(), id, itemID, service.UpdateOrderItemInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	h.respond(c, ord, err)
}

// RemoveItem godoc
// @Summary Удаление строки заказа, итог пересчитывается
// @Router /admin/orders/{id}/items/{itemID} [delete]
func (h *AdminOrderHandler) RemoveItem(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	itemID, err := uuid.Parse(c.Param("itemID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError("invalid item id"))
		return
	}

	ord, err := h.orders.RemoveItem(c.Request.Context(), id, itemID)
	h.respond(c, ord, err)
}

// UpdateStatus godoc
// @Summary Смена статуса заказа
// @Router /admin/orders/{id}/status [patch]
func (h *AdminOrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError("invalid request body"))
		return
	}

	ord, err := h.orders.UpdateStatus(c.Request.Context(), id, models.OrderStatus(req.Status))
	h.respond(c, ord, err)
}

// UpdatePaymentStatus godoc
// @Summary Смена статуса оплаты
// @Router /admin/orders/{id}/payment-status [patch]
func (h *AdminOrderHandler) UpdatePaymentStatus(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var req dto.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError("invalid request body"))
		return
	}

	ord, err := h.orders.UpdatePaymentStatus(c.Request.Context(), id, models.PaymentStatus(req.PaymentStatus))
	h.respond(c, ord, err)
}

// Delete godoc
// @Summary Удаление заказа вместе со строками и адресом
// @Router /admin/orders/{id} [delete]
func (h *AdminOrderHandler) Delete(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	if err := h.orders.DeleteOrder(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Stats godoc
// @Summary Статистика заказов для дашборда
// @Router /admin/stats [get]
func (h *AdminOrderHandler) Stats(c *gin.Context) {
	st, err := h.orders.Stats(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.StatsResponse{
		NewOrders:          st.NewCount,
		ProcessingOrders:   st.ProcessingCount,
		ShippedOrders:      st.ShippedCount,
		AvgGrandTotalCents: st.AvgGrandTotalCents,
	})
}

// Badges godoc
// @Summary Счётчики сущностей для навигации админки
// @Router /admin/badges [get]
func (h *AdminOrderHandler) Badges(c *gin.Context) {
	b, err := h.orders.Badges(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.BadgesResponse{
		Orders:     b.Orders,
		Products:   b.Products,
		Categories: b.Categories,
		Brands:     b.Brands,
		Users:      b.Users,
	})
}
