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

type OrderHandler struct {
	orders service.OrderService
	cart   service.CartService
	log    *zap.Logger
}

func NewOrderHandler(orders service.OrderService, cart service.CartService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{orders: orders, cart: cart, log: log}
}

// Checkout godoc
// @Summary Оформление заказа из корзины
// @Router /api/checkout [post]
func (h *OrderHandler) Checkout(c *gin.Context) {
	uid, ok := service.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewError("unauthorized"))
		return
	}

	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError("invalid request body"))
		return
	}

	// гость мог собрать корзину до входа
	adoptGuestCart(c, h.cart, uid, h.log)

	cartID := uid.String()
	cart, err := h.cart.Get(c.Request.Context(), cartID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if len(cart.Items) == 0 {
		respondError(c, h.log, service.ErrCartEmpty)
		return
	}

	items := make([]service.PlaceOrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		items = append(items, service.PlaceOrderItem{ProductID: line.ProductID, Quantity: line.Quantity})
	}

	ord, err := h.orders.PlaceOrder(c.Request.Context(), service.PlaceOrderInput{
		Items:               items,
		PaymentMethod:       models.PaymentMethod(req.PaymentMethod),
		CurrencyCode:        req.CurrencyCode,
		ShippingMethod:      req.ShippingMethod,
		ShippingAmountCents: req.ShippingAmountCents,
		Notes:               req.Notes,
		Address: service.AddressInput{
			FirstName:     req.Address.FirstName,
			LastName:      req.Address.LastName,
			Phone:         req.Address.Phone,
			StreetAddress: req.Address.StreetAddress,
			City:          req.Address.City,
			State:         req.Address.State,
			ZipCode:       req.Address.ZipCode,
		},
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	// корзина выполнила свою роль
	if err := h.cart.Clear(c.Request.Context(), cartID); err != nil {
		h.log.Warn("failed to clear cart after checkout", zap.String("cart_id", cartID), zap.Error(err))
	}

	h.log.Info("order placed",
		zap.String("order_id", ord.ID.String()),
		zap.Int64("grand_total_cents", ord.GrandTotalCents))
	c.JSON(http.StatusCreated, dto.ToOrderResponse(ord))
}

// MyOrders godoc
// @Summary Заказы текущего пользователя
// @Router /api/my-orders [get]
func (h *OrderHandler) MyOrders(c *gin.Context) {
	limit, offset := pagination(c, 20)

	orders, total, err := h.orders.ListOrders(c.Request.Context(), service.ListFilter{Limit: limit, Offset: offset})
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

// MyOrder godoc
// @Summary Детали заказа текущего пользователя
// @Router /api/my-orders/{id} [get]
func (h *OrderHandler) MyOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError("invalid id"))
		return
	}

	ord, err := h.orders.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResponse(ord))
}

// Cancel godoc
// @Summary Отмена своего заказа
// @Router /api/my-orders/{id}/cancel [post]
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError("invalid id"))
		return
	}

	ord, err := h.orders.CancelOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResponse(ord))
}
