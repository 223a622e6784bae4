package handler

import (
	"errors"
	"net/http"
	"strings"

	"lojamoz/internal/app/loja/entity"
	"lojamoz/internal/app/loja/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type OrderHandler struct {
	orderService service.OrderServiceInterface
	validator    *validator.Validate
}

func NewOrderHandler(orderService service.OrderServiceInterface) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		validator:    validator.New(),
	}
}

// CreateOrder handles POST /orders. Runs behind OptionalUser: a
// logged-in shopper gets the order attached to the account, everyone
// else checks out as guest.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req entity.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	var userID *uint
	if id, exists := c.Get("user_id"); exists {
		if uid, ok := id.(uint); ok {
			userID = &uid
		}
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Produto não encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao criar pedido"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"mensagem": "Pedido criado com sucesso!",
		"pedido":   order,
	})
}

// GetOrder handles GET /orders/:id.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pedido não encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar pedido"})
		return
	}

	c.JSON(http.StatusOK, order)
}

// ListUserOrders handles GET /users/orders.
func (h *OrderHandler) ListUserOrders(c *gin.Context) {
	userID := c.GetUint("user_id")

	orders, err := h.orderService.ListUserOrders(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar pedidos"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// ListOrders handles GET /admin/orders.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderService.ListOrders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar pedidos"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus handles PUT /admin/orders/:id/status.
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req entity.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	order, err := h.orderService.UpdateOrderStatus(c.Request.Context(), id, entity.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidOrderStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": invalidStatusMessage()})
		case errors.Is(err, service.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Pedido não encontrado"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao atualizar status"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mensagem": "Status atualizado com sucesso!",
		"pedido":   order,
	})
}

// invalidStatusMessage names every accepted status so the console can
// show the operator what to send.
func invalidStatusMessage() string {
	names := make([]string, len(entity.ValidOrderStatuses))
	for i, status := range entity.ValidOrderStatuses {
		names[i] = string(status)
	}
	return "Status inválido. Use: " + strings.Join(names, ", ")
}

// GetStatistics handles GET /admin/orders/statistics.
func (h *OrderHandler) GetStatistics(c *gin.Context) {
	stats, err := h.orderService.GetStatistics(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao obter estatísticas"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
