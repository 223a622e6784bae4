package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"lojamoz/internal/app/loja/entity"
	"lojamoz/internal/app/loja/infrastructure"
	"lojamoz/internal/app/loja/repository"
	"lojamoz/pkg/logger"
	"lojamoz/pkg/metrics"
)

const recentOrdersLimit = 5

// revenueStatuses are the states that count toward revenue. Pending
// orders are not paid yet and cancelled ones never will be.
var revenueStatuses = []entity.OrderStatus{
	entity.OrderStatusProcessando,
	entity.OrderStatusEnviado,
	entity.OrderStatusEntregue,
}

// countedStatuses appear in the statistics breakdown.
var countedStatuses = []entity.OrderStatus{
	entity.OrderStatusPendente,
	entity.OrderStatusProcessando,
	entity.OrderStatusEnviado,
	entity.OrderStatusEntregue,
}

// OrderService handles checkout, order lookups, the admin status flow
// and the aggregate statistics report.
type OrderService struct {
	orderRepo     repository.OrderRepository
	productRepo   repository.ProductRepository
	kafkaProducer infrastructure.MessagePublisher
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	kafkaProducer infrastructure.MessagePublisher,
) *OrderService {
	return &OrderService{
		orderRepo:     orderRepo,
		productRepo:   productRepo,
		kafkaProducer: kafkaProducer,
	}
}

// CreateOrder accepts guest checkouts: userID is nil when the request
// carried no usable token. Every referenced product must exist; the
// declared unit prices and total are stored as sent.
func (s *OrderService) CreateOrder(ctx context.Context, userID *uint, req *entity.CreateOrderRequest) (*entity.OrderResponse, error) {
	items := make([]entity.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		if _, err := s.productRepo.GetByID(ctx, item.ProductID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrProductNotFound
			}
			return nil, err
		}
		items = append(items, entity.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	order := &entity.Order{
		UserID:        userID,
		Total:         req.Total,
		Status:        entity.OrderStatusPendente,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Address:       req.Address,
		City:          req.City,
		PostalCode:    req.PostalCode,
		Notes:         req.Notes,
		Items:         items,
	}

	if err := s.orderRepo.CreateWithItems(ctx, order); err != nil {
		return nil, err
	}

	metrics.PedidosCreated.Inc()
	metrics.PedidosAmount.Add(order.Total)
	logger.Info().
		Uint("order_id", order.ID).
		Float64("total", order.Total).
		Bool("guest", userID == nil).
		Msg("order created")

	s.publishEvent(ctx, "ORDER_CREATED", order)

	return s.toResponse(ctx, order), nil
}

func (s *OrderService) GetOrder(ctx context.Context, orderID uint) (*entity.OrderResponse, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return s.toResponse(ctx, order), nil
}

func (s *OrderService) ListOrders(ctx context.Context) ([]entity.OrderResponse, error) {
	orders, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, orders), nil
}

func (s *OrderService) ListUserOrders(ctx context.Context, userID uint) ([]entity.OrderResponse, error) {
	orders, err := s.orderRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, orders), nil
}

// UpdateOrderStatus moves an order to any of the five statuses. There
// is no transition graph: support corrects misplaced orders freely.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID uint, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, ErrInvalidOrderStatus
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	order.Status = status
	if err := s.orderRepo.UpdateStatus(ctx, order); err != nil {
		return nil, err
	}

	logger.Info().
		Uint("order_id", order.ID).
		Str("status", string(status)).
		Msg("order status updated")

	s.publishEvent(ctx, "ORDER_STATUS_UPDATED", order)

	return order, nil
}

// GetStatistics builds the admin report: total order count, revenue
// over paid statuses, a per-status breakdown and the five most recent
// orders.
func (s *OrderService) GetStatistics(ctx context.Context) (*entity.OrderStatistics, error) {
	total, err := s.orderRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	statusCounts := make(map[entity.OrderStatus]int64, len(countedStatuses))
	for _, status := range countedStatuses {
		count, err := s.orderRepo.CountByStatus(ctx, status)
		if err != nil {
			return nil, err
		}
		statusCounts[status] = count
	}

	revenue, err := s.orderRepo.SumTotalByStatuses(ctx, revenueStatuses)
	if err != nil {
		return nil, err
	}

	recent, err := s.orderRepo.GetRecent(ctx, recentOrdersLimit)
	if err != nil {
		return nil, err
	}

	recentOrders := make([]entity.RecentOrder, 0, len(recent))
	for _, order := range recent {
		recentOrders = append(recentOrders, entity.RecentOrder{
			ID:           order.ID,
			Total:        order.Total,
			Status:       order.Status,
			CreatedAt:    order.CreatedAt.Format(time.RFC3339),
			CustomerName: order.CustomerName,
		})
	}

	return &entity.OrderStatistics{
		TotalOrders:  total,
		TotalRevenue: revenue,
		StatusCounts: statusCounts,
		RecentOrders: recentOrders,
	}, nil
}

// publishEvent sends an order event to Kafka, best-effort: a broker
// outage must never fail a checkout.
func (s *OrderService) publishEvent(ctx context.Context, eventType string, order *entity.Order) {
	if s.kafkaProducer == nil {
		return
	}

	event := entity.OrderEvent{
		EventType:  eventType,
		OrderID:    order.ID,
		UserID:     order.UserID,
		Total:      order.Total,
		Status:     order.Status,
		ItemsCount: len(order.Items),
		Timestamp:  time.Now().Format(time.RFC3339),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		logger.Error().Err(err).Msg("failed to marshal order event")
		return
	}

	key := fmt.Sprintf("pedido-%d", order.ID)
	if err := s.kafkaProducer.PublishMessage(ctx, key, payload); err != nil {
		logger.Error().Err(err).Uint("order_id", order.ID).Msg("failed to publish order event")
	}
}

// toResponse enriches order items with current product names and
// images. Products removed by a catalog sync render a placeholder.
func (s *OrderService) toResponse(ctx context.Context, order *entity.Order) *entity.OrderResponse {
	items := make([]entity.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		name := "Produto removido"
		image := ""
		if product, err := s.productRepo.GetByID(ctx, item.ProductID); err == nil {
			name = product.Name
			image = product.ImageURL
		}
		items = append(items, entity.OrderItemResponse{
			ID:           item.ID,
			ProductID:    item.ProductID,
			ProductName:  name,
			ProductImage: image,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
		})
	}

	return &entity.OrderResponse{
		ID:            order.ID,
		UserID:        order.UserID,
		Total:         order.Total,
		Status:        order.Status,
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		CustomerPhone: order.CustomerPhone,
		Address:       order.Address,
		City:          order.City,
		PostalCode:    order.PostalCode,
		Notes:         order.Notes,
		CreatedAt:     order.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     order.UpdatedAt.Format(time.RFC3339),
		Items:         items,
	}
}

func (s *OrderService) toResponses(ctx context.Context, orders []entity.Order) []entity.OrderResponse {
	responses := make([]entity.OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, *s.toResponse(ctx, &orders[i]))
	}
	return responses
}
