package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"lojamoz/internal/app/loja/entity"
	"lojamoz/internal/app/loja/repository"
	"lojamoz/internal/app/loja/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validOrderRequest() *entity.CreateOrderRequest {
	return &entity.CreateOrderRequest{
		Items: []entity.OrderItemRequest{
			{ProductID: 1, Quantity: 2, UnitPrice: 25000},
		},
		Total:         50000,
		CustomerName:  "Maria Macuácua",
		CustomerEmail: "maria@example.com",
		CustomerPhone: "+258841234567",
		Address:       "Av. Eduardo Mondlane, 123",
		City:          "Maputo",
		PostalCode:    "1100",
	}
}

// ===================== CreateOrder Tests =====================

func TestCreateOrder_Success(t *testing.T) {
	// Arrange
	orderRepo := new(mocks.MockOrderRepository)
	productRepo := new(mocks.MockProductRepository)
	kafkaProducer := &mocks.MockMessagePublisher{Messages: make([][]byte, 0)}

	svc := NewOrderService(orderRepo, productRepo, kafkaProducer)

	ctx := context.Background()
	userID := uint(9)
	req := validOrderRequest()

	productRepo.On("GetByID", ctx, uint(1)).Return(&entity.Product{ID: 1, Name: "Smartphone Samsung Galaxy A54", ImageURL: "img.jpg"}, nil)
	orderRepo.On("CreateWithItems", ctx, mock.AnythingOfType("*entity.Order")).Run(func(args mock.Arguments) {
		order := args.Get(1).(*entity.Order)
		order.ID = 100
	}).Return(nil)
	kafkaProducer.On("PublishMessage", ctx, mock.AnythingOfType("string"), mock.Anything).Return(nil)

	// Act
	result, err := svc.CreateOrder(ctx, &userID, req)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, uint(100), result.ID)
	assert.Equal(t, entity.OrderStatusPendente, result.Status)
	assert.Equal(t, 50000.0, result.Total)
	require.NotNil(t, result.UserID)
	assert.Equal(t, userID, *result.UserID)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Smartphone Samsung Galaxy A54", result.Items[0].ProductName)
	assert.Equal(t, 25000.0, result.Items[0].UnitPrice)

	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	kafkaProducer.AssertExpectations(t)
}

func TestCreateOrder_GuestCheckout(t *testing.T) {
	// Arrange
	orderRepo := new(mocks.MockOrderRepository)
	productRepo := new(mocks.MockProductRepository)

	svc := NewOrderService(orderRepo, productRepo, nil)

	ctx := context.Background()
	req := validOrderRequest()

	productRepo.On("GetByID", ctx, uint(1)).Return(&entity.Product{ID: 1, Name: "Produto"}, nil)
	orderRepo.On("CreateWithItems", ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

	// Act
	result, err := svc.CreateOrder(ctx, nil, req)

	// Assert
	require.NoError(t, err)
	assert.Nil(t, result.UserID)
	orderRepo.AssertExpectations(t)
}

func TestCreateOrder_ProductNotFound(t *testing.T) {
	// Arrange
	orderRepo := new(mocks.MockOrderRepository)
	productRepo := new(mocks.MockProductRepository)

	svc := NewOrderService(orderRepo, productRepo, nil)

	ctx := context.Background()
	req := validOrderRequest()

	productRepo.On("GetByID", ctx, uint(1)).Return(nil, repository.ErrNotFound)

	// Act
	result, err := svc.CreateOrder(ctx, nil, req)

	// Assert
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Nil(t, result)
	orderRepo.AssertNotCalled(t, "CreateWithItems")
}

func TestCreateOrder_KafkaFailureDoesNotFailCheckout(t *testing.T) {
	// Arrange
	orderRepo := new(mocks.MockOrderRepository)
	productRepo := new(mocks.MockProductRepository)
	kafkaProducer := &mocks.MockMessagePublisher{Messages: make([][]byte, 0)}

	svc := NewOrderService(orderRepo, productRepo, kafkaProducer)

	ctx := context.Background()
	req := validOrderRequest()

	productRepo.On("GetByID", ctx, uint(1)).Return(&entity.Product{ID: 1, Name: "Produto"}, nil)
	orderRepo.On("CreateWithItems", ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	kafkaProducer.On("PublishMessage", ctx, mock.AnythingOfType("string"), mock.Anything).Return(errors.New("broker down"))

	// Act
	result, err := svc.CreateOrder(ctx, nil, req)

	// Assert
	require.NoError(t, err)
	assert.NotNil(t, result)
}

func TestCreateOrder_PublishesOrderCreatedEvent(t *testing.T) {
	// Arrange
	orderRepo := new(mocks.MockOrderRepository)
	productRepo := new(mocks.MockProductRepository)
	kafkaProducer := &mocks.MockMessagePublisher{Messages: make([][]byte, 0)}

	svc := NewOrderService(orderRepo, productRepo, kafkaProducer)

	ctx := context.Background()
	req := validOrderRequest()

	productRepo.On("GetByID", ctx, uint(1)).Return(&entity.Product{ID: 1, Name: "Produto"}, nil)
	orderRepo.On("CreateWithItems", ctx, mock.AnythingOfType("*entity.Order")).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Order).ID = 55
	}).Return(nil)
	kafkaProducer.On("PublishMessage", ctx, "pedido-55", mock.Anything).Return(nil)

	// Act
	_, err := svc.CreateOrder(ctx, nil, req)

	// Assert
	require.NoError(t, err)
	require.Len(t, kafkaProducer.Messages, 1)

	var event entity.OrderEvent
	require.NoError(t, json.Unmarshal(kafkaProducer.Messages[0], &event))
	assert.Equal(t, "ORDER_CREATED", event.EventType)
	assert.Equal(t, uint(55), event.OrderID)
	assert.Equal(t, 1, event.ItemsCount)
}

// ===================== UpdateOrderStatus Tests =====================

func TestUpdateOrderStatus_Success(t *testing.T) {
	// Arrange
	orderRepo := new(mocks.MockOrderRepository)
	productRepo := new(mocks.MockProductRepository)

	svc := NewOrderService(orderRepo, productRepo, nil)

	ctx := context.Background()
	existing := &entity.Order{ID: 5, Status: entity.OrderStatusPendente}

	orderRepo.On("GetByID", ctx, uint(5)).Return(existing, nil)
	orderRepo.On("UpdateStatus", ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

	// Act
	order, err := svc.UpdateOrderStatus(ctx, 5, entity.OrderStatusEnviado)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusEnviado, order.Status)
	orderRepo.AssertExpectations(t)
}

func TestUpdateOrderStatus_InvalidStatus(t *testing.T) {
	// Arrange
	orderRepo := new(mocks.MockOrderRepository)
	productRepo := new(mocks.MockProductRepository)

	svc := NewOrderService(orderRepo, productRepo, nil)

	// Act
	order, err := svc.UpdateOrderStatus(context.Background(), 5, entity.OrderStatus("despachado"))

	// Assert
	assert.ErrorIs(t, err, ErrInvalidOrderStatus)
	assert.Nil(t, order)
	orderRepo.AssertNotCalled(t, "GetByID")
}

func TestUpdateOrderStatus_OrderNotFound(t *testing.T) {
	// Arrange
	orderRepo := new(mocks.MockOrderRepository)
	productRepo := new(mocks.MockProductRepository)

	svc := NewOrderService(orderRepo, productRepo, nil)

	ctx := context.Background()
	orderRepo.On("GetByID", ctx, uint(99)).Return(nil, repository.ErrNotFound)

	// Act
	order, err := svc.UpdateOrderStatus(ctx, 99, entity.OrderStatusCancelado)

	// Assert
	assert.ErrorIs(t, err, ErrOrderNotFound)
	assert.Nil(t, order)
}

// ===================== GetOrder Tests =====================

func TestGetOrder_DeletedProductPlaceholder(t *testing.T) {
	// Arrange
	orderRepo := new(mocks.MockOrderRepository)
	productRepo := new(mocks.MockProductRepository)

	svc := NewOrderService(orderRepo, productRepo, nil)

	ctx := context.Background()
	order := &entity.Order{
		ID:     3,
		Status: entity.OrderStatusEntregue,
		Items: []entity.OrderItem{
			{ID: 1, OrderID: 3, ProductID: 77, Quantity: 1, UnitPrice: 500},
		},
	}

	orderRepo.On("GetByID", ctx, uint(3)).Return(order, nil)
	productRepo.On("GetByID", ctx, uint(77)).Return(nil, repository.ErrNotFound)

	// Act
	result, err := svc.GetOrder(ctx, 3)

	// Assert
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Produto removido", result.Items[0].ProductName)
	assert.Equal(t, 500.0, result.Items[0].UnitPrice)
}

func TestGetOrder_NotFound(t *testing.T) {
	// Arrange
	orderRepo := new(mocks.MockOrderRepository)
	productRepo := new(mocks.MockProductRepository)

	svc := NewOrderService(orderRepo, productRepo, nil)

	ctx := context.Background()
	orderRepo.On("GetByID", ctx, uint(1)).Return(nil, repository.ErrNotFound)

	// Act
	result, err := svc.GetOrder(ctx, 1)

	// Assert
	assert.ErrorIs(t, err, ErrOrderNotFound)
	assert.Nil(t, result)
}

// ===================== GetStatistics Tests =====================

func TestGetStatistics_Success(t *testing.T) {
	// Arrange
	orderRepo := new(mocks.MockOrderRepository)
	productRepo := new(mocks.MockProductRepository)

	svc := NewOrderService(orderRepo, productRepo, nil)

	ctx := context.Background()
	now := time.Now()

	orderRepo.On("Count", ctx).Return(int64(10), nil)
	orderRepo.On("CountByStatus", ctx, entity.OrderStatusPendente).Return(int64(4), nil)
	orderRepo.On("CountByStatus", ctx, entity.OrderStatusProcessando).Return(int64(3), nil)
	orderRepo.On("CountByStatus", ctx, entity.OrderStatusEnviado).Return(int64(2), nil)
	orderRepo.On("CountByStatus", ctx, entity.OrderStatusEntregue).Return(int64(1), nil)
	orderRepo.On("SumTotalByStatuses", ctx, revenueStatuses).Return(75000.0, nil)
	orderRepo.On("GetRecent", ctx, 5).Return([]entity.Order{
		{ID: 10, Total: 50000, Status: entity.OrderStatusPendente, CreatedAt: now, CustomerName: "Maria"},
		{ID: 9, Total: 25000, Status: entity.OrderStatusEntregue, CreatedAt: now, CustomerName: "João"},
	}, nil)

	// Act
	stats, err := svc.GetStatistics(ctx)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(10), stats.TotalOrders)
	assert.Equal(t, 75000.0, stats.TotalRevenue)
	assert.Equal(t, int64(4), stats.StatusCounts[entity.OrderStatusPendente])
	assert.Equal(t, int64(1), stats.StatusCounts[entity.OrderStatusEntregue])

	// Cancelled orders never appear in the breakdown.
	_, hasCancelled := stats.StatusCounts[entity.OrderStatusCancelado]
	assert.False(t, hasCancelled)

	require.Len(t, stats.RecentOrders, 2)
	assert.Equal(t, uint(10), stats.RecentOrders[0].ID)
	assert.Equal(t, "Maria", stats.RecentOrders[0].CustomerName)
}

func TestGetStatistics_EmptyStore(t *testing.T) {
	// Arrange
	orderRepo := new(mocks.MockOrderRepository)
	productRepo := new(mocks.MockProductRepository)

	svc := NewOrderService(orderRepo, productRepo, nil)

	ctx := context.Background()
	orderRepo.On("Count", ctx).Return(int64(0), nil)
	orderRepo.On("CountByStatus", ctx, mock.AnythingOfType("entity.OrderStatus")).Return(int64(0), nil)
	orderRepo.On("SumTotalByStatuses", ctx, revenueStatuses).Return(0.0, nil)
	orderRepo.On("GetRecent", ctx, 5).Return([]entity.Order{}, nil)

	// Act
	stats, err := svc.GetStatistics(ctx)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalOrders)
	assert.Equal(t, 0.0, stats.TotalRevenue)
	assert.Empty(t, stats.RecentOrders)
}
