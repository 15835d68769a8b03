package service

import (
	"context"

	"github.com/visualshop/internal/models"
	"github.com/visualshop/internal/repository"
)

// ListOrdersByUser 用户订单历史（创建时间倒序）
func (s *OrderService) ListOrdersByUser(ctx context.Context, userID uint) ([]models.Order, error) {
	if userID == 0 {
		return nil, ErrInvalidUser
	}
	orders, _, err := s.orderRepo.ListByUser(repository.OrderListFilter{UserID: userID})
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

// GetOrderByUser 获取用户自己的订单
func (s *OrderService) GetOrderByUser(ctx context.Context, orderID, userID uint) (*models.Order, error) {
	if userID == 0 {
		return nil, ErrInvalidUser
	}
	if orderID == 0 {
		return nil, ErrOrderNotFound
	}
	order, err := s.orderRepo.GetByIDAndUser(orderID, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListAdminOrders 后台订单列表
func (s *OrderService) ListAdminOrders(ctx context.Context, filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.ListAdmin(filter)
}

// GetAdminOrder 后台订单详情
func (s *OrderService) GetAdminOrder(ctx context.Context, orderID uint) (*models.Order, error) {
	if orderID == 0 {
		return nil, ErrOrderNotFound
	}
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}
