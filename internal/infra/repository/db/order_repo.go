package db

import (
	"context"

	"github.com/RoyceAzure/lab/sellnow/internal/infra/repository/db/model"
)

type IOrderRepository interface {
	CreateOrder(ctx context.Context, order *model.Order) (*model.Order, error)
	GetOrderByID(ctx context.Context, id uint) (*model.Order, error)
	GetOrdersByUserID(ctx context.Context, userID uint) ([]model.Order, error)
	GetOrderByTransactionID(ctx context.Context, transactionID string) (*model.Order, error)
	UpdatePaymentStatus(ctx context.Context, orderID uint, status string, transactionID string) error
}

type OrderRepo struct {
	dbDao *DbDao
}

func NewOrderRepo(dbDao *DbDao) *OrderRepo {
	return &OrderRepo{dbDao: dbDao}
}

var _ IOrderRepository = (*OrderRepo)(nil)

// Create - 創建訂單
func (s *OrderRepo) CreateOrder(ctx context.Context, order *model.Order) (*model.Order, error) {
	if err := s.dbDao.WithContext(ctx).Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

// Read - 根據ID查詢訂單
func (s *OrderRepo) GetOrderByID(ctx context.Context, id uint) (*model.Order, error) {
	var order model.Order
	err := s.dbDao.WithContext(ctx).First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Read - 買家的訂單紀錄, 新到舊
func (s *OrderRepo) GetOrdersByUserID(ctx context.Context, userID uint) ([]model.Order, error) {
	var orders []model.Order
	err := s.dbDao.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("order_date DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// Read - 根據交易編號查詢訂單, 對帳用
func (s *OrderRepo) GetOrderByTransactionID(ctx context.Context, transactionID string) (*model.Order, error) {
	var order model.Order
	err := s.dbDao.WithContext(ctx).Where("transaction_id = ?", transactionID).First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// 更新付款狀態與交易編號
func (s *OrderRepo) UpdatePaymentStatus(ctx context.Context, orderID uint, status string, transactionID string) error {
	updates := map[string]interface{}{
		"payment_status": status,
	}
	if transactionID != "" {
		updates["transaction_id"] = transactionID
	}
	return s.dbDao.WithContext(ctx).Model(&model.Order{}).
		Where("order_id = ?", orderID).
		Updates(updates).Error
}
