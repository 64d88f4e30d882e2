package service

import (
	"context"
	"errors"
	"time"

	"github.com/RoyceAzure/lab/sellnow/internal/constants"
	"github.com/RoyceAzure/lab/sellnow/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/sellnow/internal/infra/repository/db/model"
	"github.com/RoyceAzure/lab/sellnow/internal/infra/session"
	"github.com/RoyceAzure/lab/sellnow/internal/serr"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ICheckoutService interface {
	CreateOrder(ctx context.Context, sess *session.Session, userID uint, paymentProvider string) (*model.Order, error)
	CompletePayment(ctx context.Context, sess *session.Session, orderID uint, transactionID string) (*model.Order, error)
	Order(ctx context.Context, orderID uint) (*model.Order, error)
	UserOrders(ctx context.Context, userID uint) ([]model.Order, error)
}

type CheckoutService struct {
	orderRepo   db.IOrderRepository
	cartService ICartService
}

func NewCheckoutService(orderRepo db.IOrderRepository, cartService ICartService) ICheckoutService {
	return &CheckoutService{
		orderRepo:   orderRepo,
		cartService: cartService,
	}
}

// CreateOrder 由購物車建立訂單
// 總額在此快照進訂單, 之後購物車變動不影響已建立的訂單
// 購物車在付款完成前不清空
func (s *CheckoutService) CreateOrder(ctx context.Context, sess *session.Session, userID uint, paymentProvider string) (*model.Order, error) {
	if s.cartService.IsEmpty(sess) {
		return nil, serr.NewField(serr.ValidationCode, "cart", "Cart is empty")
	}

	totalAmount := s.cartService.Total(sess)
	if totalAmount.LessThanOrEqual(decimal.Zero) {
		return nil, serr.NewField(serr.ValidationCode, "total", "Invalid order total")
	}

	order := &model.Order{
		UserID:          userID,
		TotalAmount:     totalAmount,
		PaymentProvider: paymentProvider,
		PaymentStatus:   constants.PaymentStatusPending,
		OrderDate:       time.Now(),
	}
	created, err := s.orderRepo.CreateOrder(ctx, order)
	if err != nil {
		return nil, serr.Wrap(serr.PersistenceCode, "failed to create order", err)
	}

	return s.orderRepo.GetOrderByID(ctx, created.OrderID)
}

// CompletePayment 付款完成, 訂單轉為completed並清空購物車
// 重複完成同一訂單視為成功不再異動; 已失敗或取消的訂單不可再完成
func (s *CheckoutService) CompletePayment(ctx context.Context, sess *session.Session, orderID uint, transactionID string) (*model.Order, error) {
	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, serr.New(serr.NotFoundCode, "Order not found")
		}
		return nil, serr.Wrap(serr.PersistenceCode, "failed to query order", err)
	}

	switch order.PaymentStatus {
	case constants.PaymentStatusCompleted:
		return order, nil
	case constants.PaymentStatusFailed, constants.PaymentStatusCancelled:
		return nil, serr.New(serr.InvalidOperationCode, "order is in a terminal state")
	}

	if err := s.orderRepo.UpdatePaymentStatus(ctx, orderID, constants.PaymentStatusCompleted, transactionID); err != nil {
		return nil, serr.Wrap(serr.PersistenceCode, "failed to complete payment", err)
	}
	s.cartService.Clear(sess)

	return s.orderRepo.GetOrderByID(ctx, orderID)
}

// Order 查詢單一訂單
func (s *CheckoutService) Order(ctx context.Context, orderID uint) (*model.Order, error) {
	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, serr.New(serr.NotFoundCode, "Order not found")
		}
		return nil, serr.Wrap(serr.PersistenceCode, "failed to query order", err)
	}
	return order, nil
}

// UserOrders 買家的訂單紀錄, 新到舊
func (s *CheckoutService) UserOrders(ctx context.Context, userID uint) ([]model.Order, error) {
	return s.orderRepo.GetOrdersByUserID(ctx, userID)
}
