package service

import (
	"github.com/RoyceAzure/lab/sellnow/internal/constants"
	"github.com/RoyceAzure/lab/sellnow/internal/infra/repository/db/model"
	"github.com/RoyceAzure/lab/sellnow/internal/infra/session"
	"github.com/shopspring/decimal"
)

type ICartService interface {
	AddToCart(sess *session.Session, productID uint, title string, price decimal.Decimal, quantity int) error
	Items(sess *session.Session) []model.CartItem
	Total(sess *session.Session) decimal.Decimal
	Count(sess *session.Session) int
	Clear(sess *session.Session)
	IsEmpty(sess *session.Session) bool
}

// CartService 購物車只存在session, 不落db
type CartService struct{}

func NewCartService() ICartService {
	return &CartService{}
}

func (s *CartService) loadCart(sess *session.Session) model.Cart {
	var cart model.Cart
	sess.Get(constants.SessionCartKey, &cart)
	return cart
}

// AddToCart 加入購物車
// 已在購物車的商品累加數量, 否則以當下價格快照新增一筆
func (s *CartService) AddToCart(sess *session.Session, productID uint, title string, price decimal.Decimal, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}

	cart := s.loadCart(sess)
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity += quantity
			return sess.Set(constants.SessionCartKey, cart)
		}
	}

	cart.Items = append(cart.Items, model.CartItem{
		ProductID: productID,
		Title:     title,
		Price:     price,
		Quantity:  quantity,
	})
	return sess.Set(constants.SessionCartKey, cart)
}

func (s *CartService) Items(sess *session.Session) []model.CartItem {
	return s.loadCart(sess).Items
}

// Total 小計加總後取兩位小數
func (s *CartService) Total(sess *session.Session) decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.loadCart(sess).Items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total.Round(2)
}

// Count 不同商品的數目, 非數量加總
func (s *CartService) Count(sess *session.Session) int {
	return len(s.loadCart(sess).Items)
}

func (s *CartService) Clear(sess *session.Session) {
	sess.Delete(constants.SessionCartKey)
}

func (s *CartService) IsEmpty(sess *session.Session) bool {
	return len(s.loadCart(sess).Items) == 0
}
