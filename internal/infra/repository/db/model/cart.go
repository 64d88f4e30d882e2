package model

import (
	"github.com/shopspring/decimal"
)

// Cart 只存在於session, 不落db
type Cart struct {
	Items []CartItem `json:"items"`
}

// CartItem 一個商品一條line item, 價格為加入當下的快照
type CartItem struct {
	ProductID uint            `json:"product_id"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}
