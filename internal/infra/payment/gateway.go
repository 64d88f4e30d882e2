package payment

import (
	"context"

	"github.com/shopspring/decimal"
)

// ChargeResult 付款請求結果
type ChargeResult struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id"`
	Message       string `json:"message"`
}

// VerifyResult 交易查核結果
type VerifyResult struct {
	Verified      bool   `json:"verified"`
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
}

// IPaymentGateway 金流供應商抽象
// 所有金額使用decimal, 避免浮點誤差
type IPaymentGateway interface {
	// Charge 發起扣款, amount為含兩位小數的總額
	Charge(ctx context.Context, amount decimal.Decimal, currency string, orderID uint) (*ChargeResult, error)
	// Verify 以交易編號查核扣款狀態
	Verify(ctx context.Context, transactionID string) (*VerifyResult, error)
	// Name 顯示用名稱
	Name() string
	// IsConfigured 供應商憑證是否就緒
	IsConfigured() bool
}
