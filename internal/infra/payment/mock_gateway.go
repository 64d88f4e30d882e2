package payment

import (
	"context"
	"fmt"
	"strings"

	"github.com/RoyceAzure/lab/sellnow/internal/constants"
	"github.com/RoyceAzure/lab/sellnow/internal/serr"
	"github.com/RoyceAzure/lab/sellnow/internal/util"
	"github.com/shopspring/decimal"
)

const mockTransactionPrefix = "MOCK_"

// MockGateway 模擬金流, 不打外部API
// 扣款必定成功並回傳MOCK_開頭的交易編號
type MockGateway struct {
	providerName string
}

func NewMockGateway(providerName string) *MockGateway {
	if providerName == "" {
		providerName = "Mock Provider"
	}
	return &MockGateway{providerName: providerName}
}

var _ IPaymentGateway = (*MockGateway)(nil)

func (g *MockGateway) Charge(ctx context.Context, amount decimal.Decimal, currency string, orderID uint) (*ChargeResult, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, serr.New(serr.InvalidOperationCode, "charge amount must be greater than zero")
	}
	if currency == "" {
		currency = constants.DefaultCurrency
	}

	return &ChargeResult{
		Success:       true,
		TransactionID: fmt.Sprintf("%s%s", mockTransactionPrefix, util.RandomString(16)),
		Message:       fmt.Sprintf("charged %s %s for order %d", amount.StringFixed(2), currency, orderID),
	}, nil
}

func (g *MockGateway) Verify(ctx context.Context, transactionID string) (*VerifyResult, error) {
	if !strings.HasPrefix(transactionID, mockTransactionPrefix) {
		return &VerifyResult{
			Verified:      false,
			TransactionID: transactionID,
			Status:        constants.PaymentStatusFailed,
		}, nil
	}
	return &VerifyResult{
		Verified:      true,
		TransactionID: transactionID,
		Status:        constants.PaymentStatusCompleted,
	}, nil
}

func (g *MockGateway) Name() string {
	return g.providerName
}

// 模擬金流不需要憑證
func (g *MockGateway) IsConfigured() bool {
	return true
}
