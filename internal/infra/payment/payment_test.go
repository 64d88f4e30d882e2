package payment

import (
	"context"
	"strings"
	"testing"

	"github.com/RoyceAzure/lab/sellnow/internal/constants"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestMockGatewayCharge(t *testing.T) {
	gateway := NewMockGateway("stripe")

	result, err := gateway.Charge(context.Background(), decimal.NewFromFloat(44.98), "USD", 1)

	require.NoError(t, err)
	require.True(t, result.Success)
	require.True(t, strings.HasPrefix(result.TransactionID, "MOCK_"))
}

func TestMockGatewayCharge_ZeroAmount(t *testing.T) {
	gateway := NewMockGateway("stripe")

	result, err := gateway.Charge(context.Background(), decimal.Zero, "USD", 1)

	require.Error(t, err)
	require.Nil(t, result)
}

func TestMockGatewayVerify(t *testing.T) {
	gateway := NewMockGateway("stripe")

	result, err := gateway.Verify(context.Background(), "MOCK_abc123")
	require.NoError(t, err)
	require.True(t, result.Verified)
	require.Equal(t, constants.PaymentStatusCompleted, result.Status)

	// 非mock交易編號不予查核
	result, err = gateway.Verify(context.Background(), "ch_real_stripe_id")
	require.NoError(t, err)
	require.False(t, result.Verified)
	require.Equal(t, constants.PaymentStatusFailed, result.Status)
}

func TestMockGatewayIsConfigured(t *testing.T) {
	require.True(t, NewMockGateway("stripe").IsConfigured())
}

func TestFactoryGet_Registered(t *testing.T) {
	factory := NewFactory(nil)
	stripe := NewMockGateway("Stripe")
	factory.Register("stripe", stripe)

	got := factory.Get("stripe")
	require.Equal(t, stripe, got)

	// provider名稱不分大小寫
	got = factory.Get("Stripe")
	require.Equal(t, stripe, got)
}

func TestFactoryGet_UnknownFallsBackToMock(t *testing.T) {
	factory := NewFactory(nil)

	gateway := factory.Get("bitcoin")

	require.NotNil(t, gateway)
	require.True(t, gateway.IsConfigured())

	result, err := gateway.Charge(context.Background(), decimal.NewFromFloat(10.00), "USD", 1)
	require.NoError(t, err)
	require.True(t, result.Success)
	require.True(t, strings.HasPrefix(result.TransactionID, "MOCK_"))
}

func TestFactoryAll(t *testing.T) {
	factory := NewFactory(nil)
	factory.Register("stripe", NewMockGateway("Stripe"))
	factory.Register("paypal", NewMockGateway("PayPal"))
	factory.Register("razorpay", NewMockGateway("Razorpay"))

	providers := factory.All()

	require.Equal(t, []string{"paypal", "razorpay", "stripe"}, providers)
}
