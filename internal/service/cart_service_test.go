package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestAddToCart(t *testing.T) {
	cartService := NewCartService()
	sess := newTestSession()

	require.True(t, cartService.IsEmpty(sess))

	err := cartService.AddToCart(sess, 1, "Go eBook", decimal.NewFromFloat(19.99), 1)
	require.NoError(t, err)

	require.False(t, cartService.IsEmpty(sess))
	require.Equal(t, 1, cartService.Count(sess))
}

func TestAddToCart_MergesQuantityForSameProduct(t *testing.T) {
	cartService := NewCartService()
	sess := newTestSession()

	require.NoError(t, cartService.AddToCart(sess, 1, "Go eBook", decimal.NewFromFloat(19.99), 2))
	require.NoError(t, cartService.AddToCart(sess, 1, "Go eBook", decimal.NewFromFloat(19.99), 3))

	items := cartService.Items(sess)
	require.Len(t, items, 1)
	require.Equal(t, 5, items[0].Quantity)
}

func TestCartCount_DistinctLineItems(t *testing.T) {
	cartService := NewCartService()
	sess := newTestSession()

	cartService.AddToCart(sess, 1, "Go eBook", decimal.NewFromFloat(19.99), 3)
	cartService.AddToCart(sess, 2, "Template Pack", decimal.NewFromFloat(5.00), 1)

	// 數不同商品, 不是數量加總
	require.Equal(t, 2, cartService.Count(sess))
}

func TestCartTotal_RoundedToTwoDecimals(t *testing.T) {
	cartService := NewCartService()
	sess := newTestSession()

	cartService.AddToCart(sess, 1, "Go eBook", decimal.NewFromFloat(19.99), 2)
	cartService.AddToCart(sess, 2, "Template Pack", decimal.NewFromFloat(5.00), 1)

	require.Equal(t, "44.98", cartService.Total(sess).StringFixed(2))
}

func TestCartTotal_OrderIndependent(t *testing.T) {
	cartService := NewCartService()

	sessA := newTestSession()
	cartService.AddToCart(sessA, 1, "Go eBook", decimal.NewFromFloat(19.99), 2)
	cartService.AddToCart(sessA, 2, "Template Pack", decimal.NewFromFloat(5.00), 1)

	sessB := newTestSession()
	cartService.AddToCart(sessB, 2, "Template Pack", decimal.NewFromFloat(5.00), 1)
	cartService.AddToCart(sessB, 1, "Go eBook", decimal.NewFromFloat(19.99), 2)

	require.True(t, cartService.Total(sessA).Equal(cartService.Total(sessB)))
}

func TestAddToCart_KeepsPriceSnapshot(t *testing.T) {
	cartService := NewCartService()
	sess := newTestSession()

	cartService.AddToCart(sess, 1, "Go eBook", decimal.NewFromFloat(19.99), 1)
	// 同商品第二次加入時傳入不同價格, 不應覆蓋快照
	cartService.AddToCart(sess, 1, "Go eBook", decimal.NewFromFloat(29.99), 1)

	items := cartService.Items(sess)
	require.Len(t, items, 1)
	require.True(t, decimal.NewFromFloat(19.99).Equal(items[0].Price))
	require.Equal(t, "39.98", cartService.Total(sess).StringFixed(2))
}

func TestAddToCart_MinimumQuantityIsOne(t *testing.T) {
	cartService := NewCartService()
	sess := newTestSession()

	cartService.AddToCart(sess, 1, "Go eBook", decimal.NewFromFloat(19.99), 0)

	items := cartService.Items(sess)
	require.Len(t, items, 1)
	require.Equal(t, 1, items[0].Quantity)
}

func TestClearCart(t *testing.T) {
	cartService := NewCartService()
	sess := newTestSession()

	cartService.AddToCart(sess, 1, "Go eBook", decimal.NewFromFloat(19.99), 1)
	cartService.Clear(sess)

	require.True(t, cartService.IsEmpty(sess))
	require.Equal(t, 0, cartService.Count(sess))
	require.True(t, cartService.Total(sess).IsZero())
}
