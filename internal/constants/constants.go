package constants

type ContextKey string

const (
	SessionContextKey ContextKey = "session"
)

type RequestID string

const (
	RequestIDKey RequestID = "request_id"
)

// session內部欄位key
const (
	SessionUserIDKey    = "user_id"
	SessionUsernameKey  = "username"
	SessionEmailKey     = "email"
	SessionCartKey      = "cart"
	SessionCsrfTokenKey = "_csrf_token"
)

const (
	SessionCookieName     = "sellnow_session"
	DefaultSessionTTLHour = 24
)

// 訂單付款狀態
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusCancelled = "cancelled"
)

const DefaultCurrency = "USD"

// checkout頁面顯示的provider選項, 未註冊的provider會fallback到mock
var CheckoutProviders = []string{"Stripe", "PayPal", "Razorpay"}

// 上傳限制
const (
	MaxImageSizeBytes int64 = 5 * 1024 * 1024  // 5MiB
	MaxFileSizeBytes  int64 = 50 * 1024 * 1024 // 50MiB
)
