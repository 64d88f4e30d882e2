package payment

import (
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Factory 管理已註冊的金流供應商
// 查無供應商時退回mock, 結帳流程不因設定缺漏而中斷
type Factory struct {
	mu       sync.RWMutex
	gateways map[string]IPaymentGateway
	logger   *zerolog.Logger
}

func NewFactory(logger *zerolog.Logger) *Factory {
	if logger == nil {
		temp := zerolog.New(os.Stdout).With().Timestamp().Logger()
		logger = &temp
	}
	return &Factory{
		gateways: make(map[string]IPaymentGateway),
		logger:   logger,
	}
}

// Register 註冊供應商, provider名稱不分大小寫
func (f *Factory) Register(provider string, gateway IPaymentGateway) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gateways[strings.ToLower(provider)] = gateway
}

// Get 取得供應商, 未註冊或未設定憑證時退回mock並記錄WARN
func (f *Factory) Get(provider string) IPaymentGateway {
	key := strings.ToLower(provider)

	f.mu.RLock()
	gateway, ok := f.gateways[key]
	f.mu.RUnlock()

	if ok && gateway.IsConfigured() {
		return gateway
	}

	if !ok {
		f.logger.Warn().
			Str("provider", provider).
			Msg("unknown payment provider, falling back to mock gateway")
	} else {
		f.logger.Warn().
			Str("provider", provider).
			Msg("payment provider not configured, falling back to mock gateway")
	}
	return NewMockGateway("Mock Provider")
}

// All 列出已註冊的供應商名稱, 排序後回傳
func (f *Factory) All() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	providers := make([]string, 0, len(f.gateways))
	for name := range f.gateways {
		providers = append(providers, name)
	}
	sort.Strings(providers)
	return providers
}
