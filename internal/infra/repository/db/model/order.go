package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	OrderID         uint            `gorm:"primaryKey" json:"order_id"`
	UserID          uint            `gorm:"not null;index" json:"user_id"` // 外鍵, 關聯到買家User
	TotalAmount     decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"total_amount"`
	PaymentProvider string          `gorm:"not null;type:varchar(50)" json:"payment_provider"`
	PaymentStatus   string          `gorm:"not null;type:varchar(20);default:'pending'" json:"payment_status"`
	TransactionID   string          `gorm:"type:varchar(100);index" json:"transaction_id"`
	OrderDate       time.Time       `gorm:"not null" json:"order_date"`
	BaseModel
}
