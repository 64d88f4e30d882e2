package model

import (
	"github.com/shopspring/decimal"
)

type Product struct {
	ProductID   uint            `gorm:"primaryKey" json:"product_id"`
	UserID      uint            `gorm:"not null;index" json:"user_id"` // 外鍵, 關聯到賣家User
	Title       string          `gorm:"not null;type:varchar(255)" json:"title"`
	Slug        string          `gorm:"not null;type:varchar(255);index" json:"slug"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"price"`
	ImagePath   string          `gorm:"type:varchar(255)" json:"image_path"`
	FilePath    string          `gorm:"type:varchar(255)" json:"file_path"`
	IsActive    bool            `gorm:"not null;default:true" json:"is_active"`
	BaseModel
}
