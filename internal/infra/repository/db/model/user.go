package model

type User struct {
	UserID       uint   `gorm:"primaryKey" json:"user_id"`
	Email        string `gorm:"unique;not null;type:varchar(255)" json:"email"`
	Username     string `gorm:"unique;not null;type:varchar(50)" json:"username"`
	FullName     string `gorm:"not null;type:varchar(100)" json:"full_name"`
	PasswordHash string `gorm:"not null;type:varchar(255)" json:"-"`
	Products     []Product `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"` // 一對多, 賣家商品
	Orders       []Order   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"` // 一對多, 買家訂單
	BaseModel
}
