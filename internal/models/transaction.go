package models

import "time"

type Transaction struct {
	BaseModel

	UserID          string    `gorm:"type:uuid;not null;index"`
	Type            int       `gorm:"not null;index;check:type IN (0, 1)"`
	CategoryID      string    `gorm:"type:uuid;not null;index"`
	AccountID       *string   `gorm:"type:uuid;index"` // nulled when the owning account is deleted
	Amount          float64   `gorm:"type:numeric(10,2);not null"`
	Description     string    `gorm:"size:60;not null"`
	TransactionDate time.Time `gorm:"not null;index"`

	// Relationships
	User     User     `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Category Category `gorm:"foreignKey:CategoryID"`
	Account  *Account `gorm:"foreignKey:AccountID;constraint:OnUpdate:Cascade,OnDelete:SET NULL"`
}
