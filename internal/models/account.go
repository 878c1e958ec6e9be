package models

type Account struct {
	BaseModel

	UserID         string  `gorm:"type:uuid;not null;index"`
	Name           string  `gorm:"size:30;not null"`
	Description    string  `gorm:"size:60"`
	Color          string  `gorm:"not null"`
	InitialBalance float64 `gorm:"type:numeric(10,2);not null;default:0"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Transactions []Transaction `gorm:"foreignKey:AccountID;constraint:OnUpdate:Cascade,OnDelete:SET NULL"`
}
