package models

type User struct {
	BaseModel

	FirstName    string `gorm:"size:30"`
	LastName     string `gorm:"size:30"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Currency     string `gorm:"size:3;not null;default:GBP"`
	IsDemo       bool   `gorm:"not null;default:false"`

	// Relationships
	Accounts     []Account     `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Transactions []Transaction `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
