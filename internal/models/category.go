package models

// Category is shared across users, not tenant-scoped.
type Category struct {
	BaseModel

	Name        string `gorm:"size:30;not null"`
	Description string `gorm:"size:60"`
	Color       string `gorm:"not null"`
	Type        int    `gorm:"not null;index;check:type IN (0, 1)"`

	// Relationships
	Transactions []Transaction `gorm:"foreignKey:CategoryID"`
}
