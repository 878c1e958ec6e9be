package db

import (
	"github.com/ledgerline-dev/ledgerline/internal/models"
	"github.com/ledgerline-dev/ledgerline/internal/types"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDatabase(dsn string) error {
	var err error

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		return err
	}

	return nil
}

func MigrateDatabase() error {
	models := []interface{}{
		&models.User{},
		&models.Account{},
		&models.Category{},
		&models.Transaction{},
	}

	migrator := DB.Migrator()

	for _, model := range models {
		if !migrator.HasTable(model) {
			if err := DB.AutoMigrate(model); err != nil {
				return err
			}
		}
	}

	return nil
}

// defaultCategories is the shared, non-tenant category set every user sees.
var defaultCategories = []models.Category{
	{Name: "Salary", Description: "Wages and regular pay", Color: "#22c55e", Type: types.TypeIncome},
	{Name: "Other Income", Description: "Everything else coming in", Color: "#14b8a6", Type: types.TypeIncome},
	{Name: "Groceries", Description: "Food and household shopping", Color: "#f97316", Type: types.TypeExpense},
	{Name: "Rent & Bills", Description: "Housing, utilities and subscriptions", Color: "#ef4444", Type: types.TypeExpense},
	{Name: "Transport", Description: "Fuel, tickets and travel", Color: "#3b82f6", Type: types.TypeExpense},
	{Name: "Eating Out", Description: "Restaurants, cafes and takeaway", Color: "#a855f7", Type: types.TypeExpense},
	{Name: "Shopping", Description: "Clothes, gadgets and gifts", Color: "#ec4899", Type: types.TypeExpense},
	{Name: "Others", Description: "Uncategorised spending", Color: "#6b7280", Type: types.TypeExpense},
}

// SeedCategories inserts the default category set on first boot only.
func SeedCategories() error {
	var count int64

	if err := DB.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	return DB.Create(&defaultCategories).Error
}
