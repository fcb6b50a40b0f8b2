package database

import (
	"log"

	"gorm.io/gorm"

	"github.com/sarisense/sarisense-api/internal/domain/entity"
)

type sampleProduct struct {
	Name         string
	UnitPrice    int64 // centavos
	CostPrice    int64 // centavos
	CurrentStock int
	MinimumStock int
	MaximumStock int
	Category     string
}

var sampleProducts = []sampleProduct{
	// Beverages
	{"Coca-Cola 350ml", 2500, 2000, 50, 10, 100, "Beverages"},
	{"Sprite 350ml", 2500, 2000, 45, 10, 100, "Beverages"},
	{"Royal 350ml", 2200, 1800, 30, 8, 80, "Beverages"},
	{"Mineral Water 500ml", 1500, 1200, 80, 20, 150, "Beverages"},

	// Snacks
	{"Chicharon ni Mang Juan", 1200, 900, 25, 5, 50, "Snacks"},
	{"Nova Multigrain", 800, 600, 40, 10, 80, "Snacks"},
	{"Piattos Cheese", 3500, 2800, 20, 5, 40, "Snacks"},

	// Instant Noodles
	{"Lucky Me Pancit Canton", 1800, 1500, 60, 15, 120, "Instant Noodles"},
	{"Nissin Cup Noodles", 2200, 1800, 35, 8, 70, "Instant Noodles"},

	// Personal Care
	{"Safeguard Soap 90g", 2800, 2200, 15, 5, 30, "Personal Care"},
	{"Colgate Toothpaste 25g", 1500, 1200, 25, 8, 50, "Personal Care"},

	// Household
	{"Tide Powder 35g", 800, 600, 50, 15, 100, "Household"},
	{"Joy Dishwashing Liquid 250ml", 4500, 3500, 12, 3, 25, "Household"},
}

type sampleCustomer struct {
	Name        string
	Phone       string
	Address     string
	CreditLimit int64 // centavos
}

var sampleCustomers = []sampleCustomer{
	{"Maria Santos", "09123456789", "Brgy. San Jose", 50000},
	{"Juan Dela Cruz", "09234567890", "Brgy. Poblacion", 100000},
	{"Ana Reyes", "09345678901", "Brgy. Riverside", 75000},
}

// SeedSampleData loads a small Filipino sari-sari catalog with a few credit
// customers. Existing rows are left alone so the seed is safe to rerun.
func SeedSampleData(db *gorm.DB) error {
	log.Println("Seeding sample data...")

	categoryIDs := map[string]*entity.Category{}
	for _, p := range sampleProducts {
		if _, ok := categoryIDs[p.Category]; ok {
			continue
		}
		var cat entity.Category
		err := db.Where("name = ?", p.Category).First(&cat).Error
		if err == gorm.ErrRecordNotFound {
			cat = entity.Category{Name: p.Category}
			if err := db.Create(&cat).Error; err != nil {
				log.Printf("Warning: failed to create category %s: %v", p.Category, err)
				continue
			}
		} else if err != nil {
			return err
		}
		c := cat
		categoryIDs[p.Category] = &c
	}

	for _, p := range sampleProducts {
		var existing entity.Product
		err := db.Where("name = ?", p.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		product := entity.Product{
			Name:         p.Name,
			UnitPrice:    p.UnitPrice,
			CostPrice:    p.CostPrice,
			CurrentStock: p.CurrentStock,
			MinimumStock: p.MinimumStock,
			MaximumStock: p.MaximumStock,
			IsActive:     true,
		}
		if cat, ok := categoryIDs[p.Category]; ok {
			product.CategoryID = &cat.ID
		}
		if err := db.Create(&product).Error; err != nil {
			log.Printf("Warning: failed to create product %s: %v", p.Name, err)
		}
	}

	for _, c := range sampleCustomers {
		var existing entity.Customer
		err := db.Where("name = ?", c.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		phone := c.Phone
		address := c.Address
		customer := entity.Customer{
			Name:        c.Name,
			Phone:       &phone,
			Address:     &address,
			CreditLimit: c.CreditLimit,
			IsActive:    true,
		}
		if err := db.Create(&customer).Error; err != nil {
			log.Printf("Warning: failed to create customer %s: %v", c.Name, err)
		}
	}

	log.Println("Sample data seeding completed")
	return nil
}
