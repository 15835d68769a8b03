package main

import (
	"errors"

	"github.com/visualshop/internal/config"
	"github.com/visualshop/internal/constants"
	"github.com/visualshop/internal/logger"
	"github.com/visualshop/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logOptions := cfg.Log.ToLoggerOptions()
	logOptions.Component = "seed"
	logger.Init(cfg.Server.Mode, logOptions)
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加分类
	categories := []models.Category{
		{Name: "Furniture", SortOrder: 30, Image: "https://images.unsplash.com/photo-1555041469-a586c61ea9bc?w=800"},
		{Name: "Lighting", SortOrder: 20, Image: "https://images.unsplash.com/photo-1507473885765-e6ed057f782c?w=800"},
		{Name: "Decor", SortOrder: 10, Image: "https://images.unsplash.com/photo-1513519245088-0e12902e5a38?w=800"},
	}
	for _, cat := range categories {
		var existing models.Category
		err := models.DB.Where("name = ?", cat.Name).First(&existing).Error
		switch {
		case err == nil:
			stdLog.Printf("Category already exists: %s", cat.Name)
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("Failed to create category %s: %v", cat.Name, err)
			} else {
				stdLog.Printf("Created category: %s", cat.Name)
			}
		default:
			stdLog.Printf("Failed to check category %s: %v", cat.Name, err)
		}
	}

	// 添加商品
	original := models.MustMoney("249.00")
	products := []models.Product{
		{
			Name:          "Oak Lounge Chair",
			Description:   "Solid oak frame with a woven seat.",
			Price:         models.MustMoney("189.00"),
			OriginalPrice: &original,
			Image:         "https://images.unsplash.com/photo-1567538096630-e0c55bd6374c?w=800",
			Images:        models.StringArray{"https://images.unsplash.com/photo-1567538096630-e0c55bd6374c?w=800"},
			Category:      "Furniture",
			Rating:        4.7,
			Reviews:       128,
			Badge:         "Sale",
			Colors:        models.StringArray{"Natural", "Walnut"},
			InStock:       true,
		},
		{
			Name:        "Linen Sofa",
			Description: "Three seat sofa in washed linen.",
			Price:       models.MustMoney("899.00"),
			Image:       "https://images.unsplash.com/photo-1555041469-a586c61ea9bc?w=800",
			Images:      models.StringArray{"https://images.unsplash.com/photo-1555041469-a586c61ea9bc?w=800"},
			Category:    "Furniture",
			Rating:      4.5,
			Reviews:     64,
			Colors:      models.StringArray{"Sand", "Slate"},
			InStock:     true,
		},
		{
			Name:        "Arc Floor Lamp",
			Description: "Brushed brass arc lamp with a linen shade.",
			Price:       models.MustMoney("65.00"),
			Image:       "https://images.unsplash.com/photo-1507473885765-e6ed057f782c?w=800",
			Images:      models.StringArray{"https://images.unsplash.com/photo-1507473885765-e6ed057f782c?w=800"},
			Category:    "Lighting",
			Rating:      4.3,
			Reviews:     41,
			Badge:       "New",
			InStock:     true,
		},
		{
			Name:        "Ceramic Vase",
			Description: "Hand glazed stoneware vase.",
			Price:       models.MustMoney("24.50"),
			Image:       "https://images.unsplash.com/photo-1513519245088-0e12902e5a38?w=800",
			Images:      models.StringArray{"https://images.unsplash.com/photo-1513519245088-0e12902e5a38?w=800"},
			Category:    "Decor",
			Rating:      4.8,
			Reviews:     203,
			Sizes:       models.StringArray{"S", "M", "L"},
			InStock:     true,
		},
		{
			Name:        "Wool Throw",
			Description: "Merino wool throw blanket.",
			Price:       models.MustMoney("79.00"),
			Image:       "https://images.unsplash.com/photo-1580301762395-21ce84d00bc6?w=800",
			Images:      models.StringArray{"https://images.unsplash.com/photo-1580301762395-21ce84d00bc6?w=800"},
			Category:    "Decor",
			Rating:      4.6,
			Reviews:     87,
			Colors:      models.StringArray{"Oat", "Charcoal"},
			InStock:     false,
		},
	}
	for _, product := range products {
		var existing models.Product
		err := models.DB.Where("name = ?", product.Name).First(&existing).Error
		switch {
		case err == nil:
			stdLog.Printf("Product already exists: %s", product.Name)
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := models.DB.Create(&product).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", product.Name, err)
			} else {
				stdLog.Printf("Created product: %s", product.Name)
			}
		default:
			stdLog.Printf("Failed to check product %s: %v", product.Name, err)
		}
	}

	// 演示用户
	demoEmail := "demo@visualshop.local"
	var demo models.User
	err := models.DB.Where("email = ?", demoEmail).First(&demo).Error
	switch {
	case err == nil:
		stdLog.Printf("Demo user already exists: %s", demoEmail)
	case errors.Is(err, gorm.ErrRecordNotFound):
		hash, hashErr := bcrypt.GenerateFromPassword([]byte("demo12345"), bcrypt.DefaultCost)
		if hashErr != nil {
			stdLog.Fatalf("Failed to hash demo password: %v", hashErr)
		}
		demo = models.User{
			Email:        demoEmail,
			PasswordHash: string(hash),
			Name:         "Demo Shopper",
			Role:         constants.UserRoleCustomer,
			Status:       constants.UserStatusActive,
		}
		if err := models.DB.Create(&demo).Error; err != nil {
			stdLog.Printf("Failed to create demo user: %v", err)
		} else {
			stdLog.Printf("Created demo user: %s", demoEmail)
		}
	default:
		stdLog.Printf("Failed to check demo user: %v", err)
	}

	stdLog.Printf("Seed completed")
}
