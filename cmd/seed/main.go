// cmd/seed/main.go — idempotent demo data loader.
// Usage: go run ./cmd/seed
package main

import (
	"context"

	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/config"
	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/infra"
	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/model"
	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	ctx := context.Background()
	users := repository.NewUserRepository(db)

	// Seed only into an empty database so restarts never duplicate rows.
	count, err := users.Count(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to count users")
	}
	if count > 0 {
		log.Info().Msg("database already seeded, nothing to do")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), 12)
	if err != nil {
		log.Fatal().Err(err).Msg("bcrypt error")
	}
	if err := users.Create(ctx, &model.User{
		Email:        "admin@whiskandwhisk.com",
		PasswordHash: string(hash),
	}); err != nil {
		log.Fatal().Err(err).Msg("failed to create admin user")
	}

	customers := repository.NewCustomerRepository(db)
	for _, cust := range []model.Customer{
		{
			Name:        "Arun Kumar",
			Email:       "arun@example.com",
			Phone:       "9876543210",
			Address:     "123 Anna Nagar, Chennai",
			Birthday:    "1990-08-15",
			Anniversary: "2015-11-20",
		},
		{
			Name:     "Priya Sharma",
			Email:    "priya@example.com",
			Phone:    "9123456780",
			Address:  "456 T Nagar, Chennai",
			Birthday: "1992-04-22",
		},
	} {
		c := cust
		if err := customers.Create(ctx, &c); err != nil {
			log.Fatal().Err(err).Str("name", c.Name).Msg("failed to seed customer")
		}
	}

	stock := repository.NewStockItemRepository(db)
	for _, item := range []model.StockItem{
		{
			Name:              "Flour",
			Category:          model.CategoryIngredient,
			Quantity:          decimal.NewFromInt(50),
			Unit:              "kg",
			CostPerUnit:       decimal.NewFromInt(40),
			LowStockThreshold: decimal.NewFromInt(10),
		},
		{
			Name:              "Sugar",
			Category:          model.CategoryIngredient,
			Quantity:          decimal.NewFromInt(40),
			Unit:              "kg",
			CostPerUnit:       decimal.NewFromInt(55),
			LowStockThreshold: decimal.NewFromInt(5),
		},
		{
			Name:              "Butter",
			Category:          model.CategoryIngredient,
			Quantity:          decimal.NewFromInt(20),
			Unit:              "kg",
			CostPerUnit:       decimal.NewFromInt(500),
			LowStockThreshold: decimal.NewFromInt(4),
		},
		{
			Name:              "Croissant",
			Category:          model.CategoryFinishedProduct,
			Quantity:          decimal.NewFromInt(50),
			Unit:              "pcs",
			CostPerUnit:       decimal.NewFromInt(25),
			LowStockThreshold: decimal.NewFromInt(10),
			SellingPrice:      decimalPtr(75),
		},
		{
			Name:              "Chocolate Cake (1kg)",
			Category:          model.CategoryFinishedProduct,
			Quantity:          decimal.NewFromInt(10),
			Unit:              "pcs",
			CostPerUnit:       decimal.NewFromInt(400),
			LowStockThreshold: decimal.NewFromInt(3),
			SellingPrice:      decimalPtr(850),
		},
		{
			Name:              "Cake Box (1kg)",
			Category:          model.CategoryPackaging,
			Quantity:          decimal.NewFromInt(100),
			Unit:              "pcs",
			CostPerUnit:       decimal.NewFromInt(15),
			LowStockThreshold: decimal.NewFromInt(20),
		},
	} {
		it := item
		if err := stock.Create(ctx, &it); err != nil {
			log.Fatal().Err(err).Str("name", it.Name).Msg("failed to seed stock item")
		}
	}

	log.Info().Msg("seed complete: 1 user, 2 customers, 6 stock items")
}

func decimalPtr(n int64) *decimal.Decimal {
	d := decimal.NewFromInt(n)
	return &d
}
