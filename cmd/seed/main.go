package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/imnahmed17/user-order-api/config"
	userapp "github.com/imnahmed17/user-order-api/internal/application"
	"github.com/imnahmed17/user-order-api/internal/domain/entity"
	"github.com/imnahmed17/user-order-api/internal/infrastructure/mongodb"
	"github.com/imnahmed17/user-order-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)

	ctx := context.Background()
	client, err := mongodb.NewClient(ctx, cfg.MongoURI, cfg.MongoMaxPool, cfg.MongoConnectTimeout)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	coll := client.Database(cfg.MongoDatabase).Collection(cfg.MongoUserCollection)
	if err := mongodb.EnsureIndexes(ctx, coll); err != nil {
		log.Fatalf("failed to create indexes: %v", err)
	}

	svc := userapp.NewService(mongodb.NewUserRepository(coll), logger, cfg.BcryptCost)

	demo := &entity.User{
		UserID:   "demo-user",
		Username: "demoUser",
		Password: "password123",
		FullName: entity.FullName{FirstName: "Demo", LastName: "User"},
		Age:      25,
		Email:    "demo@example.com",
		IsActive: true,
		Hobbies:  []string{"reading", "gardening"},
		Address:  entity.Address{Street: "1 Demo Street", City: "Dhaka", Country: "Bangladesh"},
	}

	if _, err := svc.CreateUser(ctx, demo); err != nil {
		if err == userapp.ErrUserExists {
			fmt.Printf("user %s already seeded\n", demo.UserID)
			return
		}
		log.Fatalf("failed to seed user: %v", err)
	}

	if _, err := svc.AddOrder(ctx, demo.UserID, entity.Order{ProductName: "Book", Price: 10, Quantity: 2}); err != nil {
		log.Fatalf("failed to seed order: %v", err)
	}
	if _, err := svc.AddOrder(ctx, demo.UserID, entity.Order{ProductName: "Pen", Price: 2, Quantity: 5}); err != nil {
		log.Fatalf("failed to seed order: %v", err)
	}

	fmt.Printf("seeded user: userId=%s username=%s password=%s\n", demo.UserID, demo.Username, "password123")
}
