package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vidserve/backend/config"
	"github.com/vidserve/backend/internal/infrastructure/mongodb"
	"github.com/vidserve/backend/pkg/helpers"
)

// Seeds a demo account for local development. Safe to run repeatedly; the
// upsert keys on email.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()
	client, err := mongodb.NewClient(ctx, cfg.MongoURI, cfg.MongoTimeout)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	email := "demo@vidserve.local"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	doc := bson.M{
		"user_id":    strings.ReplaceAll(uuid.NewString(), "-", ""),
		"first_name": "Demo",
		"last_name":  "User",
		"email":      email,
		"mobile":     "9999999999",
		"password":   hash,
	}
	col := client.Database(cfg.MongoDatabase).Collection(cfg.UsersCollection)
	res, err := col.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$setOnInsert": doc},
		options.Update().SetUpsert(true))
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	if res.UpsertedCount > 0 {
		fmt.Printf("seeded user: email=%s password=%s\n", email, password)
	} else {
		fmt.Printf("user already present: email=%s\n", email)
	}
}
