package repository

import (
	"context"
	"fmt"
	"time"

	"course-order-export/internal/domain"
	"course-order-export/internal/infrastructure/repository/entity"
	"course-order-export/internal/ports"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoTokenStore implements TokenStore using MongoDB
type MongoTokenStore struct {
	tokensCollection *mongo.Collection
}

// NewMongoTokenStore creates a new MongoDB token store
func NewMongoTokenStore(db *mongo.Database) ports.TokenStore {
	return &MongoTokenStore{
		tokensCollection: db.Collection("shop_tokens"),
	}
}

// EnsureIndexes creates the unique index on the token key
func (s *MongoTokenStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.tokensCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "key", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create token index: %w", err)
	}
	return nil
}

// Get retrieves the token for a shop
func (s *MongoTokenStore) Get(ctx context.Context, shop string) (string, bool, error) {
	var doc entity.MongoTokenDoc
	filter := bson.M{"key": domain.TokenKey(shop)}

	err := s.tokensCollection.FindOne(ctx, filter).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get token: %w", err)
	}

	return doc.ToDomain().AccessToken, true, nil
}

// Put saves or replaces the token for a shop
func (s *MongoTokenStore) Put(ctx context.Context, shop string, token string) error {
	now := time.Now()
	doc := entity.MongoTokenDocFromDomain(&domain.ShopToken{
		Key:         domain.TokenKey(shop),
		Shop:        shop,
		AccessToken: token,
		UpdatedAt:   now,
	})

	opts := options.Update().SetUpsert(true)
	filter := bson.M{"key": doc.Key}
	update := bson.M{
		"$set": bson.M{
			"shop":        doc.Shop,
			"accessToken": doc.AccessToken,
			"updatedAt":   doc.UpdatedAt,
		},
		"$setOnInsert": bson.M{"createdAt": now},
	}

	_, err := s.tokensCollection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}

	return nil
}
