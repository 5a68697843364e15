package entity

import (
	"time"

	"course-order-export/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MongoTokenDoc represents a shop token in MongoDB
type MongoTokenDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Key         string             `bson:"key"`
	Shop        string             `bson:"shop"`
	AccessToken string             `bson:"accessToken"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

// ToDomain converts the MongoDB document to a domain entity
func (d *MongoTokenDoc) ToDomain() *domain.ShopToken {
	return &domain.ShopToken{
		Key:         d.Key,
		Shop:        d.Shop,
		AccessToken: d.AccessToken,
		UpdatedAt:   d.UpdatedAt,
	}
}

// MongoTokenDocFromDomain converts a domain entity to a MongoDB document
func MongoTokenDocFromDomain(token *domain.ShopToken) *MongoTokenDoc {
	return &MongoTokenDoc{
		Key:         token.Key,
		Shop:        token.Shop,
		AccessToken: token.AccessToken,
		UpdatedAt:   token.UpdatedAt,
	}
}
