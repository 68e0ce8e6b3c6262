package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/connectpro/marketplace-api/internal/core/domain"
)

const contactCollection = "contacts"

// ContactRepository persists contact-form messages.
type ContactRepository struct {
	coll *mongo.Collection
}

func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{coll: db.Collection(contactCollection)}
}

func (r *ContactRepository) Insert(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error) {
	res, err := r.coll.InsertOne(ctx, msg)
	if err != nil {
		return nil, fmt.Errorf("insert contact message: %w", err)
	}

	out := *msg
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		out.ID = oid.Hex()
	}
	return &out, nil
}

func (r *ContactRepository) ListAll(ctx context.Context) ([]domain.ContactMessage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer cursor.Close(ctx)

	var messages []domain.ContactMessage
	for cursor.Next(ctx) {
		var msg domain.ContactMessage
		if err := cursor.Decode(&msg); err != nil {
			return nil, fmt.Errorf("decode contact message: %w", err)
		}
		messages = append(messages, msg)
	}
	return messages, cursor.Err()
}
