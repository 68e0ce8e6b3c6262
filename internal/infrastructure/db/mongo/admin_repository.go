package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/connectpro/marketplace-api/internal/core/domain"
)

const adminCollection = "admin"

// AdminRepository persists the built-in admin account.
type AdminRepository struct {
	coll *mongo.Collection
}

func NewAdminRepository(db *mongo.Database) *AdminRepository {
	return &AdminRepository{coll: db.Collection(adminCollection)}
}

type mongoAdmin struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	CreatedAt    int64              `bson:"created_at"`
}

func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	var ma mongoAdmin
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&ma); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}

	return &domain.Admin{
		ID:           ma.ID.Hex(),
		Email:        ma.Email,
		PasswordHash: ma.PasswordHash,
		CreatedAt:    unixToTime(ma.CreatedAt),
	}, nil
}

// Upsert writes the admin record keyed by email. Used by the startup seed.
func (r *AdminRepository) Upsert(ctx context.Context, admin *domain.Admin) error {
	createdAt := admin.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	update := bson.M{"$set": bson.M{
		"email":         admin.Email,
		"password_hash": admin.PasswordHash,
	}, "$setOnInsert": bson.M{
		"created_at": createdAt.Unix(),
	}}

	_, err := r.coll.UpdateOne(ctx, bson.M{"email": admin.Email}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert admin: %w", err)
	}
	return nil
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
