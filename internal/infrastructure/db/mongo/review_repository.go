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

const reviewCollection = "reviews"

// ReviewRepository persists booking reviews.
type ReviewRepository struct {
	coll *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{coll: db.Collection(reviewCollection)}
}

func (r *ReviewRepository) Insert(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	res, err := r.coll.InsertOne(ctx, review)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrReviewExists
		}
		return nil, fmt.Errorf("insert review: %w", err)
	}

	out := *review
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		out.ID = oid.Hex()
	}
	return &out, nil
}

// FindByBooking returns (nil, nil) when the booking has no review yet.
func (r *ReviewRepository) FindByBooking(ctx context.Context, bookingID string) (*domain.Review, error) {
	var review domain.Review
	if err := r.coll.FindOne(ctx, bson.M{"booking_id": bookingID}).Decode(&review); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("find review: %w", err)
	}
	return &review, nil
}

func (r *ReviewRepository) ListByWorker(ctx context.Context, workerID string) ([]domain.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"worker_id": workerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var reviews []domain.Review
	for cursor.Next(ctx) {
		var review domain.Review
		if err := cursor.Decode(&review); err != nil {
			return nil, fmt.Errorf("decode review: %w", err)
		}
		reviews = append(reviews, review)
	}
	return reviews, cursor.Err()
}
