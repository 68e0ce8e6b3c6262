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

const bookingCollection = "bookings"

// BookingRepository persists service requests.
type BookingRepository struct {
	coll *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{coll: db.Collection(bookingCollection)}
}

type mongoBooking struct {
	ID            primitive.ObjectID          `bson:"_id,omitempty"`
	UserID        string                      `bson:"user_id"`
	WorkerID      string                      `bson:"worker_id"`
	Category      string                      `bson:"category"`
	Description   string                      `bson:"description"`
	Address       string                      `bson:"address"`
	City          string                      `bson:"city"`
	ScheduledFor  time.Time                   `bson:"scheduled_for"`
	Status        domain.BookingStatus        `bson:"status"`
	StatusHistory []domain.StatusHistoryEntry `bson:"status_history"`
	CreatedAt     time.Time                   `bson:"created_at"`
	UpdatedAt     time.Time                   `bson:"updated_at"`
}

func (mb *mongoBooking) toDomain() *domain.Booking {
	return &domain.Booking{
		ID:            mb.ID.Hex(),
		UserID:        mb.UserID,
		WorkerID:      mb.WorkerID,
		Category:      mb.Category,
		Description:   mb.Description,
		Address:       mb.Address,
		City:          mb.City,
		ScheduledFor:  mb.ScheduledFor,
		Status:        mb.Status,
		StatusHistory: mb.StatusHistory,
		CreatedAt:     mb.CreatedAt,
		UpdatedAt:     mb.UpdatedAt,
	}
}

func (r *BookingRepository) Insert(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	doc := mongoBooking{
		UserID:        booking.UserID,
		WorkerID:      booking.WorkerID,
		Category:      booking.Category,
		Description:   booking.Description,
		Address:       booking.Address,
		City:          booking.City,
		ScheduledFor:  booking.ScheduledFor,
		Status:        booking.Status,
		StatusHistory: booking.StatusHistory,
		CreatedAt:     booking.CreatedAt,
		UpdatedAt:     booking.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	out := *booking
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		out.ID = oid.Hex()
	}
	return &out, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBookingNotFound
	}

	var mb mongoBooking
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mb); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}
	return mb.toDomain(), nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	return r.list(ctx, bson.M{"user_id": userID})
}

func (r *BookingRepository) ListByWorker(ctx context.Context, workerID string) ([]domain.Booking, error) {
	return r.list(ctx, bson.M{"worker_id": workerID})
}

func (r *BookingRepository) ListAll(ctx context.Context) ([]domain.Booking, error) {
	return r.list(ctx, bson.M{})
}

func (r *BookingRepository) list(ctx context.Context, filter bson.M) ([]domain.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []domain.Booking
	for cursor.Next(ctx) {
		var mb mongoBooking
		if err := cursor.Decode(&mb); err != nil {
			return nil, fmt.Errorf("decode booking: %w", err)
		}
		bookings = append(bookings, *mb.toDomain())
	}
	return bookings, cursor.Err()
}

// UpdateStatus atomically sets the new status and appends a history entry.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus, ts time.Time, notes string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrBookingNotFound
	}

	update := bson.M{
		"$set": bson.M{"status": status, "updated_at": ts},
		"$push": bson.M{"status_history": domain.StatusHistoryEntry{
			Status:    status,
			Timestamp: ts,
			Notes:     notes,
		}},
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}
