package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/connectpro/marketplace-api/internal/core/domain"
)

const eventCollection = "booking_events"

// EventRepository persists the booking audit trail.
type EventRepository struct {
	coll *mongo.Collection
}

func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{coll: db.Collection(eventCollection)}
}

type mongoEvent struct {
	BookingID string               `bson:"booking_id"`
	Status    domain.BookingStatus `bson:"status"`
	Actor     string               `bson:"actor"`
	Timestamp time.Time            `bson:"timestamp"`
	Notes     string               `bson:"notes,omitempty"`
}

func (r *EventRepository) InsertEvent(ctx context.Context, event *domain.BookingEvent) error {
	doc := mongoEvent{
		BookingID: event.BookingID,
		Status:    event.Status,
		Actor:     event.Actor,
		Timestamp: event.Timestamp,
		Notes:     event.Notes,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert booking event: %w", err)
	}
	return nil
}

func (r *EventRepository) ListByBooking(ctx context.Context, bookingID string) ([]domain.BookingEvent, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"booking_id": bookingID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list booking events: %w", err)
	}
	defer cursor.Close(ctx)

	var events []domain.BookingEvent
	for cursor.Next(ctx) {
		var me mongoEvent
		if err := cursor.Decode(&me); err != nil {
			return nil, fmt.Errorf("decode booking event: %w", err)
		}
		events = append(events, domain.BookingEvent{
			BookingID: me.BookingID,
			Status:    me.Status,
			Actor:     me.Actor,
			Timestamp: me.Timestamp,
			Notes:     me.Notes,
		})
	}
	return events, cursor.Err()
}
