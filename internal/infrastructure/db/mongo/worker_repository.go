package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/connectpro/marketplace-api/internal/core/domain"
)

const workerCollection = "workers"

// WorkerRepository persists service-provider accounts.
type WorkerRepository struct {
	coll *mongo.Collection
}

func NewWorkerRepository(db *mongo.Database) *WorkerRepository {
	return &WorkerRepository{coll: db.Collection(workerCollection)}
}

type mongoWorker struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Email           string             `bson:"email"`
	PasswordHash    string             `bson:"password_hash"`
	FirstName       string             `bson:"first_name"`
	LastName        string             `bson:"last_name"`
	Phone           string             `bson:"phone,omitempty"`
	City            string             `bson:"city,omitempty"`
	Designation     string             `bson:"designation"`
	ExperienceYears int                `bson:"experience_years"`
	Approved        bool               `bson:"is_approved"`
	Available       bool               `bson:"is_available"`
	CreatedAt       int64              `bson:"created_at"`
	UpdatedAt       int64              `bson:"updated_at"`
}

func (mw *mongoWorker) toDomain() *domain.Worker {
	return &domain.Worker{
		ID:              mw.ID.Hex(),
		Email:           mw.Email,
		PasswordHash:    mw.PasswordHash,
		FirstName:       mw.FirstName,
		LastName:        mw.LastName,
		Phone:           mw.Phone,
		City:            mw.City,
		Designation:     mw.Designation,
		ExperienceYears: mw.ExperienceYears,
		Approved:        mw.Approved,
		Available:       mw.Available,
		CreatedAt:       unixToTime(mw.CreatedAt),
		UpdatedAt:       unixToTime(mw.UpdatedAt),
	}
}

func (r *WorkerRepository) Create(ctx context.Context, worker *domain.Worker) (*domain.Worker, error) {
	doc := mongoWorker{
		Email:           worker.Email,
		PasswordHash:    worker.PasswordHash,
		FirstName:       worker.FirstName,
		LastName:        worker.LastName,
		Phone:           worker.Phone,
		City:            worker.City,
		Designation:     worker.Designation,
		ExperienceYears: worker.ExperienceYears,
		Approved:        worker.Approved,
		Available:       worker.Available,
		CreatedAt:       worker.CreatedAt.Unix(),
		UpdatedAt:       worker.UpdatedAt.Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAccountExists
		}
		return nil, fmt.Errorf("insert worker: %w", err)
	}

	return r.FindByEmail(ctx, worker.Email)
}

func (r *WorkerRepository) FindByEmail(ctx context.Context, email string) (*domain.Worker, error) {
	var mw mongoWorker
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&mw); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find worker: %w", err)
	}
	return mw.toDomain(), nil
}

func (r *WorkerRepository) FindByID(ctx context.Context, id string) (*domain.Worker, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAccountNotFound
	}

	var mw mongoWorker
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mw); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find worker: %w", err)
	}
	return mw.toDomain(), nil
}

func (r *WorkerRepository) List(ctx context.Context) ([]domain.Worker, error) {
	return r.list(ctx, bson.M{})
}

func (r *WorkerRepository) ListApproved(ctx context.Context, designation string) ([]domain.Worker, error) {
	filter := bson.M{"is_approved": true, "is_available": true}
	if designation != "" {
		filter["designation"] = designation
	}
	return r.list(ctx, filter)
}

func (r *WorkerRepository) list(ctx context.Context, filter bson.M) ([]domain.Worker, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list workers: %w", err)
	}
	defer cursor.Close(ctx)

	var workers []domain.Worker
	for cursor.Next(ctx) {
		var mw mongoWorker
		if err := cursor.Decode(&mw); err != nil {
			return nil, fmt.Errorf("decode worker: %w", err)
		}
		workers = append(workers, *mw.toDomain())
	}
	return workers, cursor.Err()
}

func (r *WorkerRepository) SetApproval(ctx context.Context, id string, approved bool) error {
	return r.setFlag(ctx, id, "is_approved", approved)
}

func (r *WorkerRepository) SetAvailability(ctx context.Context, id string, available bool) error {
	return r.setFlag(ctx, id, "is_available", available)
}

func (r *WorkerRepository) setFlag(ctx context.Context, id, field string, value bool) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAccountNotFound
	}

	update := bson.M{"$set": bson.M{field: value, "updated_at": time.Now().UTC().Unix()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update worker %s: %w", field, err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}
