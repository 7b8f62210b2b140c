package reviewRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fixmarkt/database"
	"fixmarkt/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoReviewRepo implements ReviewRepository using MongoDB.
type MongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo constructs a new instance of MongoReviewRepo.
func NewMongoReviewRepo() ReviewRepository {
	repo := &MongoReviewRepo{coll: database.DB().Collection("reviews")}
	if err := repo.ensureIndexes(); err != nil {
		panic(fmt.Sprintf("review repo: %v", err))
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoReviewRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "booking_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "workshop_id", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoReviewRepo) Create(review *models.Review) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, review); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("error inserting review: %w", err)
	}
	return nil
}

func (r *MongoReviewRepo) GetByBookingID(bookingID string) (*models.Review, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var review models.Review
	if err := r.coll.FindOne(ctx, bson.M{"booking_id": bookingID}).Decode(&review); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching review for booking %s: %w", bookingID, err)
	}
	return &review, nil
}

func (r *MongoReviewRepo) ListByWorkshop(workshopID string) ([]models.Review, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"workshop_id": workshopID})
	if err != nil {
		return nil, fmt.Errorf("error listing reviews for workshop %s: %w", workshopID, err)
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("error decoding reviews: %w", err)
	}
	return reviews, nil
}
