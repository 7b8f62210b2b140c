package offerRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fixmarkt/database"
	"fixmarkt/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoOfferRepo implements OfferRepository using MongoDB.
type MongoOfferRepo struct {
	coll *mongo.Collection
}

// NewMongoOfferRepo constructs a new instance of MongoOfferRepo.
func NewMongoOfferRepo() OfferRepository {
	repo := &MongoOfferRepo{coll: database.DB().Collection("offers")}
	if err := repo.ensureIndexes(); err != nil {
		panic(fmt.Sprintf("offer repo: %v", err))
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoOfferRepo) Create(offer *models.Offer) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, offer); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("error inserting offer: %w", err)
	}
	return nil
}

func (r *MongoOfferRepo) GetByID(id string) (*models.Offer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var offer models.Offer
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&offer); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching offer with id %s: %w", id, err)
	}
	return &offer, nil
}

func (r *MongoOfferRepo) ListByRequest(requestID string) ([]models.Offer, error) {
	return r.list(bson.M{"request_id": requestID})
}

func (r *MongoOfferRepo) ListByWorkshop(workshopID string) ([]models.Offer, error) {
	return r.list(bson.M{"workshop_id": workshopID})
}

func (r *MongoOfferRepo) list(filter bson.M) ([]models.Offer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing offers: %w", err)
	}
	defer cursor.Close(ctx)

	var offers []models.Offer
	if err := cursor.All(ctx, &offers); err != nil {
		return nil, fmt.Errorf("error decoding offers: %w", err)
	}
	return offers, nil
}

func (r *MongoOfferRepo) RequestIDsWithOfferFrom(workshopID string) (map[string]bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	values, err := r.coll.Distinct(ctx, "request_id", bson.M{"workshop_id": workshopID})
	if err != nil {
		return nil, fmt.Errorf("error listing offered request ids: %w", err)
	}
	ids := make(map[string]bool, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			ids[s] = true
		}
	}
	return ids, nil
}

func (r *MongoOfferRepo) Update(offer *models.Offer) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	offer.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": offer.ID}, offer)
	if err != nil {
		return fmt.Errorf("error updating offer %s: %w", offer.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AcceptIfSent performs the compare-and-swap gating booking creation:
// only a SENT offer can move to ACCEPTED, and only one caller observes success.
func (r *MongoOfferRepo) AcceptIfSent(id string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": models.OfferStatusSent}
	update := bson.M{"$set": bson.M{"status": models.OfferStatusAccepted, "updated_at": time.Now()}}

	err := r.coll.FindOneAndUpdate(ctx, filter, update).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("error accepting offer %s: %w", id, err)
	}
	return true, nil
}
