package requestRepo

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

// MongoRequestRepo implements RequestRepository using MongoDB.
type MongoRequestRepo struct {
	coll *mongo.Collection
}

// NewMongoRequestRepo constructs a new instance of MongoRequestRepo.
func NewMongoRequestRepo() RequestRepository {
	repo := &MongoRequestRepo{coll: database.DB().Collection("requests")}
	if err := repo.ensureIndexes(); err != nil {
		panic(fmt.Sprintf("request repo: %v", err))
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoRequestRepo) Create(req *models.Request) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, req); err != nil {
		return fmt.Errorf("error inserting request: %w", err)
	}
	return nil
}

func (r *MongoRequestRepo) GetByID(id string) (*models.Request, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var req models.Request
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&req); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching request with id %s: %w", id, err)
	}
	return &req, nil
}

func (r *MongoRequestRepo) ListByCustomer(customerID string) ([]models.Request, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"customer_id": customerID})
	if err != nil {
		return nil, fmt.Errorf("error listing requests for customer %s: %w", customerID, err)
	}
	defer cursor.Close(ctx)

	var requests []models.Request
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("error decoding requests: %w", err)
	}
	return requests, nil
}

func (r *MongoRequestRepo) ListOpen() ([]models.Request, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"status":     bson.M{"$in": []string{models.RequestStatusNew, models.RequestStatusInBidding}},
		"expires_at": bson.M{"$gt": time.Now()},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing open requests: %w", err)
	}
	defer cursor.Close(ctx)

	var requests []models.Request
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("error decoding open requests: %w", err)
	}
	return requests, nil
}

func (r *MongoRequestRepo) UpdateStatusWhere(id, to string, from ...string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	if len(from) > 0 {
		filter["status"] = bson.M{"$in": from}
	}
	update := bson.M{"$set": bson.M{"status": to, "updated_at": time.Now()}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("error updating request %s status to %s: %w", id, to, err)
	}
	return res.MatchedCount > 0, nil
}
