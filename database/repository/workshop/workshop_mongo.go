package workshopRepo

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

// MongoWorkshopRepo implements WorkshopRepository using MongoDB.
type MongoWorkshopRepo struct {
	coll *mongo.Collection
}

// NewMongoWorkshopRepo constructs a new instance of MongoWorkshopRepo.
func NewMongoWorkshopRepo() WorkshopRepository {
	repo := &MongoWorkshopRepo{coll: database.DB().Collection("workshops")}
	if err := repo.ensureIndexes(); err != nil {
		panic(fmt.Sprintf("workshop repo: %v", err))
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoWorkshopRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoWorkshopRepo) Create(workshop *models.Workshop) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, workshop); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("error inserting workshop: %w", err)
	}
	return nil
}

func (r *MongoWorkshopRepo) GetByID(id string) (*models.Workshop, error) {
	return r.findOne(bson.M{"id": id})
}

func (r *MongoWorkshopRepo) GetByEmail(email string) (*models.Workshop, error) {
	return r.findOne(bson.M{"email": email})
}

func (r *MongoWorkshopRepo) GetByTokenHash(tokenHash string) (*models.Workshop, error) {
	return r.findOne(bson.M{"token_hash": tokenHash})
}

func (r *MongoWorkshopRepo) findOne(filter bson.M) (*models.Workshop, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var workshop models.Workshop
	if err := r.coll.FindOne(ctx, filter).Decode(&workshop); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching workshop: %w", err)
	}
	return &workshop, nil
}

func (r *MongoWorkshopRepo) UpdateTokenHash(id, tokenHash string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"token_hash": tokenHash}})
	if err != nil {
		return fmt.Errorf("error updating token hash for workshop %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoWorkshopRepo) Update(workshop *models.Workshop) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": workshop.ID}, workshop)
	if err != nil {
		return fmt.Errorf("error updating workshop %s: %w", workshop.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
