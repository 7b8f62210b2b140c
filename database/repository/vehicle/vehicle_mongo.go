package vehicleRepo

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

// MongoVehicleRepo implements VehicleRepository using MongoDB.
type MongoVehicleRepo struct {
	coll *mongo.Collection
}

// NewMongoVehicleRepo constructs a new instance of MongoVehicleRepo.
func NewMongoVehicleRepo() VehicleRepository {
	repo := &MongoVehicleRepo{coll: database.DB().Collection("vehicles")}
	if err := repo.ensureIndexes(); err != nil {
		panic(fmt.Sprintf("vehicle repo: %v", err))
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoVehicleRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "customer_id", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoVehicleRepo) Create(vehicle *models.Vehicle) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, vehicle); err != nil {
		return fmt.Errorf("error inserting vehicle: %w", err)
	}
	return nil
}

func (r *MongoVehicleRepo) GetByID(id string) (*models.Vehicle, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var vehicle models.Vehicle
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&vehicle); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching vehicle with id %s: %w", id, err)
	}
	return &vehicle, nil
}

func (r *MongoVehicleRepo) ListByCustomer(customerID string) ([]models.Vehicle, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"customer_id": customerID})
	if err != nil {
		return nil, fmt.Errorf("error listing vehicles for customer %s: %w", customerID, err)
	}
	defer cursor.Close(ctx)

	var vehicles []models.Vehicle
	if err := cursor.All(ctx, &vehicles); err != nil {
		return nil, fmt.Errorf("error decoding vehicles: %w", err)
	}
	return vehicles, nil
}
