package bookingRepo

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

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new instance of MongoBookingRepo.
func NewMongoBookingRepo() BookingRepository {
	repo := &MongoBookingRepo{coll: database.DB().Collection("bookings")}
	if err := repo.ensureIndexes(); err != nil {
		panic(fmt.Sprintf("booking repo: %v", err))
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBookingRepo) Create(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("error inserting booking: %w", err)
	}
	return nil
}

func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching booking with id %s: %w", id, err)
	}
	return &booking, nil
}

func (r *MongoBookingRepo) ListByCustomer(customerID string) ([]models.Booking, error) {
	return r.list(bson.M{"customer_id": customerID})
}

func (r *MongoBookingRepo) ListByWorkshop(workshopID string) ([]models.Booking, error) {
	return r.list(bson.M{"workshop_id": workshopID})
}

func (r *MongoBookingRepo) list(filter bson.M) ([]models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

func (r *MongoBookingRepo) Update(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	booking.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": booking.ID}, booking)
	if err != nil {
		return fmt.Errorf("error updating booking %s: %w", booking.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoBookingRepo) AggregatePayouts(from, to time.Time) ([]PayoutRow, error) {
	ctx, cancel := newContext(30 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"status":     models.BookingStatusDone,
			"created_at": bson.M{"$gte": from, "$lte": to},
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":          "$workshop_id",
			"total_jobs":   bson.M{"$sum": 1},
			"total_amount": bson.M{"$sum": "$total_amount"},
			"commission":   bson.M{"$sum": "$commission"},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("error aggregating payouts: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []PayoutRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("error decoding payout rows: %w", err)
	}
	return rows, nil
}
