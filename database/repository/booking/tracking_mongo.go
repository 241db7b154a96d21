package bookingRepo

import (
	"context"
	"fmt"

	"brightnest/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoTrackingRepo implements TrackingRepository using MongoDB.
type MongoTrackingRepo struct {
	coll *mongo.Collection
}

// NewMongoTrackingRepo creates a TrackingRepository backed by the given database.
func NewMongoTrackingRepo(db *mongo.Database) TrackingRepository {
	return &MongoTrackingRepo{coll: db.Collection("booking_tracking")}
}

// Insert appends a tracking record.
func (r *MongoTrackingRepo) Insert(ctx context.Context, record *models.TrackingRecord) error {
	if _, err := r.coll.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("failed to insert tracking record for booking %s: %w", record.BookingID, err)
	}
	return nil
}

// ListByBooking retrieves the audit trail for one booking, oldest first.
func (r *MongoTrackingRepo) ListByBooking(ctx context.Context, bookingID string) ([]models.TrackingRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"booking_id": bookingID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list tracking records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.TrackingRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode tracking records: %w", err)
	}
	return records, nil
}
