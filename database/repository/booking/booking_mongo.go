package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"spordate/database"
	"spordate/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const statsDocID = "global"

// MongoBookingRepo implements BookingRepository against the managed
// document store. The unique index on session_id is the idempotence
// guarantee: a webhook redelivered for the same checkout session can never
// produce a second booking, even under concurrent deliveries.
type MongoBookingRepo struct {
	bookingColl *mongo.Collection
	statsColl   *mongo.Collection
}

// NewMongoBookingRepo returns a repository bound to the configured
// database and ensures its indexes and the stats singleton exist.
func NewMongoBookingRepo() (*MongoBookingRepo, error) {
	db := database.Database()
	if db == nil {
		return nil, fmt.Errorf("mongo booking repo: database not initialized")
	}
	repo := &MongoBookingRepo{
		bookingColl: db.Collection("bookings"),
		statsColl:   db.Collection("stats"),
	}
	if err := repo.ensureIndexes(); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := r.bookingColl.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "session_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create session_id index: %w", err)
	}

	// Seed the stats singleton once so later increments never race a
	// baseline write.
	_, err = r.statsColl.UpdateOne(ctx,
		bson.M{"_id": statsDocID},
		bson.M{"$setOnInsert": bson.M{
			"total_revenue":  RevenueBaseline,
			"total_bookings": int64(0),
			"last_updated":   time.Now(),
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to seed stats document: %w", err)
	}
	return nil
}

// RecordBooking inserts the booking and increments the stats singleton in
// one transaction. The aggregate update uses $inc, never read-then-write.
func (r *MongoBookingRepo) RecordBooking(ctx context.Context, booking *models.Booking) (*models.RecordOutcome, error) {
	if existing, err := r.findBySessionID(ctx, booking.SessionID); err == nil && existing != nil {
		stats, serr := r.GetStats(ctx)
		if serr != nil {
			return nil, serr
		}
		return &models.RecordOutcome{
			Booking:         existing,
			TotalRevenue:    stats.TotalRevenue,
			AlreadyRecorded: true,
		}, nil
	}

	client := r.bookingColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := r.bookingColl.InsertOne(sc, booking); err != nil {
			return nil, err
		}

		var stats models.GlobalStats
		err := r.statsColl.FindOneAndUpdate(sc,
			bson.M{"_id": statsDocID},
			bson.M{
				"$inc": bson.M{
					"total_revenue":  booking.Amount,
					"total_bookings": int64(1),
				},
				"$set": bson.M{"last_updated": time.Now()},
			},
			options.FindOneAndUpdate().
				SetUpsert(true).
				SetReturnDocument(options.After),
		).Decode(&stats)
		if err != nil {
			return nil, fmt.Errorf("failed to update global stats: %w", err)
		}
		return stats.TotalRevenue, nil
	}

	result, err := sess.WithTransaction(ctx, txnFn)
	if err != nil {
		// A concurrent delivery may have won the unique-index race inside
		// the transaction; resolve to the booking that got through.
		if mongo.IsDuplicateKeyError(err) {
			existing, ferr := r.findBySessionID(ctx, booking.SessionID)
			if ferr != nil || existing == nil {
				return nil, fmt.Errorf("duplicate session %s but existing booking not found: %w", booking.SessionID, err)
			}
			stats, serr := r.GetStats(ctx)
			if serr != nil {
				return nil, serr
			}
			return &models.RecordOutcome{
				Booking:         existing,
				TotalRevenue:    stats.TotalRevenue,
				AlreadyRecorded: true,
			}, nil
		}
		return nil, fmt.Errorf("booking transaction failed: %w", err)
	}

	totalRevenue, _ := result.(float64)
	return &models.RecordOutcome{
		Booking:      booking,
		TotalRevenue: totalRevenue,
	}, nil
}

func (r *MongoBookingRepo) findBySessionID(ctx context.Context, sessionID string) (*models.Booking, error) {
	var booking models.Booking
	err := r.bookingColl.FindOne(ctx, bson.M{"session_id": sessionID}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

// GetStats returns the aggregate counters singleton.
func (r *MongoBookingRepo) GetStats(ctx context.Context) (*models.GlobalStats, error) {
	var stats models.GlobalStats
	err := r.statsColl.FindOne(ctx, bson.M{"_id": statsDocID}).Decode(&stats)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return &models.GlobalStats{TotalRevenue: RevenueBaseline}, nil
		}
		return nil, err
	}
	return &stats, nil
}

// GetConfirmedTickets returns the ids of confirmed bookings.
func (r *MongoBookingRepo) GetConfirmedTickets(ctx context.Context) ([]string, error) {
	cursor, err := r.bookingColl.Find(ctx,
		bson.M{"status": models.BookingConfirmed},
		options.Find().SetProjection(bson.M{"id": 1}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []struct {
		ID string `bson:"id"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	return ids, nil
}
