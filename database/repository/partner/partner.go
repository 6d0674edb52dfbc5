package partnerRepo

import (
	"context"
	"errors"
	"fmt"

	"spordate/database"
	"spordate/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrPartnerNotFound is returned when no partner matches the given id.
var ErrPartnerNotFound = errors.New("partner not found")

// PartnerRepository exposes read-only access to venue records. Writes are
// owned by venue management outside this core.
type PartnerRepository interface {
	GetByID(ctx context.Context, id string) (*models.Partner, error)
	ListActive(ctx context.Context) ([]models.Partner, error)
}

// MongoPartnerRepo reads partners from the managed store.
type MongoPartnerRepo struct {
	coll *mongo.Collection
}

func NewMongoPartnerRepo() (*MongoPartnerRepo, error) {
	db := database.Database()
	if db == nil {
		return nil, fmt.Errorf("mongo partner repo: database not initialized")
	}
	return &MongoPartnerRepo{coll: db.Collection("partners")}, nil
}

func (r *MongoPartnerRepo) GetByID(ctx context.Context, id string) (*models.Partner, error) {
	var partner models.Partner
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&partner)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrPartnerNotFound
		}
		return nil, err
	}
	return &partner, nil
}

func (r *MongoPartnerRepo) ListActive(ctx context.Context) ([]models.Partner, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var partners []models.Partner
	if err := cursor.All(ctx, &partners); err != nil {
		return nil, err
	}
	return partners, nil
}
