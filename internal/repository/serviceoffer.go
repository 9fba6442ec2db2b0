package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"covidhelp/internal/domain"
)

// ServiceOfferRepository is the store for anonymous help offers.
type ServiceOfferRepository interface {
	Create(ctx context.Context, offer *domain.ServiceOffer) error
	FindAll(ctx context.Context) ([]domain.ServiceOffer, error)
}

type MongoServiceOfferRepo struct {
	collection *mongo.Collection
}

var _ ServiceOfferRepository = (*MongoServiceOfferRepo)(nil)

func NewServiceOfferRepo(db *mongo.Database) *MongoServiceOfferRepo {
	return &MongoServiceOfferRepo{
		collection: db.Collection("serviceoffers"),
	}
}

func (r *MongoServiceOfferRepo) Create(ctx context.Context, offer *domain.ServiceOffer) error {
	res, err := r.collection.InsertOne(ctx, offer)
	if err != nil {
		return fmt.Errorf("inserting service offer: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		offer.ID = oid
	}
	return nil
}

// FindAll returns every offer in natural store order. The listing pages show
// the whole collection; there is no pagination.
func (r *MongoServiceOfferRepo) FindAll(ctx context.Context) ([]domain.ServiceOffer, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("listing service offers: %w", err)
	}
	var offers []domain.ServiceOffer
	if err := cursor.All(ctx, &offers); err != nil {
		return nil, fmt.Errorf("decoding service offers: %w", err)
	}
	return offers, nil
}
