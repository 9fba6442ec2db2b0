package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"covidhelp/internal/domain"
)

// UserRepository is the identity store. Implementations must map a missing
// record to domain.ErrNotFound and a username collision to
// domain.ErrDuplicateHandle so callers never inspect driver errors.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindOrCreateByGoogleID(ctx context.Context, googleID string) (*domain.User, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.Status) (*domain.User, error)
	FindWithStatus(ctx context.Context) ([]domain.User, error)
	FindByRequirement(ctx context.Context, req domain.Requirement) ([]domain.User, error)
	FindOtherRequirements(ctx context.Context) ([]domain.User, error)
}

type MongoUserRepo struct {
	collection *mongo.Collection
}

var _ UserRepository = (*MongoUserRepo)(nil)

func NewUserRepo(db *mongo.Database) *MongoUserRepo {
	return &MongoUserRepo{
		collection: db.Collection("users"),
	}
}

// EnsureIndexes creates the unique indexes registration and federated login
// rely on. Both are partial: locally registered users have no google_id and
// federated users have no username, and the absent field must not collide.
func (r *MongoUserRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "username", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"username": bson.M{"$type": "string"}}),
		},
		{
			Keys: bson.D{{Key: "google_id", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"google_id": bson.M{"$type": "string"}}),
		},
	})
	if err != nil {
		return fmt.Errorf("creating user indexes: %w", err)
	}
	return nil
}

func (r *MongoUserRepo) Create(ctx context.Context, user *domain.User) error {
	res, err := r.collection.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrDuplicateHandle
	}
	if err != nil {
		return fmt.Errorf("inserting user: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

func (r *MongoUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoUserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *MongoUserRepo) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var user domain.User
	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("finding user: %w", err)
	}
	return &user, nil
}

// FindOrCreateByGoogleID runs a single atomic upsert so that two concurrent
// first logins with the same subject id cannot create two users.
func (r *MongoUserRepo) FindOrCreateByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var user domain.User
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"google_id": googleID},
		bson.M{"$setOnInsert": bson.M{"google_id": googleID}},
		opts,
	).Decode(&user)
	if err != nil {
		return nil, fmt.Errorf("upserting federated user: %w", err)
	}
	return &user, nil
}

// UpdateStatus replaces every status field in one atomic update. Empty
// submitted values overwrite stored ones; there is no partial merge.
func (r *MongoUserRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.Status) (*domain.User, error) {
	set := bson.M{
		"name":        status.Name,
		"age":         status.Age,
		"city":        status.City,
		"state":       status.State,
		"temperature": status.Temperature,
		"count":       status.Count,
		"contact":     status.Contact,
		"content":     status.Content,
		"requirement": string(status.Requirement),
		"result":      status.Result,
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user domain.User
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("updating status: %w", err)
	}
	return &user, nil
}

// hasStatus matches users who have submitted a status record at least once.
// UpdateStatus always sets name, so its presence is the marker.
var hasStatus = bson.M{"name": bson.M{"$exists": true}}

func (r *MongoUserRepo) FindWithStatus(ctx context.Context) ([]domain.User, error) {
	return r.findAll(ctx, hasStatus)
}

func (r *MongoUserRepo) FindByRequirement(ctx context.Context, req domain.Requirement) ([]domain.User, error) {
	return r.findAll(ctx, bson.M{
		"name":        bson.M{"$exists": true},
		"requirement": string(req),
	})
}

// FindOtherRequirements returns submitted users whose requirement matches
// none of the known categories.
func (r *MongoUserRepo) FindOtherRequirements(ctx context.Context) ([]domain.User, error) {
	known := make([]string, 0, len(domain.Requirements()))
	for _, req := range domain.Requirements() {
		known = append(known, string(req))
	}
	return r.findAll(ctx, bson.M{
		"name":        bson.M{"$exists": true},
		"requirement": bson.M{"$nin": known},
	})
}

func (r *MongoUserRepo) findAll(ctx context.Context, filter bson.M) ([]domain.User, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	var users []domain.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decoding users: %w", err)
	}
	return users, nil
}
