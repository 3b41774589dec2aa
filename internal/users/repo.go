package users

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/goblinball/goblinball/internal/shared"
)

// Repository defines persistence operations for the users service.
type Repository interface {
	Insert(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByLogin(ctx context.Context, usernameOrEmail string) (*User, error)
}

// MongoRepository implements Repository against the users collection.
type MongoRepository struct {
	col *mongo.Collection
}

// NewRepository constructs a MongoRepository.
func NewRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{col: db.Collection("users")}
}

// EnsureIndexes creates the unique username index.
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Insert stores a new user and fills in the minted id.
func (r *MongoRepository) Insert(ctx context.Context, user *User) error {
	result, err := r.col.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return shared.ErrDuplicate
		}
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

// FindByID fetches a user by its identifier. A malformed identifier reads
// as not-found; callers cannot probe id formats.
func (r *MongoRepository) FindByID(ctx context.Context, id string) (*User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, shared.ErrNotFound
	}
	var user User
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByLogin fetches a user by username or email.
func (r *MongoRepository) FindByLogin(ctx context.Context, usernameOrEmail string) (*User, error) {
	query := bson.M{"$or": []bson.M{
		{"username": usernameOrEmail},
		{"email": usernameOrEmail},
	}}
	var user User
	if err := r.col.FindOne(ctx, query).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

var _ Repository = (*MongoRepository)(nil)
