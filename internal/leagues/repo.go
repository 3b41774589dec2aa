package leagues

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/goblinball/goblinball/internal/shared"
)

// Repository defines persistence operations for the leagues service.
type Repository interface {
	Insert(ctx context.Context, league *League) error
	FindByID(ctx context.Context, id string) (*League, error)
	FindByOwner(ctx context.Context, ownerID string) ([]League, error)
	Find(ctx context.Context, query bson.D) ([]League, error)
}

// MongoRepository implements Repository against the leagues collection.
type MongoRepository struct {
	col *mongo.Collection
}

// NewRepository constructs a MongoRepository.
func NewRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{col: db.Collection("leagues")}
}

// EnsureIndexes creates the unique league name index.
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Insert stores a new league and fills in the minted id.
func (r *MongoRepository) Insert(ctx context.Context, league *League) error {
	result, err := r.col.InsertOne(ctx, league)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return shared.ErrDuplicate
		}
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		league.ID = oid
	}
	return nil
}

// FindByID fetches a league by its identifier. A malformed identifier reads
// as not-found.
func (r *MongoRepository) FindByID(ctx context.Context, id string) (*League, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, shared.ErrNotFound
	}
	var league League
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&league); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &league, nil
}

// FindByOwner lists the leagues owned by an account.
func (r *MongoRepository) FindByOwner(ctx context.Context, ownerID string) ([]League, error) {
	return r.Find(ctx, bson.D{{Key: "ownerId", Value: ownerID}})
}

// Find runs a translated filter document against the collection.
func (r *MongoRepository) Find(ctx context.Context, query bson.D) ([]League, error) {
	if query == nil {
		query = bson.D{}
	}
	cursor, err := r.col.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	leagues := []League{}
	if err := cursor.All(ctx, &leagues); err != nil {
		return nil, err
	}
	return leagues, nil
}

var _ Repository = (*MongoRepository)(nil)
