package teams

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/goblinball/goblinball/internal/shared"
)

// Repository defines persistence operations for the teams service.
type Repository interface {
	Insert(ctx context.Context, team *Team) error
	FindByID(ctx context.Context, id string) (*Team, error)
	FindByOwner(ctx context.Context, ownerID string) ([]Team, error)
	FindByLeague(ctx context.Context, leagueID string) ([]Team, error)
	Find(ctx context.Context, query bson.D) ([]Team, error)
	Update(ctx context.Context, team *Team) error
}

// MongoRepository implements Repository against the teams collection.
type MongoRepository struct {
	col *mongo.Collection
}

// NewRepository constructs a MongoRepository.
func NewRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{col: db.Collection("teams")}
}

// EnsureIndexes creates the unique team name index.
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Insert stores a new team and fills in the minted id.
func (r *MongoRepository) Insert(ctx context.Context, team *Team) error {
	result, err := r.col.InsertOne(ctx, team)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return shared.ErrDuplicate
		}
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		team.ID = oid
	}
	return nil
}

// FindByID fetches a team by its identifier. A malformed identifier reads
// as not-found.
func (r *MongoRepository) FindByID(ctx context.Context, id string) (*Team, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, shared.ErrNotFound
	}
	var team Team
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&team); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &team, nil
}

// FindByOwner lists the teams owned by an account.
func (r *MongoRepository) FindByOwner(ctx context.Context, ownerID string) ([]Team, error) {
	return r.Find(ctx, bson.D{{Key: "owner", Value: ownerID}})
}

// FindByLeague lists the teams registered in a league.
func (r *MongoRepository) FindByLeague(ctx context.Context, leagueID string) ([]Team, error) {
	return r.Find(ctx, bson.D{{Key: "league", Value: leagueID}})
}

// Find runs a translated filter document against the collection.
func (r *MongoRepository) Find(ctx context.Context, query bson.D) ([]Team, error) {
	if query == nil {
		query = bson.D{}
	}
	cursor, err := r.col.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	teams := []Team{}
	if err := cursor.All(ctx, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

// Update replaces the stored document for a team.
func (r *MongoRepository) Update(ctx context.Context, team *Team) error {
	result, err := r.col.ReplaceOne(ctx, bson.M{"_id": team.ID}, team)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ Repository = (*MongoRepository)(nil)
