package players

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/goblinball/goblinball/internal/shared"
)

// Repository defines persistence operations for the players service.
type Repository interface {
	Insert(ctx context.Context, player *Player) error
	FindByID(ctx context.Context, id string) (*Player, error)
	FindByLeague(ctx context.Context, leagueID string) ([]Player, error)
	FindByTeam(ctx context.Context, teamID string) ([]Player, error)
	Find(ctx context.Context, query, sort bson.D) ([]Player, error)
	Update(ctx context.Context, player *Player) error
}

// MongoRepository implements Repository against the players collection.
type MongoRepository struct {
	col *mongo.Collection
}

// NewRepository constructs a MongoRepository.
func NewRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{col: db.Collection("players")}
}

// EnsureIndexes creates the league and team lookup indexes.
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "league", Value: 1}}},
		{Keys: bson.D{{Key: "team", Value: 1}}},
	})
	return err
}

// Insert stores a new player and fills in the minted id.
func (r *MongoRepository) Insert(ctx context.Context, player *Player) error {
	result, err := r.col.InsertOne(ctx, player)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		player.ID = oid
	}
	return nil
}

// FindByID fetches a player by its identifier. A malformed identifier reads
// as not-found.
func (r *MongoRepository) FindByID(ctx context.Context, id string) (*Player, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, shared.ErrNotFound
	}
	var player Player
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&player); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &player, nil
}

// FindByLeague lists the players registered in a league.
func (r *MongoRepository) FindByLeague(ctx context.Context, leagueID string) ([]Player, error) {
	return r.Find(ctx, bson.D{{Key: "league", Value: leagueID}}, nil)
}

// FindByTeam lists the players signed to a team.
func (r *MongoRepository) FindByTeam(ctx context.Context, teamID string) ([]Player, error) {
	return r.Find(ctx, bson.D{{Key: "team", Value: teamID}}, nil)
}

// Find runs a translated filter document against the collection, optionally
// ordered by a sort document.
func (r *MongoRepository) Find(ctx context.Context, query, sort bson.D) ([]Player, error) {
	if query == nil {
		query = bson.D{}
	}
	opts := options.Find()
	if len(sort) > 0 {
		opts.SetSort(sort)
	}
	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	players := []Player{}
	if err := cursor.All(ctx, &players); err != nil {
		return nil, err
	}
	return players, nil
}

// Update replaces the stored document for a player.
func (r *MongoRepository) Update(ctx context.Context, player *Player) error {
	result, err := r.col.ReplaceOne(ctx, bson.M{"_id": player.ID}, player)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ Repository = (*MongoRepository)(nil)
