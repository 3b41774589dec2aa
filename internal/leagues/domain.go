// Package leagues is the owning service for leagues. A league groups teams
// and players under a single owning account.
package leagues

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/goblinball/goblinball/internal/federation"
)

// League is a stored league document. OwnerID is a foreign identifier into
// the users service and is never dereferenced locally.
type League struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name    string             `bson:"name" json:"name"`
	OwnerID string             `bson:"ownerId" json:"ownerId"`
}

// Resolved is the entity-resolution projection of a league: the owner is
// exposed as a stub for the users service to expand.
type Resolved struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Owner federation.Stub `json:"owner"`
}

// Public returns the entity-resolution projection of the league.
func (l *League) Public() Resolved {
	return Resolved{
		ID:   l.ID.Hex(),
		Name: l.Name,
		Owner: federation.Stub{
			ID:      l.OwnerID,
			Service: federation.ServiceUsers,
		},
	}
}
