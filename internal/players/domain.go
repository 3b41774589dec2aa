// Package players is the owning service for players: the rolled athletes
// that fill team rosters. Players are minted by the generator job and then
// traded between the free pool and teams.
package players

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/goblinball/goblinball/internal/enums"
	"github.com/goblinball/goblinball/internal/federation"
)

// Abilities are the six rolled scores of a player.
type Abilities struct {
	Strength     int `bson:"strength" json:"strength"`
	Dexterity    int `bson:"dexterity" json:"dexterity"`
	Constitution int `bson:"constitution" json:"constitution"`
	Intelligence int `bson:"intelligence" json:"intelligence"`
	Wisdom       int `bson:"wisdom" json:"wisdom"`
	Charisma     int `bson:"charisma" json:"charisma"`
}

// Total sums the six scores. Pricing keys off it.
func (a Abilities) Total() int {
	return a.Strength + a.Dexterity + a.Constitution + a.Intelligence + a.Wisdom + a.Charisma
}

// Player is a stored player document. LeagueID and TeamID are foreign
// identifiers; TeamID is empty while the player sits in the free pool.
// Hidden traits are only revealed through scouting and never serialize to
// JSON.
type Player struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	LeagueID     string             `bson:"league" json:"league"`
	TeamID       string             `bson:"team,omitempty" json:"team,omitempty"`
	Cost         int64              `bson:"cost" json:"cost"`
	Gender       enums.Gender       `bson:"gender" json:"gender"`
	Race         enums.Race         `bson:"race" json:"race"`
	Class        enums.Class        `bson:"class" json:"class"`
	Handedness   enums.Handedness   `bson:"handedness" json:"handedness"`
	Health       int                `bson:"health" json:"health"`
	MaxHealth    int                `bson:"maxHealth" json:"maxHealth"`
	Abilities    Abilities          `bson:"abilities" json:"abilities"`
	Traits       []enums.Trait      `bson:"traits" json:"traits"`
	HiddenTraits []enums.Trait      `bson:"hiddenTraits" json:"-"`
}

// Resolved is the entity-resolution projection of a player: league and team
// are exposed as stubs for their owning services to expand. The team stub
// is nil for free-pool players.
type Resolved struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	League     federation.Stub  `json:"league"`
	Team       *federation.Stub `json:"team,omitempty"`
	Cost       int64            `json:"cost"`
	Gender     enums.Gender     `json:"gender"`
	Race       enums.Race       `json:"race"`
	Class      enums.Class      `json:"class"`
	Handedness enums.Handedness `json:"handedness"`
	Health     int              `json:"health"`
	MaxHealth  int              `json:"maxHealth"`
	Abilities  Abilities        `json:"abilities"`
	Traits     []enums.Trait    `json:"traits"`
}

// Public returns the entity-resolution projection of the player. Hidden
// traits stay behind.
func (p *Player) Public() Resolved {
	resolved := Resolved{
		ID:         p.ID.Hex(),
		Name:       p.Name,
		League:     federation.Stub{ID: p.LeagueID, Service: federation.ServiceLeagues},
		Cost:       p.Cost,
		Gender:     p.Gender,
		Race:       p.Race,
		Class:      p.Class,
		Handedness: p.Handedness,
		Health:     p.Health,
		MaxHealth:  p.MaxHealth,
		Abilities:  p.Abilities,
		Traits:     p.Traits,
	}
	if p.TeamID != "" {
		resolved.Team = &federation.Stub{ID: p.TeamID, Service: federation.ServiceTeams}
	}
	return resolved
}
