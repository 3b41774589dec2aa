// Package teams is the owning service for teams: the franchise record, its
// treasury, the fielding roster, and the batting order.
package teams

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/goblinball/goblinball/internal/federation"
)

// StartingGold is the treasury every new franchise opens with.
const StartingGold int64 = 500000

// Team is a stored team document. LeagueID and OwnerID are foreign
// identifiers and are never dereferenced locally.
type Team struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	LeagueID string             `bson:"league" json:"league"`
	OwnerID  string             `bson:"owner" json:"owner"`
	Gold     int64              `bson:"gold" json:"gold"`
	Roster   Roster             `bson:"roster" json:"roster"`
	Lineup   Lineup             `bson:"lineup" json:"lineup"`
}

// Roster holds the fielding assignments. Every value is a player id owned
// by the players service; empty strings and empty lists mean the slot is
// open.
type Roster struct {
	StartingPitcher string   `bson:"startingPitcher" json:"startingPitcher"`
	ReliefPitchers  []string `bson:"reliefPitchers" json:"reliefPitchers"`
	Catcher         string   `bson:"catcher" json:"catcher"`
	CatcherReserves []string `bson:"catcherReserves" json:"catcherReserves"`
	FirstBase       string   `bson:"firstBase" json:"firstBase"`
	SecondBase      string   `bson:"secondBase" json:"secondBase"`
	ThirdBase       string   `bson:"thirdBase" json:"thirdBase"`
	Shortstop       string   `bson:"shortstop" json:"shortstop"`
	InfieldReserves []string `bson:"infieldReserves" json:"infieldReserves"`
	LeftField       string   `bson:"leftField" json:"leftField"`
	CenterField     string   `bson:"centerField" json:"centerField"`
	RightField      string   `bson:"rightField" json:"rightField"`
	OutfieldReserve []string `bson:"outfieldReserves" json:"outfieldReserves"`
}

// Lineup is the batting order, first through ninth.
type Lineup struct {
	First   string `bson:"first" json:"first"`
	Second  string `bson:"second" json:"second"`
	Third   string `bson:"third" json:"third"`
	Fourth  string `bson:"fourth" json:"fourth"`
	Fifth   string `bson:"fifth" json:"fifth"`
	Sixth   string `bson:"sixth" json:"sixth"`
	Seventh string `bson:"seventh" json:"seventh"`
	Eighth  string `bson:"eighth" json:"eighth"`
	Ninth   string `bson:"ninth" json:"ninth"`
}

// Roster slot names accepted by the assignment endpoint. Singular slots
// replace their occupant; reserve slots accumulate.
const (
	SlotStartingPitcher  = "startingPitcher"
	SlotReliefPitchers   = "reliefPitchers"
	SlotCatcher          = "catcher"
	SlotCatcherReserves  = "catcherReserves"
	SlotFirstBase        = "firstBase"
	SlotSecondBase       = "secondBase"
	SlotThirdBase        = "thirdBase"
	SlotShortstop        = "shortstop"
	SlotInfieldReserves  = "infieldReserves"
	SlotLeftField        = "leftField"
	SlotCenterField      = "centerField"
	SlotRightField       = "rightField"
	SlotOutfieldReserves = "outfieldReserves"
)

// Assign places a player into a named roster slot. Unknown slot names
// report false.
func (r *Roster) Assign(slot, playerID string) bool {
	switch slot {
	case SlotStartingPitcher:
		r.StartingPitcher = playerID
	case SlotReliefPitchers:
		r.ReliefPitchers = append(r.ReliefPitchers, playerID)
	case SlotCatcher:
		r.Catcher = playerID
	case SlotCatcherReserves:
		r.CatcherReserves = append(r.CatcherReserves, playerID)
	case SlotFirstBase:
		r.FirstBase = playerID
	case SlotSecondBase:
		r.SecondBase = playerID
	case SlotThirdBase:
		r.ThirdBase = playerID
	case SlotShortstop:
		r.Shortstop = playerID
	case SlotInfieldReserves:
		r.InfieldReserves = append(r.InfieldReserves, playerID)
	case SlotLeftField:
		r.LeftField = playerID
	case SlotCenterField:
		r.CenterField = playerID
	case SlotRightField:
		r.RightField = playerID
	case SlotOutfieldReserves:
		r.OutfieldReserve = append(r.OutfieldReserve, playerID)
	default:
		return false
	}
	return true
}

// Resolved is the entity-resolution projection of a team: league and owner
// are exposed as stubs for their owning services to expand.
type Resolved struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	League federation.Stub `json:"league"`
	Owner  federation.Stub `json:"owner"`
	Gold   int64           `json:"gold"`
	Roster Roster          `json:"roster"`
	Lineup Lineup          `json:"lineup"`
}

// Public returns the entity-resolution projection of the team.
func (t *Team) Public() Resolved {
	return Resolved{
		ID:     t.ID.Hex(),
		Name:   t.Name,
		League: federation.Stub{ID: t.LeagueID, Service: federation.ServiceLeagues},
		Owner:  federation.Stub{ID: t.OwnerID, Service: federation.ServiceUsers},
		Gold:   t.Gold,
		Roster: t.Roster,
		Lineup: t.Lineup,
	}
}
