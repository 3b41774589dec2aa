// Package enums holds the domain vocabulary shared by the player-facing
// services: races, classes, genders, handedness, and personality traits.
// Wire values are SCREAMING_SNAKE_CASE; labels are for select widgets.
package enums

import "math/rand"

// Gender of a generated player.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// Genders lists all genders in wire order.
var Genders = []Gender{GenderMale, GenderFemale}

// Race of a generated player.
type Race string

const (
	RaceDwarf    Race = "DWARF"
	RaceElf      Race = "ELF"
	RaceGoblin   Race = "GOBLIN"
	RaceHalfling Race = "HALFLING"
	RaceHuman    Race = "HUMAN"
	RaceOrc      Race = "ORC"
)

// Races lists all races in wire order.
var Races = []Race{RaceDwarf, RaceElf, RaceGoblin, RaceHalfling, RaceHuman, RaceOrc}

// Class of a generated player.
type Class string

const (
	ClassBard    Class = "BARD"
	ClassCleric  Class = "CLERIC"
	ClassFighter Class = "FIGHTER"
	ClassPaladin Class = "PALADIN"
	ClassRanger  Class = "RANGER"
	ClassRogue   Class = "ROGUE"
	ClassWizard  Class = "WIZARD"
)

// Classes lists all classes in wire order.
var Classes = []Class{ClassBard, ClassCleric, ClassFighter, ClassPaladin, ClassRanger, ClassRogue, ClassWizard}

// Handedness of a generated player.
type Handedness string

const (
	HandednessLeft  Handedness = "LEFT"
	HandednessRight Handedness = "RIGHT"
)

// Handednesses lists all handedness values in wire order.
var Handednesses = []Handedness{HandednessLeft, HandednessRight}

// Trait is a personality quirk. Some are hidden from other team owners.
type Trait string

const (
	TraitHotTemper    Trait = "HOT_TEMPER"
	TraitLucky        Trait = "LUCKY"
	TraitBoring       Trait = "BORING"
	TraitSuckUp       Trait = "SUCK_UP"
	TraitQuick        Trait = "QUICK"
	TraitGreedy       Trait = "GREEDY"
	TraitCleptomaniac Trait = "CLEPTOMANIAC"
	TraitTough        Trait = "TOUGH"
	TraitClumsy       Trait = "CLUMSY"
	TraitSureShot     Trait = "SURE_SHOT"
	TraitLightningArm Trait = "LIGHTNING_ARM"
	TraitDirty        Trait = "DIRTY"
	TraitLazy         Trait = "LAZY"
	TraitFat          Trait = "FAT"
	TraitBelligerent  Trait = "BELLIGERENT"
	TraitQuickWitted  Trait = "QUICK_WITTED"
	TraitGoon         Trait = "GOON"
	TraitTimid        Trait = "TIMID"
)

// Traits lists all traits in wire order.
var Traits = []Trait{
	TraitHotTemper, TraitLucky, TraitBoring, TraitSuckUp, TraitQuick,
	TraitGreedy, TraitCleptomaniac, TraitTough, TraitClumsy, TraitSureShot,
	TraitLightningArm, TraitDirty, TraitLazy, TraitFat, TraitBelligerent,
	TraitQuickWitted, TraitGoon, TraitTimid,
}

var genderLabels = map[Gender]string{
	GenderMale:   "Male",
	GenderFemale: "Female",
}

var raceLabels = map[Race]string{
	RaceDwarf:    "Dwarf",
	RaceElf:      "Elf",
	RaceGoblin:   "Goblin",
	RaceHalfling: "Halfling",
	RaceHuman:    "Human",
	RaceOrc:      "Orc",
}

var classLabels = map[Class]string{
	ClassBard:    "Bard",
	ClassCleric:  "Cleric",
	ClassFighter: "Fighter",
	ClassPaladin: "Paladin",
	ClassRanger:  "Ranger",
	ClassRogue:   "Rogue",
	ClassWizard:  "Wizard",
}

var handednessLabels = map[Handedness]string{
	HandednessLeft:  "Left",
	HandednessRight: "Right",
}

var traitLabels = map[Trait]string{
	TraitHotTemper:    "Hot Temper",
	TraitLucky:        "Lucky",
	TraitBoring:       "Boring",
	TraitSuckUp:       "Suck Up",
	TraitQuick:        "Quick",
	TraitGreedy:       "Greedy",
	TraitCleptomaniac: "Cleptomaniac",
	TraitTough:        "Tough",
	TraitClumsy:       "Clumsy",
	TraitSureShot:     "Sure Shot",
	TraitLightningArm: "Lightning Arm",
	TraitDirty:        "Dirty",
	TraitLazy:         "Lazy",
	TraitFat:          "Fat",
	TraitBelligerent:  "Belligerent",
	TraitQuickWitted:  "Quick Witted",
	TraitGoon:         "Goon",
	TraitTimid:        "Timid",
}

// Label returns the display label for the gender.
func (g Gender) Label() string { return genderLabels[g] }

// Valid reports whether the gender is a known wire value.
func (g Gender) Valid() bool { _, ok := genderLabels[g]; return ok }

// Label returns the display label for the race.
func (r Race) Label() string { return raceLabels[r] }

// Valid reports whether the race is a known wire value.
func (r Race) Valid() bool { _, ok := raceLabels[r]; return ok }

// Label returns the display label for the class.
func (c Class) Label() string { return classLabels[c] }

// Valid reports whether the class is a known wire value.
func (c Class) Valid() bool { _, ok := classLabels[c]; return ok }

// Label returns the display label for the handedness.
func (h Handedness) Label() string { return handednessLabels[h] }

// Valid reports whether the handedness is a known wire value.
func (h Handedness) Valid() bool { _, ok := handednessLabels[h]; return ok }

// Label returns the display label for the trait.
func (t Trait) Label() string { return traitLabels[t] }

// Valid reports whether the trait is a known wire value.
func (t Trait) Valid() bool { _, ok := traitLabels[t]; return ok }

// RandomGender draws a gender, weighted toward male rosters the way the
// league's lore skews.
func RandomGender(r *rand.Rand) Gender {
	if r.Intn(7) < 4 {
		return GenderMale
	}
	return GenderFemale
}

// RandomRace draws a race uniformly.
func RandomRace(r *rand.Rand) Race {
	return Races[r.Intn(len(Races))]
}

// RandomClass draws a class uniformly.
func RandomClass(r *rand.Rand) Class {
	return Classes[r.Intn(len(Classes))]
}

// RandomHandedness draws a handedness uniformly.
func RandomHandedness(r *rand.Rand) Handedness {
	return Handednesses[r.Intn(len(Handednesses))]
}

// RandomTrait draws a trait uniformly.
func RandomTrait(r *rand.Rand) Trait {
	return Traits[r.Intn(len(Traits))]
}
