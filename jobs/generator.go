package jobs

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/goblinball/goblinball/internal/enums"
	"github.com/goblinball/goblinball/internal/players"
)

// abilityOrder ranks the six abilities per class. The best roll lands on the
// first entry, the worst on the last.
var abilityOrder = map[enums.Class][6]string{
	enums.ClassBard:    {"cha", "dex", "con", "str", "wis", "int"},
	enums.ClassCleric:  {"wis", "con", "str", "cha", "int", "dex"},
	enums.ClassFighter: {"str", "con", "dex", "wis", "cha", "int"},
	enums.ClassPaladin: {"str", "cha", "con", "wis", "dex", "int"},
	enums.ClassRanger:  {"dex", "wis", "con", "str", "int", "cha"},
	enums.ClassRogue:   {"dex", "int", "cha", "con", "str", "wis"},
	enums.ClassWizard:  {"int", "con", "dex", "wis", "cha", "str"},
}

// hitDie is the per-class base for maximum health.
var hitDie = map[enums.Class]int{
	enums.ClassBard:    8,
	enums.ClassCleric:  8,
	enums.ClassFighter: 10,
	enums.ClassPaladin: 10,
	enums.ClassRanger:  10,
	enums.ClassRogue:   8,
	enums.ClassWizard:  6,
}

var maleNames = []string{
	"Grimgor", "Zogwort", "Borin", "Thalion", "Wulfric", "Snikkit",
	"Durnan", "Fendrel", "Kazrik", "Oswin", "Brundle", "Margrim",
}

var femaleNames = []string{
	"Grizelda", "Thessaly", "Brunhild", "Elowen", "Nix", "Marigold",
	"Sarkana", "Ysolde", "Tamsin", "Vexa", "Odessa", "Kettle",
}

var surnames = []string{
	"Ironjaw", "Swiftfoot", "Mudbelly", "Stormcaller", "Longstride",
	"Blackroot", "Coppervein", "Grubsnatcher", "Hollowhorn", "Thornfield",
	"Underhill", "Wyrmbane",
}

// rollAbility rolls four six-sided dice and sums the best three.
func rollAbility(rng *rand.Rand) int {
	dice := []int{
		rng.Intn(6) + 1,
		rng.Intn(6) + 1,
		rng.Intn(6) + 1,
		rng.Intn(6) + 1,
	}
	sort.Ints(dice)
	return dice[1] + dice[2] + dice[3]
}

func modifier(score int) int {
	return (score - 10) / 2
}

// rollTraits draws up to two distinct visible traits and, one time in four,
// a hidden one not already visible.
func rollTraits(rng *rand.Rand) (visible, hidden []enums.Trait) {
	seen := map[enums.Trait]bool{}
	for i := rng.Intn(3); i > 0; i-- {
		trait := enums.RandomTrait(rng)
		if seen[trait] {
			continue
		}
		seen[trait] = true
		visible = append(visible, trait)
	}
	if rng.Intn(4) == 0 {
		trait := enums.RandomTrait(rng)
		if !seen[trait] {
			hidden = append(hidden, trait)
		}
	}
	return visible, hidden
}

// GeneratePlayer rolls a complete player for a league. Six 4d6-drop-lowest
// scores land on the class's preferred abilities, maximum health derives
// from the class hit die and the constitution modifier, and cost follows
// the overall quality of the roll.
func GeneratePlayer(rng *rand.Rand, leagueID string) *players.Player {
	class := enums.RandomClass(rng)
	gender := enums.RandomGender(rng)

	scores := make([]int, 6)
	for i := range scores {
		scores[i] = rollAbility(rng)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(scores)))

	byName := map[string]int{}
	for i, name := range abilityOrder[class] {
		byName[name] = scores[i]
	}
	abilities := players.Abilities{
		Strength:     byName["str"],
		Dexterity:    byName["dex"],
		Constitution: byName["con"],
		Intelligence: byName["int"],
		Wisdom:       byName["wis"],
		Charisma:     byName["cha"],
	}

	maxHealth := hitDie[class] + modifier(abilities.Constitution)
	if maxHealth < 1 {
		maxHealth = 1
	}

	visible, hidden := rollTraits(rng)
	cost := int64(abilities.Total())*500 + int64(len(visible))*5000

	first := maleNames[rng.Intn(len(maleNames))]
	if gender == enums.GenderFemale {
		first = femaleNames[rng.Intn(len(femaleNames))]
	}
	name := fmt.Sprintf("%s %s", first, surnames[rng.Intn(len(surnames))])

	return &players.Player{
		Name:         name,
		LeagueID:     leagueID,
		Cost:         cost,
		Gender:       gender,
		Race:         enums.RandomRace(rng),
		Class:        class,
		Handedness:   enums.RandomHandedness(rng),
		Health:       maxHealth,
		MaxHealth:    maxHealth,
		Abilities:    abilities,
		Traits:       visible,
		HiddenTraits: hidden,
	}
}
