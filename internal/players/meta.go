package players

import "github.com/goblinball/goblinball/internal/enums"

// MetaSelect pairs wire values with display labels for client select
// widgets. Values and Labels are parallel, in wire order.
type MetaSelect struct {
	Values []string `json:"values"`
	Labels []string `json:"labels"`
}

// ClassSelect enumerates the playable classes.
func ClassSelect() MetaSelect {
	out := MetaSelect{}
	for _, class := range enums.Classes {
		out.Values = append(out.Values, string(class))
		out.Labels = append(out.Labels, class.Label())
	}
	return out
}

// RaceSelect enumerates the playable races.
func RaceSelect() MetaSelect {
	out := MetaSelect{}
	for _, race := range enums.Races {
		out.Values = append(out.Values, string(race))
		out.Labels = append(out.Labels, race.Label())
	}
	return out
}

// GenderSelect enumerates the genders.
func GenderSelect() MetaSelect {
	out := MetaSelect{}
	for _, gender := range enums.Genders {
		out.Values = append(out.Values, string(gender))
		out.Labels = append(out.Labels, gender.Label())
	}
	return out
}

// TraitSelect enumerates the personality traits.
func TraitSelect() MetaSelect {
	out := MetaSelect{}
	for _, trait := range enums.Traits {
		out.Values = append(out.Values, string(trait))
		out.Labels = append(out.Labels, trait.Label())
	}
	return out
}
