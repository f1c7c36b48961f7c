package models

type GenderPreference string

const (
	PrefWoman     GenderPreference = "woman"
	PrefMan       GenderPreference = "man"
	PrefNonbinary GenderPreference = "nonbinary"
	PrefAll       GenderPreference = "all"
)

const (
	MinFilterAge = 18
	MaxFilterAge = 99
)

// UserProfile is the local user's own editable profile. One instance per
// installation, mutated wholesale from the edit screen.
type UserProfile struct {
	Bio             string         `json:"bio"`
	PhotoURLs       []string       `json:"photo_urls"`
	Gender          Gender         `json:"gender"`
	GenderOtherText string         `json:"gender_other_text"`
	ClimbingTypes   []ClimbingType `json:"climbing_types"`
}

func DefaultUserProfile() UserProfile {
	return UserProfile{
		Bio:           "",
		PhotoURLs:     []string{},
		Gender:        GenderWoman,
		ClimbingTypes: []ClimbingType{},
	}
}

// MatchFilter is the active search criteria. An empty ClimbingTypes set
// means "any discipline"; GenderPreferences is never left empty, see
// Normalized.
type MatchFilter struct {
	AgeMin            int                `json:"age_min"`
	AgeMax            int                `json:"age_max"`
	GenderPreferences []GenderPreference `json:"gender_preferences"`
	ClimbingTypes     []ClimbingType     `json:"climbing_types"`
}

func DefaultMatchFilter() MatchFilter {
	return MatchFilter{
		AgeMin:            MinFilterAge,
		AgeMax:            MaxFilterAge,
		GenderPreferences: []GenderPreference{PrefAll},
		ClimbingTypes:     []ClimbingType{},
	}
}

// Normalized orders the age bounds and clamps both into [18, 99], then
// repairs the gender preference set: an empty set becomes {"all"}, and
// "all" alongside specific preferences collapses to {"all"}.
func (f MatchFilter) Normalized() MatchFilter {
	out := f

	if out.AgeMax < out.AgeMin {
		out.AgeMin, out.AgeMax = out.AgeMax, out.AgeMin
	}
	out.AgeMin = clampAge(out.AgeMin)
	out.AgeMax = clampAge(out.AgeMax)

	if len(out.GenderPreferences) == 0 {
		out.GenderPreferences = []GenderPreference{PrefAll}
	} else if out.HasPreference(PrefAll) && len(out.GenderPreferences) > 1 {
		out.GenderPreferences = []GenderPreference{PrefAll}
	}

	if out.ClimbingTypes == nil {
		out.ClimbingTypes = []ClimbingType{}
	}

	return out
}

func clampAge(age int) int {
	if age < MinFilterAge {
		return MinFilterAge
	}
	if age > MaxFilterAge {
		return MaxFilterAge
	}
	return age
}

func (f *MatchFilter) HasPreference(p GenderPreference) bool {
	for _, pref := range f.GenderPreferences {
		if pref == p {
			return true
		}
	}
	return false
}
