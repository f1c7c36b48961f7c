package models

type ClimbingType string

const (
	ClimbingSport      ClimbingType = "sport"
	ClimbingBouldering ClimbingType = "bouldering"
	ClimbingTrad       ClimbingType = "trad"
)

type Gender string

const (
	GenderWoman     Gender = "woman"
	GenderMan       Gender = "man"
	GenderNonbinary Gender = "nonbinary"
	GenderOther     Gender = "other"
)

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ClimberProfile is a candidate eligible to appear in the swipe deck.
// Profiles are immutable once constructed; they come from the seed
// dataset or the remote climbers table. Gender is nil when unspecified.
type ClimberProfile struct {
	ID            string         `json:"id"`
	FirstName     string         `json:"first_name"`
	Age           int            `json:"age"`
	Location      Location       `json:"location"`
	ClimbingTypes []ClimbingType `json:"climbing_types"`
	Bio           string         `json:"bio"`
	PhotoURLs     []string       `json:"photo_urls"`
	Gender        *Gender        `json:"gender,omitempty"`
}

func (c *ClimberProfile) HasClimbingType(t ClimbingType) bool {
	for _, ct := range c.ClimbingTypes {
		if ct == t {
			return true
		}
	}
	return false
}
