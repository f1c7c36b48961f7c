package services

import (
	"context"
	"sort"

	"github.com/kaelif/QuickLink/internal/models"
	"github.com/kaelif/QuickLink/pkg/geo"
)

type ClimberSource interface {
	ListAll(ctx context.Context) ([]models.ClimberProfile, error)
}

type FeedService struct {
	climbers ClimberSource
}

func NewFeedService(climbers ClimberSource) *FeedService {
	return &FeedService{climbers: climbers}
}

// DeckRequest carries everything the feed computation depends on: the
// active filter, the device location when known, the exclusion sets
// maintained by the match store, and the circulate policy.
type DeckRequest struct {
	Filter               models.MatchFilter
	UserLocation         *geo.Coords
	MatchIDs             []string
	RemovedIDs           []string
	BlockedIDs           []string
	CirculatePassedCards bool
}

// Deck fetches the raw candidate list and composes the ordered deck to
// present. Wrap the source in a FallbackSource to degrade outages to an
// empty deck instead of an error.
func (s *FeedService) Deck(ctx context.Context, req DeckRequest) ([]models.ClimberProfile, error) {
	climbers, err := s.climbers.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return BuildDeck(climbers, req), nil
}

// MatchesFilter reports whether a candidate satisfies the active filter.
// Checks run in a fixed order: age bounds, gender preference, discipline
// overlap. Candidates with unspecified gender always pass the gender
// check; candidates with gender "other" always fail it.
func MatchesFilter(c models.ClimberProfile, f models.MatchFilter) bool {
	if c.Age < f.AgeMin || c.Age > f.AgeMax {
		return false
	}

	if len(f.GenderPreferences) > 0 && !f.HasPreference(models.PrefAll) {
		if c.Gender != nil {
			if *c.Gender == models.GenderOther {
				return false
			}
			if !f.HasPreference(models.GenderPreference(*c.Gender)) {
				return false
			}
		}
	}

	if len(f.ClimbingTypes) > 0 {
		shared := false
		for _, t := range f.ClimbingTypes {
			if c.HasClimbingType(t) {
				shared = true
				break
			}
		}
		if !shared {
			return false
		}
	}

	return true
}

// BuildDeck applies the filter predicate preserving relative order,
// stable-sorts by distance when the user location is known, and strips
// the exclusion set. Removed ids are only excluded when the circulate
// policy is off; matched and blocked ids are always excluded.
func BuildDeck(climbers []models.ClimberProfile, req DeckRequest) []models.ClimberProfile {
	filtered := make([]models.ClimberProfile, 0, len(climbers))
	for _, c := range climbers {
		if MatchesFilter(c, req.Filter) {
			filtered = append(filtered, c)
		}
	}

	if req.UserLocation != nil {
		loc := *req.UserLocation
		sort.SliceStable(filtered, func(i, j int) bool {
			di := geo.DistanceKm(loc, geo.Coords{
				Latitude:  filtered[i].Location.Latitude,
				Longitude: filtered[i].Location.Longitude,
			})
			dj := geo.DistanceKm(loc, geo.Coords{
				Latitude:  filtered[j].Location.Latitude,
				Longitude: filtered[j].Location.Longitude,
			})
			return di < dj
		})
	}

	excluded := make(map[string]struct{}, len(req.MatchIDs)+len(req.RemovedIDs)+len(req.BlockedIDs))
	for _, id := range req.MatchIDs {
		excluded[id] = struct{}{}
	}
	for _, id := range req.BlockedIDs {
		excluded[id] = struct{}{}
	}
	if !req.CirculatePassedCards {
		for _, id := range req.RemovedIDs {
			excluded[id] = struct{}{}
		}
	}

	deck := make([]models.ClimberProfile, 0, len(filtered))
	for _, c := range filtered {
		if _, gone := excluded[c.ID]; !gone {
			deck = append(deck, c)
		}
	}

	return deck
}
