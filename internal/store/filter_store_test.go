package store

import (
	"context"
	"testing"

	"github.com/kaelif/QuickLink/internal/models"
)

func TestFilterStoreRoundTrip(t *testing.T) {
	kv := newMemStore()
	first := NewFilterStore(kv, nil)

	saved := first.Set(models.MatchFilter{
		AgeMin:            21,
		AgeMax:            40,
		GenderPreferences: []models.GenderPreference{models.PrefWoman, models.PrefNonbinary},
		ClimbingTypes:     []models.ClimbingType{models.ClimbingTrad},
	})
	first.Flush()

	second := NewFilterStore(kv, nil)
	if err := second.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	got := second.Get()
	if got.AgeMin != saved.AgeMin || got.AgeMax != saved.AgeMax {
		t.Fatalf("age bounds did not round-trip: %+v vs %+v", got, saved)
	}
	if len(got.GenderPreferences) != 2 {
		t.Fatalf("gender preferences did not round-trip: %v", got.GenderPreferences)
	}
	if len(got.ClimbingTypes) != 1 || got.ClimbingTypes[0] != models.ClimbingTrad {
		t.Fatalf("climbing types did not round-trip: %v", got.ClimbingTypes)
	}
}

func TestFilterStoreNormalizesOnSet(t *testing.T) {
	s := NewFilterStore(newMemStore(), nil)

	got := s.Set(models.MatchFilter{
		AgeMin:            10,
		AgeMax:            150,
		GenderPreferences: nil,
	})

	if got.AgeMin != models.MinFilterAge || got.AgeMax != models.MaxFilterAge {
		t.Fatalf("expected clamped bounds [18 99], got [%d %d]", got.AgeMin, got.AgeMax)
	}
	if len(got.GenderPreferences) != 1 || got.GenderPreferences[0] != models.PrefAll {
		t.Fatalf("empty preferences must normalize to [all], got %v", got.GenderPreferences)
	}
}

func TestFilterStoreAllCollapsesOtherPreferences(t *testing.T) {
	s := NewFilterStore(newMemStore(), nil)

	got := s.Set(models.MatchFilter{
		AgeMin:            18,
		AgeMax:            99,
		GenderPreferences: []models.GenderPreference{models.PrefWoman, models.PrefAll},
	})

	if len(got.GenderPreferences) != 1 || got.GenderPreferences[0] != models.PrefAll {
		t.Fatalf("\"all\" must clear other members, got %v", got.GenderPreferences)
	}
}

func TestFilterStoreLoadMergesOverDefaults(t *testing.T) {
	kv := newMemStore()
	// An older blob with only the age bounds present.
	kv.mu.Lock()
	kv.data[keyMatchFilter] = []byte(`{"age_min":25,"age_max":30}`)
	kv.mu.Unlock()

	s := NewFilterStore(kv, nil)
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	got := s.Get()
	if got.AgeMin != 25 || got.AgeMax != 30 {
		t.Fatalf("expected persisted bounds, got [%d %d]", got.AgeMin, got.AgeMax)
	}
	if len(got.GenderPreferences) != 1 || got.GenderPreferences[0] != models.PrefAll {
		t.Fatalf("missing preferences must fall back to default, got %v", got.GenderPreferences)
	}
}

func TestFilterStoreLoadKeepsDefaultsOnCorruptBlob(t *testing.T) {
	kv := newMemStore()
	kv.mu.Lock()
	kv.data[keyMatchFilter] = []byte("][")
	kv.mu.Unlock()

	s := NewFilterStore(kv, nil)
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load must swallow corrupt blobs, got %v", err)
	}

	def := models.DefaultMatchFilter()
	got := s.Get()
	if got.AgeMin != def.AgeMin || got.AgeMax != def.AgeMax {
		t.Fatalf("expected default filter, got %+v", got)
	}
}

func TestProfileStoreRoundTrip(t *testing.T) {
	kv := newMemStore()
	first := NewProfileStore(kv, nil)

	first.Set(models.UserProfile{
		Bio:           "Trad climber, full rack.",
		PhotoURLs:     []string{"https://example.com/a.jpg"},
		Gender:        models.GenderNonbinary,
		ClimbingTypes: []models.ClimbingType{models.ClimbingTrad, models.ClimbingSport},
	})
	first.Flush()

	second := NewProfileStore(kv, nil)
	if err := second.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	got := second.Get()
	if got.Bio != "Trad climber, full rack." || got.Gender != models.GenderNonbinary {
		t.Fatalf("profile did not round-trip: %+v", got)
	}
	if len(got.ClimbingTypes) != 2 {
		t.Fatalf("climbing types did not round-trip: %v", got.ClimbingTypes)
	}
}

func TestProfileStoreLoadFillsMissingSlices(t *testing.T) {
	kv := newMemStore()
	kv.mu.Lock()
	kv.data[keyUserProfile] = []byte(`{"bio":"hi","gender":"man"}`)
	kv.mu.Unlock()

	s := NewProfileStore(kv, nil)
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	got := s.Get()
	if got.PhotoURLs == nil || got.ClimbingTypes == nil {
		t.Fatalf("expected empty slices, got %+v", got)
	}
}
