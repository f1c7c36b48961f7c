package services

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/kaelif/QuickLink/internal/models"
)

type listOnlySource struct {
	climbers []models.ClimberProfile
	err      error
}

func (s *listOnlySource) ListAll(_ context.Context) ([]models.ClimberProfile, error) {
	return s.climbers, s.err
}

type finderSource struct {
	listOnlySource
	byID      map[string]models.ClimberProfile
	lookupErr error
	lookups   int
}

func (s *finderSource) GetByID(_ context.Context, id string) (*models.ClimberProfile, error) {
	s.lookups++
	if s.lookupErr != nil {
		return nil, s.lookupErr
	}
	c, ok := s.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &c, nil
}

func TestFindClimberPrefersDirectLookup(t *testing.T) {
	source := &finderSource{
		byID: map[string]models.ClimberProfile{"a": {ID: "a", FirstName: "Janja"}},
	}

	c, err := FindClimber(context.Background(), source, "a")
	if err != nil {
		t.Fatalf("FindClimber: %v", err)
	}
	if c.FirstName != "Janja" {
		t.Fatalf("first name = %q", c.FirstName)
	}
	if source.lookups != 1 {
		t.Fatalf("lookups = %d, want 1", source.lookups)
	}
}

func TestFindClimberMapsNoRowsToNotFound(t *testing.T) {
	source := &finderSource{byID: map[string]models.ClimberProfile{}}

	_, err := FindClimber(context.Background(), source, "ghost")
	if !errors.Is(err, ErrClimberNotFound) {
		t.Fatalf("err = %v, want ErrClimberNotFound", err)
	}
}

func TestFindClimberFallsBackToListScan(t *testing.T) {
	source := &listOnlySource{climbers: []models.ClimberProfile{{ID: "a"}, {ID: "b"}}}

	c, err := FindClimber(context.Background(), source, "b")
	if err != nil {
		t.Fatalf("FindClimber: %v", err)
	}
	if c.ID != "b" {
		t.Fatalf("id = %q, want b", c.ID)
	}

	if _, err := FindClimber(context.Background(), source, "ghost"); !errors.Is(err, ErrClimberNotFound) {
		t.Fatalf("err = %v, want ErrClimberNotFound", err)
	}
}

func TestFallbackSourceServesEmptyListOnError(t *testing.T) {
	inner := &listOnlySource{err: errors.New("connection refused")}
	logged := 0
	source := &FallbackSource{inner: inner, logf: func(string, ...any) { logged++ }}

	climbers, err := source.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(climbers) != 0 {
		t.Fatalf("climbers = %v, want empty", climbers)
	}
	if logged != 1 {
		t.Fatalf("logged %d times, want 1", logged)
	}
}

func TestFallbackSourcePassesThroughHealthyList(t *testing.T) {
	inner := &listOnlySource{climbers: []models.ClimberProfile{{ID: "a"}}}
	source := NewFallbackSource(inner)

	climbers, err := source.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(climbers) != 1 || climbers[0].ID != "a" {
		t.Fatalf("climbers = %v", climbers)
	}
}
