package services

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5"

	"github.com/kaelif/QuickLink/internal/models"
)

var ErrClimberNotFound = errors.New("climber not found")

// ClimberFinder is implemented by sources with a direct single-id
// lookup, like the database repository.
type ClimberFinder interface {
	GetByID(ctx context.Context, id string) (*models.ClimberProfile, error)
}

// FindClimber resolves one candidate, preferring the source's direct
// lookup and falling back to a scan of the full list.
func FindClimber(ctx context.Context, source ClimberSource, id string) (models.ClimberProfile, error) {
	if finder, ok := source.(ClimberFinder); ok {
		c, err := finder.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return models.ClimberProfile{}, ErrClimberNotFound
			}
			return models.ClimberProfile{}, err
		}
		return *c, nil
	}

	climbers, err := source.ListAll(ctx)
	if err != nil {
		return models.ClimberProfile{}, err
	}
	for _, c := range climbers {
		if c.ID == id {
			return c, nil
		}
	}
	return models.ClimberProfile{}, ErrClimberNotFound
}

// FallbackSource degrades a failing climber source to an empty candidate
// list. The feed tolerates zero candidates, so remote outages surface
// as an empty deck rather than an error dialog.
type FallbackSource struct {
	inner ClimberSource
	logf  func(format string, args ...any)
}

func NewFallbackSource(inner ClimberSource) *FallbackSource {
	return &FallbackSource{inner: inner, logf: log.Printf}
}

func (s *FallbackSource) ListAll(ctx context.Context) ([]models.ClimberProfile, error) {
	climbers, err := s.inner.ListAll(ctx)
	if err != nil {
		s.logf("climber source unavailable, serving empty list: %v", err)
		return []models.ClimberProfile{}, nil
	}
	return climbers, nil
}
