package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/kaelif/QuickLink/internal/models"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ClimberRepository reads candidate profiles from the remote climbers
// table (a Supabase Postgres database).
type ClimberRepository struct {
	db DBTX
}

func NewClimberRepository(db DBTX) *ClimberRepository {
	return &ClimberRepository{db: db}
}

func (r *ClimberRepository) ListAll(ctx context.Context) ([]models.ClimberProfile, error) {
	query := `
		SELECT id, first_name, age, latitude, longitude, climbing_types, bio, photo_urls, gender
		FROM climbers
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	climbers := make([]models.ClimberProfile, 0)
	for rows.Next() {
		var (
			c             models.ClimberProfile
			climbingTypes []string
			photoURLs     []string
			gender        *string
		)
		if err := rows.Scan(
			&c.ID,
			&c.FirstName,
			&c.Age,
			&c.Location.Latitude,
			&c.Location.Longitude,
			&climbingTypes,
			&c.Bio,
			&photoURLs,
			&gender,
		); err != nil {
			return nil, err
		}

		c.ClimbingTypes = make([]models.ClimbingType, 0, len(climbingTypes))
		for _, t := range climbingTypes {
			c.ClimbingTypes = append(c.ClimbingTypes, models.ClimbingType(t))
		}
		if photoURLs == nil {
			photoURLs = []string{}
		}
		c.PhotoURLs = photoURLs
		if gender != nil {
			g := models.Gender(*gender)
			c.Gender = &g
		}

		climbers = append(climbers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return climbers, nil
}

func (r *ClimberRepository) GetByID(ctx context.Context, id string) (*models.ClimberProfile, error) {
	query := `
		SELECT id, first_name, age, latitude, longitude, climbing_types, bio, photo_urls, gender
		FROM climbers
		WHERE id = $1
	`

	var (
		c             models.ClimberProfile
		climbingTypes []string
		photoURLs     []string
		gender        *string
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.FirstName,
		&c.Age,
		&c.Location.Latitude,
		&c.Location.Longitude,
		&climbingTypes,
		&c.Bio,
		&photoURLs,
		&gender,
	)
	if err != nil {
		return nil, err
	}

	c.ClimbingTypes = make([]models.ClimbingType, 0, len(climbingTypes))
	for _, t := range climbingTypes {
		c.ClimbingTypes = append(c.ClimbingTypes, models.ClimbingType(t))
	}
	if photoURLs == nil {
		photoURLs = []string{}
	}
	c.PhotoURLs = photoURLs
	if gender != nil {
		g := models.Gender(*gender)
		c.Gender = &g
	}

	return &c, nil
}
