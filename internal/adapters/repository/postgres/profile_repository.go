package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/questions/internal/core/domain"
	"github.com/vncsmyrnk/questions/internal/core/ports"
)

const selectProfile = `
	SELECT p.id, p.owner_id, u.username, p.name, p.content, p.created_at, p.updated_at
	FROM profiles p
	JOIN users u ON u.id = p.owner_id
`

type profileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) ports.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

func (r *profileRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	return r.getOne(ctx, selectProfile+`WHERE p.id = $1`, id)
}

func (r *profileRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.Profile, error) {
	return r.getOne(ctx, selectProfile+`WHERE p.owner_id = $1`, ownerID)
}

func (r *profileRepository) getOne(ctx context.Context, query string, id uuid.UUID) (*domain.Profile, error) {
	var profile domain.Profile
	err := conn(ctx, r.db).QueryRowContext(ctx, query, id).Scan(
		&profile.ID, &profile.OwnerID, &profile.Owner, &profile.Name, &profile.Content,
		&profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}

func (r *profileRepository) List(ctx context.Context, limit, offset int) ([]*domain.Profile, error) {
	query := selectProfile + `
		ORDER BY p.created_at DESC, p.id
		LIMIT $1 OFFSET $2
	`
	rows, err := conn(ctx, r.db).QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*domain.Profile
	for rows.Next() {
		var profile domain.Profile
		if err := rows.Scan(
			&profile.ID, &profile.OwnerID, &profile.Owner, &profile.Name, &profile.Content,
			&profile.CreatedAt, &profile.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, &profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profiles: %w", err)
	}
	return profiles, nil
}

func (r *profileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	query := `
		UPDATE profiles
		SET name = $2, content = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := conn(ctx, r.db).QueryRowContext(ctx, query, profile.ID, profile.Name, profile.Content).Scan(&profile.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrProfileNotFound
		}
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}
