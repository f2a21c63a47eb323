package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/questions/internal/core/domain"
)

type ProfileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.Profile, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Profile, error)
	// Update writes Name and Content and refreshes UpdatedAt on the passed profile.
	Update(ctx context.Context, profile *domain.Profile) error
}

// UpdateProfileInput holds the fields to change; nil fields keep their value.
type UpdateProfileInput struct {
	Name    *string
	Content *string
}

type ProfileService interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	MyProfile(ctx context.Context, ownerID uuid.UUID) (*domain.Profile, error)
	ListProfiles(ctx context.Context, page int) ([]*domain.Profile, error)
	UpdateProfile(ctx context.Context, requesterID, id uuid.UUID, input UpdateProfileInput) (*domain.Profile, error)
}
