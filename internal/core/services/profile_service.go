package services

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/questions/internal/core/domain"
	"github.com/vncsmyrnk/questions/internal/core/ports"
)

type profileService struct {
	repo ports.ProfileRepository
}

func NewProfileService(repo ports.ProfileRepository) ports.ProfileService {
	return &profileService{
		repo: repo,
	}
}

func (s *profileService) GetProfile(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *profileService) MyProfile(ctx context.Context, ownerID uuid.UUID) (*domain.Profile, error) {
	return s.repo.GetByOwner(ctx, ownerID)
}

func (s *profileService) ListProfiles(ctx context.Context, page int) ([]*domain.Profile, error) {
	return s.repo.List(ctx, PageSize, pageOffset(page))
}

// UpdateProfile changes name and content. Only the profile's owner may do so;
// both fields may be blank.
func (s *profileService) UpdateProfile(ctx context.Context, requesterID, id uuid.UUID, input ports.UpdateProfileInput) (*domain.Profile, error) {
	if input.Name != nil && utf8.RuneCountInString(*input.Name) > domain.MaxProfileNameLength {
		return nil, domain.NewValidationError("name",
			fmt.Sprintf("Ensure this field has no more than %d characters.", domain.MaxProfileNameLength))
	}

	profile, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile.OwnerID != requesterID {
		return nil, domain.ErrForbidden
	}

	if input.Name != nil {
		profile.Name = *input.Name
	}
	if input.Content != nil {
		profile.Content = *input.Content
	}
	if err := s.repo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
