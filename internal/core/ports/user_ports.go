package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/questions/internal/core/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type UserService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}
