package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/questions/internal/core/domain"
)

type AnswerRepository interface {
	CreateBatch(ctx context.Context, answers []domain.Answer) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Answer, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Answer, error)
	ListByQuestion(ctx context.Context, questionID uuid.UUID) ([]domain.Answer, error)
	CountByQuestion(ctx context.Context, questionID uuid.UUID) (int, error)
	UpdateText(ctx context.Context, id uuid.UUID, text string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type AnswerService interface {
	GetAnswer(ctx context.Context, id uuid.UUID) (*domain.Answer, error)
	ListAnswers(ctx context.Context, page int) ([]*domain.Answer, error)
	Update(ctx context.Context, requesterID, id uuid.UUID, text string) (*domain.Answer, error)
	Delete(ctx context.Context, requesterID, id uuid.UUID) error
}
