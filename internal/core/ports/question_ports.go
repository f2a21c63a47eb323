package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/questions/internal/core/domain"
)

type QuestionRepository interface {
	Create(ctx context.Context, question *domain.Question) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Question, error)
	Search(ctx context.Context, limit, offset int, query string) ([]*domain.Question, error)
	UpdateText(ctx context.Context, id uuid.UUID, text string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateQuestionInput struct {
	Text    string
	Answers []string
}

type ListQuestionsInput struct {
	Page   int
	Search string
}

type QuestionService interface {
	Create(ctx context.Context, ownerID uuid.UUID, input CreateQuestionInput) (*domain.Question, error)
	GetQuestion(ctx context.Context, id uuid.UUID) (*domain.Question, error)
	ListQuestions(ctx context.Context, input ListQuestionsInput) ([]*domain.Question, error)
	Update(ctx context.Context, requesterID, id uuid.UUID, text string) (*domain.Question, error)
	Delete(ctx context.Context, requesterID, id uuid.UUID) error
}
