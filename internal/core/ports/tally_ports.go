package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/questions/internal/core/domain"
)

type TallyRepository interface {
	CountVotesForAnswer(ctx context.Context, answerID uuid.UUID) (int64, error)
	CountVotesForQuestion(ctx context.Context, questionID uuid.UUID) (int64, error)
	// CountVotesByAnswer returns the per-answer counts of one question, including
	// answers without votes.
	CountVotesByAnswer(ctx context.Context, questionID uuid.UUID) (map[uuid.UUID]int64, error)
	// CountDirectVotes counts votes through the denormalized question column.
	CountDirectVotes(ctx context.Context, questionID uuid.UUID) (int64, error)
	QuestionIDs(ctx context.Context) ([]uuid.UUID, error)
}

type TallyService interface {
	CountVotesForAnswer(ctx context.Context, answerID uuid.UUID) (int64, error)
	CountVotesForQuestion(ctx context.Context, questionID uuid.UUID) (int64, error)
	AuditTallies(ctx context.Context) ([]domain.TallyMismatch, error)
}
