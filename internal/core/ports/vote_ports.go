package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/questions/internal/core/domain"
)

type VoteRepository interface {
	// SaveVote returns domain.ErrDuplicateVote when the (question, voter) pair
	// already has a vote, even if the row was inserted by a concurrent caller.
	SaveVote(ctx context.Context, vote *domain.Vote) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Vote, error)
	GetByVoter(ctx context.Context, questionID, voterID uuid.UUID) (*domain.Vote, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Vote, error)
	HasVoted(ctx context.Context, questionID, voterID uuid.UUID) (bool, error)
	DeleteVote(ctx context.Context, id uuid.UUID) error
}

type VoteService interface {
	CastVote(ctx context.Context, answerID, voterID uuid.UUID) (*domain.Vote, error)
	HasVoted(ctx context.Context, questionID, voterID uuid.UUID) (bool, error)
	MyVote(ctx context.Context, questionID, voterID uuid.UUID) (*domain.Vote, error)
	GetVote(ctx context.Context, id uuid.UUID) (*domain.Vote, error)
	ListVotes(ctx context.Context, page int) ([]*domain.Vote, error)
	Retract(ctx context.Context, requesterID, voteID uuid.UUID) error
}
