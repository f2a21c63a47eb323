package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/questions/internal/core/domain"
	"github.com/vncsmyrnk/questions/internal/core/ports"
)

type voteService struct {
	answerRepo ports.AnswerRepository
	voteRepo   ports.VoteRepository
	tx         ports.Transactor
	metrics    ports.VoteMetrics
}

func NewVoteService(answerRepo ports.AnswerRepository, voteRepo ports.VoteRepository, tx ports.Transactor, metrics ports.VoteMetrics) ports.VoteService {
	return &voteService{
		answerRepo: answerRepo,
		voteRepo:   voteRepo,
		tx:         tx,
		metrics:    metrics,
	}
}

// CastVote records voterID's vote for answerID. The HasVoted lookup only gives an
// early answer; the store's unique (question, voter) constraint decides races and
// SaveVote reports them as domain.ErrDuplicateVote too.
func (s *voteService) CastVote(ctx context.Context, answerID, voterID uuid.UUID) (*domain.Vote, error) {
	var vote *domain.Vote
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		answer, err := s.answerRepo.GetByID(ctx, answerID)
		if err != nil {
			return err
		}

		hasVoted, err := s.voteRepo.HasVoted(ctx, answer.QuestionID, voterID)
		if err != nil {
			return err
		}
		if hasVoted {
			return domain.ErrDuplicateVote
		}

		v := &domain.Vote{
			ID:         uuid.New(),
			AnswerID:   answer.ID,
			QuestionID: answer.QuestionID,
			VoterID:    voterID,
			CreatedAt:  time.Now(),
		}
		if err := s.voteRepo.SaveVote(ctx, v); err != nil {
			return err
		}
		vote = v
		return nil
	})
	if err != nil {
		s.recordRejection(err)
		return nil, err
	}

	s.metrics.VoteCast()
	return vote, nil
}

func (s *voteService) recordRejection(err error) {
	switch {
	case errors.Is(err, domain.ErrDuplicateVote):
		s.metrics.VoteRejected("duplicate")
	case errors.Is(err, domain.ErrNotFound):
		s.metrics.VoteRejected("not_found")
	}
}

func (s *voteService) HasVoted(ctx context.Context, questionID, voterID uuid.UUID) (bool, error) {
	return s.voteRepo.HasVoted(ctx, questionID, voterID)
}

func (s *voteService) MyVote(ctx context.Context, questionID, voterID uuid.UUID) (*domain.Vote, error) {
	return s.voteRepo.GetByVoter(ctx, questionID, voterID)
}

func (s *voteService) GetVote(ctx context.Context, id uuid.UUID) (*domain.Vote, error) {
	return s.voteRepo.GetByID(ctx, id)
}

func (s *voteService) ListVotes(ctx context.Context, page int) ([]*domain.Vote, error) {
	return s.voteRepo.List(ctx, PageSize, pageOffset(page))
}

// Retract deletes a vote. Only the voter who cast it may do so.
func (s *voteService) Retract(ctx context.Context, requesterID, voteID uuid.UUID) error {
	vote, err := s.voteRepo.GetByID(ctx, voteID)
	if err != nil {
		return err
	}
	if vote.VoterID != requesterID {
		return domain.ErrForbidden
	}

	return s.voteRepo.DeleteVote(ctx, voteID)
}
