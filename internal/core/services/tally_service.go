package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vncsmyrnk/questions/internal/core/domain"
	"github.com/vncsmyrnk/questions/internal/core/ports"
)

// auditConcurrency bounds the number of questions audited at once.
const auditConcurrency = 8

type tallyService struct {
	tallyRepo ports.TallyRepository
}

func NewTallyService(tallyRepo ports.TallyRepository) ports.TallyService {
	return &tallyService{
		tallyRepo: tallyRepo,
	}
}

func (s *tallyService) CountVotesForAnswer(ctx context.Context, answerID uuid.UUID) (int64, error) {
	return s.tallyRepo.CountVotesForAnswer(ctx, answerID)
}

func (s *tallyService) CountVotesForQuestion(ctx context.Context, questionID uuid.UUID) (int64, error) {
	return s.tallyRepo.CountVotesForQuestion(ctx, questionID)
}

// AuditTallies checks, for every question, that its vote count equals the sum of
// its answers' counts and the count over the denormalized question column.
func (s *tallyService) AuditTallies(ctx context.Context) ([]domain.TallyMismatch, error) {
	ids, err := s.tallyRepo.QuestionIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch question ids: %w", err)
	}

	var (
		mu         sync.Mutex
		mismatches []domain.TallyMismatch
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(auditConcurrency)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			m, ok, err := s.auditQuestion(gctx, id)
			if errors.Is(err, domain.ErrNotFound) {
				// deleted since the ids were read
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to audit question %s: %w", id, err)
			}
			if ok {
				return nil
			}
			mu.Lock()
			mismatches = append(mismatches, m)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return mismatches, nil
}

func (s *tallyService) auditQuestion(ctx context.Context, id uuid.UUID) (domain.TallyMismatch, bool, error) {
	total, err := s.tallyRepo.CountVotesForQuestion(ctx, id)
	if err != nil {
		return domain.TallyMismatch{}, false, err
	}

	perAnswer, err := s.tallyRepo.CountVotesByAnswer(ctx, id)
	if err != nil {
		return domain.TallyMismatch{}, false, err
	}
	var sum int64
	for _, c := range perAnswer {
		sum += c
	}

	direct, err := s.tallyRepo.CountDirectVotes(ctx, id)
	if err != nil {
		return domain.TallyMismatch{}, false, err
	}

	m := domain.TallyMismatch{
		QuestionID:    id,
		QuestionCount: total,
		AnswerSum:     sum,
		DirectCount:   direct,
	}
	return m, total == sum && total == direct, nil
}
