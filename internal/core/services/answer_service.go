package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/questions/internal/core/domain"
	"github.com/vncsmyrnk/questions/internal/core/ports"
)

type answerService struct {
	questionRepo ports.QuestionRepository
	answerRepo   ports.AnswerRepository
	tallyRepo    ports.TallyRepository
	tx           ports.Transactor
}

func NewAnswerService(
	questionRepo ports.QuestionRepository,
	answerRepo ports.AnswerRepository,
	tallyRepo ports.TallyRepository,
	tx ports.Transactor,
) ports.AnswerService {
	return &answerService{
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		tallyRepo:    tallyRepo,
		tx:           tx,
	}
}

func (s *answerService) GetAnswer(ctx context.Context, id uuid.UUID) (*domain.Answer, error) {
	answer, err := s.answerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.attachTally(ctx, answer); err != nil {
		return nil, err
	}
	return answer, nil
}

func (s *answerService) ListAnswers(ctx context.Context, page int) ([]*domain.Answer, error) {
	answers, err := s.answerRepo.List(ctx, PageSize, pageOffset(page))
	if err != nil {
		return nil, err
	}
	for _, answer := range answers {
		if err := s.attachTally(ctx, answer); err != nil {
			return nil, err
		}
	}
	return answers, nil
}

// Update changes an answer's text. Answers carry no owner of their own, so the
// owner of the parent question is the only one allowed to edit them.
func (s *answerService) Update(ctx context.Context, requesterID, id uuid.UUID, text string) (*domain.Answer, error) {
	if isBlank(text) {
		return nil, domain.NewValidationError("text", domain.MsgBlank)
	}

	if _, err := s.authorizeQuestionOwner(ctx, requesterID, id); err != nil {
		return nil, err
	}
	if err := s.answerRepo.UpdateText(ctx, id, text); err != nil {
		return nil, err
	}

	return s.GetAnswer(ctx, id)
}

// Delete removes an answer and its votes. A question never drops below
// domain.MinAnswers answers this way.
func (s *answerService) Delete(ctx context.Context, requesterID, id uuid.UUID) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		answer, err := s.authorizeQuestionOwner(ctx, requesterID, id)
		if err != nil {
			return err
		}

		remaining, err := s.answerRepo.CountByQuestion(ctx, answer.QuestionID)
		if err != nil {
			return err
		}
		if remaining <= domain.MinAnswers {
			return domain.NewValidationError("", domain.MsgTooFewAnswers)
		}

		return s.answerRepo.Delete(ctx, id)
	})
}

func (s *answerService) authorizeQuestionOwner(ctx context.Context, requesterID, answerID uuid.UUID) (*domain.Answer, error) {
	answer, err := s.answerRepo.GetByID(ctx, answerID)
	if err != nil {
		return nil, err
	}
	question, err := s.questionRepo.GetByID(ctx, answer.QuestionID)
	if err != nil {
		return nil, err
	}
	if question.OwnerID != requesterID {
		return nil, domain.ErrForbidden
	}
	return answer, nil
}

func (s *answerService) attachTally(ctx context.Context, answer *domain.Answer) error {
	count, err := s.tallyRepo.CountVotesForAnswer(ctx, answer.ID)
	if err != nil {
		return err
	}
	answer.VotesCount = count
	return nil
}
