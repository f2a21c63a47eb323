package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/questions/internal/core/domain"
	"github.com/vncsmyrnk/questions/internal/core/ports"
)

type questionService struct {
	questionRepo ports.QuestionRepository
	answerRepo   ports.AnswerRepository
	tallyRepo    ports.TallyRepository
	tx           ports.Transactor
	metrics      ports.VoteMetrics
}

func NewQuestionService(
	questionRepo ports.QuestionRepository,
	answerRepo ports.AnswerRepository,
	tallyRepo ports.TallyRepository,
	tx ports.Transactor,
	metrics ports.VoteMetrics,
) ports.QuestionService {
	return &questionService{
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		tallyRepo:    tallyRepo,
		tx:           tx,
		metrics:      metrics,
	}
}

func (s *questionService) Create(ctx context.Context, ownerID uuid.UUID, input ports.CreateQuestionInput) (*domain.Question, error) {
	if isBlank(input.Text) {
		return nil, domain.NewValidationError("text", domain.MsgBlank)
	}
	if len(input.Answers) < domain.MinAnswers {
		return nil, domain.NewValidationError("answers", domain.MsgTooFewAnswers)
	}
	for _, text := range input.Answers {
		if isBlank(text) {
			return nil, domain.NewValidationError("answers", domain.MsgBlank)
		}
	}

	questionID := uuid.New()
	// The store keeps microseconds; answers are spaced one apart so that
	// ordering by created_at returns them as given.
	now := time.Now().Truncate(time.Microsecond)

	question := &domain.Question{
		ID:        questionID,
		OwnerID:   ownerID,
		Text:      input.Text,
		CreatedAt: now,
	}
	for i, text := range input.Answers {
		question.Answers = append(question.Answers, domain.Answer{
			ID:         uuid.New(),
			QuestionID: questionID,
			Text:       text,
			CreatedAt:  now.Add(time.Duration(i) * time.Microsecond),
		})
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.questionRepo.Create(ctx, question); err != nil {
			return err
		}
		return s.answerRepo.CreateBatch(ctx, question.Answers)
	})
	if err != nil {
		return nil, err
	}

	s.metrics.QuestionCreated()
	return s.GetQuestion(ctx, questionID)
}

func (s *questionService) GetQuestion(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	question, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.attachTallies(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *questionService) ListQuestions(ctx context.Context, input ports.ListQuestionsInput) ([]*domain.Question, error) {
	offset := pageOffset(input.Page)

	var (
		questions []*domain.Question
		err       error
	)
	if q := strings.TrimSpace(input.Search); q != "" {
		questions, err = s.questionRepo.Search(ctx, PageSize, offset, q)
	} else {
		questions, err = s.questionRepo.List(ctx, PageSize, offset)
	}
	if err != nil {
		return nil, err
	}

	for _, question := range questions {
		if err := s.attachTallies(ctx, question); err != nil {
			return nil, err
		}
	}
	return questions, nil
}

func (s *questionService) Update(ctx context.Context, requesterID, id uuid.UUID, text string) (*domain.Question, error) {
	if isBlank(text) {
		return nil, domain.NewValidationError("text", domain.MsgBlank)
	}

	if err := s.authorizeOwner(ctx, requesterID, id); err != nil {
		return nil, err
	}
	if err := s.questionRepo.UpdateText(ctx, id, text); err != nil {
		return nil, err
	}

	return s.GetQuestion(ctx, id)
}

func (s *questionService) Delete(ctx context.Context, requesterID, id uuid.UUID) error {
	if err := s.authorizeOwner(ctx, requesterID, id); err != nil {
		return err
	}
	return s.questionRepo.Delete(ctx, id)
}

func (s *questionService) authorizeOwner(ctx context.Context, requesterID, id uuid.UUID) error {
	question, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if question.OwnerID != requesterID {
		return domain.ErrForbidden
	}
	return nil
}

func (s *questionService) attachTallies(ctx context.Context, question *domain.Question) error {
	total, err := s.tallyRepo.CountVotesForQuestion(ctx, question.ID)
	if err != nil {
		return err
	}
	perAnswer, err := s.tallyRepo.CountVotesByAnswer(ctx, question.ID)
	if err != nil {
		return err
	}

	question.VotesCount = total
	for i := range question.Answers {
		question.Answers[i].VotesCount = perAnswer[question.Answers[i].ID]
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
