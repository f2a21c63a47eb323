package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/vncsmyrnk/questions/internal/core/domain"
)

// inlineTx runs fn directly; failures surface as fn's error.
type inlineTx struct{ calls int }

func (t *inlineTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

type metricsSpy struct {
	questions int
	cast      int
	rejected  map[string]int
}

func newMetricsSpy() *metricsSpy { return &metricsSpy{rejected: map[string]int{}} }

func (m *metricsSpy) QuestionCreated()           { m.questions++ }
func (m *metricsSpy) VoteCast()                  { m.cast++ }
func (m *metricsSpy) VoteRejected(reason string) { m.rejected[reason]++ }

type mockQuestionRepo struct{ mock.Mock }

func (m *mockQuestionRepo) Create(ctx context.Context, q *domain.Question) error {
	return m.Called(ctx, q).Error(0)
}

func (m *mockQuestionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	args := m.Called(ctx, id)
	q, _ := args.Get(0).(*domain.Question)
	return q, args.Error(1)
}

func (m *mockQuestionRepo) List(ctx context.Context, limit, offset int) ([]*domain.Question, error) {
	args := m.Called(ctx, limit, offset)
	qs, _ := args.Get(0).([]*domain.Question)
	return qs, args.Error(1)
}

func (m *mockQuestionRepo) Search(ctx context.Context, limit, offset int, query string) ([]*domain.Question, error) {
	args := m.Called(ctx, limit, offset, query)
	qs, _ := args.Get(0).([]*domain.Question)
	return qs, args.Error(1)
}

func (m *mockQuestionRepo) UpdateText(ctx context.Context, id uuid.UUID, text string) error {
	return m.Called(ctx, id, text).Error(0)
}

func (m *mockQuestionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockAnswerRepo struct{ mock.Mock }

func (m *mockAnswerRepo) CreateBatch(ctx context.Context, answers []domain.Answer) error {
	return m.Called(ctx, answers).Error(0)
}

func (m *mockAnswerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Answer, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*domain.Answer)
	return a, args.Error(1)
}

func (m *mockAnswerRepo) List(ctx context.Context, limit, offset int) ([]*domain.Answer, error) {
	args := m.Called(ctx, limit, offset)
	as, _ := args.Get(0).([]*domain.Answer)
	return as, args.Error(1)
}

func (m *mockAnswerRepo) ListByQuestion(ctx context.Context, questionID uuid.UUID) ([]domain.Answer, error) {
	args := m.Called(ctx, questionID)
	as, _ := args.Get(0).([]domain.Answer)
	return as, args.Error(1)
}

func (m *mockAnswerRepo) CountByQuestion(ctx context.Context, questionID uuid.UUID) (int, error) {
	args := m.Called(ctx, questionID)
	return args.Int(0), args.Error(1)
}

func (m *mockAnswerRepo) UpdateText(ctx context.Context, id uuid.UUID, text string) error {
	return m.Called(ctx, id, text).Error(0)
}

func (m *mockAnswerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockVoteRepo struct{ mock.Mock }

func (m *mockVoteRepo) SaveVote(ctx context.Context, vote *domain.Vote) error {
	return m.Called(ctx, vote).Error(0)
}

func (m *mockVoteRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Vote, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*domain.Vote)
	return v, args.Error(1)
}

func (m *mockVoteRepo) GetByVoter(ctx context.Context, questionID, voterID uuid.UUID) (*domain.Vote, error) {
	args := m.Called(ctx, questionID, voterID)
	v, _ := args.Get(0).(*domain.Vote)
	return v, args.Error(1)
}

func (m *mockVoteRepo) List(ctx context.Context, limit, offset int) ([]*domain.Vote, error) {
	args := m.Called(ctx, limit, offset)
	vs, _ := args.Get(0).([]*domain.Vote)
	return vs, args.Error(1)
}

func (m *mockVoteRepo) HasVoted(ctx context.Context, questionID, voterID uuid.UUID) (bool, error) {
	args := m.Called(ctx, questionID, voterID)
	return args.Bool(0), args.Error(1)
}

func (m *mockVoteRepo) DeleteVote(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockTallyRepo struct{ mock.Mock }

func (m *mockTallyRepo) CountVotesForAnswer(ctx context.Context, answerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, answerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTallyRepo) CountVotesForQuestion(ctx context.Context, questionID uuid.UUID) (int64, error) {
	args := m.Called(ctx, questionID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTallyRepo) CountVotesByAnswer(ctx context.Context, questionID uuid.UUID) (map[uuid.UUID]int64, error) {
	args := m.Called(ctx, questionID)
	counts, _ := args.Get(0).(map[uuid.UUID]int64)
	return counts, args.Error(1)
}

func (m *mockTallyRepo) CountDirectVotes(ctx context.Context, questionID uuid.UUID) (int64, error) {
	args := m.Called(ctx, questionID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTallyRepo) QuestionIDs(ctx context.Context) ([]uuid.UUID, error) {
	args := m.Called(ctx)
	ids, _ := args.Get(0).([]uuid.UUID)
	return ids, args.Error(1)
}

type mockProfileRepo struct{ mock.Mock }

func (m *mockProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*domain.Profile)
	return p, args.Error(1)
}

func (m *mockProfileRepo) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.Profile, error) {
	args := m.Called(ctx, ownerID)
	p, _ := args.Get(0).(*domain.Profile)
	return p, args.Error(1)
}

func (m *mockProfileRepo) List(ctx context.Context, limit, offset int) ([]*domain.Profile, error) {
	args := m.Called(ctx, limit, offset)
	ps, _ := args.Get(0).([]*domain.Profile)
	return ps, args.Error(1)
}

func (m *mockProfileRepo) Update(ctx context.Context, profile *domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}
