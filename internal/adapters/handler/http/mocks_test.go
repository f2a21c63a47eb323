package http

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/vncsmyrnk/questions/internal/core/domain"
	"github.com/vncsmyrnk/questions/internal/core/ports"
)

type mockQuestionService struct{ mock.Mock }

func (m *mockQuestionService) Create(ctx context.Context, ownerID uuid.UUID, input ports.CreateQuestionInput) (*domain.Question, error) {
	args := m.Called(ctx, ownerID, input)
	q, _ := args.Get(0).(*domain.Question)
	return q, args.Error(1)
}

func (m *mockQuestionService) GetQuestion(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	args := m.Called(ctx, id)
	q, _ := args.Get(0).(*domain.Question)
	return q, args.Error(1)
}

func (m *mockQuestionService) ListQuestions(ctx context.Context, input ports.ListQuestionsInput) ([]*domain.Question, error) {
	args := m.Called(ctx, input)
	qs, _ := args.Get(0).([]*domain.Question)
	return qs, args.Error(1)
}

func (m *mockQuestionService) Update(ctx context.Context, requesterID, id uuid.UUID, text string) (*domain.Question, error) {
	args := m.Called(ctx, requesterID, id, text)
	q, _ := args.Get(0).(*domain.Question)
	return q, args.Error(1)
}

func (m *mockQuestionService) Delete(ctx context.Context, requesterID, id uuid.UUID) error {
	return m.Called(ctx, requesterID, id).Error(0)
}

type mockAnswerService struct{ mock.Mock }

func (m *mockAnswerService) GetAnswer(ctx context.Context, id uuid.UUID) (*domain.Answer, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*domain.Answer)
	return a, args.Error(1)
}

func (m *mockAnswerService) ListAnswers(ctx context.Context, page int) ([]*domain.Answer, error) {
	args := m.Called(ctx, page)
	as, _ := args.Get(0).([]*domain.Answer)
	return as, args.Error(1)
}

func (m *mockAnswerService) Update(ctx context.Context, requesterID, id uuid.UUID, text string) (*domain.Answer, error) {
	args := m.Called(ctx, requesterID, id, text)
	a, _ := args.Get(0).(*domain.Answer)
	return a, args.Error(1)
}

func (m *mockAnswerService) Delete(ctx context.Context, requesterID, id uuid.UUID) error {
	return m.Called(ctx, requesterID, id).Error(0)
}

type mockVoteService struct{ mock.Mock }

func (m *mockVoteService) CastVote(ctx context.Context, answerID, voterID uuid.UUID) (*domain.Vote, error) {
	args := m.Called(ctx, answerID, voterID)
	v, _ := args.Get(0).(*domain.Vote)
	return v, args.Error(1)
}

func (m *mockVoteService) HasVoted(ctx context.Context, questionID, voterID uuid.UUID) (bool, error) {
	args := m.Called(ctx, questionID, voterID)
	return args.Bool(0), args.Error(1)
}

func (m *mockVoteService) MyVote(ctx context.Context, questionID, voterID uuid.UUID) (*domain.Vote, error) {
	args := m.Called(ctx, questionID, voterID)
	v, _ := args.Get(0).(*domain.Vote)
	return v, args.Error(1)
}

func (m *mockVoteService) GetVote(ctx context.Context, id uuid.UUID) (*domain.Vote, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*domain.Vote)
	return v, args.Error(1)
}

func (m *mockVoteService) ListVotes(ctx context.Context, page int) ([]*domain.Vote, error) {
	args := m.Called(ctx, page)
	vs, _ := args.Get(0).([]*domain.Vote)
	return vs, args.Error(1)
}

func (m *mockVoteService) Retract(ctx context.Context, requesterID, voteID uuid.UUID) error {
	return m.Called(ctx, requesterID, voteID).Error(0)
}

type mockUserService struct{ mock.Mock }

func (m *mockUserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

type mockProfileService struct{ mock.Mock }

func (m *mockProfileService) GetProfile(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*domain.Profile)
	return p, args.Error(1)
}

func (m *mockProfileService) MyProfile(ctx context.Context, ownerID uuid.UUID) (*domain.Profile, error) {
	args := m.Called(ctx, ownerID)
	p, _ := args.Get(0).(*domain.Profile)
	return p, args.Error(1)
}

func (m *mockProfileService) ListProfiles(ctx context.Context, page int) ([]*domain.Profile, error) {
	args := m.Called(ctx, page)
	ps, _ := args.Get(0).([]*domain.Profile)
	return ps, args.Error(1)
}

func (m *mockProfileService) UpdateProfile(ctx context.Context, requesterID, id uuid.UUID, input ports.UpdateProfileInput) (*domain.Profile, error) {
	args := m.Called(ctx, requesterID, id, input)
	p, _ := args.Get(0).(*domain.Profile)
	return p, args.Error(1)
}
