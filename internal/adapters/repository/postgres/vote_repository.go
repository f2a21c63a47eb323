package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/questions/internal/core/domain"
	"github.com/vncsmyrnk/questions/internal/core/ports"
)

type voteRepository struct {
	db *sql.DB
}

func NewVoteRepository(db *sql.DB) ports.VoteRepository {
	return &voteRepository{
		db: db,
	}
}

// SaveVote inserts the vote. The votes_question_voter_key constraint is the
// guard against concurrent duplicates; hitting it yields domain.ErrDuplicateVote.
func (r *voteRepository) SaveVote(ctx context.Context, vote *domain.Vote) error {
	query := `
		INSERT INTO votes (id, answer_id, question_id, voter_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := conn(ctx, r.db).ExecContext(ctx, query, vote.ID, vote.AnswerID, vote.QuestionID, vote.VoterID, vote.CreatedAt)
	if err != nil {
		if isDuplicateVote(err) {
			return domain.ErrDuplicateVote
		}
		if isForeignKeyViolation(err, voteAnswerFKey) || isForeignKeyViolation(err, voteQuestionFKey) {
			return domain.ErrAnswerNotFound
		}
		if isForeignKeyViolation(err, voteVoterFKey) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("failed to save vote: %w", err)
	}
	return nil
}

func (r *voteRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Vote, error) {
	query := `
		SELECT id, answer_id, question_id, voter_id, created_at
		FROM votes
		WHERE id = $1
	`
	return r.getOne(ctx, query, id)
}

func (r *voteRepository) GetByVoter(ctx context.Context, questionID, voterID uuid.UUID) (*domain.Vote, error) {
	query := `
		SELECT id, answer_id, question_id, voter_id, created_at
		FROM votes
		WHERE question_id = $1 AND voter_id = $2
	`
	return r.getOne(ctx, query, questionID, voterID)
}

func (r *voteRepository) getOne(ctx context.Context, query string, args ...any) (*domain.Vote, error) {
	var vote domain.Vote
	err := conn(ctx, r.db).QueryRowContext(ctx, query, args...).Scan(
		&vote.ID, &vote.AnswerID, &vote.QuestionID, &vote.VoterID, &vote.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVoteNotFound
		}
		return nil, fmt.Errorf("failed to get vote: %w", err)
	}
	return &vote, nil
}

func (r *voteRepository) List(ctx context.Context, limit, offset int) ([]*domain.Vote, error) {
	query := `
		SELECT id, answer_id, question_id, voter_id, created_at
		FROM votes
		ORDER BY created_at DESC, id
		LIMIT $1 OFFSET $2
	`
	rows, err := conn(ctx, r.db).QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list votes: %w", err)
	}
	defer rows.Close()

	var votes []*domain.Vote
	for rows.Next() {
		var vote domain.Vote
		if err := rows.Scan(&vote.ID, &vote.AnswerID, &vote.QuestionID, &vote.VoterID, &vote.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		votes = append(votes, &vote)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating votes: %w", err)
	}
	return votes, nil
}

func (r *voteRepository) HasVoted(ctx context.Context, questionID, voterID uuid.UUID) (bool, error) {
	query := `SELECT 1 FROM votes WHERE question_id = $1 AND voter_id = $2 LIMIT 1`
	var exists int
	err := conn(ctx, r.db).QueryRowContext(ctx, query, questionID, voterID).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check existing vote: %w", err)
	}
	return true, nil
}

func (r *voteRepository) DeleteVote(ctx context.Context, id uuid.UUID) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM votes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete vote: %w", err)
	}
	return expectAffected(res, domain.ErrVoteNotFound)
}
