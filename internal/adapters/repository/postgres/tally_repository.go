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

type tallyRepository struct {
	db *sql.DB
}

func NewTallyRepository(db *sql.DB) ports.TallyRepository {
	return &tallyRepository{
		db: db,
	}
}

// CountVotesForAnswer counts distinct votes for the answer. The LEFT JOIN from
// answers keeps unknown ids apart from answers with no votes.
func (r *tallyRepository) CountVotesForAnswer(ctx context.Context, answerID uuid.UUID) (int64, error) {
	query := `
		SELECT COUNT(DISTINCT v.id)
		FROM answers a
		LEFT JOIN votes v ON v.answer_id = a.id
		WHERE a.id = $1
		GROUP BY a.id
	`
	return r.count(ctx, query, answerID, domain.ErrAnswerNotFound)
}

// CountVotesForQuestion counts distinct votes reached through the question's answers.
func (r *tallyRepository) CountVotesForQuestion(ctx context.Context, questionID uuid.UUID) (int64, error) {
	query := `
		SELECT COUNT(DISTINCT v.id)
		FROM questions q
		LEFT JOIN answers a ON a.question_id = q.id
		LEFT JOIN votes v ON v.answer_id = a.id
		WHERE q.id = $1
		GROUP BY q.id
	`
	return r.count(ctx, query, questionID, domain.ErrQuestionNotFound)
}

func (r *tallyRepository) CountDirectVotes(ctx context.Context, questionID uuid.UUID) (int64, error) {
	query := `
		SELECT COUNT(DISTINCT v.id)
		FROM questions q
		LEFT JOIN votes v ON v.question_id = q.id
		WHERE q.id = $1
		GROUP BY q.id
	`
	return r.count(ctx, query, questionID, domain.ErrQuestionNotFound)
}

func (r *tallyRepository) CountVotesByAnswer(ctx context.Context, questionID uuid.UUID) (map[uuid.UUID]int64, error) {
	query := `
		SELECT a.id, COUNT(DISTINCT v.id)
		FROM answers a
		LEFT JOIN votes v ON v.answer_id = a.id
		WHERE a.question_id = $1
		GROUP BY a.id
	`
	rows, err := conn(ctx, r.db).QueryContext(ctx, query, questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to count votes by answer: %w", err)
	}
	defer rows.Close()

	counts := make(map[uuid.UUID]int64)
	for rows.Next() {
		var (
			id    uuid.UUID
			count int64
		)
		if err := rows.Scan(&id, &count); err != nil {
			return nil, fmt.Errorf("failed to scan answer count: %w", err)
		}
		counts[id] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating answer counts: %w", err)
	}
	return counts, nil
}

func (r *tallyRepository) QuestionIDs(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, `SELECT id FROM questions ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to get question ids: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan question id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating question ids: %w", err)
	}
	return ids, nil
}

func (r *tallyRepository) count(ctx context.Context, query string, id uuid.UUID, notFound error) (int64, error) {
	var n int64
	err := conn(ctx, r.db).QueryRowContext(ctx, query, id).Scan(&n)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, notFound
		}
		return 0, fmt.Errorf("failed to count votes: %w", err)
	}
	return n, nil
}
