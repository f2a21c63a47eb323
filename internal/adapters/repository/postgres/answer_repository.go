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

type answerRepository struct {
	db *sql.DB
}

func NewAnswerRepository(db *sql.DB) ports.AnswerRepository {
	return &answerRepository{
		db: db,
	}
}

func (r *answerRepository) CreateBatch(ctx context.Context, answers []domain.Answer) error {
	query := `
		INSERT INTO answers (id, question_id, text, created_at)
		VALUES ($1, $2, $3, $4)
	`
	stmt, err := conn(ctx, r.db).PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare answer statement: %w", err)
	}
	defer stmt.Close()

	for _, answer := range answers {
		_, err = stmt.ExecContext(ctx, answer.ID, answer.QuestionID, answer.Text, answer.CreatedAt)
		if err != nil {
			if isForeignKeyViolation(err, answerQuestionFKey) {
				return domain.ErrQuestionNotFound
			}
			return fmt.Errorf("failed to insert answer: %w", err)
		}
	}
	return nil
}

func (r *answerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Answer, error) {
	query := `
		SELECT id, question_id, text, created_at
		FROM answers
		WHERE id = $1
	`
	var answer domain.Answer
	err := conn(ctx, r.db).QueryRowContext(ctx, query, id).Scan(
		&answer.ID, &answer.QuestionID, &answer.Text, &answer.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAnswerNotFound
		}
		return nil, fmt.Errorf("failed to get answer: %w", err)
	}
	return &answer, nil
}

func (r *answerRepository) List(ctx context.Context, limit, offset int) ([]*domain.Answer, error) {
	query := `
		SELECT id, question_id, text, created_at
		FROM answers
		ORDER BY created_at DESC, id
		LIMIT $1 OFFSET $2
	`
	rows, err := conn(ctx, r.db).QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list answers: %w", err)
	}
	defer rows.Close()

	var answers []*domain.Answer
	for rows.Next() {
		var answer domain.Answer
		if err := rows.Scan(&answer.ID, &answer.QuestionID, &answer.Text, &answer.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan answer: %w", err)
		}
		answers = append(answers, &answer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating answers: %w", err)
	}
	return answers, nil
}

func (r *answerRepository) ListByQuestion(ctx context.Context, questionID uuid.UUID) ([]domain.Answer, error) {
	return fetchAnswers(ctx, conn(ctx, r.db), questionID)
}

// CountByQuestion locks the parent question row first, so within a
// transaction concurrent answer deletes are serialized on it.
func (r *answerRepository) CountByQuestion(ctx context.Context, questionID uuid.UUID) (int, error) {
	q := conn(ctx, r.db)
	if _, err := q.ExecContext(ctx, `SELECT 1 FROM questions WHERE id = $1 FOR UPDATE`, questionID); err != nil {
		return 0, fmt.Errorf("failed to lock question: %w", err)
	}

	var n int
	err := q.QueryRowContext(ctx, `SELECT COUNT(*) FROM answers WHERE question_id = $1`, questionID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count answers: %w", err)
	}
	return n, nil
}

func (r *answerRepository) UpdateText(ctx context.Context, id uuid.UUID, text string) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `UPDATE answers SET text = $2 WHERE id = $1`, id, text)
	if err != nil {
		return fmt.Errorf("failed to update answer: %w", err)
	}
	return expectAffected(res, domain.ErrAnswerNotFound)
}

func (r *answerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM answers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete answer: %w", err)
	}
	return expectAffected(res, domain.ErrAnswerNotFound)
}

// fetchAnswers returns a question's answers in creation order.
func fetchAnswers(ctx context.Context, q querier, questionID uuid.UUID) ([]domain.Answer, error) {
	query := `
		SELECT id, question_id, text, created_at
		FROM answers
		WHERE question_id = $1
		ORDER BY created_at, id
	`
	rows, err := q.QueryContext(ctx, query, questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get answers: %w", err)
	}
	defer rows.Close()

	var answers []domain.Answer
	for rows.Next() {
		var answer domain.Answer
		if err := rows.Scan(&answer.ID, &answer.QuestionID, &answer.Text, &answer.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan answer: %w", err)
		}
		answers = append(answers, answer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating answers: %w", err)
	}
	return answers, nil
}
