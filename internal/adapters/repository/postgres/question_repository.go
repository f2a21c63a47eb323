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

const selectQuestion = `
	SELECT q.id, q.owner_id, COALESCE(u.username, ''), q.text, q.created_at
	FROM questions q
	LEFT JOIN users u ON u.id = q.owner_id
`

type questionRepository struct {
	db *sql.DB
}

func NewQuestionRepository(db *sql.DB) ports.QuestionRepository {
	return &questionRepository{
		db: db,
	}
}

func (r *questionRepository) Create(ctx context.Context, question *domain.Question) error {
	query := `
		INSERT INTO questions (id, owner_id, text, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := conn(ctx, r.db).ExecContext(ctx, query, question.ID, question.OwnerID, question.Text, question.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err, questionOwnerFKey) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("failed to insert question: %w", err)
	}
	return nil
}

func (r *questionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	query := selectQuestion + `WHERE q.id = $1`

	var question domain.Question
	err := conn(ctx, r.db).QueryRowContext(ctx, query, id).Scan(
		&question.ID, &question.OwnerID, &question.OwnerUsername, &question.Text, &question.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}

	answers, err := fetchAnswers(ctx, conn(ctx, r.db), question.ID)
	if err != nil {
		return nil, err
	}
	question.Answers = answers

	return &question, nil
}

func (r *questionRepository) List(ctx context.Context, limit, offset int) ([]*domain.Question, error) {
	query := selectQuestion + `
		ORDER BY q.created_at DESC, q.id
		LIMIT $1 OFFSET $2
	`
	rows, err := conn(ctx, r.db).QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	defer rows.Close()

	return r.scanQuestions(ctx, rows)
}

func (r *questionRepository) Search(ctx context.Context, limit, offset int, q string) ([]*domain.Question, error) {
	query := selectQuestion + `
		WHERE q.text ILIKE $1 OR u.username ILIKE $1
		ORDER BY q.created_at DESC, q.id
		LIMIT $2 OFFSET $3
	`
	rows, err := conn(ctx, r.db).QueryContext(ctx, query, "%"+q+"%", limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to search questions: %w", err)
	}
	defer rows.Close()

	return r.scanQuestions(ctx, rows)
}

func (r *questionRepository) UpdateText(ctx context.Context, id uuid.UUID, text string) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `UPDATE questions SET text = $2 WHERE id = $1`, id, text)
	if err != nil {
		return fmt.Errorf("failed to update question: %w", err)
	}
	return expectAffected(res, domain.ErrQuestionNotFound)
}

// Delete removes the question; answers and votes go with it through ON DELETE CASCADE.
func (r *questionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}
	return expectAffected(res, domain.ErrQuestionNotFound)
}

func (r *questionRepository) scanQuestions(ctx context.Context, rows *sql.Rows) ([]*domain.Question, error) {
	var questions []*domain.Question
	for rows.Next() {
		var question domain.Question
		if err := rows.Scan(&question.ID, &question.OwnerID, &question.OwnerUsername, &question.Text, &question.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, &question)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating questions: %w", err)
	}
	rows.Close()

	for _, question := range questions {
		answers, err := fetchAnswers(ctx, conn(ctx, r.db), question.ID)
		if err != nil {
			return nil, err
		}
		question.Answers = answers
	}
	return questions, nil
}

func expectAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
