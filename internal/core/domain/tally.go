package domain

import "github.com/google/uuid"

// TallyMismatch reports a question whose aggregate counts disagree.
type TallyMismatch struct {
	QuestionID    uuid.UUID
	QuestionCount int64
	AnswerSum     int64
	DirectCount   int64
}
