package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vote belongs to an answer and, redundantly, to that answer's question so the
// (question, voter) pair can be kept unique without a join.
type Vote struct {
	ID         uuid.UUID `json:"id"`
	AnswerID   uuid.UUID `json:"answer"`
	QuestionID uuid.UUID `json:"question"`
	VoterID    uuid.UUID `json:"voter"`
	CreatedAt  time.Time `json:"created_at"`
}
