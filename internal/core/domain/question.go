package domain

import (
	"time"

	"github.com/google/uuid"
)

type Question struct {
	ID            uuid.UUID `json:"id"`
	OwnerID       uuid.UUID `json:"owner"`
	OwnerUsername string    `json:"owner_username"`
	Text          string    `json:"text"`
	Answers       []Answer  `json:"answers"`
	VotesCount    int64     `json:"votes_count"`
	CreatedAt     time.Time `json:"created_at"`
}

type Answer struct {
	ID         uuid.UUID `json:"id"`
	QuestionID uuid.UUID `json:"question"`
	Text       string    `json:"text"`
	VotesCount int64     `json:"votes_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// MinAnswers is the number of answers a question must be created with.
const MinAnswers = 2
