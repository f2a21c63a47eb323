package postgres

import (
	"errors"

	"github.com/lib/pq"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// Constraint names declared in the migrations.
const (
	voteUniqueConstraint = "votes_question_voter_key"
	voteAnswerFKey       = "votes_answer_fkey"
	voteQuestionFKey     = "votes_question_fkey"
	voteVoterFKey        = "votes_voter_fkey"
	answerQuestionFKey   = "answers_question_fkey"
	questionOwnerFKey    = "questions_owner_fkey"
)

// violation reports the constraint named by a postgres error with the given code.
func violation(err error, code pq.ErrorCode) (string, bool) {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != code {
		return "", false
	}
	return pqErr.Constraint, true
}

func isDuplicateVote(err error) bool {
	constraint, ok := violation(err, uniqueViolation)
	return ok && constraint == voteUniqueConstraint
}

func isForeignKeyViolation(err error, constraint string) bool {
	c, ok := violation(err, foreignKeyViolation)
	return ok && c == constraint
}
