package ports

// VoteMetrics receives voting outcomes for instrumentation.
type VoteMetrics interface {
	QuestionCreated()
	VoteCast()
	VoteRejected(reason string)
}
