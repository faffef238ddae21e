package model

import "time"

// Session lifecycle states. Completed is terminal.
const (
	SessionStatusInProgress = "in_progress"
	SessionStatusCompleted  = "completed"
)

// Answer records one submission for a question. Never mutated after
// creation; kept for the life of the session.
type Answer struct {
	QuestionID  string    `json:"question_id"`
	Text        string    `json:"text"`
	SubmittedAt time.Time `json:"submitted_at"`
	// Attempt is 1-based and counts submissions to the same question
	// within this session.
	Attempt int `json:"attempt"`
}

// EvaluationResult is the outcome of scoring one answer.
type EvaluationResult struct {
	QuestionID string   `json:"question_id"`
	Score      int      `json:"score"`
	Pass       bool     `json:"pass"`
	Feedback   string   `json:"feedback"`
	FollowUps  []string `json:"follow_ups,omitempty"`
}

// Session is one interview instance: a question sequence fixed at creation
// plus everything accumulated while answering it. All mutation goes through
// the interview service; the repository guards each read-modify-write with a
// per-session lock.
type Session struct {
	ID           string             `json:"id"`
	UserID       string             `json:"user_id"`
	Questions    []Question         `json:"questions"`
	CurrentIndex int                `json:"current_index"`
	Answers      []Answer           `json:"answers"`
	Evaluations  []EvaluationResult `json:"evaluations"`
	Status       string             `json:"status"`
	StartedAt    time.Time          `json:"started_at"`
	CompletedAt  *time.Time         `json:"completed_at,omitempty"`
	OverallScore *int               `json:"overall_score,omitempty"`
}

// CurrentQuestion returns the question at the session's cursor, or nil when
// the session has run past its last question.
func (s *Session) CurrentQuestion() *Question {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.CurrentIndex]
}

// AttemptCount returns how many answers have been recorded for questionID.
func (s *Session) AttemptCount(questionID string) int {
	n := 0
	for _, a := range s.Answers {
		if a.QuestionID == questionID {
			n++
		}
	}
	return n
}
