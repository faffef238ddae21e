package dto

import "time"

// QuestionDTO is the client-facing view of a question. The expected answer
// and matching keywords are deliberately not exposed.
type QuestionDTO struct {
	ID         string   `json:"id"`
	Prompt     string   `json:"prompt"`
	Category   string   `json:"category"`
	Difficulty string   `json:"difficulty"`
	Hints      []string `json:"hints,omitempty"`
}

// SessionCreatedDTO is returned when a new session starts.
type SessionCreatedDTO struct {
	SessionID     string      `json:"session_id"`
	UserID        string      `json:"user_id"`
	Difficulty    string      `json:"difficulty"`
	QuestionCount int         `json:"question_count"`
	FirstQuestion QuestionDTO `json:"first_question"`
	StartedAt     time.Time   `json:"started_at"`
}

// EvaluationDTO carries the scoring outcome for one submitted answer.
type EvaluationDTO struct {
	Score     int      `json:"score"`
	Pass      bool     `json:"pass"`
	Feedback  string   `json:"feedback"`
	FollowUps []string `json:"follow_ups,omitempty"`
}

// AnswerOutcomeDTO is the full response to an answer submission: the
// evaluation plus where the session now stands.
type AnswerOutcomeDTO struct {
	Evaluation   EvaluationDTO `json:"evaluation"`
	Attempt      int           `json:"attempt"`
	Advanced     bool          `json:"advanced"`
	Completed    bool          `json:"completed"`
	NextQuestion *QuestionDTO  `json:"next_question,omitempty"`
}

// SessionStatusDTO is the lightweight progress view of a session.
type SessionStatusDTO struct {
	SessionID       string       `json:"session_id"`
	Status          string       `json:"status"`
	CurrentIndex    int          `json:"current_index"`
	TotalQuestions  int          `json:"total_questions"`
	CurrentQuestion *QuestionDTO `json:"current_question,omitempty"`
	OverallScore    *int         `json:"overall_score,omitempty"`
	StartedAt       time.Time    `json:"started_at"`
	CompletedAt     *time.Time   `json:"completed_at,omitempty"`
}

// QuestionReportDTO summarizes the best outcome for one question.
type QuestionReportDTO struct {
	QuestionID string `json:"question_id"`
	Prompt     string `json:"prompt"`
	Attempts   int    `json:"attempts"`
	BestScore  int    `json:"best_score"`
	Feedback   string `json:"feedback"`
}

// SessionReportDTO is the read-only summary of a whole session.
type SessionReportDTO struct {
	SessionID       string              `json:"session_id"`
	UserID          string              `json:"user_id"`
	Status          string              `json:"status"`
	OverallScore    int                 `json:"overall_score"`
	Answered        int                 `json:"answered"`
	TotalQuestions  int                 `json:"total_questions"`
	DurationSeconds int                 `json:"duration_seconds"`
	Questions       []QuestionReportDTO `json:"questions"`
	CompletedAt     *time.Time          `json:"completed_at,omitempty"`
}

// SessionSummaryDTO is the admin listing view of a session.
type SessionSummaryDTO struct {
	SessionID      string     `json:"session_id"`
	UserID         string     `json:"user_id"`
	Status         string     `json:"status"`
	Answered       int        `json:"answered"`
	TotalQuestions int        `json:"total_questions"`
	OverallScore   *int       `json:"overall_score,omitempty"`
	StartedAt      time.Time  `json:"started_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}

// SweepResultDTO reports how many sessions an expiry sweep removed.
type SweepResultDTO struct {
	Removed int `json:"removed"`
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
