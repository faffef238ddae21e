package dto

// SessionCreateDTO is the request body for starting a new interview session.
// All fields are optional; the service applies defaults and bounds.
type SessionCreateDTO struct {
	UserID        string `json:"user_id"`
	Difficulty    string `json:"difficulty" binding:"omitempty,oneof=beginner intermediate advanced"`
	QuestionCount int    `json:"question_count" binding:"omitempty,min=1,max=20"`
}

// AnswerSubmitDTO is the request body for answering the current question.
// QuestionID must match the session's current question; it guards against
// stale client state.
type AnswerSubmitDTO struct {
	QuestionID string `json:"question_id" binding:"required"`
	Text       string `json:"text"`
}

// SweepRequestDTO triggers an expiry sweep with an optional override of the
// configured session TTL.
type SweepRequestDTO struct {
	MaxAgeHours *int `json:"max_age_hours" binding:"omitempty,min=0"`
}
