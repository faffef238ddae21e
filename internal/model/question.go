package model

// Difficulty tiers accepted for interview questions.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// ValidDifficulty reports whether d is one of the known tiers.
func ValidDifficulty(d string) bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// Question is a single interview question. Questions are immutable once
// created; a session holds its own copy of the list it was created with.
type Question struct {
	ID             string   `json:"id"`
	Prompt         string   `json:"prompt"`
	Category       string   `json:"category"`
	Difficulty     string   `json:"difficulty"`
	ExpectedAnswer string   `json:"expected_answer"`
	Keywords       []string `json:"keywords"`
	Hints          []string `json:"hints"`
}
