package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/hdngo/sheetcoach/internal/model"
)

// QuestionService produces interview questions for a requested difficulty,
// preferring the oracle and falling back to the built-in template set.
type QuestionService interface {
	Generate(ctx context.Context, difficulty, category string, count int) ([]model.Question, error)
}

type questionService struct {
	oracle OracleService
}

func NewQuestionService(oracle OracleService) QuestionService {
	return &questionService{oracle: oracle}
}

// stopwords removed from prompts when deriving keyword lists.
var stopwords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "of": {}, "to": {},
	"in": {}, "for": {}, "with": {}, "what": {}, "how": {}, "would": {},
	"your": {}, "you": {}, "when": {}, "does": {}, "do": {}, "is": {},
	"are": {}, "can": {}, "use": {}, "using": {}, "that": {}, "this": {},
	"explain": {}, "describe": {}, "between": {}, "from": {}, "into": {},
	"have": {}, "them": {}, "each": {},
}

func (s *questionService) Generate(ctx context.Context, difficulty, category string, count int) ([]model.Question, error) {
	questions, err := s.oracle.GenerateQuestions(ctx, difficulty, category, count)
	if err == nil {
		if len(questions) == 0 {
			// A validly shaped but empty result means the oracle path
			// failed; the caller must not start a degraded session.
			return nil, fmt.Errorf("%w: oracle returned zero questions", ErrOracleBadResponse)
		}
		for i := range questions {
			if len(questions[i].Keywords) == 0 {
				questions[i].Keywords = deriveKeywords(questions[i].Prompt)
			}
		}
		return questions, nil
	}
	if errors.Is(err, ErrOracleBadResponse) {
		// The oracle answered with garbage; fail closed rather than hand
		// the caller templates it did not ask for.
		return nil, err
	}

	log.Info().Err(err).Str("difficulty", difficulty).Msg("Oracle unavailable, using built-in question templates")
	return s.fromTemplates(difficulty, count), nil
}

// fromTemplates returns up to count questions from the built-in set for the
// difficulty. Category is informational metadata only on this path.
func (s *questionService) fromTemplates(difficulty string, count int) []model.Question {
	templates := questionTemplates[difficulty]
	if count > len(templates) {
		count = len(templates)
	}
	questions := make([]model.Question, 0, count)
	for _, t := range templates[:count] {
		questions = append(questions, model.Question{
			ID:             uuid.NewString(),
			Prompt:         t.prompt,
			Category:       t.category,
			Difficulty:     difficulty,
			ExpectedAnswer: t.expectedAnswer,
			Keywords:       deriveKeywords(t.prompt),
			Hints:          append([]string(nil), t.hints...),
		})
	}
	return questions
}

// deriveKeywords strips stopwords and short words from the prompt and keeps
// up to 5 remaining content words.
func deriveKeywords(prompt string) []string {
	seen := make(map[string]struct{})
	var keywords []string
	for _, w := range strings.FieldsFunc(strings.ToLower(prompt), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	}) {
		if len(w) <= 3 {
			continue
		}
		if _, stop := stopwords[w]; stop {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		keywords = append(keywords, w)
		if len(keywords) == 5 {
			break
		}
	}
	return keywords
}
