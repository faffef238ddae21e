package service

import (
	"context"
	"math"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/hdngo/sheetcoach/config"
	"github.com/hdngo/sheetcoach/internal/model"
)

// EvaluatorService maps (question, answer) to an EvaluationResult. It never
// returns an error: every failure of the remote oracle degrades to a locally
// computed result of the same shape.
type EvaluatorService interface {
	Evaluate(ctx context.Context, question *model.Question, answer string, priorAttempts int) model.EvaluationResult
}

type evaluatorService struct {
	oracle OracleService
	cfg    *config.Config
}

func NewEvaluatorService(oracle OracleService, cfg *config.Config) EvaluatorService {
	return &evaluatorService{oracle: oracle, cfg: cfg}
}

// domainTerms is the fixed vocabulary of spreadsheet function and feature
// names the deterministic rubric looks for.
var domainTerms = []string{
	"vlookup", "hlookup", "xlookup", "index", "match",
	"sumif", "sumifs", "countif", "countifs", "averageif",
	"pivot table", "pivot", "chart", "conditional formatting",
	"data validation", "filter", "sort", "macro",
	"absolute reference", "freeze panes",
}

var numberPattern = regexp.MustCompile(`[0-9]+(?:\.[0-9]+)?`)

const (
	feedbackExcellent = "Excellent answer. You covered the key concepts precisely and backed them up with concrete detail."
	feedbackStrong    = "Solid answer with good coverage of the topic. Tighten up the details and mention the specific functions you would use."
	feedbackDecent    = "Reasonable answer, but it stays fairly general. Walk through the concrete steps and name the spreadsheet features involved."
	feedbackWeak      = "The answer misses most of what the question asks for. Revisit the topic and try to describe a specific, workable approach."
)

var genericFollowUps = []string{
	"Can you walk through a concrete example of how you would set this up?",
	"Which spreadsheet functions would you reach for here, and why?",
	"What would you do differently if the data set were much larger?",
}

func (s *evaluatorService) Evaluate(ctx context.Context, question *model.Question, answer string, priorAttempts int) model.EvaluationResult {
	deterministic := deterministicScore(question, answer)

	// Confidently high local scores skip the oracle round-trip entirely.
	if deterministic >= 85 {
		return model.EvaluationResult{
			QuestionID: question.ID,
			Score:      deterministic,
			Pass:       true,
			Feedback:   feedbackExcellent,
		}
	}

	oracleResult, err := s.oracle.EvaluateAnswer(ctx, question, answer, priorAttempts)
	if err != nil {
		log.Warn().Err(err).Str("questionID", question.ID).Msg("Oracle evaluation failed, using local fallback")
		return s.fallbackResult(question, answer)
	}

	// The oracle can raise a locally earned score but never lower it.
	score := deterministic
	if oracleResult.Score > score {
		score = oracleResult.Score
	}
	followUps := oracleResult.FollowUps
	if len(followUps) > 3 {
		followUps = followUps[:3]
	}
	return model.EvaluationResult{
		QuestionID: question.ID,
		Score:      score,
		Pass:       score >= s.cfg.Interview.PassThreshold,
		Feedback:   oracleResult.Feedback,
		FollowUps:  followUps,
	}
}

// deterministicScore is the rubric aggregate: keyword coverage weighted 0.6,
// domain vocabulary 0.3, numeric density 0.1.
func deterministicScore(question *model.Question, answer string) int {
	k := keywordScore(question, answer)
	d := domainTermScore(answer)
	n := numericDensityScore(answer)
	agg := int(math.Round(0.6*k + 0.3*d + 0.1*n))
	if agg > 100 {
		agg = 100
	}
	return agg
}

// keywordScore is the matched fraction of the question's keywords plus the
// significant words of the expected-answer outline, scaled to 0-100.
func keywordScore(question *model.Question, answer string) float64 {
	terms := make(map[string]struct{})
	for _, kw := range question.Keywords {
		if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" {
			terms[kw] = struct{}{}
		}
	}
	for _, w := range significantWords(question.ExpectedAnswer) {
		terms[w] = struct{}{}
	}
	if len(terms) == 0 {
		return 0
	}
	lower := strings.ToLower(answer)
	matched := 0
	for term := range terms {
		if strings.Contains(lower, term) {
			matched++
		}
	}
	return float64(matched) / float64(len(terms)) * 100
}

func domainTermScore(answer string) float64 {
	lower := strings.ToLower(answer)
	matched := 0
	for _, term := range domainTerms {
		if strings.Contains(lower, term) {
			matched++
		}
	}
	return float64(matched) / float64(len(domainTerms)) * 100
}

// numericDensityScore awards 10 points per distinct numeric substring,
// capped at 100.
func numericDensityScore(answer string) float64 {
	seen := make(map[string]struct{})
	for _, m := range numberPattern.FindAllString(answer, -1) {
		seen[m] = struct{}{}
	}
	score := float64(len(seen)) * 10
	if score > 100 {
		score = 100
	}
	return score
}

// significantWords extracts the lowercased words longer than three
// characters from text, deduplicated.
func significantWords(text string) []string {
	seen := make(map[string]struct{})
	var words []string
	for _, w := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	}) {
		if len(w) <= 3 {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}
	return words
}

// fallbackResult is the degraded evaluation used whenever the oracle cannot
// be reached or misbehaves: a base of 40 plus length and keyword bonuses.
func (s *evaluatorService) fallbackResult(question *model.Question, answer string) model.EvaluationResult {
	score := 40
	if len(answer) > 50 {
		score += 20
	}
	if len(answer) > 100 {
		score += 10
	}
	if len(answer) > 200 {
		score += 10
	}
	lower := strings.ToLower(answer)
	for _, kw := range question.Keywords {
		if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" && strings.Contains(lower, kw) {
			score += 20
			break
		}
	}
	if score > 100 {
		score = 100
	}

	var feedback string
	switch {
	case score >= 80:
		feedback = feedbackStrong
	case score >= 60:
		feedback = feedbackDecent
	default:
		feedback = feedbackWeak
	}

	var followUps []string
	if score < 70 {
		followUps = append(followUps, question.Hints...)
		if len(followUps) == 0 {
			followUps = append(followUps, genericFollowUps...)
		}
		if len(followUps) > 3 {
			followUps = followUps[:3]
		}
	}

	return model.EvaluationResult{
		QuestionID: question.ID,
		Score:      score,
		Pass:       score >= s.cfg.Interview.PassThreshold,
		Feedback:   feedback,
		FollowUps:  followUps,
	}
}
