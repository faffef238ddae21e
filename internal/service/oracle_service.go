package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"

	"github.com/hdngo/sheetcoach/config"
	"github.com/hdngo/sheetcoach/internal/model"
)

// OracleEvaluation is the strict response schema expected from the remote
// model when scoring an answer. Any deviation from it is a failure.
type OracleEvaluation struct {
	Score     int      `json:"score"`
	Pass      bool     `json:"pass"`
	Feedback  string   `json:"feedback"`
	FollowUps []string `json:"follow_ups"`
}

// OracleService is the remote scoring and generation dependency. Both
// operations apply the configured timeout and fail closed on any response
// that does not decode into the expected shape.
type OracleService interface {
	EvaluateAnswer(ctx context.Context, question *model.Question, answer string, priorAttempts int) (*OracleEvaluation, error)
	GenerateQuestions(ctx context.Context, difficulty, category string, count int) ([]model.Question, error)
}

type geminiOracleService struct {
	client *genai.GenerativeModel
	cfg    *config.Config
}

func NewOracleService(cfg *config.Config) (OracleService, error) {
	if cfg.Oracle.APIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Oracle calls will fall back to local scoring.")
		return &geminiOracleService{cfg: cfg, client: nil}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.Oracle.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	m := client.GenerativeModel(cfg.Oracle.Model)
	m.ResponseMIMEType = "application/json"
	return &geminiOracleService{client: m, cfg: cfg}, nil
}

func (s *geminiOracleService) EvaluateAnswer(ctx context.Context, question *model.Question, answer string, priorAttempts int) (*OracleEvaluation, error) {
	if s.client == nil {
		return nil, ErrOracleUnavailable
	}

	var sb strings.Builder
	sb.WriteString("You are an experienced interviewer assessing a candidate's spreadsheet-application skills (formulas, functions, pivot tables, charts, data handling).\n")
	sb.WriteString("Evaluate the candidate's answer to the interview question below.\n\n")
	sb.WriteString("Question:\n---\n")
	sb.WriteString(question.Prompt)
	sb.WriteString("\n---\n\nExpected answer outline (not shown to the candidate):\n---\n")
	sb.WriteString(question.ExpectedAnswer)
	sb.WriteString("\n---\n\nCandidate's answer:\n---\n")
	sb.WriteString(answer)
	sb.WriteString("\n---\n\n")
	if priorAttempts > 0 {
		fmt.Fprintf(&sb, "The candidate has already made %d earlier attempt(s) at this question; weigh whether this answer shows improvement.\n\n", priorAttempts)
	}
	sb.WriteString("Score the answer from 0 to 100 for correctness, completeness, and practical understanding. A score of 60 or above is a pass.\n")
	sb.WriteString("Respond with ONLY a JSON object of exactly this shape, no markdown and no extra keys:\n")
	sb.WriteString(`{"score": <integer 0-100>, "pass": <boolean>, "feedback": "<2-4 sentences of concrete feedback>", "follow_ups": ["<up to 3 short follow-up questions, empty array if none>"]}`)

	raw, err := s.generate(ctx, sb.String())
	if err != nil {
		return nil, err
	}

	var result OracleEvaluation
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&result); err != nil {
		log.Warn().Err(err).Str("raw", raw).Msg("Failed to decode oracle evaluation response")
		return nil, fmt.Errorf("%w: %v", ErrOracleBadResponse, err)
	}
	if result.Score < 0 || result.Score > 100 || result.Feedback == "" {
		log.Warn().Int("score", result.Score).Msg("Oracle evaluation response out of range")
		return nil, fmt.Errorf("%w: score or feedback out of range", ErrOracleBadResponse)
	}
	if len(result.FollowUps) > 3 {
		result.FollowUps = result.FollowUps[:3]
	}
	return &result, nil
}

// oracleQuestion is the strict schema for one generated question.
type oracleQuestion struct {
	Prompt         string   `json:"prompt"`
	Category       string   `json:"category"`
	ExpectedAnswer string   `json:"expected_answer"`
	Keywords       []string `json:"keywords"`
	Hints          []string `json:"hints"`
}

type oracleQuestionList struct {
	Questions []oracleQuestion `json:"questions"`
}

func (s *geminiOracleService) GenerateQuestions(ctx context.Context, difficulty, category string, count int) ([]model.Question, error) {
	if s.client == nil {
		return nil, ErrOracleUnavailable
	}

	var sb strings.Builder
	sb.WriteString("You are preparing a mock interview on spreadsheet-application skills (formulas, lookups, pivot tables, charts, data cleaning).\n")
	fmt.Fprintf(&sb, "Generate %d interview questions at %s difficulty.", count, difficulty)
	if category != "" {
		fmt.Fprintf(&sb, " Focus on the category %q.", category)
	}
	sb.WriteString("\nEach question needs a prompt the interviewer reads aloud, a category label, an expected answer outline for the assessor, 3-6 keywords a good answer would contain, and 1-2 hints.\n")
	sb.WriteString("Respond with ONLY a JSON object of exactly this shape, no markdown and no extra keys:\n")
	sb.WriteString(`{"questions": [{"prompt": "...", "category": "...", "expected_answer": "...", "keywords": ["..."], "hints": ["..."]}]}`)

	raw, err := s.generate(ctx, sb.String())
	if err != nil {
		return nil, err
	}

	var list oracleQuestionList
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&list); err != nil {
		log.Warn().Err(err).Str("raw", raw).Msg("Failed to decode oracle question response")
		return nil, fmt.Errorf("%w: %v", ErrOracleBadResponse, err)
	}

	questions := make([]model.Question, 0, len(list.Questions))
	for _, q := range list.Questions {
		if q.Prompt == "" || q.ExpectedAnswer == "" {
			return nil, fmt.Errorf("%w: generated question missing prompt or expected answer", ErrOracleBadResponse)
		}
		questions = append(questions, model.Question{
			ID:             uuid.NewString(),
			Prompt:         q.Prompt,
			Category:       q.Category,
			Difficulty:     difficulty,
			ExpectedAnswer: q.ExpectedAnswer,
			Keywords:       q.Keywords,
			Hints:          q.Hints,
		})
	}
	return questions, nil
}

// generate runs one bounded completion call and concatenates the text parts
// of the first candidate, the same way the Gemini samples do.
func (s *geminiOracleService) generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Oracle.Timeout)
	defer cancel()

	resp, err := s.client.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Error().Err(err).Msg("Gemini API call failed")
		return "", fmt.Errorf("%w: %v", ErrOracleUnavailable, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty candidate list", ErrOracleBadResponse)
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			out.WriteString(string(txt))
		}
	}
	if out.Len() == 0 {
		return "", fmt.Errorf("%w: no text content", ErrOracleBadResponse)
	}
	return out.String(), nil
}
