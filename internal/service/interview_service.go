package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"github.com/hdngo/sheetcoach/config"
	"github.com/hdngo/sheetcoach/internal/dto"
	"github.com/hdngo/sheetcoach/internal/model"
	"github.com/hdngo/sheetcoach/internal/repository"
)

// InterviewService is the single authority over session state: creation,
// answer recording, evaluation, advancement, reporting, and cleanup.
type InterviewService interface {
	CreateSession(ctx context.Context, req dto.SessionCreateDTO) (*dto.SessionCreatedDTO, error)
	SubmitAnswer(ctx context.Context, sessionID string, req dto.AnswerSubmitDTO) (*dto.AnswerOutcomeDTO, error)
	GetStatus(sessionID string) (*dto.SessionStatusDTO, error)
	GetReport(sessionID string) (*dto.SessionReportDTO, error)
	DeleteSession(sessionID string)
	ListSessions() []dto.SessionSummaryDTO
	SweepExpired(maxAge time.Duration) int
}

type interviewService struct {
	sessionRepo repository.SessionRepository
	questionSvc QuestionService
	evaluator   EvaluatorService
	cfg         *config.Config
}

func NewInterviewService(
	sessionRepo repository.SessionRepository,
	questionSvc QuestionService,
	evaluator EvaluatorService,
	cfg *config.Config,
) InterviewService {
	return &interviewService{
		sessionRepo: sessionRepo,
		questionSvc: questionSvc,
		evaluator:   evaluator,
		cfg:         cfg,
	}
}

const anonymousUser = "anonymous"

func (s *interviewService) CreateSession(ctx context.Context, req dto.SessionCreateDTO) (*dto.SessionCreatedDTO, error) {
	userID := req.UserID
	if userID == "" {
		userID = anonymousUser
	}
	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = model.DifficultyBeginner
	}
	if !model.ValidDifficulty(difficulty) {
		return nil, fmt.Errorf("unknown difficulty %q", difficulty)
	}
	count := req.QuestionCount
	if count == 0 {
		count = s.cfg.Interview.DefaultQuestionCount
	}
	if count < 1 {
		count = 1
	}
	if count > 20 {
		count = 20
	}

	questions, err := s.questionSvc.Generate(ctx, difficulty, "", count)
	if err != nil {
		log.Error().Err(err).Str("difficulty", difficulty).Msg("CreateSession: question generation failed")
		return nil, fmt.Errorf("%w: %v", ErrQuestionGenerationFailed, err)
	}
	if len(questions) == 0 {
		return nil, ErrQuestionGenerationFailed
	}

	session := &model.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		Questions: questions,
		Status:    model.SessionStatusInProgress,
		StartedAt: time.Now(),
	}
	if err := s.sessionRepo.Save(session); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	log.Info().Str("sessionID", session.ID).Str("userID", userID).
		Str("difficulty", difficulty).Int("questions", len(questions)).
		Msg("Interview session created")

	return &dto.SessionCreatedDTO{
		SessionID:     session.ID,
		UserID:        userID,
		Difficulty:    difficulty,
		QuestionCount: len(questions),
		FirstQuestion: questionToDTO(&questions[0]),
		StartedAt:     session.StartedAt,
	}, nil
}

func (s *interviewService) SubmitAnswer(ctx context.Context, sessionID string, req dto.AnswerSubmitDTO) (*dto.AnswerOutcomeDTO, error) {
	// Phase 1: validate against current state and record the answer. The
	// oracle call must not run under the session lock, so evaluation
	// happens between the two updates.
	var question model.Question
	var attempt int
	_, err := s.sessionRepo.Update(sessionID, func(sess *model.Session) error {
		if sess.Status != model.SessionStatusInProgress {
			return ErrSessionNotActive
		}
		current := sess.CurrentQuestion()
		if current == nil {
			return ErrSessionNotActive
		}
		if current.ID != req.QuestionID {
			return ErrQuestionMismatch
		}
		question = *current
		attempt = sess.AttemptCount(current.ID) + 1
		sess.Answers = append(sess.Answers, model.Answer{
			QuestionID:  current.ID,
			Text:        req.Text,
			SubmittedAt: time.Now(),
			Attempt:     attempt,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	evaluation := s.evaluator.Evaluate(ctx, &question, req.Text, attempt-1)

	// Phase 2: record the evaluation and apply the advancement policy:
	// advance on pass or threshold, and force-advance once the attempt cap
	// for this question is exhausted.
	shouldAdvance := evaluation.Pass ||
		evaluation.Score >= s.cfg.Interview.PassThreshold ||
		attempt >= s.cfg.Interview.MaxAttempts

	outcome := &dto.AnswerOutcomeDTO{Attempt: attempt}
	updated, err := s.sessionRepo.Update(sessionID, func(sess *model.Session) error {
		if sess.Status != model.SessionStatusInProgress {
			return ErrSessionNotActive
		}
		sess.Evaluations = append(sess.Evaluations, evaluation)
		if shouldAdvance {
			if err := advance(sess); err != nil {
				return err
			}
			outcome.Advanced = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	outcome.Evaluation = dto.EvaluationDTO{
		Score:     evaluation.Score,
		Pass:      evaluation.Pass,
		Feedback:  evaluation.Feedback,
		FollowUps: evaluation.FollowUps,
	}
	outcome.Completed = updated.Status == model.SessionStatusCompleted
	if next := updated.CurrentQuestion(); next != nil {
		q := questionToDTO(next)
		outcome.NextQuestion = &q
	}

	log.Info().Str("sessionID", sessionID).Str("questionID", question.ID).
		Int("attempt", attempt).Int("score", evaluation.Score).
		Bool("advanced", outcome.Advanced).Bool("completed", outcome.Completed).
		Msg("Answer evaluated")
	return outcome, nil
}

// advance moves the cursor forward by one. Crossing the end of the question
// list completes the session: status, completion timestamp, and overall
// score change together.
func advance(sess *model.Session) error {
	if sess.Status != model.SessionStatusInProgress {
		return ErrSessionNotActive
	}
	sess.CurrentIndex++
	if sess.CurrentIndex >= len(sess.Questions) {
		sess.CurrentIndex = len(sess.Questions)
		now := time.Now()
		overall := roundedMeanScore(sess.Evaluations)
		sess.Status = model.SessionStatusCompleted
		sess.CompletedAt = &now
		sess.OverallScore = &overall
	}
	return nil
}

// roundedMeanScore is the rounded arithmetic mean of all evaluation scores,
// 0 when none exist.
func roundedMeanScore(evals []model.EvaluationResult) int {
	if len(evals) == 0 {
		return 0
	}
	sum := 0
	for _, e := range evals {
		sum += e.Score
	}
	return int(math.Round(float64(sum) / float64(len(evals))))
}

func (s *interviewService) GetStatus(sessionID string) (*dto.SessionStatusDTO, error) {
	sess, err := s.sessionRepo.FindByID(sessionID)
	if err != nil {
		return nil, err
	}
	status := &dto.SessionStatusDTO{
		SessionID:      sess.ID,
		Status:         sess.Status,
		CurrentIndex:   sess.CurrentIndex,
		TotalQuestions: len(sess.Questions),
		OverallScore:   sess.OverallScore,
		StartedAt:      sess.StartedAt,
		CompletedAt:    sess.CompletedAt,
	}
	if sess.Status == model.SessionStatusInProgress {
		if current := sess.CurrentQuestion(); current != nil {
			q := questionToDTO(current)
			status.CurrentQuestion = &q
		}
	}
	return status, nil
}

func (s *interviewService) GetReport(sessionID string) (*dto.SessionReportDTO, error) {
	sess, err := s.sessionRepo.FindByID(sessionID)
	if err != nil {
		return nil, err
	}

	report := &dto.SessionReportDTO{
		SessionID:      sess.ID,
		UserID:         sess.UserID,
		Status:         sess.Status,
		TotalQuestions: len(sess.Questions),
		CompletedAt:    sess.CompletedAt,
	}

	for _, q := range sess.Questions {
		attempts := sess.AttemptCount(q.ID)
		if attempts > 0 {
			report.Answered++
		}
		best := dto.QuestionReportDTO{QuestionID: q.ID, Prompt: q.Prompt, Attempts: attempts}
		for _, e := range sess.Evaluations {
			if e.QuestionID == q.ID && (best.Feedback == "" || e.Score > best.BestScore) {
				best.BestScore = e.Score
				best.Feedback = e.Feedback
			}
		}
		report.Questions = append(report.Questions, best)
	}

	if sess.OverallScore != nil {
		report.OverallScore = *sess.OverallScore
	} else {
		report.OverallScore = roundedMeanScore(sess.Evaluations)
	}

	end := time.Now()
	if sess.CompletedAt != nil {
		end = *sess.CompletedAt
	}
	report.DurationSeconds = int(end.Sub(sess.StartedAt).Seconds())
	return report, nil
}

func (s *interviewService) DeleteSession(sessionID string) {
	s.sessionRepo.Delete(sessionID)
}

func (s *interviewService) ListSessions() []dto.SessionSummaryDTO {
	sessions := s.sessionRepo.FindAll()
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].StartedAt.After(sessions[j].StartedAt)
	})

	summaries := make([]dto.SessionSummaryDTO, 0, len(sessions))
	for _, sess := range sessions {
		answered := 0
		for _, q := range sess.Questions {
			if sess.AttemptCount(q.ID) > 0 {
				answered++
			}
		}
		summaries = append(summaries, dto.SessionSummaryDTO{
			SessionID:      sess.ID,
			UserID:         sess.UserID,
			Status:         sess.Status,
			Answered:       answered,
			TotalQuestions: len(sess.Questions),
			OverallScore:   sess.OverallScore,
			StartedAt:      sess.StartedAt,
			CompletedAt:    sess.CompletedAt,
		})
	}
	return summaries
}

func (s *interviewService) SweepExpired(maxAge time.Duration) int {
	removed := s.sessionRepo.DeleteOlderThan(time.Now().Add(-maxAge))
	if removed > 0 {
		log.Info().Int("removed", removed).Dur("maxAge", maxAge).Msg("Expired sessions swept")
	}
	return removed
}

func questionToDTO(q *model.Question) dto.QuestionDTO {
	var out dto.QuestionDTO
	if err := copier.Copy(&out, q); err != nil {
		log.Error().Err(err).Str("questionID", q.ID).Msg("Failed to copy question to DTO")
	}
	return out
}
