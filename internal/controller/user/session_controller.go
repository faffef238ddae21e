package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/hdngo/sheetcoach/internal/dto"
	"github.com/hdngo/sheetcoach/internal/repository"
	"github.com/hdngo/sheetcoach/internal/service"
)

// placeholderTranscript stands in for real speech-to-text, which this build
// does not perform.
const placeholderTranscript = "[voice answer received; transcription is not available, please type your answer]"

type SessionController struct {
	interviewService service.InterviewService
}

func NewSessionController(interviewService service.InterviewService) *SessionController {
	return &SessionController{interviewService: interviewService}
}

// CreateSession godoc
// @Summary Start a new interview session
// @Description Creates a session with generated questions and returns the first question.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param session_data body dto.SessionCreateDTO false "User ID, difficulty and question count, all optional"
// @Success 201 {object} dto.SessionCreatedDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 503 {object} dto.ErrorResponse "Question generation failed"
// @Router /sessions [post]
func (c *SessionController) CreateSession(ctx *gin.Context) {
	var req dto.SessionCreateDTO
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
			return
		}
	}

	created, err := c.interviewService.CreateSession(ctx.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Msg("CreateSession: service error")
		respondError(ctx, err, "Failed to create session")
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// SubmitAnswer godoc
// @Summary Submit an answer for the current question
// @Description Accepts a typed answer (JSON) or a spoken answer (multipart with an "audio" file field). Audio is not transcribed; a placeholder text is recorded instead. Returns the evaluation, the next question if any, and the completion flag.
// @Tags Sessions
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Param session_id path string true "Session ID"
// @Param answer body dto.AnswerSubmitDTO true "Question ID and answer text"
// @Success 200 {object} dto.AnswerOutcomeDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid body or answer for the wrong question"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "Session already completed"
// @Router /sessions/{session_id}/answers [post]
func (c *SessionController) SubmitAnswer(ctx *gin.Context) {
	sessionID := ctx.Param("session_id")

	req, ok := bindAnswer(ctx)
	if !ok {
		return
	}

	outcome, err := c.interviewService.SubmitAnswer(ctx.Request.Context(), sessionID, req)
	if err != nil {
		log.Warn().Err(err).Str("sessionID", sessionID).Msg("SubmitAnswer: service error")
		respondError(ctx, err, "Failed to submit answer")
		return
	}
	ctx.JSON(http.StatusOK, outcome)
}

// bindAnswer reads the submission from either a JSON body or a multipart
// form with an optional audio upload.
func bindAnswer(ctx *gin.Context) (dto.AnswerSubmitDTO, bool) {
	var req dto.AnswerSubmitDTO

	if form, err := ctx.MultipartForm(); err == nil {
		if v := form.Value["question_id"]; len(v) > 0 {
			req.QuestionID = v[0]
		}
		if v := form.Value["text"]; len(v) > 0 {
			req.Text = v[0]
		}
		if req.Text == "" && len(form.File["audio"]) > 0 {
			req.Text = placeholderTranscript
		}
		if req.QuestionID == "" {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "question_id form field is required"})
			return req, false
		}
		return req, true
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return req, false
	}
	return req, true
}

// GetStatus godoc
// @Summary Get session progress
// @Description Returns the current index, totals, current question (while in progress), overall score and timestamps.
// @Tags Sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.SessionStatusDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{session_id} [get]
func (c *SessionController) GetStatus(ctx *gin.Context) {
	sessionID := ctx.Param("session_id")
	status, err := c.interviewService.GetStatus(sessionID)
	if err != nil {
		respondError(ctx, err, "Failed to fetch session status")
		return
	}
	ctx.JSON(http.StatusOK, status)
}

// GetReport godoc
// @Summary Get the session summary report
// @Description Returns per-question best scores and feedback, answered/total counts, overall score and duration.
// @Tags Sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.SessionReportDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{session_id}/report [get]
func (c *SessionController) GetReport(ctx *gin.Context) {
	sessionID := ctx.Param("session_id")
	report, err := c.interviewService.GetReport(sessionID)
	if err != nil {
		respondError(ctx, err, "Failed to build session report")
		return
	}
	ctx.JSON(http.StatusOK, report)
}

// DeleteSession godoc
// @Summary Delete a session
// @Description Removes the session. Deleting an unknown session is not an error.
// @Tags Sessions
// @Param session_id path string true "Session ID"
// @Success 204 "Session removed"
// @Router /sessions/{session_id} [delete]
func (c *SessionController) DeleteSession(ctx *gin.Context) {
	c.interviewService.DeleteSession(ctx.Param("session_id"))
	ctx.Status(http.StatusNoContent)
}

// respondError maps service errors onto HTTP statuses. Oracle failures never
// surface here; the evaluator absorbs them.
func respondError(ctx *gin.Context, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, repository.ErrSessionNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Session not found"})
	case errors.Is(err, service.ErrQuestionMismatch):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Answer does not target the session's current question"})
	case errors.Is(err, service.ErrSessionNotActive):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: "Session is already completed"})
	case errors.Is(err, service.ErrQuestionGenerationFailed):
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Message: "Could not generate interview questions", Details: []string{err.Error()}})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: fallbackMsg, Details: []string{err.Error()}})
	}
}
