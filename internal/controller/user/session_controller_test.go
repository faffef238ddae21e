package user

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hdngo/sheetcoach/internal/dto"
	"github.com/hdngo/sheetcoach/internal/repository"
	"github.com/hdngo/sheetcoach/internal/service"
)

// fakeInterviewService is a scriptable service.InterviewService.
type fakeInterviewService struct {
	created   *dto.SessionCreatedDTO
	createErr error
	outcome   *dto.AnswerOutcomeDTO
	submitErr error
	status    *dto.SessionStatusDTO
	statusErr error
	report    *dto.SessionReportDTO
	reportErr error

	lastAnswer  dto.AnswerSubmitDTO
	deletedWith string
}

func (f *fakeInterviewService) CreateSession(ctx context.Context, req dto.SessionCreateDTO) (*dto.SessionCreatedDTO, error) {
	return f.created, f.createErr
}

func (f *fakeInterviewService) SubmitAnswer(ctx context.Context, sessionID string, req dto.AnswerSubmitDTO) (*dto.AnswerOutcomeDTO, error) {
	f.lastAnswer = req
	return f.outcome, f.submitErr
}

func (f *fakeInterviewService) GetStatus(sessionID string) (*dto.SessionStatusDTO, error) {
	return f.status, f.statusErr
}

func (f *fakeInterviewService) GetReport(sessionID string) (*dto.SessionReportDTO, error) {
	return f.report, f.reportErr
}

func (f *fakeInterviewService) DeleteSession(sessionID string) {
	f.deletedWith = sessionID
}

func (f *fakeInterviewService) ListSessions() []dto.SessionSummaryDTO { return nil }

func (f *fakeInterviewService) SweepExpired(maxAge time.Duration) int { return 0 }

func newTestRouter(svc service.InterviewService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewSessionController(svc)
	r := gin.New()
	r.POST("/sessions", ctrl.CreateSession)
	r.GET("/sessions/:session_id", ctrl.GetStatus)
	r.POST("/sessions/:session_id/answers", ctrl.SubmitAnswer)
	r.GET("/sessions/:session_id/report", ctrl.GetReport)
	r.DELETE("/sessions/:session_id", ctrl.DeleteSession)
	return r
}

func perform(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateSessionReturns201(t *testing.T) {
	svc := &fakeInterviewService{created: &dto.SessionCreatedDTO{SessionID: "s-1", QuestionCount: 3}}
	r := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/sessions", strings.NewReader(`{"difficulty":"beginner"}`))
	req.Header.Set("Content-Type", "application/json")
	w := perform(r, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", w.Code, w.Body.String())
	}
	var got dto.SessionCreatedDTO
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.SessionID != "s-1" {
		t.Errorf("sessionID = %q", got.SessionID)
	}
}

func TestCreateSessionAcceptsEmptyBody(t *testing.T) {
	svc := &fakeInterviewService{created: &dto.SessionCreatedDTO{SessionID: "s-1"}}
	r := newTestRouter(svc)

	w := perform(r, httptest.NewRequest(http.MethodPost, "/sessions", nil))
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}
}

func TestCreateSessionRejectsBadDifficulty(t *testing.T) {
	r := newTestRouter(&fakeInterviewService{})

	req := httptest.NewRequest(http.MethodPost, "/sessions", strings.NewReader(`{"difficulty":"wizard"}`))
	req.Header.Set("Content-Type", "application/json")
	w := perform(r, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestCreateSessionMapsGenerationFailureTo503(t *testing.T) {
	r := newTestRouter(&fakeInterviewService{createErr: service.ErrQuestionGenerationFailed})

	req := httptest.NewRequest(http.MethodPost, "/sessions", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := perform(r, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}
}

func TestSubmitAnswerJSON(t *testing.T) {
	svc := &fakeInterviewService{outcome: &dto.AnswerOutcomeDTO{
		Evaluation: dto.EvaluationDTO{Score: 80, Pass: true, Feedback: "good"},
		Attempt:    1,
		Advanced:   true,
	}}
	r := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/sessions/s-1/answers", strings.NewReader(`{"question_id":"q-1","text":"an answer"}`))
	req.Header.Set("Content-Type", "application/json")
	w := perform(r, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
	if svc.lastAnswer.QuestionID != "q-1" || svc.lastAnswer.Text != "an answer" {
		t.Errorf("service received %+v", svc.lastAnswer)
	}
}

func TestSubmitAnswerJSONRequiresQuestionID(t *testing.T) {
	r := newTestRouter(&fakeInterviewService{})

	req := httptest.NewRequest(http.MethodPost, "/sessions/s-1/answers", strings.NewReader(`{"text":"an answer"}`))
	req.Header.Set("Content-Type", "application/json")
	w := perform(r, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestSubmitAnswerMultipartAudioPlaceholder(t *testing.T) {
	svc := &fakeInterviewService{outcome: &dto.AnswerOutcomeDTO{Attempt: 1}}
	r := newTestRouter(svc)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if err := mw.WriteField("question_id", "q-1"); err != nil {
		t.Fatal(err)
	}
	part, err := mw.CreateFormFile("audio", "answer.webm")
	if err != nil {
		t.Fatal(err)
	}
	part.Write([]byte("not really audio"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/sessions/s-1/answers", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := perform(r, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
	if svc.lastAnswer.Text != placeholderTranscript {
		t.Errorf("text = %q, want the transcription placeholder", svc.lastAnswer.Text)
	}
}

func TestSubmitAnswerMultipartTextWins(t *testing.T) {
	svc := &fakeInterviewService{outcome: &dto.AnswerOutcomeDTO{Attempt: 1}}
	r := newTestRouter(svc)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	mw.WriteField("question_id", "q-1")
	mw.WriteField("text", "typed answer")
	part, _ := mw.CreateFormFile("audio", "answer.webm")
	part.Write([]byte("audio bytes"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/sessions/s-1/answers", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	perform(r, req)

	if svc.lastAnswer.Text != "typed answer" {
		t.Errorf("text = %q, typed text should take precedence over audio", svc.lastAnswer.Text)
	}
}

func TestSubmitAnswerErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"unknown session", repository.ErrSessionNotFound, http.StatusNotFound},
		{"wrong question", service.ErrQuestionMismatch, http.StatusBadRequest},
		{"completed session", service.ErrSessionNotActive, http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(&fakeInterviewService{submitErr: tt.err})

			req := httptest.NewRequest(http.MethodPost, "/sessions/s-1/answers", strings.NewReader(`{"question_id":"q-1","text":"x"}`))
			req.Header.Set("Content-Type", "application/json")
			w := perform(r, req)

			if w.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", w.Code, tt.wantCode)
			}
		})
	}
}

func TestGetStatusNotFound(t *testing.T) {
	r := newTestRouter(&fakeInterviewService{statusErr: repository.ErrSessionNotFound})

	w := perform(r, httptest.NewRequest(http.MethodGet, "/sessions/missing", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestGetReportOK(t *testing.T) {
	r := newTestRouter(&fakeInterviewService{report: &dto.SessionReportDTO{SessionID: "s-1", TotalQuestions: 2}})

	w := perform(r, httptest.NewRequest(http.MethodGet, "/sessions/s-1/report", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var got dto.SessionReportDTO
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.SessionID != "s-1" {
		t.Errorf("sessionID = %q", got.SessionID)
	}
}

func TestDeleteSessionReturns204(t *testing.T) {
	svc := &fakeInterviewService{}
	r := newTestRouter(svc)

	w := perform(r, httptest.NewRequest(http.MethodDelete, "/sessions/s-1", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", w.Code)
	}
	if svc.deletedWith != "s-1" {
		t.Errorf("service deleted %q", svc.deletedWith)
	}
}
