package admin

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/hdngo/sheetcoach/config"
	"github.com/hdngo/sheetcoach/internal/dto"
	"github.com/hdngo/sheetcoach/internal/service"
)

type AdminSessionController struct {
	interviewService service.InterviewService
	cfg              *config.Config
}

func NewAdminSessionController(interviewService service.InterviewService, cfg *config.Config) *AdminSessionController {
	return &AdminSessionController{interviewService: interviewService, cfg: cfg}
}

// ListSessions godoc
// @Summary (Admin) List all sessions
// @Description Returns summaries of every session currently held in memory, newest first.
// @Tags Admin
// @Produce json
// @Success 200 {array} dto.SessionSummaryDTO
// @Router /admin/sessions [get]
func (c *AdminSessionController) ListSessions(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.interviewService.ListSessions())
}

// SweepSessions godoc
// @Summary (Admin) Sweep expired sessions
// @Description Removes every session older than the given age (hours), regardless of status. Defaults to the configured session TTL.
// @Tags Admin
// @Accept json
// @Produce json
// @Param sweep body dto.SweepRequestDTO false "Optional max age override in hours"
// @Success 200 {object} dto.SweepResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Router /admin/sessions/sweep [post]
func (c *AdminSessionController) SweepSessions(ctx *gin.Context) {
	maxAge := c.cfg.Interview.SessionTTL

	var req dto.SweepRequestDTO
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
			return
		}
		if req.MaxAgeHours != nil {
			maxAge = time.Duration(*req.MaxAgeHours) * time.Hour
		}
	}

	removed := c.interviewService.SweepExpired(maxAge)
	log.Info().Int("removed", removed).Dur("maxAge", maxAge).Msg("Admin sweep executed")
	ctx.JSON(http.StatusOK, dto.SweepResultDTO{Removed: removed})
}
