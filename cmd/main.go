package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"github.com/hdngo/sheetcoach/config"
	_ "github.com/hdngo/sheetcoach/docs" // Swagger docs - generated by swag
	adminctrl "github.com/hdngo/sheetcoach/internal/controller/admin"
	userctrl "github.com/hdngo/sheetcoach/internal/controller/user"
	"github.com/hdngo/sheetcoach/internal/logger"
	"github.com/hdngo/sheetcoach/internal/repository"
	"github.com/hdngo/sheetcoach/internal/service"
)

// @title SheetCoach Mock Interview API
// @version 1.0
// @description Proof-of-concept API for mock interviews on spreadsheet-application skills. Questions are generated on demand, answers are scored by a rubric-first evaluator with an optional LLM oracle, and sessions live purely in memory.
// @contact.name API Support
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			NewGinEngine,
		),

		// Storage layer (volatile; nothing survives a restart)
		fx.Provide(
			repository.NewSessionRepository,
		),

		// Services layer
		fx.Provide(
			service.NewOracleService,
			service.NewQuestionService,
			service.NewEvaluatorService,
			service.NewInterviewService,
		),

		// API controllers layer
		fx.Provide(
			userctrl.NewSessionController,
			adminctrl.NewAdminSessionController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(StartSweeper),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// Route gin's request log through zerolog.
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages the HTTP
// server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	sessionCtrl *userctrl.SessionController,
	adminCtrl *adminctrl.AdminSessionController,
) {
	apiGroup := router.Group("/api/v1")
	{
		sessions := apiGroup.Group("/sessions")
		sessions.POST("", sessionCtrl.CreateSession)
		sessions.GET("/:session_id", sessionCtrl.GetStatus)
		sessions.POST("/:session_id/answers", sessionCtrl.SubmitAnswer)
		sessions.GET("/:session_id/report", sessionCtrl.GetReport)
		sessions.DELETE("/:session_id", sessionCtrl.DeleteSession)
	}

	adminGroup := router.Group("/api/v1/admin")
	{
		adminGroup.GET("/sessions", adminCtrl.ListSessions)
		adminGroup.POST("/sessions/sweep", adminCtrl.SweepSessions)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("SheetCoach API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

// StartSweeper runs the periodic expiry sweep when a sweep interval is
// configured. With the interval at 0 cleanup is on-demand only, through the
// admin endpoint.
func StartSweeper(lc fx.Lifecycle, cfg *config.Config, interviewSvc service.InterviewService) {
	if cfg.Interview.SweepInterval <= 0 {
		log.Info().Msg("Background session sweep disabled")
		return
	}

	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ticker := time.NewTicker(cfg.Interview.SweepInterval)
			go func() {
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						interviewSvc.SweepExpired(cfg.Interview.SessionTTL)
					case <-done:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(done)
			return nil
		},
	})
}
