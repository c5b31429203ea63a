package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/nihongo-test/config"
	"github.com/lshigami/nihongo-test/database"
	_ "github.com/lshigami/nihongo-test/docs" // Swagger docs
	adminctrl "github.com/lshigami/nihongo-test/internal/controller/admin"
	userctrl "github.com/lshigami/nihongo-test/internal/controller/user"
	"github.com/lshigami/nihongo-test/internal/logger"
	"github.com/lshigami/nihongo-test/internal/middleware"
	"github.com/lshigami/nihongo-test/internal/model"
	"github.com/lshigami/nihongo-test/internal/repository"
	"github.com/lshigami/nihongo-test/internal/scoring"
	"github.com/lshigami/nihongo-test/internal/service"
	"github.com/lshigami/nihongo-test/internal/snapshot"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title JLPT Practice Test API
// @version 1.0
// @description Timed JLPT-style practice tests with frozen question snapshots, scaled scoring and offline result recording.
// @contact.name API Support
// @contact.email support@example.com
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			config.NewExamConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		// Repositories Layer
		fx.Provide(NewRepositories),

		// Services Layer
		fx.Provide(
			NewSnapshotBuilder,
			service.NewAttemptService,
			service.NewOfflineResultService,
			service.NewSectionSessions,
			service.NewGeminiStudyAdvisor,
		),

		// API Controllers Layer
		fx.Provide(
			userctrl.NewTestAttemptController,
			userctrl.NewOfflineResultController,
			adminctrl.NewAdminReviewController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Error during shutdown")
	}
}

// NewRepositories picks postgres or the in-process store.
func NewRepositories(db *gorm.DB, exam *scoring.Config) (
	repository.TestAttemptRepository,
	repository.OfflineResultRepository,
	repository.QuestionRepository,
) {
	if db == nil {
		store := repository.NewMemoryStore()
		store.SeedBank(exam, 2)
		return store, store.OfflineResults(), store
	}
	return repository.NewTestAttemptRepository(db),
		repository.NewOfflineResultRepository(db),
		repository.NewQuestionRepository(db)
}

func NewSnapshotBuilder(cfg *config.Config, questions repository.QuestionRepository) *snapshot.Builder {
	seed := cfg.Exam.SnapshotSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return snapshot.NewBuilder(questions, snapshot.PolicyByName(cfg.Exam.SnapshotPolicy, seed))
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-User-ID", "X-User-Role"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutes mounts every API route on the router.
func RegisterRoutes(
	router *gin.Engine,
	auth gin.HandlerFunc,
	attemptCtrl *userctrl.TestAttemptController,
	offlineCtrl *userctrl.OfflineResultController,
	adminCtrl *adminctrl.AdminReviewController,
) {
	userAPIGroup := router.Group("/api/v1", auth)
	{
		userAPIGroup.POST("/test-attempts", attemptCtrl.CreateAttempt)
		userAPIGroup.GET("/test-attempts", attemptCtrl.ListAttempts)
		userAPIGroup.GET("/test-attempts/:id", attemptCtrl.GetAttempt)
		userAPIGroup.PUT("/test-attempts/:id/answers/:question_id", attemptCtrl.RecordAnswer)
		userAPIGroup.POST("/test-attempts/:id/sections/:section/start", attemptCtrl.StartSection)
		userAPIGroup.GET("/test-attempts/:id/sections/:section/timer", attemptCtrl.SectionTimer)
		userAPIGroup.POST("/test-attempts/:id/sections/:section/submit", attemptCtrl.SubmitSection)
		userAPIGroup.GET("/test-attempts/:id/advice", attemptCtrl.GetAdvice)

		userAPIGroup.POST("/offline-results", offlineCtrl.RecordResult)
		userAPIGroup.GET("/offline-results", offlineCtrl.ListResults)
		userAPIGroup.GET("/offline-results/:id", offlineCtrl.GetResult)
		userAPIGroup.DELETE("/offline-results/:id", offlineCtrl.DeleteResult)
	}

	adminAPIGroup := router.Group("/api/v1/admin", auth, middleware.RequireAdmin())
	{
		adminAPIGroup.GET("/test-attempts/:id", adminCtrl.ReviewAttempt)
		adminAPIGroup.GET("/exam-config", adminCtrl.GetExamConfig)
	}
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	sessions *service.SectionSessions,
	attemptCtrl *userctrl.TestAttemptController,
	offlineCtrl *userctrl.OfflineResultController,
	adminCtrl *adminctrl.AdminReviewController,
) {
	auth := middleware.Auth(cfg.Auth.JWTSecret, cfg.IsDevelopment())
	RegisterRoutes(router, auth, attemptCtrl, offlineCtrl, adminCtrl)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("JLPT practice API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			sessions.StopAll()
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Question{},
		&model.TestAttempt{},
		&model.SectionSubmission{},
		&model.UserAnswer{},
		&model.SectionScore{},
		&model.OfflineTestResult{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
