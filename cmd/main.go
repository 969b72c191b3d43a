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
	"gorm.io/gorm"

	"github.com/adnanfr/Binturong/config"
	"github.com/adnanfr/Binturong/database"
	_ "github.com/adnanfr/Binturong/docs"
	"github.com/adnanfr/Binturong/internal/auth"
	"github.com/adnanfr/Binturong/internal/controller"
	"github.com/adnanfr/Binturong/internal/logger"
	"github.com/adnanfr/Binturong/internal/middleware"
	"github.com/adnanfr/Binturong/internal/model"
	"github.com/adnanfr/Binturong/internal/repository"
	"github.com/adnanfr/Binturong/internal/service"
)

// @title Stakeholder Roleplay Platform API
// @version 1.0
// @description Issues AI-generated data-analysis assignments to students and lets them chat with an AI-simulated stakeholder persona. Lecturers manage datasets, review submissions and assign grades.
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewStudentRepository,
			repository.NewUserRepository,
			repository.NewDatasetRepository,
			repository.NewAssignmentRepository,
			repository.NewChatMessageRepository,
			repository.NewSubmissionRepository,
			repository.NewGradeRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewGeminiService,
			service.NewAuthService,
			service.NewAssignmentService,
			service.NewChatService,
			service.NewDatasetService,
			service.NewSubmissionService,
			service.NewGradingService,
		),

		// API Controllers Layer
		fx.Provide(
			controller.NewAuthController,
			controller.NewDatasetController,
			controller.NewAssignmentController,
			controller.NewChatController,
			controller.NewSubmissionController,
			controller.NewGradingController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

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

	origins := []string{"http://localhost:5173", "http://localhost:3000"}
	if cfg.FrontendURL != "" {
		origins = append(origins, cfg.FrontendURL)
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer wires every resource group under /api and
// manages the HTTP server through the fx lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authCtl *controller.AuthController,
	datasetCtl *controller.DatasetController,
	assignmentCtl *controller.AssignmentController,
	chatCtl *controller.ChatController,
	submissionCtl *controller.SubmissionController,
	gradingCtl *controller.GradingController,
) {
	lecturerOnly := middleware.RequireAuth(cfg.JWTSecret, auth.RoleLecturer)
	studentOnly := middleware.RequireAuth(cfg.JWTSecret, auth.RoleStudent)
	anyRole := middleware.RequireAuth(cfg.JWTSecret, auth.RoleLecturer, auth.RoleStudent)

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Backend is running"})
		})

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/student/login", authCtl.StudentLogin)
			authGroup.POST("/lecturer/login", authCtl.LecturerLogin)
			authGroup.POST("/lecturer/register", authCtl.LecturerRegister)
			authGroup.POST("/students/upload-roster", lecturerOnly, authCtl.UploadRoster)
		}

		datasetGroup := api.Group("/datasets", lecturerOnly)
		{
			datasetGroup.GET("", datasetCtl.List)
			datasetGroup.POST("", datasetCtl.Create)
			datasetGroup.DELETE("/:dataset_id", datasetCtl.Delete)
		}

		assignmentGroup := api.Group("/assignments")
		{
			assignmentGroup.GET("/me", studentOnly, assignmentCtl.GetMyAssignment)
			assignmentGroup.POST("/regenerate", lecturerOnly, assignmentCtl.Regenerate)
		}

		chatGroup := api.Group("/chat")
		{
			chatGroup.GET("/:assignment_id/messages", anyRole, chatCtl.GetMessages)
			chatGroup.POST("/:assignment_id/message", studentOnly, chatCtl.SendMessage)
		}

		submissionGroup := api.Group("/submissions")
		{
			submissionGroup.GET("/:assignment_id", anyRole, submissionCtl.List)
			submissionGroup.POST("", studentOnly, submissionCtl.Create)
		}

		gradingGroup := api.Group("/grading", lecturerOnly)
		{
			gradingGroup.GET("/students", gradingCtl.ListStudents)
			gradingGroup.GET("/search/:query", gradingCtl.SearchStudents)
			gradingGroup.POST("/grade", gradingCtl.UpsertGrade)
		}
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Stakeholder Roleplay API server starting on port %s", cfg.Server.Port)
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

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Student{},
		&model.User{},
		&model.Dataset{},
		&model.Assignment{},
		&model.ChatMessage{},
		&model.Submission{},
		&model.Grade{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
