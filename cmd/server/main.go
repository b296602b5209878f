package main

import (
	"log"

	"quiz-platform-backend/internal/config"
	"quiz-platform-backend/internal/database"
	"quiz-platform-backend/internal/handlers"
	"quiz-platform-backend/internal/middleware"
	"quiz-platform-backend/internal/services"

	_ "quiz-platform-backend/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Quiz Platform API
// @version         1.0
// @description     Quiz delivery and results archiving: companies, quizzes, shareable sessions, public quiz taking.
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey AdminToken
// @in header
// @name X-Admin-Token

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	companyService := services.NewCompanyService(db)
	quizService := services.NewQuizService(db)
	scoringService := services.NewScoringService()
	sessionService := services.NewSessionService(db, scoringService)
	resultsService := services.NewResultsService(db)
	aiService := services.NewAIGenerateService(cfg.GeminiAPIKey, cfg.GeminiAPIURL, cfg.GeminiModel)

	companyHandler := handlers.NewCompanyHandler(companyService)
	quizHandler := handlers.NewQuizHandler(quizService)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	publicHandler := handlers.NewPublicHandler(sessionService)
	resultsHandler := handlers.NewResultsHandler(resultsService)
	generateHandler := handlers.NewGenerateHandler(aiService)

	r := gin.Default()
	r.HandleMethodNotAllowed = true

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Admin-Token"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		// Public quiz-taking flow
		api.GET("/session", publicHandler.GetSessionBySlug)
		api.POST("/submit", publicHandler.SubmitResponse)

		admin := api.Group("")
		admin.Use(middleware.AdminAuth(cfg.AdminToken))
		{
			admin.GET("/companies", companyHandler.ListCompanies)
			admin.POST("/companies", companyHandler.CreateCompany)

			admin.GET("/quizzes", quizHandler.ListQuizzes)
			admin.POST("/quizzes", quizHandler.CreateQuiz)

			admin.GET("/sessions", sessionHandler.ListSessions)
			admin.POST("/sessions", sessionHandler.CreateSession)
			admin.PATCH("/sessions/:id", sessionHandler.UpdateSession)

			admin.GET("/results", resultsHandler.GetResults)
			admin.GET("/results/export", resultsHandler.ExportResults)

			admin.POST("/generate", generateHandler.Generate)
		}
	}

	if cfg.AdminToken == "" {
		log.Println("ADMIN_TOKEN not set, admin endpoints are open")
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
