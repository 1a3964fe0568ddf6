package server

import (
	"os"

	"imagemaker-server/db"
	"imagemaker-server/handlers"
	httpHandler "imagemaker-server/handlers/http"
	"imagemaker-server/repositories"
	"imagemaker-server/usecases"
	"imagemaker-server/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	app *gin.Engine
	db  db.Database
}

func NewServer(database db.Database) *Server {
	return &Server{
		app: gin.Default(),
		db:  database,
	}
}

func (s *Server) Start() {
	s.setupRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := s.app.Run("0.0.0.0:" + port); err != nil {
		panic(err)
	}
}

func (s *Server) setupRoutes() {
	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	s.app.Use(cors.New(config))

	// Setup healthcheck route
	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "OK",
		})
	})

	// Initialize repositories
	userRepo := repositories.NewUserPgRepository(s.db)
	styleRepo := repositories.NewStylePgRepository(s.db)
	imageRepo := repositories.NewImagePgRepository(s.db)
	feedbackRepo := repositories.NewFeedbackPgRepository(s.db)

	// Event hub for generation notifications
	manager := ws.NewManager()

	// Initialize use cases
	userUseCase := usecases.NewUserUseCase(userRepo)
	styleUseCase := usecases.NewStyleUseCase(styleRepo)
	imageUseCase := usecases.NewImageUseCase(imageRepo, manager)
	feedbackUseCase := usecases.NewFeedbackUseCase(feedbackRepo, userRepo, imageRepo)

	// Initialize handlers
	userHandler := httpHandler.NewUserHandler(userUseCase)
	styleHandler := httpHandler.NewStyleHandler(styleUseCase)
	imageHandler := httpHandler.NewImageHandler(imageUseCase)
	feedbackHandler := httpHandler.NewFeedbackHandler(feedbackUseCase)
	eventsHandler := handlers.NewEventsHandler(manager)

	// Accounts and sessions
	s.app.POST("/user", userHandler.CreateUser)
	s.app.POST("/login", userHandler.Login)
	s.app.PUT("/user/profile", userHandler.UpdateProfile)

	// Style catalog
	styles := s.app.Group("/styles")
	{
		styles.POST("", styleHandler.CreateStyle)
		styles.GET("", styleHandler.ListStyles)
		styles.DELETE("/:id", styleHandler.DeleteStyle)
	}

	// Image generation: internal endpoint plus the external API variant
	s.app.POST("/generate-image", imageHandler.GenerateImage)
	s.app.POST("/api/generate-image", imageHandler.GenerateImageExternal)

	// Feedback and content reports
	s.app.POST("/feedback/submit", feedbackHandler.SubmitFeedback)
	s.app.POST("/report/content", feedbackHandler.ReportContent)

	// Live generation event feed
	s.app.GET("/ws", eventsHandler.HandleEventsWS)
}
