package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/yourusername/quiz-session-api/internal/config"
	"github.com/yourusername/quiz-session-api/internal/handler"
	"github.com/yourusername/quiz-session-api/internal/middleware"
	"github.com/yourusername/quiz-session-api/internal/repository/memory"
	"github.com/yourusername/quiz-session-api/internal/service"
	"github.com/yourusername/quiz-session-api/pkg/auth"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Инициализируем хранилища. Состояние живет в памяти процесса и
	// существует в единственном экземпляре, общем для всех запросов.
	userRepo := memory.NewUserRepo()
	quizRepo := memory.NewQuizRepo()

	// Инициализируем сервис токенов
	jwtService, err := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpirationHrs)
	if err != nil {
		log.Printf("Failed to initialize JWTService: %v", err)
		os.Exit(1)
	}

	// Инициализируем сервис викторин
	quizService := service.NewQuizService(quizRepo, userRepo, service.DefaultQuestionTemplate(), cfg.Quiz.MaxPlayers)

	quizHandler := handler.NewQuizHandler(quizService, jwtService)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, userRepo)

	router := gin.Default()

	// Настройка CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000", "http://localhost:8000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Liveness-проба
	router.GET("/heartbeat", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	// Настраиваем маршруты API
	api := router.Group("/api")
	{
		quizzes := api.Group("/quizzes")
		{
			// Создание и присоединение не требуют токена: токен выдается в ответе
			quizzes.POST("", quizHandler.CreateQuiz)
			quizzes.POST("/join", quizHandler.JoinQuiz)

			// Маршруты, требующие аутентификации
			authed := quizzes.Group("")
			authed.Use(authMiddleware.RequireAuth())
			{
				authed.GET("/:id", quizHandler.GetQuiz)
				authed.POST("/:id/start", quizHandler.StartQuiz)
				authed.PUT("/:id/questions/:questionId/answer", quizHandler.SubmitAnswer)
			}
		}
	}

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	// Ожидаем сигнал остановки
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	log.Println("Server exited properly")
}
