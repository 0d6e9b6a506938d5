package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/quiz-session-api/internal/handler/dto"
	apperrors "github.com/yourusername/quiz-session-api/internal/pkg/errors"
	"github.com/yourusername/quiz-session-api/internal/service"
	"github.com/yourusername/quiz-session-api/pkg/auth"
	"github.com/yourusername/quiz-session-api/pkg/joincode"
)

// QuizHandler обрабатывает запросы, связанные с викторинами
type QuizHandler struct {
	quizService *service.QuizService
	jwtService  *auth.JWTService
}

// NewQuizHandler создает новый обработчик викторин
func NewQuizHandler(quizService *service.QuizService, jwtService *auth.JWTService) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
		jwtService:  jwtService,
	}
}

// CreateQuizRequest представляет запрос на создание викторины
type CreateQuizRequest struct {
	UserName string `json:"user_name" binding:"required,min=1,max=25"`
}

// CreateQuiz обрабатывает запрос на создание викторины.
// Join-код генерируется на сервере; создатель становится администратором
// и получает токен сессии.
// POST /api/quizzes
func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	var req CreateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	code, err := joincode.New()
	if err != nil {
		log.Printf("[QuizHandler] Не удалось сгенерировать join-код: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	quiz, user, err := h.quizService.CreateQuiz(code, req.UserName)
	if err != nil {
		h.handleQuizError(c, err)
		return
	}

	token, err := h.jwtService.GenerateToken(user)
	if err != nil {
		log.Printf("[QuizHandler] Не удалось выпустить токен для участника %s: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, dto.NewQuizJoinedResponse(quiz, user, token))
}

// JoinQuizRequest представляет запрос на присоединение к викторине
type JoinQuizRequest struct {
	JoinCode string `json:"join_code" binding:"required,min=6,max=14"`
	UserName string `json:"user_name" binding:"required,min=1,max=25"`
}

// JoinQuiz обрабатывает запрос на присоединение к викторине по join-коду
// POST /api/quizzes/join
func (h *QuizHandler) JoinQuiz(c *gin.Context) {
	var req JoinQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quiz, user, err := h.quizService.JoinQuiz(req.JoinCode, req.UserName)
	if err != nil {
		h.handleQuizError(c, err)
		return
	}

	token, err := h.jwtService.GenerateToken(user)
	if err != nil {
		log.Printf("[QuizHandler] Не удалось выпустить токен для участника %s: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.NewQuizJoinedResponse(quiz, user, token))
}

// GetQuiz возвращает снимок викторины для периодического опроса клиентом
// GET /api/quizzes/:id
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	quiz, err := h.quizService.GetQuiz(c.Param("id"))
	if err != nil {
		h.handleQuizError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuizResponse(quiz))
}

// StartQuiz обрабатывает запрос администратора на запуск викторины
// POST /api/quizzes/:id/start
func (h *QuizHandler) StartQuiz(c *gin.Context) {
	userID := c.GetString("user_id")

	quiz, err := h.quizService.StartQuiz(c.Param("id"), userID)
	if err != nil {
		h.handleQuizError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuizResponse(quiz))
}

// SubmitAnswerRequest представляет запрос на ответ на текущий вопрос
type SubmitAnswerRequest struct {
	ChoiceID string `json:"choice_id" binding:"required"`
}

// SubmitAnswer записывает ответ участника на вопрос викторины
// PUT /api/quizzes/:id/questions/:questionId/answer
func (h *QuizHandler) SubmitAnswer(c *gin.Context) {
	var req SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString("user_id")

	quiz, err := h.quizService.AnswerQuizQuestion(c.Param("id"), userID, c.Param("questionId"), req.ChoiceID)
	if err != nil {
		h.handleQuizError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuizResponse(quiz))
}

// handleQuizError обрабатывает ошибки от сервиса викторин и отправляет
// соответствующий HTTP ответ
func (h *QuizHandler) handleQuizError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrConflict) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrValidation) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrUnauthorized) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrForbidden) {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	} else {
		log.Printf("ERROR: Internal server error in QuizHandler: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
