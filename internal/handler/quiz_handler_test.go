package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/quiz-session-api/internal/domain/entity"
	"github.com/yourusername/quiz-session-api/internal/handler/dto"
	"github.com/yourusername/quiz-session-api/internal/middleware"
	"github.com/yourusername/quiz-session-api/internal/repository/memory"
	"github.com/yourusername/quiz-session-api/internal/service"
	"github.com/yourusername/quiz-session-api/pkg/auth"
)

// newTestRouter собирает маршруты так же, как это делает main
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	userRepo := memory.NewUserRepo()
	quizRepo := memory.NewQuizRepo()

	jwtService, err := auth.NewJWTService("test-secret", 1)
	require.NoError(t, err)

	quizService := service.NewQuizService(quizRepo, userRepo, service.DefaultQuestionTemplate(), 8)
	quizHandler := NewQuizHandler(quizService, jwtService)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, userRepo)

	router := gin.New()
	api := router.Group("/api")
	quizzes := api.Group("/quizzes")
	quizzes.POST("", quizHandler.CreateQuiz)
	quizzes.POST("/join", quizHandler.JoinQuiz)

	authed := quizzes.Group("")
	authed.Use(authMiddleware.RequireAuth())
	authed.GET("/:id", quizHandler.GetQuiz)
	authed.POST("/:id/start", quizHandler.StartQuiz)
	authed.PUT("/:id/questions/:questionId/answer", quizHandler.SubmitAnswer)

	return router
}

func performRequest(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeJoined(t *testing.T, w *httptest.ResponseRecorder) dto.QuizJoinedResponse {
	t.Helper()
	var resp dto.QuizJoinedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func decodeQuiz(t *testing.T, w *httptest.ResponseRecorder) dto.QuizResponse {
	t.Helper()
	var resp dto.QuizResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// createQuiz создает викторину через HTTP и возвращает ответ создателю
func createQuiz(t *testing.T, router *gin.Engine, userName string) dto.QuizJoinedResponse {
	t.Helper()
	w := performRequest(router, http.MethodPost, "/api/quizzes", "", gin.H{"user_name": userName})
	require.Equal(t, http.StatusCreated, w.Code, "Создание викторины должно вернуть 201: %s", w.Body.String())
	return decodeJoined(t, w)
}

func joinQuiz(t *testing.T, router *gin.Engine, joinCode, userName string) dto.QuizJoinedResponse {
	t.Helper()
	w := performRequest(router, http.MethodPost, "/api/quizzes/join", "", gin.H{"join_code": joinCode, "user_name": userName})
	require.Equal(t, http.StatusOK, w.Code, "Присоединение должно вернуть 200: %s", w.Body.String())
	return decodeJoined(t, w)
}

func TestCreateQuizEndpoint(t *testing.T) {
	// Arrange
	router := newTestRouter(t)

	// Act
	created := createQuiz(t, router, "Alice")

	// Assert
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.JoinCode, "Join-код генерируется на сервере")
	assert.Equal(t, entity.QuizStatusInitialized, created.Status)
	assert.Equal(t, "Alice", created.User.Name)
	assert.Equal(t, entity.UserRoleAdmin, created.User.Role)
	assert.NotEmpty(t, created.Token, "Создатель должен получить токен сессии")
}

func TestCreateQuizEndpoint_BadRequest(t *testing.T) {
	router := newTestRouter(t)

	// Пустое тело
	w := performRequest(router, http.MethodPost, "/api/quizzes", "", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Слишком длинное имя (max=25)
	w = performRequest(router, http.MethodPost, "/api/quizzes", "", gin.H{
		"user_name": "this-name-is-way-too-long-to-accept",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestJoinQuizEndpoint(t *testing.T) {
	// Arrange
	router := newTestRouter(t)
	created := createQuiz(t, router, "Alice")

	// Act
	joined := joinQuiz(t, router, created.JoinCode, "Bob")

	// Assert
	assert.Equal(t, created.ID, joined.ID)
	assert.Equal(t, entity.UserRolePlayer, joined.User.Role)
	assert.NotEmpty(t, joined.Token)
}

func TestJoinQuizEndpoint_Errors(t *testing.T) {
	router := newTestRouter(t)
	created := createQuiz(t, router, "Alice")

	t.Run("unknown join code", func(t *testing.T) {
		w := performRequest(router, http.MethodPost, "/api/quizzes/join", "", gin.H{
			"join_code": "NOSUCHCODE", "user_name": "Bob",
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("name taken", func(t *testing.T) {
		w := performRequest(router, http.MethodPost, "/api/quizzes/join", "", gin.H{
			"join_code": created.JoinCode, "user_name": "Alice",
		})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("join code too short", func(t *testing.T) {
		w := performRequest(router, http.MethodPost, "/api/quizzes/join", "", gin.H{
			"join_code": "abc", "user_name": "Bob",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code, "Валидация длины кода происходит до обращения к сервису")
	})
}

func TestGetQuizEndpoint_Auth(t *testing.T) {
	router := newTestRouter(t)
	created := createQuiz(t, router, "Alice")

	t.Run("no token", func(t *testing.T) {
		w := performRequest(router, http.MethodGet, "/api/quizzes/"+created.ID, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := performRequest(router, http.MethodGet, "/api/quizzes/"+created.ID, "not-a-jwt", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token unknown quiz", func(t *testing.T) {
		w := performRequest(router, http.MethodGet, "/api/quizzes/unknown", created.Token, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		w := performRequest(router, http.MethodGet, "/api/quizzes/"+created.ID, created.Token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		quiz := decodeQuiz(t, w)
		assert.Equal(t, created.ID, quiz.ID)
		assert.Nil(t, quiz.CurrentQuestion, "До запуска текущий вопрос не отдается")
	})
}

func TestStartQuizEndpoint_Errors(t *testing.T) {
	router := newTestRouter(t)
	created := createQuiz(t, router, "Alice")
	joined := joinQuiz(t, router, created.JoinCode, "Bob")

	t.Run("player cannot start", func(t *testing.T) {
		w := performRequest(router, http.MethodPost, "/api/quizzes/"+created.ID+"/start", joined.Token, nil)
		assert.Equal(t, http.StatusForbidden, w.Code, "Запуск доступен только администратору")
	})

	t.Run("admin of another quiz", func(t *testing.T) {
		other := createQuiz(t, router, "Carol")
		w := performRequest(router, http.MethodPost, "/api/quizzes/"+created.ID+"/start", other.Token, nil)
		assert.Equal(t, http.StatusForbidden, w.Code, "Чужой администратор — не участник этой викторины")
	})
}

// Полный жизненный цикл через HTTP: создание, присоединение, запуск,
// ответы на все вопросы до завершения викторины.
func TestQuizLifecycleOverHTTP(t *testing.T) {
	// Arrange
	router := newTestRouter(t)
	admin := createQuiz(t, router, "Alice")
	player := joinQuiz(t, router, admin.JoinCode, "Bob")

	// Act: запуск администратором
	w := performRequest(router, http.MethodPost, "/api/quizzes/"+admin.ID+"/start", admin.Token, nil)
	require.Equal(t, http.StatusOK, w.Code, "Запуск: %s", w.Body.String())

	quiz := decodeQuiz(t, w)
	assert.Equal(t, entity.QuizStatusInProgress, quiz.Status)
	require.NotNil(t, quiz.CurrentQuestion, "После запуска должен быть текущий вопрос")
	require.NotEmpty(t, quiz.CurrentQuestion.Choices)

	// Act: оба участника отвечают на каждый вопрос до конца
	const maxQuestions = 10
	for i := 0; quiz.Status == entity.QuizStatusInProgress; i++ {
		require.Less(t, i, maxQuestions, "Викторина должна завершиться за конечное число вопросов")
		require.NotNil(t, quiz.CurrentQuestion)

		question := quiz.CurrentQuestion
		answerPath := fmt.Sprintf("/api/quizzes/%s/questions/%s/answer", admin.ID, question.ID)
		body := gin.H{"choice_id": question.Choices[0].ID}

		// Первый ответ не продвигает вопрос
		w = performRequest(router, http.MethodPut, answerPath, player.Token, body)
		require.Equal(t, http.StatusOK, w.Code, "Ответ участника: %s", w.Body.String())
		afterFirst := decodeQuiz(t, w)
		require.NotNil(t, afterFirst.CurrentQuestion)
		assert.Equal(t, question.ID, afterFirst.CurrentQuestion.ID,
			"Вопрос остается текущим, пока не ответили все")

		// Второй ответ закрывает вопрос
		w = performRequest(router, http.MethodPut, answerPath, admin.Token, body)
		require.Equal(t, http.StatusOK, w.Code, "Ответ администратора: %s", w.Body.String())
		quiz = decodeQuiz(t, w)
	}

	// Assert
	assert.Equal(t, entity.QuizStatusFinished, quiz.Status)
	assert.Nil(t, quiz.CurrentQuestion, "У завершенной викторины нет текущего вопроса")
}

func TestSubmitAnswerEndpoint_Errors(t *testing.T) {
	// Arrange: запущенная викторина с текущим вопросом
	router := newTestRouter(t)
	admin := createQuiz(t, router, "Alice")
	player := joinQuiz(t, router, admin.JoinCode, "Bob")

	w := performRequest(router, http.MethodPost, "/api/quizzes/"+admin.ID+"/start", admin.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	quiz := decodeQuiz(t, w)
	require.NotNil(t, quiz.CurrentQuestion)

	question := quiz.CurrentQuestion
	answerPath := fmt.Sprintf("/api/quizzes/%s/questions/%s/answer", admin.ID, question.ID)

	t.Run("missing choice_id", func(t *testing.T) {
		w := performRequest(router, http.MethodPut, answerPath, player.Token, gin.H{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown choice", func(t *testing.T) {
		w := performRequest(router, http.MethodPut, answerPath, player.Token, gin.H{"choice_id": "unknown"})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("unknown question", func(t *testing.T) {
		path := fmt.Sprintf("/api/quizzes/%s/questions/unknown/answer", admin.ID)
		w := performRequest(router, http.MethodPut, path, player.Token, gin.H{"choice_id": question.Choices[0].ID})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("duplicate answer", func(t *testing.T) {
		body := gin.H{"choice_id": question.Choices[0].ID}

		w := performRequest(router, http.MethodPut, answerPath, player.Token, body)
		require.Equal(t, http.StatusOK, w.Code)

		w = performRequest(router, http.MethodPut, answerPath, player.Token, body)
		assert.Equal(t, http.StatusConflict, w.Code, "Повторный ответ того же участника отклоняется")
	})
}
