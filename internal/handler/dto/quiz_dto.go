package dto

import (
	"github.com/yourusername/quiz-session-api/internal/domain/entity"
	"github.com/yourusername/quiz-session-api/internal/handler/helper"
)

// PlayerResponse представляет участника в формате для ответа клиенту
type PlayerResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// QuestionResponse представляет текущий вопрос в формате для ответа клиенту.
// Ответы других участников и признак правильности вариантов не раскрываются.
type QuestionResponse struct {
	ID      string                `json:"id"`
	Status  string                `json:"status"`
	Text    string                `json:"text"`
	Choices []helper.ChoiceOption `json:"choices"`
}

// QuizResponse представляет снимок викторины для опроса клиентом.
// CurrentQuestion присутствует только пока викторина в статусе IN_PROGRESS.
type QuizResponse struct {
	ID              string            `json:"id"`
	JoinCode        string            `json:"join_code"`
	Status          string            `json:"status"`
	Players         []PlayerResponse  `json:"players"`
	CurrentQuestion *QuestionResponse `json:"current_question,omitempty"`
}

// QuizJoinedResponse возвращается при создании викторины или присоединении:
// краткий снимок викторины, созданный участник и его токен сессии.
type QuizJoinedResponse struct {
	ID       string         `json:"id"`
	JoinCode string         `json:"join_code"`
	Status   string         `json:"status"`
	User     PlayerResponse `json:"user"`
	Token    string         `json:"token"`
}

// NewPlayerResponse создает DTO для участника
func NewPlayerResponse(user *entity.User) PlayerResponse {
	return PlayerResponse{
		ID:   user.ID,
		Name: user.Name,
		Role: user.Role,
	}
}

// NewQuestionResponse создает DTO для вопроса
func NewQuestionResponse(q *entity.Question) *QuestionResponse {
	if q == nil {
		return nil
	}
	return &QuestionResponse{
		ID:      q.ID,
		Status:  q.Status,
		Text:    q.Text,
		Choices: helper.ConvertChoices(q.Choices),
	}
}

// NewQuizResponse создает DTO для викторины
func NewQuizResponse(quiz *entity.Quiz) *QuizResponse {
	if quiz == nil {
		return nil
	}

	players := make([]PlayerResponse, len(quiz.Players))
	for i := range quiz.Players {
		players[i] = NewPlayerResponse(&quiz.Players[i])
	}

	resp := &QuizResponse{
		ID:       quiz.ID,
		JoinCode: quiz.JoinCode,
		Status:   quiz.Status,
		Players:  players,
	}
	if quiz.IsActive() {
		resp.CurrentQuestion = NewQuestionResponse(quiz.CurrentQuestion())
	}
	return resp
}

// NewQuizJoinedResponse создает DTO для ответа на создание/присоединение
func NewQuizJoinedResponse(quiz *entity.Quiz, user *entity.User, token string) *QuizJoinedResponse {
	return &QuizJoinedResponse{
		ID:       quiz.ID,
		JoinCode: quiz.JoinCode,
		Status:   quiz.Status,
		User:     NewPlayerResponse(user),
		Token:    token,
	}
}
