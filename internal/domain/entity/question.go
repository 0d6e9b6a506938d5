package entity

import "github.com/google/uuid"

// Константы статусов вопроса
const (
	QuestionStatusNotAsked   = "NOT_ASKED"
	QuestionStatusInProgress = "IN_PROGRESS"
	QuestionStatusFinished   = "FINISHED"
)

// QuestionChoice представляет вариант ответа на вопрос.
// Задается при создании викторины и далее не изменяется.
type QuestionChoice struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"-"` // Скрыто от клиента
}

// QuestionAnswer представляет ответ участника на вопрос.
// Создается ровно один раз на пару (вопрос, участник) и далее не изменяется.
type QuestionAnswer struct {
	ID     string         `json:"id"`
	UserID string         `json:"user_id"`
	Choice QuestionChoice `json:"choice"`
}

// Question представляет вопрос в викторине
type Question struct {
	ID      string           `json:"id"`
	Status  string           `json:"status"`
	Text    string           `json:"text"`
	Choices []QuestionChoice `json:"choices"`
	Answers []QuestionAnswer `json:"answers,omitempty"`
}

// IsCurrent проверяет, является ли вопрос текущим (задан и еще не закрыт)
func (q *Question) IsCurrent() bool {
	return q.Status == QuestionStatusInProgress
}

// ChoiceByID возвращает вариант ответа по его ID или nil, если такого варианта нет
func (q *Question) ChoiceByID(choiceID string) *QuestionChoice {
	for i := range q.Choices {
		if q.Choices[i].ID == choiceID {
			return &q.Choices[i]
		}
	}
	return nil
}

// HasAnswerFrom проверяет, ответил ли участник на этот вопрос
func (q *Question) HasAnswerFrom(userID string) bool {
	for i := range q.Answers {
		if q.Answers[i].UserID == userID {
			return true
		}
	}
	return false
}

// Clone возвращает глубокую копию вопроса.
// Слайсы вариантов и ответов копируются, чтобы копия не разделяла память с оригиналом.
func (q *Question) Clone() Question {
	clone := *q
	clone.Choices = make([]QuestionChoice, len(q.Choices))
	copy(clone.Choices, q.Choices)
	clone.Answers = make([]QuestionAnswer, len(q.Answers))
	copy(clone.Answers, q.Answers)
	return clone
}

// CopyQuestionTemplate создает независимую копию шаблона вопросов для новой викторины.
// Каждый вопрос и вариант получают свежие ID, статус сбрасывается в NOT_ASKED,
// список ответов пустой. Две викторины никогда не разделяют объекты вопросов.
func CopyQuestionTemplate(template []Question) []Question {
	questions := make([]Question, len(template))
	for i := range template {
		q := template[i].Clone()
		q.ID = uuid.NewString()
		q.Status = QuestionStatusNotAsked
		q.Answers = nil
		for j := range q.Choices {
			q.Choices[j].ID = uuid.NewString()
		}
		questions[i] = q
	}
	return questions
}
