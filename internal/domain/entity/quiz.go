package entity

// Константы статусов викторины
const (
	QuizStatusInitialized = "INITIALIZED"
	QuizStatusInProgress  = "IN_PROGRESS"
	QuizStatusFinished    = "FINISHED"
)

// Quiz представляет сессию викторины.
// Порядок players соответствует порядку присоединения (players[0] — всегда ADMIN),
// порядок questions фиксируется при создании и никогда не меняется.
type Quiz struct {
	ID        string     `json:"id"`
	JoinCode  string     `json:"join_code"`
	Status    string     `json:"status"`
	Players   []User     `json:"players"`
	Questions []Question `json:"questions,omitempty"`
}

// IsInitialized проверяет, что викторина создана, но еще не запущена
func (q *Quiz) IsInitialized() bool {
	return q.Status == QuizStatusInitialized
}

// IsActive проверяет, идет ли викторина
func (q *Quiz) IsActive() bool {
	return q.Status == QuizStatusInProgress
}

// IsFinished проверяет, завершена ли викторина
func (q *Quiz) IsFinished() bool {
	return q.Status == QuizStatusFinished
}

// Player возвращает участника викторины по ID или nil, если его нет в списке
func (q *Quiz) Player(userID string) *User {
	for i := range q.Players {
		if q.Players[i].ID == userID {
			return &q.Players[i]
		}
	}
	return nil
}

// HasPlayerNamed проверяет, занято ли имя участника в этой викторине.
// Сравнение чувствительно к регистру.
func (q *Quiz) HasPlayerNamed(name string) bool {
	for i := range q.Players {
		if q.Players[i].Name == name {
			return true
		}
	}
	return false
}

// QuestionIndex возвращает позицию вопроса в викторине или -1, если вопрос не найден
func (q *Quiz) QuestionIndex(questionID string) int {
	for i := range q.Questions {
		if q.Questions[i].ID == questionID {
			return i
		}
	}
	return -1
}

// CurrentQuestion возвращает текущий вопрос (статус IN_PROGRESS) или nil.
// По инварианту викторины таких вопросов не бывает больше одного.
func (q *Quiz) CurrentQuestion() *Question {
	for i := range q.Questions {
		if q.Questions[i].IsCurrent() {
			return &q.Questions[i]
		}
	}
	return nil
}

// Clone возвращает глубокую копию викторины.
// Хранилище отдает наружу только копии, чтобы вызывающий код
// не мог изменить каноническое состояние в обход хранилища.
func (q *Quiz) Clone() *Quiz {
	clone := *q
	clone.Players = make([]User, len(q.Players))
	copy(clone.Players, q.Players)
	clone.Questions = make([]Question, len(q.Questions))
	for i := range q.Questions {
		clone.Questions[i] = q.Questions[i].Clone()
	}
	return &clone
}
