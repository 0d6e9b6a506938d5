package helper

import (
	"github.com/yourusername/quiz-session-api/internal/domain/entity"
)

// ChoiceOption представляет вариант ответа для фронтенда
type ChoiceOption struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// ConvertChoices преобразует варианты ответа в формат для клиента.
// Признак правильности в ответ не попадает: клиент не должен видеть
// правильный вариант до завершения викторины.
func ConvertChoices(choices []entity.QuestionChoice) []ChoiceOption {
	converted := make([]ChoiceOption, len(choices))
	for i, choice := range choices {
		converted[i] = ChoiceOption{ID: choice.ID, Text: choice.Text}
	}
	return converted
}
