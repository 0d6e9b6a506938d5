package service

import (
	"github.com/yourusername/quiz-session-api/internal/domain/entity"
)

// DefaultQuestionTemplate возвращает фиксированный набор вопросов, которым
// засеивается каждая новая викторина. ID вопросам и вариантам не нужны:
// entity.CopyQuestionTemplate присваивает свежие ID при создании викторины,
// поэтому две викторины никогда не разделяют идентификаторы вопросов.
func DefaultQuestionTemplate() []entity.Question {
	return []entity.Question{
		{
			Status: entity.QuestionStatusNotAsked,
			Text:   "Какая планета Солнечной системы самая большая?",
			Choices: []entity.QuestionChoice{
				{Text: "Сатурн"},
				{Text: "Юпитер", IsCorrect: true},
				{Text: "Нептун"},
				{Text: "Земля"},
			},
		},
		{
			Status: entity.QuestionStatusNotAsked,
			Text:   "В каком году состоялся первый полет человека в космос?",
			Choices: []entity.QuestionChoice{
				{Text: "1957"},
				{Text: "1969"},
				{Text: "1961", IsCorrect: true},
				{Text: "1963"},
			},
		},
		{
			Status: entity.QuestionStatusNotAsked,
			Text:   "Какой элемент обозначается символом Au?",
			Choices: []entity.QuestionChoice{
				{Text: "Серебро"},
				{Text: "Алюминий"},
				{Text: "Медь"},
				{Text: "Золото", IsCorrect: true},
			},
		},
	}
}
