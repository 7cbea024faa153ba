package service

import (
	"context"
	"fmt"

	"github.com/example/qa-board/internal/models"
)

type AnswerService struct {
	answers   AnswerStore
	questions QuestionStore
}

func NewAnswerService(answers AnswerStore, questions QuestionStore) *AnswerService {
	return &AnswerService{answers: answers, questions: questions}
}

// Add validates and stores the answer, then associates it with the question
// as the newest entry in the question's answer list.
func (s *AnswerService) Add(ctx context.Context, qid string, a models.Answer) (models.Answer, error) {
	if err := validateAnswer(a); err != nil {
		return models.Answer{}, err
	}

	saved, err := s.answers.Create(ctx, a)
	if err != nil {
		return models.Answer{}, err
	}

	if _, err := s.questions.AttachAnswer(ctx, qid, saved.ID); err != nil {
		return models.Answer{}, fmt.Errorf("attach answer to question: %w", err)
	}
	return saved, nil
}
