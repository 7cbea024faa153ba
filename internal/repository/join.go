package repository

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/example/qa-board/internal/models"
)

// JoinTags resolves each question's tag references against the loaded tag
// documents, preserving reference order. Dangling references are skipped.
func JoinTags(questions []models.Question, tags map[bson.ObjectID]models.Tag) {
	for i := range questions {
		resolved := make([]models.Tag, 0, len(questions[i].TagIDs))
		for _, id := range questions[i].TagIDs {
			if t, ok := tags[id]; ok {
				resolved = append(resolved, t)
			}
		}
		questions[i].Tags = resolved
	}
}

// JoinAnswers resolves each question's answer references, preserving the
// stored newest-first order.
func JoinAnswers(questions []models.Question, answers map[bson.ObjectID]models.Answer) {
	for i := range questions {
		resolved := make([]models.Answer, 0, len(questions[i].AnswerIDs))
		for _, id := range questions[i].AnswerIDs {
			if a, ok := answers[id]; ok {
				resolved = append(resolved, a)
			}
		}
		questions[i].Answers = resolved
	}
}
