package service

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/example/qa-board/internal/models"
)

// Store interfaces cover exactly the gateway operations the services use,
// implemented by the repository package and by in-memory fakes in tests.

type QuestionStore interface {
	LoadAll(ctx context.Context, withAnswers bool) []models.Question
	IncrementViewAndFetch(ctx context.Context, qid string) (models.Question, error)
	Create(ctx context.Context, q models.Question) (models.Question, error)
	AttachAnswer(ctx context.Context, qid string, answerID bson.ObjectID) (models.Question, error)
	ToggleVote(ctx context.Context, qid, username string, kind models.VoteKind) (models.Question, error)
}

type TagStore interface {
	Resolve(ctx context.Context, tags []models.Tag) ([]models.Tag, error)
	UsageCounts(ctx context.Context) (map[string]int, error)
}

type AnswerStore interface {
	Create(ctx context.Context, a models.Answer) (models.Answer, error)
}

type Cache interface {
	GetJSON(ctx context.Context, key string, dest interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, value interface{}) error
	Del(ctx context.Context, keys ...string) error
}
