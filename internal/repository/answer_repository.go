package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/example/qa-board/internal/db"
	"github.com/example/qa-board/internal/models"
)

type AnswerRepository struct {
	answers *mongo.Collection
}

func NewAnswerRepository(database *db.Database) *AnswerRepository {
	return &AnswerRepository{answers: database.Collection("Answer")}
}

func (r *AnswerRepository) Create(ctx context.Context, a models.Answer) (models.Answer, error) {
	res, err := r.answers.InsertOne(ctx, a)
	if err != nil {
		return models.Answer{}, fmt.Errorf("insert answer: %w", err)
	}
	a.ID = res.InsertedID.(bson.ObjectID)
	return a, nil
}

// ByIDs returns the answers for the given ids keyed by id.
func (r *AnswerRepository) ByIDs(ctx context.Context, ids []bson.ObjectID) (map[bson.ObjectID]models.Answer, error) {
	byID := make(map[bson.ObjectID]models.Answer, len(ids))
	if len(ids) == 0 {
		return byID, nil
	}
	cur, err := r.answers.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("find answers: %w", err)
	}
	var answers []models.Answer
	if err := cur.All(ctx, &answers); err != nil {
		return nil, fmt.Errorf("decode answers: %w", err)
	}
	for _, a := range answers {
		byID[a.ID] = a
	}
	return byID, nil
}
