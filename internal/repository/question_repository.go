package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/example/qa-board/internal/db"
	"github.com/example/qa-board/internal/models"
)

// QuestionRepository is the persistence gateway for questions. Every
// operation is atomic at the single-document level; there are no
// cross-document transactions.
type QuestionRepository struct {
	questions *mongo.Collection
	tags      *TagRepository
	answers   *AnswerRepository
}

func NewQuestionRepository(database *db.Database, tags *TagRepository, answers *AnswerRepository) *QuestionRepository {
	return &QuestionRepository{
		questions: database.Collection("Question"),
		tags:      tags,
		answers:   answers,
	}
}

// normalize replaces nil slices so documents always serialize with arrays,
// never null.
func normalize(q *models.Question) {
	if q.TagIDs == nil {
		q.TagIDs = []bson.ObjectID{}
	}
	if q.AnswerIDs == nil {
		q.AnswerIDs = []bson.ObjectID{}
	}
	if q.UpVotes == nil {
		q.UpVotes = []string{}
	}
	if q.DownVotes == nil {
		q.DownVotes = []string{}
	}
	if q.Tags == nil {
		q.Tags = []models.Tag{}
	}
	if q.Answers == nil {
		q.Answers = []models.Answer{}
	}
}

// LoadAll returns every question with tags populated, and answers populated
// too when withAnswers is set. It fails closed: any storage error is logged
// and surfaces to the caller as an empty list.
func (r *QuestionRepository) LoadAll(ctx context.Context, withAnswers bool) []models.Question {
	questions, err := r.loadAll(ctx, withAnswers)
	if err != nil {
		logrus.WithError(err).Warn("loading questions failed, returning empty list")
		return []models.Question{}
	}
	return questions
}

func (r *QuestionRepository) loadAll(ctx context.Context, withAnswers bool) ([]models.Question, error) {
	cur, err := r.questions.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find questions: %w", err)
	}
	var questions []models.Question
	if err := cur.All(ctx, &questions); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}

	tagsByID, err := r.tags.All(ctx)
	if err != nil {
		return nil, err
	}
	JoinTags(questions, tagsByID)

	if withAnswers {
		var ids []bson.ObjectID
		for _, q := range questions {
			ids = append(ids, q.AnswerIDs...)
		}
		answersByID, err := r.answers.ByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		JoinAnswers(questions, answersByID)
	}

	for i := range questions {
		normalize(&questions[i])
	}
	return questions, nil
}

// IncrementViewAndFetch atomically bumps the view count and returns the
// post-increment document with answers populated.
func (r *QuestionRepository) IncrementViewAndFetch(ctx context.Context, qid string) (models.Question, error) {
	oid, err := bson.ObjectIDFromHex(qid)
	if err != nil {
		return models.Question{}, ErrInvalidID
	}

	var q models.Question
	err = r.questions.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$inc": bson.M{"views": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&q)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Question{}, ErrNotFound
	}
	if err != nil {
		return models.Question{}, fmt.Errorf("increment views: %w", err)
	}

	answersByID, err := r.answers.ByIDs(ctx, q.AnswerIDs)
	if err != nil {
		return models.Question{}, err
	}
	qs := []models.Question{q}
	JoinAnswers(qs, answersByID)
	normalize(&qs[0])
	return qs[0], nil
}

func (r *QuestionRepository) Create(ctx context.Context, q models.Question) (models.Question, error) {
	normalize(&q)
	res, err := r.questions.InsertOne(ctx, q)
	if err != nil {
		return models.Question{}, fmt.Errorf("insert question: %w", err)
	}
	q.ID = res.InsertedID.(bson.ObjectID)
	return q, nil
}

// AttachAnswer prepends the answer reference to the question's answer list,
// keeping answers newest-first. No duplicate check is performed.
func (r *QuestionRepository) AttachAnswer(ctx context.Context, qid string, answerID bson.ObjectID) (models.Question, error) {
	oid, err := bson.ObjectIDFromHex(qid)
	if err != nil {
		return models.Question{}, ErrInvalidID
	}

	var q models.Question
	err = r.questions.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$push": bson.M{"answers": bson.M{"$each": bson.A{answerID}, "$position": 0}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&q)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Question{}, ErrNotFound
	}
	if err != nil {
		return models.Question{}, fmt.Errorf("attach answer: %w", err)
	}
	normalize(&q)
	return q, nil
}

// ifNull guards vote arrays that predate the voting fields.
func ifNull(field string) bson.D {
	return bson.D{{Key: "$ifNull", Value: bson.A{field, bson.A{}}}}
}

// toggleVotePipeline flips the user's membership in the target set and
// removes them from the opposite set in one $set stage, so the document
// never transiently holds the user in both sets.
func toggleVotePipeline(target, opposite, username string) mongo.Pipeline {
	targetRef, oppositeRef := "$"+target, "$"+opposite
	return mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.D{
			{Key: target, Value: bson.D{{Key: "$cond", Value: bson.A{
				bson.D{{Key: "$in", Value: bson.A{username, ifNull(targetRef)}}},
				bson.D{{Key: "$setDifference", Value: bson.A{ifNull(targetRef), bson.A{username}}}},
				bson.D{{Key: "$concatArrays", Value: bson.A{ifNull(targetRef), bson.A{username}}}},
			}}}},
			{Key: opposite, Value: bson.D{{Key: "$setDifference", Value: bson.A{ifNull(oppositeRef), bson.A{username}}}}},
		}}},
	}
}

// ToggleVote runs one vote transition for (question, user) as a single
// atomic update and returns the post-update document. Two users toggling
// concurrently are safe; the same user toggling twice concurrently races
// and the last write wins.
func (r *QuestionRepository) ToggleVote(ctx context.Context, qid, username string, kind models.VoteKind) (models.Question, error) {
	oid, err := bson.ObjectIDFromHex(qid)
	if err != nil {
		return models.Question{}, ErrInvalidID
	}

	target, opposite := "up_votes", "down_votes"
	if kind == models.Downvote {
		target, opposite = "down_votes", "up_votes"
	}

	var q models.Question
	err = r.questions.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		toggleVotePipeline(target, opposite, username),
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&q)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Question{}, ErrNotFound
	}
	if err != nil {
		return models.Question{}, fmt.Errorf("toggle %s: %w", kind, err)
	}
	normalize(&q)
	return q, nil
}
