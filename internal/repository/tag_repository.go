package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/example/qa-board/internal/db"
	"github.com/example/qa-board/internal/models"
)

type TagRepository struct {
	tags      *mongo.Collection
	questions *mongo.Collection
}

func NewTagRepository(database *db.Database) *TagRepository {
	return &TagRepository{
		tags:      database.Collection("Tag"),
		questions: database.Collection("Question"),
	}
}

// Upsert returns the existing tag with the given name, inserting one first
// if none exists. The read-then-write is not transactional: two concurrent
// upserts of a new name can leave duplicates behind, an accepted limitation.
func (r *TagRepository) Upsert(ctx context.Context, tag models.Tag) (models.Tag, error) {
	if tag.Name == "" {
		return models.Tag{}, fmt.Errorf("upsert tag: empty name")
	}

	var existing models.Tag
	err := r.tags.FindOne(ctx, bson.M{"name": tag.Name}).Decode(&existing)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return models.Tag{}, fmt.Errorf("find tag %q: %w", tag.Name, err)
	}

	res, err := r.tags.InsertOne(ctx, tag)
	if err != nil {
		return models.Tag{}, fmt.Errorf("insert tag %q: %w", tag.Name, err)
	}
	tag.ID = res.InsertedID.(bson.ObjectID)
	return tag, nil
}

// Resolve upserts every input tag, preserving input order. One failed
// upsert fails the whole call.
func (r *TagRepository) Resolve(ctx context.Context, tags []models.Tag) ([]models.Tag, error) {
	resolved := make([]models.Tag, 0, len(tags))
	for _, t := range tags {
		saved, err := r.Upsert(ctx, t)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, saved)
	}
	return resolved, nil
}

// All returns every tag keyed by id.
func (r *TagRepository) All(ctx context.Context) (map[bson.ObjectID]models.Tag, error) {
	cur, err := r.tags.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find tags: %w", err)
	}
	var tags []models.Tag
	if err := cur.All(ctx, &tags); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}
	byID := make(map[bson.ObjectID]models.Tag, len(tags))
	for _, t := range tags {
		byID[t.ID] = t
	}
	return byID, nil
}

// UsageCounts maps every known tag name to the number of questions
// referencing it, zero-initialized so unused tags still appear. Returns
// ErrNoTags when the tag collection is empty.
func (r *TagRepository) UsageCounts(ctx context.Context) (map[string]int, error) {
	tags, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	if len(tags) == 0 {
		return nil, ErrNoTags
	}

	counts := make(map[string]int, len(tags))
	for _, t := range tags {
		counts[t.Name] = 0
	}

	cur, err := r.questions.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find questions: %w", err)
	}
	var questions []models.Question
	if err := cur.All(ctx, &questions); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}
	for _, q := range questions {
		for _, id := range q.TagIDs {
			if t, ok := tags[id]; ok {
				counts[t.Name]++
			}
		}
	}
	return counts, nil
}
