package service

import (
	"context"
	"encoding/json"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/example/qa-board/internal/models"
	"github.com/example/qa-board/internal/repository"
)

// memStore is an in-memory stand-in for the persistence gateway, applying
// the same per-document semantics as the Mongo-backed repositories.
type memStore struct {
	questions []models.Question
	answers   map[bson.ObjectID]models.Answer
	tags      []models.Tag

	failUpserts bool
}

func newMemStore() *memStore {
	return &memStore{answers: make(map[bson.ObjectID]models.Answer)}
}

func (s *memStore) find(qid string) (int, error) {
	oid, err := bson.ObjectIDFromHex(qid)
	if err != nil {
		return 0, repository.ErrInvalidID
	}
	for i := range s.questions {
		if s.questions[i].ID == oid {
			return i, nil
		}
	}
	return 0, repository.ErrNotFound
}

func (s *memStore) LoadAll(ctx context.Context, withAnswers bool) []models.Question {
	out := make([]models.Question, len(s.questions))
	copy(out, s.questions)
	byID := make(map[bson.ObjectID]models.Tag, len(s.tags))
	for _, t := range s.tags {
		byID[t.ID] = t
	}
	for i := range out {
		resolved := make([]models.Tag, 0, len(out[i].TagIDs))
		for _, id := range out[i].TagIDs {
			if t, ok := byID[id]; ok {
				resolved = append(resolved, t)
			}
		}
		out[i].Tags = resolved
	}
	if withAnswers {
		for i := range out {
			resolved := make([]models.Answer, 0, len(out[i].AnswerIDs))
			for _, id := range out[i].AnswerIDs {
				if a, ok := s.answers[id]; ok {
					resolved = append(resolved, a)
				}
			}
			out[i].Answers = resolved
		}
	}
	return out
}

func (s *memStore) IncrementViewAndFetch(ctx context.Context, qid string) (models.Question, error) {
	i, err := s.find(qid)
	if err != nil {
		return models.Question{}, err
	}
	s.questions[i].Views++
	return s.questions[i], nil
}

func (s *memStore) Create(ctx context.Context, q models.Question) (models.Question, error) {
	q.ID = bson.NewObjectID()
	if q.UpVotes == nil {
		q.UpVotes = []string{}
	}
	if q.DownVotes == nil {
		q.DownVotes = []string{}
	}
	s.questions = append(s.questions, q)
	return q, nil
}

func (s *memStore) AttachAnswer(ctx context.Context, qid string, answerID bson.ObjectID) (models.Question, error) {
	i, err := s.find(qid)
	if err != nil {
		return models.Question{}, err
	}
	s.questions[i].AnswerIDs = append([]bson.ObjectID{answerID}, s.questions[i].AnswerIDs...)
	return s.questions[i], nil
}

func (s *memStore) ToggleVote(ctx context.Context, qid, username string, kind models.VoteKind) (models.Question, error) {
	i, err := s.find(qid)
	if err != nil {
		return models.Question{}, err
	}
	q := &s.questions[i]
	q.UpVotes, q.DownVotes = models.ApplyVote(q.UpVotes, q.DownVotes, username, kind)
	return *q, nil
}

func (s *memStore) Resolve(ctx context.Context, tags []models.Tag) ([]models.Tag, error) {
	if s.failUpserts {
		return nil, errors.New("upsert failed")
	}
	resolved := make([]models.Tag, 0, len(tags))
	for _, t := range tags {
		found := false
		for _, existing := range s.tags {
			if existing.Name == t.Name {
				resolved = append(resolved, existing)
				found = true
				break
			}
		}
		if !found {
			t.ID = bson.NewObjectID()
			s.tags = append(s.tags, t)
			resolved = append(resolved, t)
		}
	}
	return resolved, nil
}

func (s *memStore) UsageCounts(ctx context.Context) (map[string]int, error) {
	if len(s.tags) == 0 {
		return nil, repository.ErrNoTags
	}
	counts := make(map[string]int, len(s.tags))
	byID := make(map[bson.ObjectID]string, len(s.tags))
	for _, t := range s.tags {
		counts[t.Name] = 0
		byID[t.ID] = t.Name
	}
	for _, q := range s.questions {
		for _, id := range q.TagIDs {
			if name, ok := byID[id]; ok {
				counts[name]++
			}
		}
	}
	return counts, nil
}

func (s *memStore) CreateAnswer(ctx context.Context, a models.Answer) (models.Answer, error) {
	a.ID = bson.NewObjectID()
	s.answers[a.ID] = a
	return a, nil
}

// answerStore adapts memStore to the AnswerStore interface, whose Create
// collides with the question Create.
type answerStore struct{ *memStore }

func (s answerStore) Create(ctx context.Context, a models.Answer) (models.Answer, error) {
	return s.CreateAnswer(ctx, a)
}

// memCache records cache traffic for assertions.
type memCache struct {
	data    map[string][]byte
	deleted []string
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string][]byte)}
}

func (c *memCache) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dest)
}

func (c *memCache) SetJSON(ctx context.Context, key string, value interface{}) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = b
	return nil
}

func (c *memCache) Del(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.data, k)
		c.deleted = append(c.deleted, k)
	}
	return nil
}
