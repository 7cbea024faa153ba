package service

import (
	"context"
	"fmt"
	"time"

	"github.com/example/qa-board/internal/models"
	"github.com/example/qa-board/internal/order"
	"github.com/example/qa-board/internal/search"
)

const tagCountsCacheKey = "tag:counts"

type QuestionService struct {
	questions QuestionStore
	tags      TagStore
	cache     Cache
}

func NewQuestionService(questions QuestionStore, tags TagStore, cache Cache) *QuestionService {
	return &QuestionService{questions: questions, tags: tags, cache: cache}
}

// NewQuestion is the submission payload for a question. Tags arrive as
// names (with optional descriptions) and are resolved to stored tags on
// create.
type NewQuestion struct {
	Title       string
	Text        string
	Tags        []models.Tag
	AskedBy     string
	AskDateTime time.Time
}

// VoteResult is the response body for a vote toggle.
type VoteResult struct {
	Msg       string   `json:"msg"`
	UpVotes   []string `json:"up_votes"`
	DownVotes []string `json:"down_votes"`
}

// List returns questions arranged by the given order identifier and
// filtered by the search string. Storage errors fail closed to an empty
// list, so this never errors.
func (s *QuestionService) List(ctx context.Context, orderKey, searchString string) []models.Question {
	kind := order.ParseKind(orderKey)
	questions := s.questions.LoadAll(ctx, kind.NeedsAnswers())
	return search.FilterBySearch(kind.Sort(questions), searchString)
}

// GetByID fetches a question by id, counting the fetch as one view.
func (s *QuestionService) GetByID(ctx context.Context, qid string) (models.Question, error) {
	return s.questions.IncrementViewAndFetch(ctx, qid)
}

// Create validates the submission, resolves its tags (creating missing
// ones), and stores the question.
func (s *QuestionService) Create(ctx context.Context, in NewQuestion) (models.Question, error) {
	if err := validateNewQuestion(in); err != nil {
		return models.Question{}, err
	}

	resolved, err := s.tags.Resolve(ctx, in.Tags)
	if err != nil {
		return models.Question{}, fmt.Errorf("resolve tags: %w", err)
	}

	q := models.Question{
		Title:       in.Title,
		Text:        in.Text,
		AskedBy:     in.AskedBy,
		AskDateTime: in.AskDateTime,
	}
	for _, t := range resolved {
		q.TagIDs = append(q.TagIDs, t.ID)
	}

	created, err := s.questions.Create(ctx, q)
	if err != nil {
		return models.Question{}, err
	}
	created.Tags = resolved

	// Tag usage changed; drop the cached counts.
	_ = s.cache.Del(ctx, tagCountsCacheKey)

	return created, nil
}

// Vote toggles the user's vote on a question. Voting again cancels, voting
// the opposite way switches sides.
func (s *QuestionService) Vote(ctx context.Context, qid, username string, kind models.VoteKind) (VoteResult, error) {
	q, err := s.questions.ToggleVote(ctx, qid, username, kind)
	if err != nil {
		return VoteResult{}, err
	}

	voted := false
	set := q.UpVotes
	if kind == models.Downvote {
		set = q.DownVotes
	}
	for _, u := range set {
		if u == username {
			voted = true
			break
		}
	}

	var msg string
	switch {
	case kind == models.Upvote && voted:
		msg = "Question upvoted successfully"
	case kind == models.Upvote:
		msg = "Upvote cancelled successfully"
	case voted:
		msg = "Question downvoted successfully"
	default:
		msg = "Downvote cancelled successfully"
	}

	return VoteResult{Msg: msg, UpVotes: q.UpVotes, DownVotes: q.DownVotes}, nil
}
