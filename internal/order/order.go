// Package order sorts question lists for the browse views. All sorts are
// non-destructive: the input slice is copied before ordering.
package order

import (
	"sort"

	"github.com/ledongthuc/goterators"

	"github.com/example/qa-board/internal/models"
)

// Kind identifies one of the supported question orderings.
type Kind string

const (
	Newest     Kind = "newest"
	Unanswered Kind = "unanswered"
	Active     Kind = "active"
	MostViewed Kind = "mostViewed"
)

// ParseKind maps an order identifier to a Kind. Unknown identifiers default
// to Newest.
func ParseKind(s string) Kind {
	switch Kind(s) {
	case Unanswered, Active, MostViewed:
		return Kind(s)
	default:
		return Newest
	}
}

// NeedsAnswers reports whether the ordering requires populated answer
// documents, not just answer references.
func (k Kind) NeedsAnswers() bool {
	return k == Active
}

// Sort returns the questions arranged by this kind.
func (k Kind) Sort(questions []models.Question) []models.Question {
	switch k {
	case Unanswered:
		return SortUnanswered(questions)
	case Active:
		return SortActive(questions)
	case MostViewed:
		return SortMostViewed(questions)
	default:
		return SortNewest(questions)
	}
}

func clone(questions []models.Question) []models.Question {
	out := make([]models.Question, len(questions))
	copy(out, questions)
	return out
}

// SortNewest orders descending by ask date, stable on the input order.
func SortNewest(questions []models.Question) []models.Question {
	out := clone(questions)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AskDateTime.After(out[j].AskDateTime)
	})
	return out
}

// SortUnanswered is SortNewest restricted to questions with no answers.
func SortUnanswered(questions []models.Question) []models.Question {
	return goterators.Filter(SortNewest(questions), func(q models.Question) bool {
		return len(q.AnswerIDs) == 0 && len(q.Answers) == 0
	})
}

// SortActive orders by recency of the most recent answer: questions whose
// latest answer is newer rank first, and questions with no answers rank
// after every question that has one, keeping their newest-first order.
func SortActive(questions []models.Question) []models.Question {
	out := SortNewest(questions)
	sort.SliceStable(out, func(i, j int) bool {
		ti, iok := out[i].LatestAnswerTime()
		tj, jok := out[j].LatestAnswerTime()
		if !iok {
			return false
		}
		if !jok {
			return true
		}
		return ti.After(tj)
	})
	return out
}

// SortMostViewed orders descending by view count. Equal view counts keep
// the input order, not newest-first.
func SortMostViewed(questions []models.Question) []models.Question {
	out := clone(questions)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Views > out[j].Views
	})
	return out
}
