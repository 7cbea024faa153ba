// Package search parses search strings and filters question lists. All
// functions are pure: they never mutate their input and never fail —
// malformed input degrades to "match nothing" or "match all".
package search

import (
	"regexp"
	"strings"

	"github.com/ledongthuc/goterators"

	"github.com/example/qa-board/internal/models"
)

var (
	tagToken = regexp.MustCompile(`\[([^\]]+)\]`)
	wordRun  = regexp.MustCompile(`[0-9A-Za-z_]+`)
)

// ParseTags extracts every bracketed [name] token from the search string,
// order-preserving. Duplicates are kept; matching treats the result as a set.
func ParseTags(search string) []string {
	matches := tagToken.FindAllStringSubmatch(search, -1)
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tags = append(tags, m[1])
	}
	return tags
}

// ParseKeywords strips all bracketed tokens and splits the remaining text
// into alphanumeric word runs.
func ParseKeywords(search string) []string {
	return wordRun.FindAllString(tagToken.ReplaceAllString(search, " "), -1)
}

func hasTag(q models.Question, tags []string) bool {
	for _, name := range tags {
		for _, t := range q.Tags {
			if t.Name == name {
				return true
			}
		}
	}
	return false
}

func hasKeyword(q models.Question, keywords []string) bool {
	for _, w := range keywords {
		if strings.Contains(q.Title, w) || strings.Contains(q.Text, w) {
			return true
		}
	}
	return false
}

// FilterBySearch keeps questions matching the search string, preserving
// order. An empty search matches everything; with only tags a question needs
// one matching tag; with only keywords a case-sensitive substring hit in
// title or text; with both, either suffices.
func FilterBySearch(questions []models.Question, searchString string) []models.Question {
	if len(questions) == 0 {
		return []models.Question{}
	}

	tags := ParseTags(searchString)
	keywords := ParseKeywords(searchString)

	return goterators.Filter(questions, func(q models.Question) bool {
		switch {
		case len(keywords) == 0 && len(tags) == 0:
			return true
		case len(keywords) == 0:
			return hasTag(q, tags)
		case len(tags) == 0:
			return hasKeyword(q, keywords)
		default:
			return hasKeyword(q, keywords) || hasTag(q, tags)
		}
	})
}

// FilterByAskedBy keeps questions asked by the given user, preserving order.
// An empty author matches nothing.
func FilterByAskedBy(questions []models.Question, askedBy string) []models.Question {
	if askedBy == "" {
		return []models.Question{}
	}
	return goterators.Filter(questions, func(q models.Question) bool {
		return q.AskedBy == askedBy
	})
}
