package service

import (
	"strings"
	"testing"
	"time"

	"github.com/example/qa-board/internal/models"
)

func validQuestion() NewQuestion {
	return NewQuestion{
		Title:       "Programmatically navigate using React router",
		Text:        "How do I pass the index value of the clicked list item?",
		Tags:        []models.Tag{{Name: "react"}, {Name: "javascript"}},
		AskedBy:     "Joji John",
		AskDateTime: time.Now(),
	}
}

func TestValidateNewQuestionAccepts(t *testing.T) {
	if err := validateNewQuestion(validQuestion()); err != nil {
		t.Fatalf("valid question rejected: %v", err)
	}
}

func TestValidateNewQuestionRejects(t *testing.T) {
	cases := map[string]func(*NewQuestion){
		"empty title":     func(q *NewQuestion) { q.Title = "" },
		"title too long":  func(q *NewQuestion) { q.Title = strings.Repeat("x", 101) },
		"empty text":      func(q *NewQuestion) { q.Text = "" },
		"no tags":         func(q *NewQuestion) { q.Tags = nil },
		"empty tag name":  func(q *NewQuestion) { q.Tags = []models.Tag{{Name: ""}} },
		"tag name too long": func(q *NewQuestion) {
			q.Tags = []models.Tag{{Name: strings.Repeat("t", 21)}}
		},
		"six tags": func(q *NewQuestion) {
			q.Tags = []models.Tag{
				{Name: "a"}, {Name: "b"}, {Name: "c"},
				{Name: "d"}, {Name: "e"}, {Name: "f"},
			}
		},
		"missing author": func(q *NewQuestion) { q.AskedBy = "" },
		"missing date":   func(q *NewQuestion) { q.AskDateTime = time.Time{} },
		"bad hyperlink":  func(q *NewQuestion) { q.Text = "see [link](ftp://example.com)" },
		"empty link label": func(q *NewQuestion) {
			q.Text = "see [](https://example.com)"
		},
	}
	for name, mutate := range cases {
		q := validQuestion()
		mutate(&q)
		err := validateNewQuestion(q)
		if err == nil {
			t.Errorf("%s: expected validation error", name)
			continue
		}
		if !IsValidation(err) {
			t.Errorf("%s: expected ValidationError, got %T", name, err)
		}
	}
}

func TestValidateNewQuestionBoundary(t *testing.T) {
	q := validQuestion()
	q.Title = strings.Repeat("x", 100)
	if err := validateNewQuestion(q); err != nil {
		t.Errorf("100-char title must pass: %v", err)
	}

	q = validQuestion()
	q.Tags = []models.Tag{
		{Name: "a"}, {Name: "b"}, {Name: "c"}, {Name: "d"}, {Name: "e"},
	}
	if err := validateNewQuestion(q); err != nil {
		t.Errorf("five tags must pass: %v", err)
	}
	q.Tags[0].Name = strings.Repeat("t", 20)
	if err := validateNewQuestion(q); err != nil {
		t.Errorf("20-char tag name must pass: %v", err)
	}
}

// Length limits count characters, not bytes.
func TestValidateNewQuestionCountsRunes(t *testing.T) {
	q := validQuestion()
	q.Title = strings.Repeat("ä", 100)
	if err := validateNewQuestion(q); err != nil {
		t.Errorf("100-rune multibyte title must pass: %v", err)
	}
	q.Title = strings.Repeat("ä", 101)
	if err := validateNewQuestion(q); !IsValidation(err) {
		t.Errorf("101-rune title must fail validation, got %v", err)
	}

	q = validQuestion()
	q.Tags = []models.Tag{{Name: strings.Repeat("ü", 20)}}
	if err := validateNewQuestion(q); err != nil {
		t.Errorf("20-rune multibyte tag name must pass: %v", err)
	}
	q.Tags = []models.Tag{{Name: strings.Repeat("ü", 21)}}
	if err := validateNewQuestion(q); !IsValidation(err) {
		t.Errorf("21-rune tag name must fail validation, got %v", err)
	}
}

func TestValidHyperlinks(t *testing.T) {
	cases := map[string]bool{
		"no links at all":                          true,
		"see [docs](https://example.com)":          true,
		"[a](https://x) and [b](https://y)":        true,
		"bare [brackets] are fine":                 true,
		"see [docs](http://example.com)":           false,
		"see [](https://example.com)":              false,
		"see [docs]()":                             false,
		"[ok](https://x) then [bad](javascript:1)": false,
	}
	for text, want := range cases {
		if got := validHyperlinks(text); got != want {
			t.Errorf("validHyperlinks(%q) = %v, want %v", text, got, want)
		}
	}
}

func TestValidateAnswer(t *testing.T) {
	good := models.Answer{Text: "an answer", AnsBy: "hamkalo", AnsDateTime: time.Now()}
	if err := validateAnswer(good); err != nil {
		t.Fatalf("valid answer rejected: %v", err)
	}

	cases := map[string]models.Answer{
		"missing text":   {AnsBy: "hamkalo", AnsDateTime: time.Now()},
		"missing author": {Text: "an answer", AnsDateTime: time.Now()},
		"missing date":   {Text: "an answer", AnsBy: "hamkalo"},
	}
	for name, a := range cases {
		err := validateAnswer(a)
		if err == nil || !IsValidation(err) {
			t.Errorf("%s: expected ValidationError, got %v", name, err)
		}
	}
}
