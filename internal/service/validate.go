package service

import (
	"errors"
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/example/qa-board/internal/models"
)

// ValidationError marks a missing or malformed required field; handlers map
// it to HTTP 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationErrorf(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

const (
	maxTitleLen   = 100
	maxTagNameLen = 20
	maxTags       = 5
)

var (
	anyHyperlink   = regexp.MustCompile(`\[([^\]]*)\]\(([^)]*)\)`)
	validHyperlink = regexp.MustCompile(`\[[^\]]+\]\(https://[^)]+\)`)
)

// validHyperlinks accepts text whose every [label](target) occurrence has a
// non-empty label and an https:// target. Text without links passes.
func validHyperlinks(text string) bool {
	for _, link := range anyHyperlink.FindAllString(text, -1) {
		if !validHyperlink.MatchString(link) {
			return false
		}
	}
	return true
}

func validateNewQuestion(in NewQuestion) error {
	if in.Title == "" {
		return validationErrorf("title cannot be empty")
	}
	if utf8.RuneCountInString(in.Title) > maxTitleLen {
		return validationErrorf("title cannot be more than %d characters", maxTitleLen)
	}
	if in.Text == "" {
		return validationErrorf("question text cannot be empty")
	}
	if !validHyperlinks(in.Text) {
		return validationErrorf("invalid hyperlink format")
	}
	if len(in.Tags) == 0 {
		return validationErrorf("should have at least 1 tag")
	}
	if len(in.Tags) > maxTags {
		return validationErrorf("cannot have more than %d tags", maxTags)
	}
	for _, t := range in.Tags {
		if t.Name == "" {
			return validationErrorf("tag name cannot be empty")
		}
		if utf8.RuneCountInString(t.Name) > maxTagNameLen {
			return validationErrorf("tag name cannot be more than %d characters", maxTagNameLen)
		}
	}
	if in.AskedBy == "" {
		return validationErrorf("username cannot be empty")
	}
	if in.AskDateTime.IsZero() {
		return validationErrorf("ask date time is required")
	}
	return nil
}

func validateAnswer(a models.Answer) error {
	if a.Text == "" {
		return validationErrorf("answer text cannot be empty")
	}
	if a.AnsBy == "" {
		return validationErrorf("answer author cannot be empty")
	}
	if a.AnsDateTime.IsZero() {
		return validationErrorf("answer date time is required")
	}
	return nil
}
