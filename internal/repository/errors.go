package repository

import "errors"

var (
	// ErrInvalidID means the supplied id is not a well-formed ObjectID.
	ErrInvalidID = errors.New("invalid id format")

	// ErrNotFound means the id is well-formed but no document matches it.
	ErrNotFound = errors.New("not found")

	// ErrNoTags distinguishes "the tag collection is empty" from both a
	// populated result and a storage failure.
	ErrNoTags = errors.New("no tags exist")
)
