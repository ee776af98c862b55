package domain

import "errors"

var (
	// ErrTopicNotFound is returned when a topic id has no matching row.
	ErrTopicNotFound = errors.New("topic not found")

	// ErrTopicExists is returned when creating a topic whose name is taken.
	ErrTopicExists = errors.New("topic already exists")
)
