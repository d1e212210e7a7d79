package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyTopic is returned when a presentation or plan has no topic.
	ErrEmptyTopic = errors.New("topic cannot be empty")

	// ErrEmptySectionTitle is returned when a planned section has no title.
	ErrEmptySectionTitle = errors.New("section title cannot be empty")

	// ErrEmptySlideTitle is returned when a slide has no title.
	ErrEmptySlideTitle = errors.New("slide title cannot be empty")

	// ErrTooManyBulletPoints is returned when a slide carries more bullet
	// points than the layout supports.
	ErrTooManyBulletPoints = errors.New("slide has too many bullet points")

	// ErrInvalidDomain is returned when a domain tag is not recognized.
	ErrInvalidDomain = errors.New("invalid domain tag")

	// ErrInvalidAudience is returned when an audience tag is not recognized.
	ErrInvalidAudience = errors.New("invalid audience tag")

	// ErrInvalidVisualHint is returned when a section suggests an unknown
	// visual element.
	ErrInvalidVisualHint = errors.New("invalid visual hint")
)
