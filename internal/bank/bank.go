// Package bank loads and validates the static question bank.
package bank

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors. Load wraps them with the 1-based question number.
var (
	ErrEmptyDescription  = errors.New("question has no description")
	ErrNoOptions         = errors.New("question has no options")
	ErrEmptyOption       = errors.New("option has no description")
	ErrNoCorrectOption   = errors.New("question has no correct option")
	ErrMultipleCorrect   = errors.New("question has more than one correct option")
	ErrUnsupportedFormat = errors.New("unsupported bank format")
)

// Option is one selectable answer of a question.
type Option struct {
	Description string `json:"description" yaml:"description"`
	IsCorrect   bool   `json:"is_correct" yaml:"is_correct"`
}

// Question is a prompt with an ordered list of options.
type Question struct {
	Description string   `json:"description" yaml:"description"`
	Options     []Option `json:"options" yaml:"options"`
}

// Bank is the root of a question bank file.
type Bank struct {
	Title     string     `json:"title,omitempty" yaml:"title,omitempty"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// Correct returns the index of the correct option, or -1 if there is none.
func (q Question) Correct() int {
	for i, o := range q.Options {
		if o.IsCorrect {
			return i
		}
	}
	return -1
}

// Validate checks that the question has a description and exactly one
// correct option among non-empty options.
func (q Question) Validate() error {
	if strings.TrimSpace(q.Description) == "" {
		return ErrEmptyDescription
	}
	if len(q.Options) == 0 {
		return ErrNoOptions
	}

	correct := 0
	for i, o := range q.Options {
		if strings.TrimSpace(o.Description) == "" {
			return fmt.Errorf("option %d: %w", i+1, ErrEmptyOption)
		}
		if o.IsCorrect {
			correct++
		}
	}

	switch {
	case correct == 0:
		return ErrNoCorrectOption
	case correct > 1:
		return ErrMultipleCorrect
	}
	return nil
}

// Validate checks every question in order and reports the first failure.
// An empty bank is valid.
func (b *Bank) Validate() error {
	for i, q := range b.Questions {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	return nil
}
