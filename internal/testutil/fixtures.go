// Package testutil provides test helper utilities for quiz tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/berth-dev/quiz/internal/bank"
)

// TempProject creates a temporary directory with the given files and returns its path.
// Files is a map of relative path -> content. Directories are created as needed.
// The directory is automatically cleaned up when the test finishes.
func TempProject(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()

	for relPath, content := range files {
		absPath := filepath.Join(dir, relPath)
		if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
			t.Fatalf("creating directory for %s: %v", relPath, err)
		}
		if err := os.WriteFile(absPath, []byte(content), 0644); err != nil {
			t.Fatalf("writing %s: %v", relPath, err)
		}
	}

	return dir
}

// TwoPlusTwo returns the single-question arithmetic bank: option 2 is correct.
func TwoPlusTwo() []bank.Question {
	return []bank.Question{{
		Description: "2+2?",
		Options: []bank.Option{
			{Description: "3", IsCorrect: false},
			{Description: "4", IsCorrect: true},
		},
	}}
}

// Arithmetic returns a two-question bank; the correct options are 2 and 1.
func Arithmetic() []bank.Question {
	return append(TwoPlusTwo(), bank.Question{
		Description: "3+3?",
		Options: []bank.Option{
			{Description: "6", IsCorrect: true},
			{Description: "7", IsCorrect: false},
		},
	})
}

// ArithmeticJSON returns Arithmetic encoded as a bank file.
func ArithmeticJSON() string {
	return `{
  "title": "Arithmetic",
  "questions": [
    {"description": "2+2?", "options": [{"description": "3", "is_correct": false}, {"description": "4", "is_correct": true}]},
    {"description": "3+3?", "options": [{"description": "6", "is_correct": true}, {"description": "7", "is_correct": false}]}
  ]
}`
}

// BrokenJSON returns a bank whose only question has no correct option.
func BrokenJSON() string {
	return `{"questions": [{"description": "q", "options": [{"description": "a"}, {"description": "b"}]}]}`
}
