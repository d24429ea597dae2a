package bank

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultBankIsValid(t *testing.T) {
	b, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	if b.Title != "Genetics and Evolution Quiz" {
		t.Errorf("Title = %q, want %q", b.Title, "Genetics and Evolution Quiz")
	}
	if len(b.Questions) != 5 {
		t.Errorf("len(Questions) = %d, want 5", len(b.Questions))
	}
}

func TestParseJSON(t *testing.T) {
	data := []byte(`{"questions":[{"description":"2+2?","options":[{"description":"3","is_correct":false},{"description":"4","is_correct":true}]}]}`)

	b, err := Parse(data, FormatJSON)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(b.Questions) != 1 {
		t.Fatalf("len(Questions) = %d, want 1", len(b.Questions))
	}
	if got := b.Questions[0].Correct(); got != 1 {
		t.Errorf("Correct() = %d, want 1", got)
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte(`title: Arithmetic
questions:
  - description: "2+2?"
    options:
      - description: "3"
      - description: "4"
        is_correct: true
`)

	b, err := Parse(data, FormatYAML)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if b.Title != "Arithmetic" {
		t.Errorf("Title = %q, want %q", b.Title, "Arithmetic")
	}
	if b.Questions[0].Options[0].IsCorrect {
		t.Error("option 1 should default to incorrect")
	}
}

func TestParseEmptyBankIsValid(t *testing.T) {
	b, err := Parse([]byte(`{"questions":[]}`), FormatJSON)
	if err != nil {
		t.Fatalf("Parse failed on empty bank: %v", err)
	}
	if len(b.Questions) != 0 {
		t.Errorf("len(Questions) = %d, want 0", len(b.Questions))
	}
}

func TestParseRejectsMalformedQuestions(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{
			name: "no options",
			data: `{"questions":[{"description":"q","options":[]}]}`,
			want: ErrNoOptions,
		},
		{
			name: "no correct option",
			data: `{"questions":[{"description":"q","options":[{"description":"a"},{"description":"b"}]}]}`,
			want: ErrNoCorrectOption,
		},
		{
			name: "two correct options",
			data: `{"questions":[{"description":"q","options":[{"description":"a","is_correct":true},{"description":"b","is_correct":true}]}]}`,
			want: ErrMultipleCorrect,
		},
		{
			name: "empty description",
			data: `{"questions":[{"description":"  ","options":[{"description":"a","is_correct":true}]}]}`,
			want: ErrEmptyDescription,
		},
		{
			name: "empty option",
			data: `{"questions":[{"description":"q","options":[{"description":"","is_correct":true}]}]}`,
			want: ErrEmptyOption,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), FormatJSON)
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestValidateReportsQuestionNumber(t *testing.T) {
	b := &Bank{Questions: []Question{
		{Description: "ok", Options: []Option{{Description: "a", IsCorrect: true}}},
		{Description: "broken"},
	}}

	err := b.Validate()
	if err == nil {
		t.Fatal("Validate should fail")
	}
	if got, want := err.Error(), "question 2: question has no options"; got != want {
		t.Errorf("error = %q, want %q", got, want)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bank.yml")
	content := "questions:\n  - description: q\n    options:\n      - description: a\n        is_correct: true\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing bank: %v", err)
	}

	b, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(b.Questions) != 1 {
		t.Errorf("len(Questions) = %d, want 1", len(b.Questions))
	}
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	b, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if len(b.Questions) == 0 {
		t.Error("default bank should not be empty")
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	_, err := Load("questions.txt")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Load error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load error = %v, want os.ErrNotExist", err)
	}
}

func TestEncodeRoundTripsThroughParse(t *testing.T) {
	b, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}

	data, err := b.Encode(FormatYAML)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	back, err := Parse(data, FormatYAML)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(back.Questions) != len(b.Questions) {
		t.Errorf("len(Questions) = %d, want %d", len(back.Questions), len(b.Questions))
	}
}
