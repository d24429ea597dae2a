// Package log provides structured event logging.
// This file appends JSON events to .quiz/log.jsonl through zap.
package log

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Event type constants.
const (
	EventQuizStarted    = "quiz_started"
	EventAnswerRecorded = "answer_recorded"
	EventQuizCompleted  = "quiz_completed"
	EventQuizRestarted  = "quiz_restarted"
)

// LogEvent is a single decoded line of the log file.
type LogEvent struct {
	Time     time.Time `json:"time"`
	Event    string    `json:"event"`
	Run      string    `json:"run"`
	Bank     string    `json:"bank,omitempty"`
	Question int       `json:"question,omitempty"`
	Option   int       `json:"option,omitempty"`
	Correct  bool      `json:"correct,omitempty"`
	TimedOut bool      `json:"timed_out,omitempty"`
	Score    int       `json:"score,omitempty"`
	Total    int       `json:"total,omitempty"`
}

// Logger writes append-only JSONL events to a log file.
// A nil *Logger discards everything.
type Logger struct {
	path string
	run  string
	file *os.File
	zap  *zap.Logger
}

// NewLogger creates a Logger that writes to .quiz/log.jsonl inside dir.
// Creates the .quiz/ directory if it does not already exist.
// Does not truncate an existing log file. Every event carries a fresh run id.
func NewLogger(dir string) (*Logger, error) {
	quizDir := filepath.Join(dir, ".quiz")
	if err := os.MkdirAll(quizDir, 0755); err != nil {
		return nil, fmt.Errorf("create .quiz directory: %w", err)
	}

	path := filepath.Join(quizDir, "log.jsonl")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:        "time",
		MessageKey:     "event",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
	}
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(f), zapcore.InfoLevel)
	run := uuid.New().String()

	return &Logger{
		path: path,
		run:  run,
		file: f,
		zap:  zap.New(core).With(zap.String("run", run)),
	}, nil
}

// Path returns the log file location.
func (l *Logger) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Run returns the id stamped on every event of this logger.
func (l *Logger) Run() string {
	if l == nil {
		return ""
	}
	return l.run
}

// Started records the beginning of a quiz over total questions.
func (l *Logger) Started(bankName string, total int) {
	l.write(EventQuizStarted, zap.String("bank", bankName), zap.Int("total", total))
}

// Answer records an answer; question is zero based in the state machine
// and stored one based.
func (l *Logger) Answer(question, option int, correct, timedOut bool) {
	fields := []zap.Field{
		zap.Int("question", question+1),
		zap.Bool("correct", correct),
		zap.Bool("timed_out", timedOut),
	}
	if !timedOut {
		fields = append(fields, zap.Int("option", option+1))
	}
	l.write(EventAnswerRecorded, fields...)
}

// Completed records the final score.
func (l *Logger) Completed(score, total int) {
	l.write(EventQuizCompleted, zap.Int("score", score), zap.Int("total", total))
}

// Restarted records a restart.
func (l *Logger) Restarted() {
	l.write(EventQuizRestarted)
}

func (l *Logger) write(event string, fields ...zap.Field) {
	if l == nil {
		return
	}
	l.zap.Info(event, fields...)
}

// Close flushes and closes the log file.
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	_ = l.zap.Sync()
	return l.file.Close()
}

// ReadAll reads and parses all events from the log file.
// Returns an empty slice (not an error) if the file does not exist.
func (l *Logger) ReadAll() ([]LogEvent, error) {
	return ReadFile(l.Path())
}

// ReadFile parses the JSONL log at path.
func ReadFile(path string) ([]LogEvent, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []LogEvent{}, nil
		}
		return nil, fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	var events []LogEvent
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var event LogEvent
		if err := json.Unmarshal(line, &event); err != nil {
			return nil, fmt.Errorf("parse log line %d: %w", lineNum, err)
		}
		events = append(events, event)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log file: %w", err)
	}

	return events, nil
}
