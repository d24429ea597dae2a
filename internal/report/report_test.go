package report

import (
	"strings"
	"testing"
	"time"

	"github.com/berth-dev/quiz/internal/log"
)

var t0 = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func at(sec int) time.Time {
	return t0.Add(time.Duration(sec) * time.Second)
}

func TestBuildGroupsRunsAndRestarts(t *testing.T) {
	events := []log.LogEvent{
		{Time: at(0), Event: log.EventQuizStarted, Run: "a", Bank: "genetics.json", Total: 2},
		{Time: at(3), Event: log.EventAnswerRecorded, Run: "a", Question: 1, Option: 2, Correct: true},
		{Time: at(0), Event: log.EventQuizStarted, Run: "b", Bank: "capitals.yaml", Total: 1},
		{Time: at(20), Event: log.EventAnswerRecorded, Run: "a", Question: 2, TimedOut: true},
		{Time: at(22), Event: log.EventQuizCompleted, Run: "a", Score: 1, Total: 2},
		{Time: at(30), Event: log.EventQuizRestarted, Run: "a"},
		{Time: at(33), Event: log.EventAnswerRecorded, Run: "a", Question: 1, Option: 2, Correct: true},
	}

	r := Build(events)

	if len(r.Attempts) != 3 {
		t.Fatalf("got %d attempts, want 3: %+v", len(r.Attempts), r.Attempts)
	}

	first := r.Attempts[0]
	if !first.Completed || first.Score != 1 || first.Total != 2 || first.Answered != 2 || first.TimedOut != 1 {
		t.Errorf("first attempt = %+v", first)
	}
	if first.Duration() != 22*time.Second {
		t.Errorf("Duration = %v, want 22s", first.Duration())
	}

	if r.Attempts[1].Bank != "capitals.yaml" || r.Attempts[1].Completed {
		t.Errorf("second attempt = %+v, want open capitals attempt", r.Attempts[1])
	}

	restarted := r.Attempts[2]
	if restarted.Bank != "genetics.json" || restarted.Total != 2 || restarted.Answered != 1 || restarted.Completed {
		t.Errorf("restarted attempt = %+v", restarted)
	}
	if r.Completed() != 1 {
		t.Errorf("Completed = %d, want 1", r.Completed())
	}
}

func TestBuildIgnoresOrphanEvents(t *testing.T) {
	r := Build([]log.LogEvent{
		{Event: log.EventAnswerRecorded, Run: "x"},
		{Event: log.EventQuizRestarted, Run: "x"},
		{Event: log.EventQuizCompleted, Run: "x", Score: 1, Total: 1},
	})
	if len(r.Attempts) != 0 {
		t.Errorf("got %+v, want no attempts", r.Attempts)
	}
}

func TestBestPrefersHigherRatio(t *testing.T) {
	r := &Report{Attempts: []Attempt{
		{Bank: "a", Score: 3, Total: 5, Completed: true},
		{Bank: "b", Score: 2, Total: 2, Completed: true},
		{Bank: "c", Score: 0, Total: 0, Completed: true},
		{Bank: "d", Score: 9, Total: 9},
	}}

	best, ok := r.Best()
	if !ok || best.Bank != "b" {
		t.Errorf("Best = %+v, %v; want bank b", best, ok)
	}
}

func TestFormatReportEmpty(t *testing.T) {
	out := FormatReport(&Report{}, 0)
	if !strings.Contains(out, "No quizzes played yet.") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestFormatReportLimit(t *testing.T) {
	r := &Report{Attempts: []Attempt{
		{Bank: "old.json", Started: at(0), Finished: at(5), Score: 1, Total: 1, Completed: true},
		{Bank: "new.json", Started: at(100), Finished: at(190), Score: 2, Total: 3, TimedOut: 1, Completed: true},
		{Bank: "open.json", Started: at(200), Answered: 2},
	}}

	out := FormatReport(r, 2)

	if strings.Contains(out, "old.json  ") {
		t.Errorf("limit should hide the oldest attempt:\n%s", out)
	}
	for _, want := range []string{"2/3", "(1 timed out)", "1m 30s", "abandoned after 2 answers", "Attempts:    3 (2 completed)", "Best score:  1/1 on old.json"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Millisecond, "< 1s"},
		{42 * time.Second, "42s"},
		{5*time.Minute + 32*time.Second, "5m 32s"},
		{time.Hour + 12*time.Minute + 5*time.Second, "1h 12m 5s"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
