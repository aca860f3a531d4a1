package result

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/rehan/quizly/internal/router"
	"github.com/rehan/quizly/internal/screen"
)

type stubScreen struct{ name string }

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.name }
func (s *stubScreen) Title() string                           { return s.name }

func newTestResult(score, answered, target int) *ResultScreen {
	return New(score, answered, target,
		func() screen.Screen { return &stubScreen{name: "home"} },
		func() screen.Screen { return &stubScreen{name: "again"} })
}

func TestPercent(t *testing.T) {
	tests := []struct {
		score, answered, target int
		want                    int
	}{
		{10, 10, 10, 100},
		{9, 10, 10, 90},
		{3, 4, 4, 75},
		{0, 10, 10, 0},
		{0, 0, 0, 0},
		// Bank ran out after 3 of 5: still scored against the target.
		{3, 3, 5, 60},
	}
	for _, tt := range tests {
		r := newTestResult(tt.score, tt.answered, tt.target)
		if got := r.Percent(); got != tt.want {
			t.Errorf("Percent(%d of %d) = %d, want %d", tt.score, tt.target, got, tt.want)
		}
	}
}

func TestMessageBands(t *testing.T) {
	tests := []struct {
		score, answered int
		wantSubstr      string
	}{
		{10, 10, "Outstanding"},
		{9, 10, "Outstanding"},
		{8, 10, "Great job"},
		{3, 4, "Great job"},
		{6, 10, "Good effort"},
		{4, 10, "Not bad"},
		{3, 10, "Keep studying"},
		{0, 10, "Keep studying"},
		{0, 0, "Keep studying"},
	}
	for _, tt := range tests {
		r := newTestResult(tt.score, tt.answered, tt.answered)
		if got := r.Message(); !strings.Contains(got, tt.wantSubstr) {
			t.Errorf("Message(%d/%d) = %q, want substring %q", tt.score, tt.answered, got, tt.wantSubstr)
		}
	}
}

func TestShortenedSessionNote(t *testing.T) {
	r := newTestResult(2, 3, 5)
	view := r.View(100, 40)
	if !strings.Contains(view, "ran out of questions") {
		t.Error("expected a note when fewer questions were answered than targeted")
	}
}

func TestMenuNavigation(t *testing.T) {
	r := newTestResult(5, 10, 10)

	// First item is PLAY AGAIN.
	_, cmd := r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from enter")
	}
	msg := cmd()
	replace, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if replace.Screen.Title() != "again" {
		t.Errorf("first item leads to %q, want again", replace.Screen.Title())
	}
}
