package quiz

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/rehan/quizly/internal/engine"
	quizbank "github.com/rehan/quizly/internal/quiz"
	"github.com/rehan/quizly/internal/router"
	"github.com/rehan/quizly/internal/screen"
	"github.com/rehan/quizly/internal/selector"
	"github.com/rehan/quizly/internal/store"
)

type memHistory struct {
	recs map[string]store.SessionRecordData
}

func (h *memHistory) Upsert(_ context.Context, rec store.SessionRecordData) error {
	h.recs[rec.SessionID] = rec
	return nil
}

func (h *memHistory) ByUser(_ context.Context, user string) ([]store.SessionRecordData, error) {
	var out []store.SessionRecordData
	for _, rec := range h.recs {
		if rec.User == user {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (h *memHistory) Get(_ context.Context, sessionID string) (*store.SessionRecordData, error) {
	rec, ok := h.recs[sessionID]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

type memProgress struct {
	snaps map[string]store.SnapshotData
}

func (p *memProgress) Save(_ context.Context, user string, snap store.SnapshotData) error {
	snap.Version = store.SnapshotVersion
	p.snaps[user] = snap
	return nil
}

func (p *memProgress) Load(_ context.Context, user string) (*store.SnapshotData, error) {
	snap, ok := p.snaps[user]
	if !ok {
		return nil, nil
	}
	return &snap, nil
}

func (p *memProgress) Clear(_ context.Context, user string) error {
	delete(p.snaps, user)
	return nil
}

type memSettings struct {
	vals map[string]string
}

func (s *memSettings) Get(_ context.Context, key string) (string, error) { return s.vals[key], nil }
func (s *memSettings) Set(_ context.Context, key, value string) error {
	s.vals[key] = value
	return nil
}
func (s *memSettings) Delete(_ context.Context, key string) error {
	delete(s.vals, key)
	return nil
}

func newTestMachine(target int) *engine.Machine {
	bank := quizbank.NewBank([]quizbank.Question{
		{ID: "q1", Topic: "geo", Difficulty: quizbank.DifficultyMedium, Prompt: "Q1?", Options: []string{"a", "b"}, Answer: "a", Explanation: "Because a."},
		{ID: "q2", Topic: "geo", Difficulty: quizbank.DifficultyMedium, Prompt: "Q2?", Options: []string{"a", "b"}, Answer: "a"},
		{ID: "q3", Topic: "geo", Difficulty: quizbank.DifficultyEasy, Prompt: "Q3?", Options: []string{"a", "b"}, Answer: "a"},
		{ID: "q4", Topic: "geo", Difficulty: quizbank.DifficultyHard, Prompt: "Q4?", Options: []string{"a", "b"}, Answer: "a"},
	})
	return engine.New(engine.Config{
		Bank:     bank,
		User:     "tester",
		Target:   target,
		History:  &memHistory{recs: make(map[string]store.SessionRecordData)},
		Progress: &memProgress{snaps: make(map[string]store.SnapshotData)},
		Settings: &memSettings{vals: make(map[string]string)},
		Selector: selector.NewWithRand(rand.New(rand.NewSource(1))),
		Clock:    func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) },
	})
}

func resultSpy() (ResultFactory, *int) {
	calls := 0
	return func(score, answered, target int) screen.Screen {
		calls++
		return &stubResult{}
	}, &calls
}

type stubResult struct{}

func (s *stubResult) Init() tea.Cmd                           { return nil }
func (s *stubResult) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubResult) View(int, int) string                    { return "result" }
func (s *stubResult) Title() string                           { return "Results" }

// drive runs the Init command and feeds the resulting message back in.
func drive(t *testing.T, s *Screen, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	return cmd()
}

func TestStartPresentsQuestion(t *testing.T) {
	factory, _ := resultSpy()
	s := New(newTestMachine(2), false, factory)

	msg := drive(t, s, s.Init())
	next, _ := s.Update(msg)
	s = next.(*Screen)

	if s.loading {
		t.Error("screen still loading after start")
	}
	view := s.View(100, 40)
	if !strings.Contains(view, "Question 1 of 2") {
		t.Errorf("view missing question counter:\n%s", view)
	}
}

func TestAnswerFlowToFeedbackAndAdvance(t *testing.T) {
	factory, _ := resultSpy()
	s := New(newTestMachine(2), false, factory)

	next, _ := s.Update(drive(t, s, s.Init()))
	s = next.(*Screen)

	// Submit the selected option.
	next, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = next.(*Screen)
	next, _ = s.Update(drive(t, s, cmd))
	s = next.(*Screen)

	if !s.showingFeedback {
		t.Fatal("expected feedback after submit")
	}
	view := s.View(100, 40)
	if !strings.Contains(view, "press any key to continue") {
		t.Error("feedback view missing continue hint")
	}

	// Any key advances to the next question.
	next, cmd = s.Update(tea.KeyPressMsg{Code: ' '})
	s = next.(*Screen)
	next, _ = s.Update(drive(t, s, cmd))
	s = next.(*Screen)

	if s.showingFeedback {
		t.Error("feedback should clear after advancing")
	}
	if got := s.machine.Index(); got != 1 {
		t.Errorf("answered = %d, want 1", got)
	}
}

func TestFinishReplacesWithResult(t *testing.T) {
	factory, calls := resultSpy()
	s := New(newTestMachine(1), false, factory)

	next, _ := s.Update(drive(t, s, s.Init()))
	s = next.(*Screen)

	next, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = next.(*Screen)
	next, _ = s.Update(drive(t, s, cmd))
	s = next.(*Screen)

	next, cmd = s.Update(tea.KeyPressMsg{Code: ' '})
	s = next.(*Screen)
	msg := drive(t, s, cmd)
	next, cmd = s.Update(msg)
	s = next.(*Screen)

	if cmd == nil {
		t.Fatal("expected replace command after final question")
	}
	replace, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if replace.Screen.Title() != "Results" {
		t.Errorf("replaced with %q, want Results", replace.Screen.Title())
	}
	if *calls == 0 {
		t.Error("result factory never called")
	}
}

func TestEscSuspendsThenPops(t *testing.T) {
	factory, _ := resultSpy()
	s := New(newTestMachine(2), false, factory)

	next, _ := s.Update(drive(t, s, s.Init()))
	s = next.(*Screen)

	cmd := s.HandleEsc()
	if cmd == nil {
		t.Fatal("expected suspend command from esc")
	}
	msg := cmd()
	if _, ok := msg.(suspendedMsg); !ok {
		t.Fatalf("expected suspendedMsg, got %T", msg)
	}

	next, cmd = s.Update(msg)
	s = next.(*Screen)
	if cmd == nil {
		t.Fatal("expected pop command after suspend")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatalf("expected PopScreenMsg, got %T", cmd())
	}
}
