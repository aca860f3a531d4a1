package engine

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/rehan/quizly/internal/quiz"
	"github.com/rehan/quizly/internal/selector"
	"github.com/rehan/quizly/internal/store"
)

type memHistory struct {
	recs  map[string]store.SessionRecordData
	order []string
}

func newMemHistory() *memHistory {
	return &memHistory{recs: make(map[string]store.SessionRecordData)}
}

func (h *memHistory) Upsert(_ context.Context, rec store.SessionRecordData) error {
	if _, ok := h.recs[rec.SessionID]; !ok {
		h.order = append(h.order, rec.SessionID)
	}
	h.recs[rec.SessionID] = rec
	return nil
}

func (h *memHistory) ByUser(_ context.Context, user string) ([]store.SessionRecordData, error) {
	var out []store.SessionRecordData
	for _, id := range h.order {
		if h.recs[id].User == user {
			out = append(out, h.recs[id])
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

func newMemProgress() *memProgress {
	return &memProgress{snaps: make(map[string]store.SnapshotData)}
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

func newMemSettings() *memSettings {
	return &memSettings{vals: make(map[string]string)}
}

func (s *memSettings) Get(_ context.Context, key string) (string, error) {
	return s.vals[key], nil
}

func (s *memSettings) Set(_ context.Context, key, value string) error {
	s.vals[key] = value
	return nil
}

func (s *memSettings) Delete(_ context.Context, key string) error {
	delete(s.vals, key)
	return nil
}

func testBank() *quiz.Bank {
	return quiz.NewBank([]quiz.Question{
		{ID: "e1", Topic: "geo", Difficulty: quiz.DifficultyEasy, Prompt: "E1?", Options: []string{"a", "b"}, Answer: "a"},
		{ID: "e2", Topic: "sci", Difficulty: quiz.DifficultyEasy, Prompt: "E2?", Options: []string{"a", "b"}, Answer: "a"},
		{ID: "m1", Topic: "geo", Difficulty: quiz.DifficultyMedium, Prompt: "M1?", Options: []string{"a", "b"}, Answer: "a"},
		{ID: "m2", Topic: "sci", Difficulty: quiz.DifficultyMedium, Prompt: "M2?", Options: []string{"a", "b"}, Answer: "a"},
		{ID: "h1", Topic: "geo", Difficulty: quiz.DifficultyHard, Prompt: "H1?", Options: []string{"a", "b"}, Answer: "a"},
		{ID: "h2", Topic: "sci", Difficulty: quiz.DifficultyHard, Prompt: "H2?", Options: []string{"a", "b"}, Answer: "a"},
	})
}

type fixture struct {
	history  *memHistory
	progress *memProgress
	settings *memSettings
}

func newFixture() *fixture {
	return &fixture{
		history:  newMemHistory(),
		progress: newMemProgress(),
		settings: newMemSettings(),
	}
}

func (f *fixture) machine(bank *quiz.Bank, target int, seed int64) *Machine {
	return New(Config{
		Bank:     bank,
		User:     "tester",
		Target:   target,
		History:  f.history,
		Progress: f.progress,
		Settings: f.settings,
		Selector: selector.NewWithRand(rand.New(rand.NewSource(seed))),
		Clock:    func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) },
	})
}

func TestFullSessionAllCorrect(t *testing.T) {
	f := newFixture()
	m := f.machine(testBank(), 4, 1)
	ctx := context.Background()

	if err := m.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if m.Phase() != PhaseAwaitingAnswer {
		t.Fatalf("Phase after Start = %v, want awaiting", m.Phase())
	}
	if got := f.settings.vals[store.SettingActiveSession]; got != m.SessionID() {
		t.Errorf("active session = %q, want %q", got, m.SessionID())
	}

	for m.Phase() != PhaseFinished {
		q := m.Current()
		if q == nil {
			t.Fatal("Current() = nil while session active")
		}
		if err := m.Submit(ctx, q.Answer); err != nil {
			t.Fatalf("Submit() error = %v", err)
		}
		if m.Phase() != PhaseSubmitted {
			t.Fatalf("Phase after Submit = %v, want submitted", m.Phase())
		}
		if err := m.Advance(ctx); err != nil {
			t.Fatalf("Advance() error = %v", err)
		}
	}

	if m.Score() != 4 || m.Index() != 4 {
		t.Errorf("score = %d index = %d, want 4 and 4", m.Score(), m.Index())
	}

	rec, _ := f.history.Get(ctx, m.SessionID())
	if rec == nil {
		t.Fatal("history record missing after finish")
	}
	if !rec.Completed || rec.Score != 4 || rec.CurrentIndex != 4 || len(rec.Attempts) != 4 {
		t.Errorf("record = %+v, want completed score=4 index=4 with 4 attempts", rec)
	}
	if _, ok := f.progress.snaps["tester"]; ok {
		t.Error("snapshot not cleared after finish")
	}
	if got := f.settings.vals[store.SettingActiveSession]; got != "" {
		t.Errorf("active session pointer = %q after finish, want cleared", got)
	}
}

func TestSubmitEmptySelectionIsNoOp(t *testing.T) {
	f := newFixture()
	m := f.machine(testBank(), 3, 1)
	ctx := context.Background()

	if err := m.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	before := m.Current().ID

	if err := m.Submit(ctx, ""); err != nil {
		t.Fatalf("Submit(empty) error = %v", err)
	}
	if m.Phase() != PhaseAwaitingAnswer {
		t.Errorf("Phase after empty submit = %v, want awaiting", m.Phase())
	}
	if m.Current().ID != before || m.Index() != 0 {
		t.Errorf("empty submit changed state: current=%s index=%d", m.Current().ID, m.Index())
	}
}

func TestWrongPhaseTransitions(t *testing.T) {
	f := newFixture()
	m := f.machine(testBank(), 3, 1)
	ctx := context.Background()

	if err := m.Submit(ctx, "a"); !errors.Is(err, ErrWrongPhase) {
		t.Errorf("Submit before Start = %v, want ErrWrongPhase", err)
	}
	if err := m.Advance(ctx); !errors.Is(err, ErrWrongPhase) {
		t.Errorf("Advance before Start = %v, want ErrWrongPhase", err)
	}

	if err := m.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := m.Advance(ctx); !errors.Is(err, ErrWrongPhase) {
		t.Errorf("Advance while awaiting = %v, want ErrWrongPhase", err)
	}
	if err := m.Start(ctx); !errors.Is(err, ErrWrongPhase) {
		t.Errorf("second Start = %v, want ErrWrongPhase", err)
	}
}

func TestSuspendAndResume(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	m1 := f.machine(testBank(), 4, 1)
	if err := m1.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := m1.Submit(ctx, m1.Current().Answer); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if err := m1.Advance(ctx); err != nil {
		t.Fatalf("Advance() error = %v", err)
	}
	pending := m1.Current().ID
	if err := m1.Suspend(ctx); err != nil {
		t.Fatalf("Suspend() error = %v", err)
	}

	m2 := f.machine(testBank(), 4, 2)
	resumed, err := m2.Resume(ctx)
	if err != nil {
		t.Fatalf("Resume() error = %v", err)
	}
	if !resumed {
		t.Fatal("Resume() = false, want true")
	}
	if m2.SessionID() != m1.SessionID() {
		t.Errorf("resumed session = %s, want %s", m2.SessionID(), m1.SessionID())
	}
	if m2.Phase() != PhaseAwaitingAnswer {
		t.Errorf("Phase after resume = %v, want awaiting", m2.Phase())
	}
	if m2.Current().ID != pending {
		t.Errorf("resumed question = %s, want %s", m2.Current().ID, pending)
	}
	if m2.Score() != 1 || m2.Index() != 1 {
		t.Errorf("resumed score = %d index = %d, want 1 and 1", m2.Score(), m2.Index())
	}
	if m2.Ability() != m1.Ability() {
		t.Errorf("resumed ability = %v, want %v", m2.Ability(), m1.Ability())
	}
}

func TestResumeAfterSubmitAdvances(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	m1 := f.machine(testBank(), 4, 1)
	if err := m1.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	answered := m1.Current().ID
	if err := m1.Submit(ctx, m1.Current().Answer); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	// Killed before Advance. The snapshot holds the submitted phase.

	m2 := f.machine(testBank(), 4, 2)
	resumed, err := m2.Resume(ctx)
	if err != nil {
		t.Fatalf("Resume() error = %v", err)
	}
	if !resumed {
		t.Fatal("Resume() = false, want true")
	}
	if m2.Phase() != PhaseAwaitingAnswer {
		t.Errorf("Phase after resume = %v, want awaiting", m2.Phase())
	}
	if m2.Current().ID == answered {
		t.Errorf("resume re-presented already answered question %s", answered)
	}
	if m2.Index() != 1 || m2.Score() != 1 {
		t.Errorf("resumed index = %d score = %d, want 1 and 1", m2.Index(), m2.Score())
	}
}

func TestResumeWithoutPointerStartsFresh(t *testing.T) {
	f := newFixture()
	m := f.machine(testBank(), 3, 1)

	resumed, err := m.Resume(context.Background())
	if err != nil {
		t.Fatalf("Resume() error = %v", err)
	}
	if resumed {
		t.Error("Resume() = true with no pointer, want false")
	}
	if m.Phase() != PhaseAwaitingAnswer {
		t.Errorf("Phase = %v, want awaiting after fresh start", m.Phase())
	}
}

func TestResumePointerMismatchStartsFresh(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	m1 := f.machine(testBank(), 4, 1)
	if err := m1.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	old := m1.SessionID()

	// Corrupt the pointer so it names a session the snapshot doesn't hold.
	f.settings.vals[store.SettingActiveSession] = "bogus-session"

	m2 := f.machine(testBank(), 4, 2)
	resumed, err := m2.Resume(ctx)
	if err != nil {
		t.Fatalf("Resume() error = %v", err)
	}
	if resumed {
		t.Error("Resume() = true on mismatch, want false")
	}
	if m2.SessionID() == old || m2.SessionID() == "bogus-session" {
		t.Errorf("fresh session id = %s, want a new id", m2.SessionID())
	}
	if m2.Phase() != PhaseAwaitingAnswer || m2.Index() != 0 {
		t.Errorf("fresh session phase = %v index = %d", m2.Phase(), m2.Index())
	}
}

func TestBankExhaustionFinishesEarly(t *testing.T) {
	small := quiz.NewBank([]quiz.Question{
		{ID: "q1", Topic: "geo", Difficulty: quiz.DifficultyMedium, Prompt: "Q1?", Options: []string{"a", "b"}, Answer: "a"},
		{ID: "q2", Topic: "geo", Difficulty: quiz.DifficultyMedium, Prompt: "Q2?", Options: []string{"a", "b"}, Answer: "a"},
		{ID: "q3", Topic: "geo", Difficulty: quiz.DifficultyMedium, Prompt: "Q3?", Options: []string{"a", "b"}, Answer: "a"},
	})
	f := newFixture()
	m := f.machine(small, 5, 1)
	ctx := context.Background()

	if err := m.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	for m.Phase() != PhaseFinished {
		if err := m.Submit(ctx, m.Current().Answer); err != nil {
			t.Fatalf("Submit() error = %v", err)
		}
		if err := m.Advance(ctx); err != nil {
			t.Fatalf("Advance() error = %v", err)
		}
	}

	if m.Index() != 3 {
		t.Errorf("answered = %d, want 3 (bank size)", m.Index())
	}
	rec, _ := f.history.Get(ctx, m.SessionID())
	if rec == nil || !rec.Completed {
		t.Fatalf("record = %+v, want completed", rec)
	}
	if rec.TotalQuestions != 5 || len(rec.Attempts) != 3 {
		t.Errorf("record total = %d attempts = %d, want 5 and 3", rec.TotalQuestions, len(rec.Attempts))
	}
	if _, ok := f.progress.snaps["tester"]; ok {
		t.Error("snapshot not cleared after exhaustion finish")
	}
}

func TestPersistAfterEveryTransition(t *testing.T) {
	f := newFixture()
	m := f.machine(testBank(), 4, 1)
	ctx := context.Background()

	if err := m.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	snap := f.progress.snaps["tester"]
	if snap.Phase != store.PhaseAwaiting || snap.CurrentQuestionID != m.Current().ID {
		t.Errorf("snapshot after start = %+v", snap)
	}

	if err := m.Submit(ctx, m.Current().Answer); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	snap = f.progress.snaps["tester"]
	if snap.Phase != store.PhaseSubmitted || len(snap.Attempts) != 1 {
		t.Errorf("snapshot after submit = %+v", snap)
	}

	if err := m.Advance(ctx); err != nil {
		t.Fatalf("Advance() error = %v", err)
	}
	snap = f.progress.snaps["tester"]
	if snap.Phase != store.PhaseAwaiting || snap.CurrentQuestionID != m.Current().ID {
		t.Errorf("snapshot after advance = %+v", snap)
	}
}
