package welcome

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/rehan/quizly/internal/router"
	"github.com/rehan/quizly/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "home" }
func (s *stubScreen) Title() string                           { return "Home" }

// stubSettings records Set calls and can be made to fail.
type stubSettings struct {
	saved map[string]string
	fail  bool
}

func newStubSettings() *stubSettings {
	return &stubSettings{saved: make(map[string]string)}
}

func (s *stubSettings) Get(_ context.Context, key string) (string, error) {
	return s.saved[key], nil
}

func (s *stubSettings) Set(_ context.Context, key, value string) error {
	if s.fail {
		return errors.New("boom")
	}
	s.saved[key] = value
	return nil
}

func (s *stubSettings) Delete(_ context.Context, key string) error {
	delete(s.saved, key)
	return nil
}

func newTestWelcome(settings *stubSettings, prefill string) (*WelcomeScreen, *int) {
	callCount := 0
	factory := func(user string) screen.Screen {
		callCount++
		return &stubScreen{}
	}
	return New(settings, prefill, factory), &callCount
}

func pressEnter(w *WelcomeScreen) (screen.Screen, tea.Cmd) {
	return w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
}

func TestEmptyNameShowsError(t *testing.T) {
	w, callCount := newTestWelcome(newStubSettings(), "")

	_, cmd := pressEnter(w)
	if cmd != nil {
		t.Error("empty name should not produce a command")
	}
	if *callCount != 0 {
		t.Errorf("factory called %d times, want 0", *callCount)
	}
	if !strings.Contains(w.View(80, 24), "Please enter your name") {
		t.Error("expected inline validation error in view")
	}
}

func TestWhitespaceNameShowsError(t *testing.T) {
	w, _ := newTestWelcome(newStubSettings(), "")
	w.input.Model.SetValue("   ")

	_, cmd := pressEnter(w)
	if cmd != nil {
		t.Error("whitespace-only name should not produce a command")
	}
}

func TestValidNameSavesAndReplaces(t *testing.T) {
	settings := newStubSettings()
	w, callCount := newTestWelcome(settings, "")
	w.input.Model.SetValue("  rehan  ")

	_, cmd := pressEnter(w)
	if cmd == nil {
		t.Fatal("expected a save command")
	}

	msg := cmd()
	saved, ok := msg.(savedMsg)
	if !ok {
		t.Fatalf("expected savedMsg, got %T", msg)
	}
	if saved.user != "rehan" {
		t.Errorf("saved user = %q, want trimmed %q", saved.user, "rehan")
	}
	if settings.saved["current_user"] != "rehan" {
		t.Errorf("settings current_user = %q, want rehan", settings.saved["current_user"])
	}

	_, cmd = w.Update(msg)
	if cmd == nil {
		t.Fatal("expected a replace command after save")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if *callCount != 1 {
		t.Errorf("factory called %d times, want 1", *callCount)
	}
}

func TestSaveFailureKeepsScreen(t *testing.T) {
	settings := newStubSettings()
	settings.fail = true
	w, callCount := newTestWelcome(settings, "")
	w.input.Model.SetValue("rehan")

	_, cmd := pressEnter(w)
	if cmd == nil {
		t.Fatal("expected a save command")
	}

	_, cmd = w.Update(cmd())
	if cmd != nil {
		t.Error("failed save should not replace the screen")
	}
	if *callCount != 0 {
		t.Errorf("factory called %d times, want 0", *callCount)
	}
	if w.saving {
		t.Error("screen should accept input again after failed save")
	}
}

func TestPrefillShown(t *testing.T) {
	w, _ := newTestWelcome(newStubSettings(), "guest")
	if w.input.Value() != "guest" {
		t.Errorf("prefill = %q, want guest", w.input.Value())
	}

	// A returning player can just hit enter.
	_, cmd := pressEnter(w)
	if cmd == nil {
		t.Fatal("expected save command with prefilled name")
	}
	if saved, ok := cmd().(savedMsg); !ok || saved.user != "guest" {
		t.Errorf("expected savedMsg for guest, got %v", cmd())
	}
}
