// Package quiz implements the play screen: it drives the session engine
// through its question/answer/advance loop.
package quiz

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/rehan/quizly/internal/engine"
	"github.com/rehan/quizly/internal/router"
	"github.com/rehan/quizly/internal/screen"
	"github.com/rehan/quizly/internal/ui/components"
	"github.com/rehan/quizly/internal/ui/layout"
)

// ResultFactory builds the screen shown when the session finishes.
type ResultFactory func(score, answered, target int) screen.Screen

// Screen is the active quiz screen.
type Screen struct {
	machine *engine.Machine
	resume  bool
	result  ResultFactory

	options         components.OptionList
	loading         bool
	showingFeedback bool
	suspending      bool
	errMsg          string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.EscHandler = (*Screen)(nil)

// New creates the play screen. With resume set it continues the session
// the active pointer names; otherwise it starts fresh.
func New(machine *engine.Machine, resume bool, result ResultFactory) *Screen {
	return &Screen{
		machine: machine,
		resume:  resume,
		result:  result,
		loading: true,
	}
}

func (s *Screen) Title() string {
	return "Quiz"
}

// User returns the player running the session.
func (s *Screen) User() string {
	return s.machine.User()
}

func (s *Screen) Init() tea.Cmd {
	return s.start()
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.showingFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
			{Key: "Esc", Description: "Save & exit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓ 1-4", Description: "Choose"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Save & exit"},
	}
}

// HandleEsc saves the session before leaving the screen.
func (s *Screen) HandleEsc() tea.Cmd {
	if s.machine.Phase() == engine.PhaseFinished || s.suspending {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	s.suspending = true
	return func() tea.Msg {
		err := s.machine.Suspend(context.Background())
		return suspendedMsg{err: err}
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		return s.handleStarted(msg)

	case submittedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		s.showingFeedback = true
		return s, nil

	case advancedMsg:
		return s.handleAdvanced(msg)

	case suspendedMsg:
		// Leave even if the save failed; the previous transition was
		// already persisted.
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *Screen) handleStarted(msg startedMsg) (screen.Screen, tea.Cmd) {
	s.loading = false
	if msg.err != nil {
		s.errMsg = msg.err.Error()
		return s, nil
	}
	if s.machine.Phase() == engine.PhaseFinished {
		// A resumed session can finish immediately when the snapshot was
		// taken after the last answer.
		return s.finish()
	}
	s.presentCurrent()
	return s, nil
}

func (s *Screen) handleAdvanced(msg advancedMsg) (screen.Screen, tea.Cmd) {
	if msg.err != nil {
		s.errMsg = msg.err.Error()
		return s, nil
	}
	if s.machine.Phase() == engine.PhaseFinished {
		return s.finish()
	}
	s.showingFeedback = false
	s.presentCurrent()
	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.loading || s.errMsg != "" || s.suspending {
		return s, nil
	}

	if s.showingFeedback {
		return s, s.advance()
	}

	var cmd tea.Cmd
	s.options, cmd = s.options.Update(msg)
	if s.options.Submitted && s.machine.Phase() == engine.PhaseAwaitingAnswer {
		return s, s.submit(s.options.Chosen)
	}
	return s, cmd
}

func (s *Screen) presentCurrent() {
	q := s.machine.Current()
	if q == nil {
		return
	}
	s.options = components.NewOptionList(q.Prompt, q.Options, q.Answer)
}

func (s *Screen) finish() (screen.Screen, tea.Cmd) {
	next := s.result(s.machine.Score(), s.machine.Index(), s.machine.Target())
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *Screen) start() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if s.resume {
			resumed, err := s.machine.Resume(ctx)
			return startedMsg{resumed: resumed, err: err}
		}
		return startedMsg{err: s.machine.Start(ctx)}
	}
}

func (s *Screen) submit(selected string) tea.Cmd {
	return func() tea.Msg {
		return submittedMsg{err: s.machine.Submit(context.Background(), selected)}
	}
}

func (s *Screen) advance() tea.Cmd {
	return func() tea.Msg {
		return advancedMsg{err: s.machine.Advance(context.Background())}
	}
}
