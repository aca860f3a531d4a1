// Package engine runs a quiz session as a small state machine layered on
// the estimator and selector. Every transition is persisted before it
// returns, so a killed process can always resume from the last transition.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rehan/quizly/internal/adaptive"
	"github.com/rehan/quizly/internal/quiz"
	"github.com/rehan/quizly/internal/selector"
	"github.com/rehan/quizly/internal/store"
)

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseAwaitingAnswer
	PhaseSubmitted
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseAwaitingAnswer:
		return "awaiting_answer"
	case PhaseSubmitted:
		return "submitted"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

var (
	// ErrWrongPhase is returned when a transition is called from a phase
	// that does not allow it.
	ErrWrongPhase = errors.New("transition not allowed in current phase")

	// ErrNoQuestions is returned when a session cannot start because the
	// selector found nothing to ask.
	ErrNoQuestions = errors.New("no questions available")
)

// Config carries the collaborators a Machine needs.
type Config struct {
	Bank     *quiz.Bank
	User     string
	Target   int
	History  store.HistoryRepo
	Progress store.ProgressRepo
	Settings store.SettingRepo

	// Optional. Defaults: a fresh wall-clock selector, a nop logger, time.Now.
	Selector *selector.Selector
	Logger   *zap.Logger
	Clock    func() time.Time
}

// Machine drives one user's quiz session through its phases.
type Machine struct {
	bank   *quiz.Bank
	user   string
	target int

	history  store.HistoryRepo
	progress store.ProgressRepo
	settings store.SettingRepo

	sel   *selector.Selector
	log   *zap.Logger
	clock func() time.Time

	sessionID string
	phase     Phase
	current   *quiz.Question
	asked     map[string]bool
	score     int
	attempts  []store.AttemptData
	createdAt time.Time
	est       *adaptive.Estimator
}

// New returns a Machine in PhaseNotStarted. Call Start or Resume next.
func New(cfg Config) *Machine {
	sel := cfg.Selector
	if sel == nil {
		sel = selector.New()
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	return &Machine{
		bank:     cfg.Bank,
		user:     cfg.User,
		target:   cfg.Target,
		history:  cfg.History,
		progress: cfg.Progress,
		settings: cfg.Settings,
		sel:      sel,
		log:      log,
		clock:    clock,
		phase:    PhaseNotStarted,
	}
}

// SessionID returns the id of the active session, or "" before Start.
func (m *Machine) SessionID() string { return m.sessionID }

// User returns the user the machine plays for.
func (m *Machine) User() string { return m.user }

// Phase returns the current lifecycle phase.
func (m *Machine) Phase() Phase { return m.phase }

// Current returns the question awaiting an answer, or the one just
// answered while in PhaseSubmitted. Nil outside those phases.
func (m *Machine) Current() *quiz.Question { return m.current }

// Score returns the count of correct attempts so far.
func (m *Machine) Score() int { return m.score }

// Index returns how many questions have been answered.
func (m *Machine) Index() int { return len(m.attempts) }

// Target returns the configured question count for the session.
func (m *Machine) Target() int { return m.target }

// Ability returns the current ability estimate.
func (m *Machine) Ability() float64 { return m.est.Ability() }

// Attempts returns a copy of the attempt log.
func (m *Machine) Attempts() []store.AttemptData {
	out := make([]store.AttemptData, len(m.attempts))
	copy(out, m.attempts)
	return out
}

// LastAttempt returns the most recent attempt, or nil before any submit.
func (m *Machine) LastAttempt() *store.AttemptData {
	if len(m.attempts) == 0 {
		return nil
	}
	a := m.attempts[len(m.attempts)-1]
	return &a
}

// Start begins a brand new session and selects the first question.
func (m *Machine) Start(ctx context.Context) error {
	if m.phase != PhaseNotStarted {
		return fmt.Errorf("%w: start from %s", ErrWrongPhase, m.phase)
	}

	m.sessionID = uuid.NewString()
	m.est = adaptive.NewEstimator()
	m.asked = make(map[string]bool)
	m.score = 0
	m.attempts = nil
	m.createdAt = m.clock()

	q := m.sel.Next(m.bank, m.asked, m.target, m.est)
	if q == nil {
		return ErrNoQuestions
	}
	m.current = q
	m.phase = PhaseAwaitingAnswer

	m.log.Info("session started",
		zap.String("session", m.sessionID),
		zap.String("user", m.user),
		zap.Int("target", m.target))

	if err := m.persist(ctx); err != nil {
		return err
	}
	if err := m.settings.Set(ctx, store.SettingActiveSession, m.sessionID); err != nil {
		return fmt.Errorf("set active session: %w", err)
	}
	return nil
}

// Resume continues the session named by the active-session pointer. If the
// pointer is absent, or it disagrees with the stored snapshot, a fresh
// session is started instead. The returned bool reports whether an existing
// session was resumed.
func (m *Machine) Resume(ctx context.Context) (bool, error) {
	if m.phase != PhaseNotStarted {
		return false, fmt.Errorf("%w: resume from %s", ErrWrongPhase, m.phase)
	}

	ptr, err := m.settings.Get(ctx, store.SettingActiveSession)
	if err != nil {
		return false, fmt.Errorf("read active session: %w", err)
	}
	if ptr == "" {
		return false, m.Start(ctx)
	}

	snap, err := m.progress.Load(ctx, m.user)
	if err != nil {
		return false, fmt.Errorf("load snapshot: %w", err)
	}
	if snap == nil || snap.SessionID != ptr {
		snapID := ""
		if snap != nil {
			snapID = snap.SessionID
		}
		m.log.Warn("active session pointer does not match snapshot, starting fresh",
			zap.String("pointer", ptr),
			zap.String("snapshot", snapID),
			zap.String("user", m.user))
		if err := m.discardStale(ctx); err != nil {
			return false, err
		}
		return false, m.Start(ctx)
	}

	m.sessionID = snap.SessionID
	m.score = snap.Score
	m.attempts = snap.Attempts
	m.createdAt = snap.Timestamp

	if rec, err := m.history.Get(ctx, ptr); err != nil {
		return false, fmt.Errorf("load session record: %w", err)
	} else if rec != nil {
		m.createdAt = rec.CreatedAt
	}

	m.est = adaptive.NewEstimator()
	m.est.Rebuild(outcomes(m.attempts))

	m.asked = make(map[string]bool, len(m.attempts)+1)
	for _, a := range m.attempts {
		m.asked[a.QuestionID] = true
	}
	if snap.CurrentQuestionID != "" {
		m.asked[snap.CurrentQuestionID] = true
	}

	switch snap.Phase {
	case store.PhaseAwaiting:
		q, ok := m.bank.ByID(snap.CurrentQuestionID)
		if !ok {
			// The bank changed under us. Pick a replacement.
			m.log.Warn("snapshot question missing from bank, selecting another",
				zap.String("question", snap.CurrentQuestionID))
			return true, m.advanceLocked(ctx)
		}
		m.current = &q
		m.phase = PhaseAwaitingAnswer
		m.log.Info("session resumed",
			zap.String("session", m.sessionID),
			zap.Int("answered", len(m.attempts)))
		return true, m.persist(ctx)

	case store.PhaseSubmitted:
		// The answer was recorded but the next question never shown.
		m.phase = PhaseSubmitted
		if q, ok := m.bank.ByID(snap.CurrentQuestionID); ok {
			m.current = &q
		}
		m.log.Info("session resumed after submit",
			zap.String("session", m.sessionID),
			zap.Int("answered", len(m.attempts)))
		return true, m.Advance(ctx)

	default:
		m.log.Warn("snapshot has unknown phase, starting fresh",
			zap.String("phase", snap.Phase))
		m.phase = PhaseNotStarted
		if err := m.discardStale(ctx); err != nil {
			return false, err
		}
		return false, m.Start(ctx)
	}
}

// Submit records the user's answer for the current question. An empty
// selection is ignored and the phase does not change.
func (m *Machine) Submit(ctx context.Context, selected string) error {
	if m.phase != PhaseAwaitingAnswer {
		return fmt.Errorf("%w: submit from %s", ErrWrongPhase, m.phase)
	}
	if selected == "" {
		return nil
	}

	q := m.current
	correct := selected == q.Answer
	if correct {
		m.score++
	}
	m.attempts = append(m.attempts, store.AttemptData{
		QuestionID: q.ID,
		Selected:   selected,
		Correct:    correct,
		Difficulty: string(q.Difficulty),
		Topic:      q.Topic,
		Timestamp:  m.clock(),
	})
	m.est.Update(q, correct)
	m.phase = PhaseSubmitted

	return m.persist(ctx)
}

// Advance moves past the just-answered question: either on to the next
// question, or into finalization when the target is reached or the bank
// has run out of unasked questions.
func (m *Machine) Advance(ctx context.Context) error {
	if m.phase != PhaseSubmitted {
		return fmt.Errorf("%w: advance from %s", ErrWrongPhase, m.phase)
	}
	return m.advanceLocked(ctx)
}

func (m *Machine) advanceLocked(ctx context.Context) error {
	if len(m.attempts) >= m.target {
		return m.finalize(ctx)
	}

	q := m.sel.Next(m.bank, m.asked, m.target, m.est)
	if q == nil {
		// Bank exhausted before the target. Finish normally with what we have.
		m.log.Info("bank exhausted before target",
			zap.String("session", m.sessionID),
			zap.Int("answered", len(m.attempts)),
			zap.Int("target", m.target))
		return m.finalize(ctx)
	}

	m.current = q
	m.phase = PhaseAwaitingAnswer
	return m.persist(ctx)
}

// Suspend saves the session so it can be resumed later. Safe to call in
// any phase; outside an active session it does nothing.
func (m *Machine) Suspend(ctx context.Context) error {
	if m.phase != PhaseAwaitingAnswer && m.phase != PhaseSubmitted {
		return nil
	}
	m.log.Info("session suspended",
		zap.String("session", m.sessionID),
		zap.Int("answered", len(m.attempts)))
	return m.persist(ctx)
}

// finalize writes the completed history record, then clears the snapshot,
// then the pointer. The ordering means a crash mid-finalization can leave
// a stale snapshot behind but never lose a completed session.
func (m *Machine) finalize(ctx context.Context) error {
	rec := store.SessionRecordData{
		SessionID:      m.sessionID,
		User:           m.user,
		Score:          m.score,
		CurrentIndex:   m.target,
		Completed:      true,
		TotalQuestions: m.target,
		CreatedAt:      m.createdAt,
		Attempts:       m.attempts,
	}
	if err := m.history.Upsert(ctx, rec); err != nil {
		return fmt.Errorf("finalize history: %w", err)
	}
	if err := m.progress.Clear(ctx, m.user); err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}
	if err := m.settings.Delete(ctx, store.SettingActiveSession); err != nil {
		return fmt.Errorf("clear active session: %w", err)
	}

	m.current = nil
	m.phase = PhaseFinished
	m.log.Info("session finished",
		zap.String("session", m.sessionID),
		zap.Int("score", m.score),
		zap.Int("answered", len(m.attempts)))
	return nil
}

// persist writes the in-progress history row and the snapshot. The full
// attempt log lives in the snapshot until finalization copies it to history.
func (m *Machine) persist(ctx context.Context) error {
	rec := store.SessionRecordData{
		SessionID:      m.sessionID,
		User:           m.user,
		Score:          m.score,
		CurrentIndex:   len(m.attempts),
		Completed:      false,
		TotalQuestions: m.target,
		CreatedAt:      m.createdAt,
	}
	if err := m.history.Upsert(ctx, rec); err != nil {
		return fmt.Errorf("save session record: %w", err)
	}

	snap := store.SnapshotData{
		SessionID:    m.sessionID,
		CurrentIndex: len(m.attempts),
		Score:        m.score,
		Attempts:     m.attempts,
		Timestamp:    m.clock(),
	}
	switch m.phase {
	case PhaseSubmitted:
		snap.Phase = store.PhaseSubmitted
		if m.current != nil {
			snap.CurrentQuestionID = m.current.ID
		}
	default:
		snap.Phase = store.PhaseAwaiting
		if m.current != nil {
			snap.CurrentQuestionID = m.current.ID
		}
	}
	if err := m.progress.Save(ctx, m.user, snap); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// discardStale removes a snapshot and pointer that cannot be resumed.
func (m *Machine) discardStale(ctx context.Context) error {
	if err := m.progress.Clear(ctx, m.user); err != nil {
		return fmt.Errorf("discard snapshot: %w", err)
	}
	if err := m.settings.Delete(ctx, store.SettingActiveSession); err != nil {
		return fmt.Errorf("discard active session: %w", err)
	}
	return nil
}

func outcomes(attempts []store.AttemptData) []adaptive.Outcome {
	out := make([]adaptive.Outcome, len(attempts))
	for i, a := range attempts {
		out[i] = adaptive.Outcome{
			Topic:      a.Topic,
			Difficulty: quiz.Difficulty(a.Difficulty),
			Correct:    a.Correct,
		}
	}
	return out
}
