package store

import (
	"context"
	"time"

	entschema "github.com/rehan/quizly/ent/schema"
)

// SnapshotVersion is the current serialization version of SnapshotData.
// Bump it when the payload shape changes so legacy rows can be migrated
// deliberately instead of silently misread.
const SnapshotVersion = 1

// Keys in the app_settings table.
const (
	// SettingActiveSession points at the resumable session id. It is a
	// single global key, not per-user; see the AppSetting schema comment.
	SettingActiveSession = "active_session"
	// SettingCurrentUser remembers the last user name entered on the
	// welcome screen.
	SettingCurrentUser = "current_user"
)

// Snapshot phases. A snapshot taken mid-question resumes at the same
// question; one taken after submitting resumes by advancing.
const (
	PhaseAwaiting  = "awaiting"
	PhaseSubmitted = "submitted"
)

// AttemptData records one answered question. Topic and difficulty come
// from the bank at answer time so history survives bank edits.
type AttemptData = entschema.AttemptData

// SnapshotData is the versioned payload stored in a progress snapshot.
type SnapshotData struct {
	Version           int           `json:"version"`
	SessionID         string        `json:"session_id"`
	Phase             string        `json:"phase"`
	CurrentQuestionID string        `json:"current_question_id,omitempty"`
	CurrentIndex      int           `json:"current_index"`
	Score             int           `json:"score"`
	Attempts          []AttemptData `json:"attempts"`
	Timestamp         time.Time     `json:"timestamp"`
}

// SessionRecordData is one row of quiz history in transport form.
type SessionRecordData struct {
	SessionID      string
	User           string
	Score          int
	CurrentIndex   int
	Completed      bool
	TotalQuestions int
	CreatedAt      time.Time
	LastUpdated    time.Time
	Attempts       []AttemptData
}

// HistoryRepo persists quiz session history.
type HistoryRepo interface {
	// Upsert creates the record keyed by SessionID, or updates it in
	// place if it already exists.
	Upsert(ctx context.Context, rec SessionRecordData) error
	// ByUser returns all sessions for a user, oldest first.
	ByUser(ctx context.Context, user string) ([]SessionRecordData, error)
	// Get returns the session with the given id, or nil if absent.
	Get(ctx context.Context, sessionID string) (*SessionRecordData, error)
}

// ProgressRepo persists the single in-progress snapshot per user.
type ProgressRepo interface {
	Save(ctx context.Context, user string, snap SnapshotData) error
	// Load returns the user's snapshot, or nil if none exists.
	Load(ctx context.Context, user string) (*SnapshotData, error)
	Clear(ctx context.Context, user string) error
}

// SettingRepo persists small key/value settings.
type SettingRepo interface {
	// Get returns the value for key, or "" if the key is absent.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
