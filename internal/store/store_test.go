package store

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	s, err := Open(dsn)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleAttempts(now time.Time) []AttemptData {
	return []AttemptData{
		{QuestionID: "q1", Selected: "Paris", Correct: true, Difficulty: "easy", Topic: "geography", Timestamp: now},
		{QuestionID: "q2", Selected: "Mars", Correct: false, Difficulty: "medium", Topic: "science", Timestamp: now.Add(time.Second)},
	}
}

func TestHistoryUpsertAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.HistoryRepo()
	ctx := context.Background()
	now := time.Now().Truncate(time.Second)

	rec := SessionRecordData{
		SessionID:      "sess-1",
		User:           "rehan",
		Score:          1,
		CurrentIndex:   2,
		Completed:      false,
		TotalQuestions: 10,
		CreatedAt:      now,
	}
	if err := repo.Upsert(ctx, rec); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	got, err := repo.Get(ctx, "sess-1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got == nil {
		t.Fatal("Get() = nil, want record")
	}
	if got.User != "rehan" || got.Score != 1 || got.Completed {
		t.Errorf("Get() = %+v, want user=rehan score=1 completed=false", got)
	}

	// Second upsert updates in place.
	rec.Score = 7
	rec.CurrentIndex = 10
	rec.Completed = true
	rec.Attempts = sampleAttempts(now)
	if err := repo.Upsert(ctx, rec); err != nil {
		t.Fatalf("Upsert() update error = %v", err)
	}

	got, err = repo.Get(ctx, "sess-1")
	if err != nil {
		t.Fatalf("Get() after update error = %v", err)
	}
	if got.Score != 7 || !got.Completed || len(got.Attempts) != 2 {
		t.Errorf("Get() = %+v, want score=7 completed=true 2 attempts", got)
	}
}

func TestHistoryGetMissing(t *testing.T) {
	s := openTestStore(t)

	got, err := s.HistoryRepo().Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != nil {
		t.Errorf("Get() = %+v, want nil", got)
	}
}

func TestHistoryByUserOrder(t *testing.T) {
	s := openTestStore(t)
	repo := s.HistoryRepo()
	ctx := context.Background()
	base := time.Now().Add(-time.Hour)

	for i := 0; i < 3; i++ {
		rec := SessionRecordData{
			SessionID:      fmt.Sprintf("sess-%d", i),
			User:           "rehan",
			TotalQuestions: 10,
			CreatedAt:      base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.Upsert(ctx, rec); err != nil {
			t.Fatalf("Upsert() error = %v", err)
		}
	}
	other := SessionRecordData{SessionID: "other-1", User: "guest", TotalQuestions: 10, CreatedAt: base}
	if err := repo.Upsert(ctx, other); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	got, err := repo.ByUser(ctx, "rehan")
	if err != nil {
		t.Fatalf("ByUser() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("ByUser() returned %d records, want 3", len(got))
	}
	for i, rec := range got {
		want := fmt.Sprintf("sess-%d", i)
		if rec.SessionID != want {
			t.Errorf("ByUser()[%d].SessionID = %s, want %s", i, rec.SessionID, want)
		}
	}
}

func TestProgressRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()
	now := time.Now().Truncate(time.Second).UTC()

	snap := SnapshotData{
		SessionID:         "sess-1",
		Phase:             PhaseAwaiting,
		CurrentQuestionID: "q3",
		CurrentIndex:      2,
		Score:             1,
		Attempts:          sampleAttempts(now),
		Timestamp:         now,
	}
	if err := repo.Save(ctx, "rehan", snap); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := repo.Load(ctx, "rehan")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got == nil {
		t.Fatal("Load() = nil, want snapshot")
	}
	if got.Version != SnapshotVersion {
		t.Errorf("Version = %d, want %d", got.Version, SnapshotVersion)
	}
	if got.SessionID != "sess-1" || got.Phase != PhaseAwaiting || got.CurrentQuestionID != "q3" {
		t.Errorf("Load() = %+v, want session sess-1 awaiting at q3", got)
	}
	if len(got.Attempts) != 2 || got.Attempts[0].QuestionID != "q1" {
		t.Errorf("Attempts = %+v, want 2 attempts starting at q1", got.Attempts)
	}
}

func TestProgressSaveOverwrites(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, "rehan", SnapshotData{SessionID: "a", Phase: PhaseAwaiting}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := repo.Save(ctx, "rehan", SnapshotData{SessionID: "b", Phase: PhaseSubmitted, Score: 3}); err != nil {
		t.Fatalf("Save() second error = %v", err)
	}

	got, err := repo.Load(ctx, "rehan")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.SessionID != "b" || got.Phase != PhaseSubmitted || got.Score != 3 {
		t.Errorf("Load() = %+v, want latest snapshot b", got)
	}
}

func TestProgressLoadMissing(t *testing.T) {
	s := openTestStore(t)

	got, err := s.ProgressRepo().Load(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != nil {
		t.Errorf("Load() = %+v, want nil", got)
	}
}

func TestProgressClear(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, "rehan", SnapshotData{SessionID: "a", Phase: PhaseAwaiting}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := repo.Clear(ctx, "rehan"); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	got, err := repo.Load(ctx, "rehan")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != nil {
		t.Errorf("Load() after Clear = %+v, want nil", got)
	}

	// Clearing again is a no-op.
	if err := repo.Clear(ctx, "rehan"); err != nil {
		t.Errorf("Clear() on empty error = %v", err)
	}
}

func TestSettings(t *testing.T) {
	s := openTestStore(t)
	repo := s.SettingRepo()
	ctx := context.Background()

	got, err := repo.Get(ctx, SettingActiveSession)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "" {
		t.Errorf("Get() on missing key = %q, want empty", got)
	}

	if err := repo.Set(ctx, SettingActiveSession, "sess-1"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := repo.Set(ctx, SettingActiveSession, "sess-2"); err != nil {
		t.Fatalf("Set() overwrite error = %v", err)
	}

	got, err = repo.Get(ctx, SettingActiveSession)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "sess-2" {
		t.Errorf("Get() = %q, want sess-2", got)
	}

	if err := repo.Delete(ctx, SettingActiveSession); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	got, err = repo.Get(ctx, SettingActiveSession)
	if err != nil {
		t.Fatalf("Get() after delete error = %v", err)
	}
	if got != "" {
		t.Errorf("Get() after delete = %q, want empty", got)
	}
}
