package store

import (
	"context"
	"fmt"

	"github.com/rehan/quizly/ent"
	"github.com/rehan/quizly/ent/sessionrecord"
)

type historyRepo struct {
	client *ent.Client
}

func (r *historyRepo) Upsert(ctx context.Context, rec SessionRecordData) error {
	existing, err := r.client.SessionRecord.Query().
		Where(sessionrecord.SessionID(rec.SessionID)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query session %s: %w", rec.SessionID, err)
		}
		_, err = r.client.SessionRecord.Create().
			SetSessionID(rec.SessionID).
			SetUser(rec.User).
			SetScore(rec.Score).
			SetCurrentIndex(rec.CurrentIndex).
			SetCompleted(rec.Completed).
			SetTotalQuestions(rec.TotalQuestions).
			SetCreatedAt(rec.CreatedAt).
			SetAttempts(rec.Attempts).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create session %s: %w", rec.SessionID, err)
		}
		return nil
	}

	_, err = existing.Update().
		SetScore(rec.Score).
		SetCurrentIndex(rec.CurrentIndex).
		SetCompleted(rec.Completed).
		SetTotalQuestions(rec.TotalQuestions).
		SetAttempts(rec.Attempts).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update session %s: %w", rec.SessionID, err)
	}
	return nil
}

func (r *historyRepo) ByUser(ctx context.Context, user string) ([]SessionRecordData, error) {
	rows, err := r.client.SessionRecord.Query().
		Where(sessionrecord.User(user)).
		Order(ent.Asc(sessionrecord.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query sessions for %s: %w", user, err)
	}

	out := make([]SessionRecordData, 0, len(rows))
	for _, row := range rows {
		out = append(out, recordFromEnt(row))
	}
	return out, nil
}

func (r *historyRepo) Get(ctx context.Context, sessionID string) (*SessionRecordData, error) {
	row, err := r.client.SessionRecord.Query().
		Where(sessionrecord.SessionID(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query session %s: %w", sessionID, err)
	}
	rec := recordFromEnt(row)
	return &rec, nil
}

func recordFromEnt(row *ent.SessionRecord) SessionRecordData {
	return SessionRecordData{
		SessionID:      row.SessionID,
		User:           row.User,
		Score:          row.Score,
		CurrentIndex:   row.CurrentIndex,
		Completed:      row.Completed,
		TotalQuestions: row.TotalQuestions,
		CreatedAt:      row.CreatedAt,
		LastUpdated:    row.LastUpdated,
		Attempts:       row.Attempts,
	}
}
