package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rehan/quizly/ent"
	"github.com/rehan/quizly/ent/progresssnapshot"
)

type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Save(ctx context.Context, user string, snap SnapshotData) error {
	snap.Version = SnapshotVersion
	data, err := snapshotToMap(snap)
	if err != nil {
		return err
	}

	existing, err := r.client.ProgressSnapshot.Query().
		Where(progresssnapshot.User(user)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query snapshot for %s: %w", user, err)
		}
		_, err = r.client.ProgressSnapshot.Create().
			SetUser(user).
			SetData(data).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create snapshot for %s: %w", user, err)
		}
		return nil
	}

	_, err = existing.Update().SetData(data).Save(ctx)
	if err != nil {
		return fmt.Errorf("update snapshot for %s: %w", user, err)
	}
	return nil
}

func (r *progressRepo) Load(ctx context.Context, user string) (*SnapshotData, error) {
	row, err := r.client.ProgressSnapshot.Query().
		Where(progresssnapshot.User(user)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query snapshot for %s: %w", user, err)
	}

	snap, err := snapshotFromMap(row.Data)
	if err != nil {
		return nil, fmt.Errorf("decode snapshot for %s: %w", user, err)
	}
	return snap, nil
}

func (r *progressRepo) Clear(ctx context.Context, user string) error {
	_, err := r.client.ProgressSnapshot.Delete().
		Where(progresssnapshot.User(user)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("clear snapshot for %s: %w", user, err)
	}
	return nil
}

func snapshotToMap(snap SnapshotData) (map[string]any, error) {
	raw, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return m, nil
}

func snapshotFromMap(m map[string]any) (*SnapshotData, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	var snap SnapshotData
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, err
	}
	if snap.Version != SnapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d", snap.Version)
	}
	return &snap, nil
}
