package store

import (
	"context"
	"fmt"

	"github.com/rehan/quizly/ent"
	"github.com/rehan/quizly/ent/appsetting"
)

type settingRepo struct {
	client *ent.Client
}

func (r *settingRepo) Get(ctx context.Context, key string) (string, error) {
	row, err := r.client.AppSetting.Query().
		Where(appsetting.Key(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("query setting %s: %w", key, err)
	}
	return row.Value, nil
}

func (r *settingRepo) Set(ctx context.Context, key, value string) error {
	existing, err := r.client.AppSetting.Query().
		Where(appsetting.Key(key)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query setting %s: %w", key, err)
		}
		_, err = r.client.AppSetting.Create().
			SetKey(key).
			SetValue(value).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create setting %s: %w", key, err)
		}
		return nil
	}

	_, err = existing.Update().SetValue(value).Save(ctx)
	if err != nil {
		return fmt.Errorf("update setting %s: %w", key, err)
	}
	return nil
}

func (r *settingRepo) Delete(ctx context.Context, key string) error {
	_, err := r.client.AppSetting.Delete().
		Where(appsetting.Key(key)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete setting %s: %w", key, err)
	}
	return nil
}
