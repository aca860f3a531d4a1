package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Env != "local" {
		t.Errorf("Env = %q, want local", cfg.Env)
	}
	if cfg.QuestionsPerSession != 10 {
		t.Errorf("QuestionsPerSession = %d, want 10", cfg.QuestionsPerSession)
	}
	if cfg.BankPath != "" || cfg.DBPath != "" {
		t.Errorf("paths = %q %q, want empty", cfg.BankPath, cfg.DBPath)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("QUIZLY_QUESTIONS_PER_SESSION", "5")
	t.Setenv("QUIZLY_DB", "/tmp/quiz.db")
	t.Setenv("QUIZLY_ENV", "production")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.QuestionsPerSession != 5 {
		t.Errorf("QuestionsPerSession = %d, want 5", cfg.QuestionsPerSession)
	}
	if cfg.DBPath != "/tmp/quiz.db" {
		t.Errorf("DBPath = %q, want /tmp/quiz.db", cfg.DBPath)
	}
	if cfg.Env != "production" {
		t.Errorf("Env = %q, want production", cfg.Env)
	}
}

func TestLoadRejectsNonPositiveTarget(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("QUIZLY_QUESTIONS_PER_SESSION", "0")

	if _, err := Load(); err == nil {
		t.Fatal("Load() error = nil, want rejection of zero target")
	}
}
