package quiz

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefault(t *testing.T) {
	bank, err := LoadDefault()
	if err != nil {
		t.Fatalf("load default bank: %v", err)
	}
	if bank.Len() == 0 {
		t.Fatal("expected non-empty default bank")
	}

	for _, q := range bank.Questions() {
		if !q.Difficulty.Valid() {
			t.Errorf("question %q: invalid difficulty %q", q.ID, q.Difficulty)
		}
		if len(q.Options) < 2 {
			t.Errorf("question %q: expected at least 2 options", q.ID)
		}
	}
}

func TestLoadDefaultCoversAllDifficulties(t *testing.T) {
	bank, err := LoadDefault()
	if err != nil {
		t.Fatalf("load default bank: %v", err)
	}

	counts := bank.DifficultyCounts()
	for _, d := range []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard} {
		if counts[d] == 0 {
			t.Errorf("default bank has no %s questions", d)
		}
	}
}

func TestByID(t *testing.T) {
	bank := NewBank([]Question{
		{ID: "a", Topic: "t", Difficulty: DifficultyEasy, Prompt: "?", Options: []string{"x", "y"}, Answer: "x"},
	})

	if _, ok := bank.ByID("a"); !ok {
		t.Error("expected to find question a")
	}
	if _, ok := bank.ByID("missing"); ok {
		t.Error("expected lookup miss for unknown id")
	}
}

func TestLoadFileRejectsInvalidBank(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"not an array", `{"id": "a"}`},
		{"missing answer", `[{"id":"a","topic":"t","difficulty":"easy","question":"?","options":["x","y"],"explanation":""}]`},
		{"unknown difficulty", `[{"id":"a","topic":"t","difficulty":"extreme","question":"?","options":["x","y"],"answer":"x","explanation":""}]`},
		{"one option", `[{"id":"a","topic":"t","difficulty":"easy","question":"?","options":["x"],"answer":"x","explanation":""}]`},
		{"empty bank", `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bank.json")
			if err := os.WriteFile(path, []byte(tt.json), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadFile(path); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadFileRejectsDuplicateIDs(t *testing.T) {
	data := `[
		{"id":"a","topic":"t","difficulty":"easy","question":"?","options":["x","y"],"answer":"x","explanation":""},
		{"id":"a","topic":"t","difficulty":"easy","question":"??","options":["x","y"],"answer":"y","explanation":""}
	]`
	path := filepath.Join(t.TempDir(), "bank.json")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("expected duplicate id error")
	}
}

func TestLoadFileRejectsAnswerNotInOptions(t *testing.T) {
	data := `[{"id":"a","topic":"t","difficulty":"easy","question":"?","options":["x","y"],"answer":"z","explanation":""}]`
	path := filepath.Join(t.TempDir(), "bank.json")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("expected answer-not-in-options error")
	}
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	bank, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if bank.Len() == 0 {
		t.Fatal("expected embedded bank")
	}
}
