package quiz

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFileRoundTrip(t *testing.T) {
	data := `[
		{"id":"cap-fr","topic":"geography","difficulty":"easy","question":"Capital of France?","options":["Paris","Lyon"],"answer":"Paris","explanation":"Paris is the capital."},
		{"id":"sq-9","topic":"math","difficulty":"medium","question":"Square root of 9?","options":["2","3","4"],"answer":"3","explanation":""}
	]`
	path := filepath.Join(t.TempDir(), "bank.json")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	bank, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, bank.Len())

	q, ok := bank.ByID("cap-fr")
	require.True(t, ok)
	assert.Equal(t, "geography", q.Topic)
	assert.Equal(t, DifficultyEasy, q.Difficulty)
	assert.Equal(t, "Paris", q.Answer)
	assert.Len(t, q.Options, 2)

	counts := bank.TopicCounts()
	assert.Equal(t, 1, counts["geography"])
	assert.Equal(t, 1, counts["math"])
}

func TestLoadFileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
