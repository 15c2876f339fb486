package bpe

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelSaveLoad(t *testing.T) {
	words := randomWords(17, 100, 6, "abcd")
	model, err := Train(words, 25)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, model.Save(path))

	loaded, err := LoadModel(path)
	require.NoError(t, err)

	if diff := cmp.Diff(model.Vocab(), loaded.Vocab()); diff != "" {
		t.Errorf("vocab mismatch (-saved +loaded):\n%s", diff)
	}
	if diff := cmp.Diff(model.Merges(), loaded.Merges()); diff != "" {
		t.Errorf("merge tree mismatch (-saved +loaded):\n%s", diff)
	}

	// The loaded model must segment identically.
	want, err := Encode(model, words)
	require.NoError(t, err)
	got, err := Encode(loaded, words)
	require.NoError(t, err)
	assert.Equal(t, want.IDs(), got.IDs())
}

func TestLoadModelErrors(t *testing.T) {
	writeModel := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "model.json")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	t.Run("missing_file", func(t *testing.T) {
		_, err := LoadModel(filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
	})

	t.Run("corrupt_json", func(t *testing.T) {
		_, err := LoadModel(writeModel(t, "{not json"))
		require.Error(t, err)
	})

	t.Run("empty_vocab_entry", func(t *testing.T) {
		_, err := LoadModel(writeModel(t, `{"vocab":["a",""],"merges":[]}`))
		require.ErrorIs(t, err, ErrInvalidModel)
	})

	t.Run("merge_id_out_of_sequence", func(t *testing.T) {
		_, err := LoadModel(writeModel(t, `{"vocab":["a","b","ab"],"merges":[[0,1,5]]}`))
		require.ErrorIs(t, err, ErrInvalidModel)
	})

	t.Run("merge_references_later_id", func(t *testing.T) {
		_, err := LoadModel(writeModel(t, `{"vocab":["a","b","ab"],"merges":[[0,3,2]]}`))
		require.ErrorIs(t, err, ErrInvalidModel)
	})

	t.Run("merge_text_mismatch", func(t *testing.T) {
		_, err := LoadModel(writeModel(t, `{"vocab":["a","b","ba"],"merges":[[0,1,2]]}`))
		require.ErrorIs(t, err, ErrInvalidModel)
	})

	t.Run("more_merges_than_vocab", func(t *testing.T) {
		_, err := LoadModel(writeModel(t, `{"vocab":["a"],"merges":[[0,0,1],[1,1,2]]}`))
		require.ErrorIs(t, err, ErrInvalidModel)
	})
}

func TestModelAccessors(t *testing.T) {
	model, err := Train([]string{"abab"}, 2)
	require.NoError(t, err)

	id, ok := model.TokenID("ab")
	require.True(t, ok)
	assert.Equal(t, 2, id)

	text, ok := model.TokenText(3)
	require.True(t, ok)
	assert.Equal(t, "abab", text)

	_, ok = model.TokenText(99)
	assert.False(t, ok)
	_, ok = model.TokenID("zz")
	assert.False(t, ok)

	// Mutating the returned copies must not touch the model.
	model.Vocab()["zz"] = 42
	_, ok = model.TokenID("zz")
	assert.False(t, ok)
	merges := model.Merges()
	merges[0] = Merge{Pair: Pair{9, 9}, NewID: 9}
	assert.Equal(t, Merge{Pair: Pair{0, 1}, NewID: 2}, model.Merges()[0])
}
