package jsonfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imagetagger/internal/domain"
)

func sampleSnapshot() *domain.Snapshot {
	snap := domain.NewSnapshot()
	g := domain.NewGroup("Photos", "holiday pictures", "alice")
	g.AddMember("bob")
	snap.Groups[g.ID] = g
	img := domain.NewImage("1_cat.png", "cat.png", g.ID, "bob")
	snap.Images[img.ID] = img
	sug := domain.NewTagSuggestion(img.ID, "cute", "bob")
	snap.TagSuggestions[sug.ID] = sug
	at := domain.NewApprovedTag(img.ID, "cute", "alice")
	at.Upvotes = 2
	snap.ApprovedTags[at.ID] = at
	uv := domain.NewTagUpvote(at.ID, "bob")
	snap.TagUpvotes[uv.ID] = uv
	return snap
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	repo := NewSnapshotRepository(path)

	want := sampleSnapshot()
	require.NoError(t, repo.Save(want))

	got, err := repo.Load()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, got)
}

func TestLoad_MissingFile(t *testing.T) {
	repo := NewSnapshotRepository(filepath.Join(t.TempDir(), "absent.json"))
	got, err := repo.Load()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLoad_MalformedDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewSnapshotRepository(path).Load()
	require.Error(t, err)
}

func TestLoad_AllocatesMissingCollections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"groups":{}}`), 0o644))

	got, err := NewSnapshotRepository(path).Load()
	require.NoError(t, err)
	require.NotNil(t, got.Images)
	require.NotNil(t, got.TagSuggestions)
	require.NotNil(t, got.ApprovedTags)
	require.NotNil(t, got.TagUpvotes)
}

func TestSave_DocumentShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	repo := NewSnapshotRepository(path)
	require.NoError(t, repo.Save(sampleSnapshot()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	for _, key := range []string{"groups", "images", "tag_suggestions", "approved_tags", "tag_upvotes"} {
		assert.Contains(t, doc, key)
	}
}

func TestSave_OverwritesPreviousSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	repo := NewSnapshotRepository(path)

	first := sampleSnapshot()
	require.NoError(t, repo.Save(first))
	require.NoError(t, repo.Save(domain.NewSnapshot()))

	got, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, got.Groups)

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}
