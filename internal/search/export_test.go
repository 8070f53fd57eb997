package search

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToStructuredOmitsCover(t *testing.T) {
	records := []*VideoRecord{{
		Bvid:      "BV1",
		Title:     "Test Video",
		Author:    "someone",
		Play:      "1,500",
		Like:      "100",
		Tag:       "AI",
		Favorites: "30",
		Cover:     "https://i0.hdslb.com/a.jpg",
	}}

	out := ToStructured(records)
	require.Len(t, out, 1)
	assert.Equal(t, "BV1", out[0].Bvid)
	assert.Equal(t, "1,500", out[0].Play)

	data, err := json.Marshal(out)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "cover")
	assert.NotContains(t, string(data), "hdslb")
}

func TestToStructuredEmpty(t *testing.T) {
	out := ToStructured(nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "videos.json")
	records := []*VideoRecord{
		{Bvid: "BV1", Title: "a", Play: "100", Like: "10"},
		{Bvid: "BV2", Title: "b", Play: "200", Like: "20"},
	}
	require.NoError(t, WriteJSON(path, records))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got []ExportRecord
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got, 2)
	assert.Equal(t, "BV2", got[1].Bvid)
}

func TestWriteJSONBadPath(t *testing.T) {
	err := WriteJSON(filepath.Join(t.TempDir(), "missing", "videos.json"), nil)
	assert.Error(t, err)
}
