package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bilifeed/internal/search"
	"bilifeed/pkg/log"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir(), log.NewLogger())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestMarkSentRoundTrip(t *testing.T) {
	s := newTestStore(t)

	sent, err := s.IsSent("BV1")
	require.NoError(t, err)
	assert.False(t, sent)

	require.NoError(t, s.MarkSent([]string{"BV1", "BV2"}))

	sent, err = s.IsSent("BV1")
	require.NoError(t, err)
	assert.True(t, sent)

	count, err := s.SentCount()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestFilterUnsent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.MarkSent([]string{"old"}))

	records := []*search.VideoRecord{
		{Bvid: "old", Title: "pushed before"},
		{Bvid: "new", Title: "fresh"},
	}
	fresh := s.FilterUnsent(records)
	require.Len(t, fresh, 1)
	assert.Equal(t, "new", fresh[0].Bvid)
}

func TestMarkSentIdempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.MarkSent([]string{"BV1"}))
	require.NoError(t, s.MarkSent([]string{"BV1"}))

	count, err := s.SentCount()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDefaultsRoundTrip(t *testing.T) {
	s := newTestStore(t)

	got, err := s.GetDefaults()
	require.NoError(t, err)
	assert.Nil(t, got)

	want := &Defaults{
		Keywords:   []string{"mygo", "bangdream"},
		MinPlay:    3000,
		MinLikePct: 6,
		TimeMode:   "3d",
		PageSize:   40,
	}
	require.NoError(t, s.SaveDefaults(want))

	got, err = s.GetDefaults()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, got)
}
