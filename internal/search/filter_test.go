package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func video(bvid, title, play, like, tag string) *VideoRecord {
	return &VideoRecord{Bvid: bvid, Title: title, Play: play, Like: like, Tag: tag}
}

func TestFilterKeepsQualifyingRecord(t *testing.T) {
	// raw title <b>Test</b> Video arrives here already normalized
	in := []*VideoRecord{video("BV1", "Test Video", "1,500", "100", "AI")}
	out := Filter(in, Criteria{MinPlay: 1000, MinLikeRatio: 0.04})

	require.Len(t, out, 1)
	assert.Equal(t, "BV1", out[0].Bvid)
	assert.Equal(t, "Test Video", out[0].Title)
}

func TestFilterPlayThreshold(t *testing.T) {
	in := []*VideoRecord{video("BV1", "Test Video", "1,500", "100", "AI")}
	out := Filter(in, Criteria{MinPlay: 2000, MinLikeRatio: 0.04})
	assert.Empty(t, out)
}

func TestFilterLikeRatio(t *testing.T) {
	in := []*VideoRecord{
		video("low", "a", "10000", "100", ""),  // 1%
		video("high", "b", "10000", "900", ""), // 9%
	}
	out := Filter(in, Criteria{MinPlay: 1000, MinLikeRatio: 0.04})
	require.Len(t, out, 1)
	assert.Equal(t, "high", out[0].Bvid)
}

func TestFilterBannedKeywords(t *testing.T) {
	in := []*VideoRecord{
		video("t1", "Big Spoiler Reveal", "99999", "99999", ""),
		video("t2", "clean title", "99999", "99999", "sPoIlEr inside"),
		video("t3", "clean title", "99999", "99999", "other tag"),
	}
	out := Filter(in, Criteria{BannedKeywords: []string{"Spoiler"}})
	require.Len(t, out, 1)
	assert.Equal(t, "t3", out[0].Bvid)
}

func TestFilterZeroPlayNeverDivides(t *testing.T) {
	in := []*VideoRecord{video("BV0", "fresh", "0", "0", "")}

	out := Filter(in, Criteria{MinPlay: 0, MinLikeRatio: 0.01})
	assert.Empty(t, out, "ratio is defined as 0 when play is 0")

	out = Filter(in, Criteria{MinPlay: 0, MinLikeRatio: 0})
	assert.Len(t, out, 1)
}

func TestFilterUnparsableCountsDropped(t *testing.T) {
	in := []*VideoRecord{video("BV1", "odd", "n/a", "n/a", "")}
	out := Filter(in, Criteria{MinPlay: 1, MinLikeRatio: 0})
	assert.Empty(t, out)
}

func TestFilterPreservesOrder(t *testing.T) {
	in := []*VideoRecord{
		video("a", "x", "5000", "500", ""),
		video("b", "x", "10", "1", ""),
		video("c", "x", "5000", "500", ""),
		video("d", "x", "5000", "500", ""),
	}
	out := Filter(in, DefaultCriteria())
	require.Len(t, out, 3)
	assert.Equal(t, "a", out[0].Bvid)
	assert.Equal(t, "c", out[1].Bvid)
	assert.Equal(t, "d", out[2].Bvid)
}

func TestFilterMonotonicity(t *testing.T) {
	in := []*VideoRecord{
		video("a", "x", "1200", "60", ""),
		video("b", "x", "3000", "90", ""),
		video("c", "x", "8000", "800", ""),
		video("d", "x", "500", "100", ""),
	}

	base := len(Filter(in, Criteria{MinPlay: 1000, MinLikeRatio: 0.02}))
	for _, c := range []Criteria{
		{MinPlay: 2000, MinLikeRatio: 0.02},
		{MinPlay: 1000, MinLikeRatio: 0.05},
		{MinPlay: 5000, MinLikeRatio: 0.09},
	} {
		assert.LessOrEqual(t, len(Filter(in, c)), base)
	}
}

func TestFilterNilRecordsSkipped(t *testing.T) {
	in := []*VideoRecord{nil, video("a", "x", "5000", "500", ""), nil}
	out := Filter(in, DefaultCriteria())
	require.Len(t, out, 1)
}

func TestDefaultCriteria(t *testing.T) {
	c := DefaultCriteria()
	assert.Equal(t, int64(1000), c.MinPlay)
	assert.InDelta(t, 0.04, c.MinLikeRatio, 1e-9)
	assert.Empty(t, c.BannedKeywords)
}
