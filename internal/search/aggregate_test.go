package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bilifeed/internal/timerange"
)

// fakeFetcher serves canned payloads per keyword and records call order.
type fakeFetcher struct {
	results map[string][]RawRecord
	errs    map[string]error
	calls   []string
	ranges  []timerange.Range
}

func (f *fakeFetcher) Search(_ context.Context, keyword string, _ int, tr timerange.Range) ([]RawRecord, error) {
	f.calls = append(f.calls, keyword)
	f.ranges = append(f.ranges, tr)
	if err := f.errs[keyword]; err != nil {
		return nil, err
	}
	return f.results[keyword], nil
}

func rawVideo(bvid, title, play, like string) RawRecord {
	return RawRecord{"bvid": bvid, "title": title, "play": play, "like": like}
}

func TestAggregateMergesKeywords(t *testing.T) {
	f := &fakeFetcher{results: map[string][]RawRecord{
		"go":   {rawVideo("BVa", "a", "5000", "500")},
		"rust": {rawVideo("BVb", "b", "6000", "600")},
	}}

	got, err := NewAggregator(f).Aggregate(context.Background(), Request{
		Keywords: []string{"go", "rust"},
		PageSize: 10,
		TimeMode: "3d",
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"go", "rust"}, f.calls)
	assert.Equal(t, "BVa", got[0].Bvid)
	assert.Equal(t, "BVb", got[1].Bvid)
}

func TestAggregateResolvesRangeOnce(t *testing.T) {
	f := &fakeFetcher{}
	_, err := NewAggregator(f).Aggregate(context.Background(), Request{
		Keywords: []string{"a", "b", "c"},
		TimeMode: "7d",
	})
	require.NoError(t, err)
	require.Len(t, f.ranges, 3)
	assert.Equal(t, f.ranges[0], f.ranges[1])
	assert.Equal(t, f.ranges[0], f.ranges[2])
}

func TestAggregateDeduplicatesAcrossKeywords(t *testing.T) {
	shared := rawVideo("BV2", "same video", "9000", "900")
	f := &fakeFetcher{results: map[string][]RawRecord{
		"first":  {shared, rawVideo("BVx", "x", "9000", "900")},
		"second": {shared},
	}}

	got, err := NewAggregator(f).Aggregate(context.Background(), Request{
		Keywords: []string{"first", "second"},
		TimeMode: "1d",
	})
	require.NoError(t, err)

	seen := map[string]int{}
	for _, v := range got {
		seen[v.Bvid]++
	}
	assert.Equal(t, 1, seen["BV2"])
	assert.Len(t, got, 2)
}

func TestAggregateLastWriteWins(t *testing.T) {
	f := &fakeFetcher{results: map[string][]RawRecord{
		"first":  {rawVideo("BV1", "stale title", "1000", "100")},
		"second": {rawVideo("BV1", "fresh title", "1000", "100")},
	}}

	got, err := NewAggregator(f).Aggregate(context.Background(), Request{
		Keywords: []string{"first", "second"},
		TimeMode: "1d",
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "fresh title", got[0].Title)
}

func TestAggregateKeywordFailureIsNotFatal(t *testing.T) {
	f := &fakeFetcher{
		results: map[string][]RawRecord{"y": {rawVideo("BVy", "y", "5000", "500")}},
		errs:    map[string]error{"x": errors.New("upstream 412")},
	}

	got, err := NewAggregator(f).Aggregate(context.Background(), Request{
		Keywords: []string{"x", "y"},
		TimeMode: "1d",
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "BVy", got[0].Bvid)
	assert.Equal(t, []string{"x", "y"}, f.calls, "failed keyword must not stop the batch")
}

func TestAggregateInvalidModeFails(t *testing.T) {
	f := &fakeFetcher{}
	_, err := NewAggregator(f).Aggregate(context.Background(), Request{
		Keywords: []string{"a"},
		TimeMode: "2w",
	})
	assert.ErrorIs(t, err, timerange.ErrInvalidTimeMode)
	assert.Empty(t, f.calls)
}

func TestAggregateMissingCustomRangeFails(t *testing.T) {
	_, err := NewAggregator(&fakeFetcher{}).Aggregate(context.Background(), Request{
		Keywords: []string{"a"},
		TimeMode: "custom",
	})
	assert.ErrorIs(t, err, timerange.ErrMissingCustomRange)
}

func TestAggregateAppliesCriteria(t *testing.T) {
	f := &fakeFetcher{results: map[string][]RawRecord{
		"kw": {
			rawVideo("keep", "good", "5000", "500"),
			rawVideo("drop", "weak", "10", "0"),
		},
	}}

	c := DefaultCriteria()
	got, err := NewAggregator(f).Aggregate(context.Background(), Request{
		Keywords: []string{"kw"},
		TimeMode: "1d",
		Criteria: &c,
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "keep", got[0].Bvid)
}

func TestAggregateNilCriteriaPassesEverything(t *testing.T) {
	f := &fakeFetcher{results: map[string][]RawRecord{
		"kw": {
			rawVideo("a", "good", "5000", "500"),
			rawVideo("b", "weak", "0", "0"),
			{"title": "no id, still discarded"},
		},
	}}

	got, err := NewAggregator(f).Aggregate(context.Background(), Request{
		Keywords: []string{"kw"},
		TimeMode: "1d",
	})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestAggregateShuffleKeepsMembership(t *testing.T) {
	raws := make([]RawRecord, 0, 50)
	want := map[string]bool{}
	for i := 0; i < 50; i++ {
		bvid := "BV" + string(rune('A'+i%26)) + string(rune('a'+i/26))
		raws = append(raws, rawVideo(bvid, "t", "5000", "500"))
		want[bvid] = true
	}
	f := &fakeFetcher{results: map[string][]RawRecord{"kw": raws}}

	got, err := NewAggregator(f).Aggregate(context.Background(), Request{
		Keywords: []string{"kw"},
		TimeMode: "1d",
		Shuffle:  true,
	})
	require.NoError(t, err)
	require.Len(t, got, len(want))
	for _, v := range got {
		assert.True(t, want[v.Bvid])
	}
}

func TestAggregateNoShuffleKeepsOrder(t *testing.T) {
	f := &fakeFetcher{results: map[string][]RawRecord{
		"kw": {
			rawVideo("BV1", "a", "5000", "500"),
			rawVideo("BV2", "b", "5000", "500"),
			rawVideo("BV3", "c", "5000", "500"),
		},
	}}

	got, err := NewAggregator(f).Aggregate(context.Background(), Request{
		Keywords: []string{"kw"},
		TimeMode: "1d",
	})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "BV1", got[0].Bvid)
	assert.Equal(t, "BV2", got[1].Bvid)
	assert.Equal(t, "BV3", got[2].Bvid)
}
