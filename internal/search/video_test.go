package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVideoRecord(t *testing.T) {
	raw := RawRecord{
		"bvid":      "BV1xx411c7mD",
		"title":     `<em class="keyword">AI</em> painting tutorial`,
		"author":    "someone",
		"play":      float64(15000),
		"like":      "1,200",
		"tag":       "AI,painting",
		"favorites": float64(300),
		"pic":       "//i0.hdslb.com/bfs/archive/cover.jpg",
	}

	v := NewVideoRecord(raw)
	require.NotNil(t, v)
	assert.Equal(t, "BV1xx411c7mD", v.Bvid)
	assert.Equal(t, "AI painting tutorial", v.Title)
	assert.Equal(t, "someone", v.Author)
	assert.Equal(t, "15000", v.Play)
	assert.Equal(t, "1,200", v.Like)
	assert.Equal(t, "300", v.Favorites)
	assert.Equal(t, "https://i0.hdslb.com/bfs/archive/cover.jpg", v.Cover)
}

func TestNewVideoRecordMissingBvid(t *testing.T) {
	assert.Nil(t, NewVideoRecord(RawRecord{"title": "no id"}))
	assert.Nil(t, NewVideoRecord(RawRecord{"bvid": "   ", "title": "blank id"}))
	assert.Nil(t, NewVideoRecord(RawRecord{}))
}

func TestNewVideoRecordDefaultsCounts(t *testing.T) {
	v := NewVideoRecord(RawRecord{"bvid": "BV1"})
	require.NotNil(t, v)
	assert.Equal(t, "0", v.Play)
	assert.Equal(t, "0", v.Like)
	assert.Equal(t, "0", v.Favorites)
	assert.Empty(t, v.Cover)
}

func TestNewVideoRecordIdempotent(t *testing.T) {
	raw := RawRecord{
		"bvid":  "BV2",
		"title": "<b>Test</b> Video",
		"play":  "1,500",
		"like":  "100",
	}
	first := NewVideoRecord(raw)
	second := NewVideoRecord(raw)
	require.NotNil(t, first)
	assert.Equal(t, *first, *second)
}

func TestStripTags(t *testing.T) {
	cases := map[string]string{
		"<b>Test</b> Video":                "Test Video",
		"plain":                            "plain",
		"<em class=\"highlight\">x</em>y":  "xy",
		"a < b":                            "a ",
		"&lt;escaped&gt; stays":            "&lt;escaped&gt; stays",
		"<span><i>nested</i> markup</span>": "nested markup",
		"":                                 "",
	}
	for in, want := range cases {
		assert.Equal(t, want, StripTags(in), "input %q", in)
	}
}

func TestParseCount(t *testing.T) {
	assert.Equal(t, int64(12345), ParseCount("12,345"))
	assert.Equal(t, int64(42), ParseCount("42"))
	assert.Equal(t, int64(42), ParseCount(" 42 "))
	assert.Equal(t, int64(0), ParseCount(""))
	assert.Equal(t, int64(0), ParseCount("--"))
	assert.Equal(t, int64(0), ParseCount("1.2万"))
	assert.Equal(t, int64(1000000), ParseCount("1,000,000"))
}

func TestNormalizeCoverURL(t *testing.T) {
	cases := map[string]string{
		"//i0.hdslb.com/a.jpg":        "https://i0.hdslb.com/a.jpg",
		"http://i0.hdslb.com/a.jpg":   "https://i0.hdslb.com/a.jpg",
		"https://i0.hdslb.com/a.jpg":  "https://i0.hdslb.com/a.jpg",
		"i0.hdslb.com/a.jpg":          "https://i0.hdslb.com/a.jpg",
		"":                            "",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeCoverURL(in), "input %q", in)
	}
}

func TestRawStringTypeCoercion(t *testing.T) {
	v := NewVideoRecord(RawRecord{
		"bvid": "BV3",
		"play": 120, // int
		"like": int64(7),
	})
	require.NotNil(t, v)
	assert.Equal(t, "120", v.Play)
	assert.Equal(t, "7", v.Like)
}
