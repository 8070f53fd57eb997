package search

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// RawRecord is one item of the upstream search payload, kept as a loose map
// because the endpoint is not consistent about field types: counts show up as
// numbers for most videos and as pre-formatted strings for others.
type RawRecord map[string]any

// VideoRecord is one discovered video, normalized from a RawRecord. Count
// fields keep the upstream string form; ParseCount turns them into numbers
// where the filter needs them.
type VideoRecord struct {
	Bvid      string `json:"bvid"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Play      string `json:"play"`
	Like      string `json:"like"`
	Tag       string `json:"tag"`
	Favorites string `json:"favorites"`
	Cover     string `json:"cover"`
}

// NewVideoRecord normalizes one raw upstream record. Records without a bvid
// are not an error, the endpoint returns them for deleted or shadow-banned
// videos; callers get nil and skip them.
func NewVideoRecord(raw RawRecord) *VideoRecord {
	bvid := strings.TrimSpace(rawString(raw, "bvid"))
	if bvid == "" {
		return nil
	}
	return &VideoRecord{
		Bvid:      bvid,
		Title:     StripTags(rawString(raw, "title")),
		Author:    rawString(raw, "author"),
		Play:      rawCount(raw, "play"),
		Like:      rawCount(raw, "like"),
		Tag:       rawString(raw, "tag"),
		Favorites: rawCount(raw, "favorites"),
		Cover:     NormalizeCoverURL(rawString(raw, "pic")),
	}
}

// PlayCount returns the tolerant-parsed play counter.
func (v *VideoRecord) PlayCount() int64 { return ParseCount(v.Play) }

// LikeCount returns the tolerant-parsed like counter.
func (v *VideoRecord) LikeCount() int64 { return ParseCount(v.Like) }

// URL returns the public watch page for the video.
func (v *VideoRecord) URL() string {
	return "https://www.bilibili.com/video/" + v.Bvid
}

func (v *VideoRecord) String() string {
	return fmt.Sprintf("%s %q by %s (play %s, like %s)", v.Bvid, v.Title, v.Author, v.Play, v.Like)
}

// ParseCount coerces an upstream counter to an integer. Thousands separators
// are stripped first; anything still unparsable counts as zero.
func ParseCount(s string) int64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// StripTags removes every <...> span from s. Entities are left as-is, the
// upstream only wraps match highlights in markup and never encodes text.
func StripTags(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeCoverURL forces a cover image URL onto https. The endpoint mixes
// protocol-relative, http and bare-host forms.
func NormalizeCoverURL(u string) string {
	u = strings.TrimSpace(u)
	switch {
	case u == "":
		return ""
	case strings.HasPrefix(u, "//"):
		return "https:" + u
	case strings.HasPrefix(u, "http://"):
		return "https://" + strings.TrimPrefix(u, "http://")
	case strings.HasPrefix(u, "https://"):
		return u
	default:
		return "https://" + u
	}
}

func rawString(raw RawRecord, key string) string {
	v, ok := raw[key]
	if !ok || v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	case float64:
		return formatFloat(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// rawCount reads a count field, defaulting missing or empty values to "0":
// very fresh or removed videos come back partially populated.
func rawCount(raw RawRecord, key string) string {
	s := strings.TrimSpace(rawString(raw, key))
	if s == "" {
		return "0"
	}
	return s
}

func formatFloat(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
