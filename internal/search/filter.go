package search

import "strings"

const (
	DefaultMinPlay      = 1000
	DefaultMinLikeRatio = 0.04
)

// Criteria holds the thresholds a video must clear to be kept.
type Criteria struct {
	// MinPlay is the minimum play counter.
	MinPlay int64 `json:"minPlay"`
	// MinLikeRatio is the minimum like/play fraction in [0, 1].
	MinLikeRatio float64 `json:"minLikeRatio"`
	// BannedKeywords drops a video when any entry occurs, case-insensitively,
	// in its title or tag.
	BannedKeywords []string `json:"bannedKeywords,omitempty"`
}

// DefaultCriteria returns the stock thresholds: 1000 plays, 4% like ratio.
func DefaultCriteria() Criteria {
	return Criteria{MinPlay: DefaultMinPlay, MinLikeRatio: DefaultMinLikeRatio}
}

// Filter returns the subset of records clearing every criterion, in input
// order. Records with unparsable counters score zero and fall to the
// play-count threshold; nothing here ever aborts the batch.
func Filter(records []*VideoRecord, c Criteria) []*VideoRecord {
	banned := make([]string, 0, len(c.BannedKeywords))
	for _, kw := range c.BannedKeywords {
		if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" {
			banned = append(banned, kw)
		}
	}

	kept := make([]*VideoRecord, 0, len(records))
	for _, v := range records {
		if v == nil {
			continue
		}
		play, like := v.PlayCount(), v.LikeCount()
		if play < c.MinPlay {
			continue
		}

		var likeRatio float64
		if play > 0 {
			likeRatio = float64(like) / float64(play)
		}
		if likeRatio < c.MinLikeRatio {
			continue
		}

		if containsAny(strings.ToLower(v.Title+" "+v.Tag), banned) {
			continue
		}
		kept = append(kept, v)
	}
	return kept
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
