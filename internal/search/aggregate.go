package search

import (
	"context"
	"math/rand"

	"github.com/sirupsen/logrus"

	"bilifeed/internal/timerange"
	"bilifeed/pkg/log"
)

// Fetcher retrieves the raw search payload for one keyword. A failed fetch is
// reported as an error, distinct from an empty result.
type Fetcher interface {
	Search(ctx context.Context, keyword string, pageSize int, tr timerange.Range) ([]RawRecord, error)
}

// Request describes one end-to-end aggregation run.
type Request struct {
	Keywords    []string
	PageSize    int
	TimeMode    string
	CustomStart string
	CustomEnd   string
	// Criteria is optional; when nil every normalized record passes through.
	Criteria *Criteria
	Shuffle  bool
}

// Aggregator runs the fetch -> normalize -> filter pipeline over a keyword
// set and merges the results.
type Aggregator struct {
	fetcher Fetcher
	logger  *logrus.Entry
}

func NewAggregator(fetcher Fetcher) *Aggregator {
	return &Aggregator{
		fetcher: fetcher,
		logger:  log.NewLogger().WithField("component", "aggregator"),
	}
}

// Aggregate resolves the time range once, collects per-keyword results,
// deduplicates by bvid and optionally shuffles. Only time-range resolution
// errors propagate; a keyword whose fetch fails contributes zero records and
// the batch carries on.
func (a *Aggregator) Aggregate(ctx context.Context, req Request) ([]*VideoRecord, error) {
	tr, err := timerange.Resolve(req.TimeMode, req.CustomStart, req.CustomEnd)
	if err != nil {
		return nil, err
	}
	if tr.Start > tr.End {
		a.logger.Warnf("custom range starts after it ends (%d > %d), expect zero results", tr.Start, tr.End)
	}

	var all []*VideoRecord
	for _, keyword := range req.Keywords {
		raws, err := a.fetcher.Search(ctx, keyword, req.PageSize, tr)
		if err != nil {
			a.logger.WithError(err).Warnf("fetch keyword %q failed, skipping", keyword)
			continue
		}

		records := make([]*VideoRecord, 0, len(raws))
		for _, raw := range raws {
			if v := NewVideoRecord(raw); v != nil {
				records = append(records, v)
			}
		}
		if req.Criteria != nil {
			records = Filter(records, *req.Criteria)
		}
		a.logger.Debugf("keyword %q: %d raw, %d kept", keyword, len(raws), len(records))
		all = append(all, records...)
	}

	all = dedupByBvid(all)
	if req.Shuffle {
		rand.Shuffle(len(all), func(i, j int) {
			all[i], all[j] = all[j], all[i]
		})
	}
	return all, nil
}

// dedupByBvid collapses duplicates hit through several keywords. The slot
// keeps its first-occurrence position while the value from the last keyword
// wins; content is expected identical either way.
func dedupByBvid(records []*VideoRecord) []*VideoRecord {
	out := make([]*VideoRecord, 0, len(records))
	index := make(map[string]int, len(records))
	for _, v := range records {
		if at, seen := index[v.Bvid]; seen {
			out[at] = v
			continue
		}
		index[v.Bvid] = len(out)
		out = append(out, v)
	}
	return out
}
