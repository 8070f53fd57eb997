package push

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bilifeed/internal/config"
	"bilifeed/internal/search"
	"bilifeed/internal/store"
	"bilifeed/internal/timerange"
	"bilifeed/pkg/log"
)

type stubFetcher struct {
	raws []search.RawRecord
}

func (f *stubFetcher) Search(context.Context, string, int, timerange.Range) ([]search.RawRecord, error) {
	return f.raws, nil
}

type stubNotifier struct {
	titles   []string
	contents []string
	err      error
}

func (n *stubNotifier) Send(_ context.Context, title, content string) error {
	if n.err != nil {
		return n.err
	}
	n.titles = append(n.titles, title)
	n.contents = append(n.contents, content)
	return nil
}

type stubPublisher struct {
	topics []string
	bodies [][]byte
}

func (p *stubPublisher) Publish(topic string, body []byte) error {
	p.topics = append(p.topics, topic)
	p.bodies = append(p.bodies, body)
	return nil
}

func pushConf() config.PushConfig {
	return config.PushConfig{
		Title:    "digest",
		MaxPush:  10,
		MaxChars: 20000,
		Request: config.RequestConfig{
			Keywords:     []string{"kw"},
			MinPlay:      1000,
			MinLikeRatio: 0.04,
			PageSize:     20,
			TimeMode:     "3d",
		},
	}
}

func newTestPusher(t *testing.T, fetcher search.Fetcher, conf config.PushConfig, n Notifier) (*Pusher, *store.Store) {
	t.Helper()
	st, err := store.NewStore(t.TempDir(), log.NewLogger())
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return NewPusher(conf, search.NewAggregator(fetcher), st, n), st
}

func TestPusherRunDeliversAndMarksHistory(t *testing.T) {
	fetcher := &stubFetcher{raws: []search.RawRecord{
		{"bvid": "BV1", "title": "good one", "play": "5000", "like": "400"},
		{"bvid": "BV2", "title": "weak", "play": "10", "like": "0"},
	}}
	notifier := &stubNotifier{}
	pub := &stubPublisher{}

	p, st := newTestPusher(t, fetcher, pushConf(), notifier)
	p.WithPublisher(pub, "pushed_videos")

	n, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.Len(t, notifier.contents, 1)
	assert.Contains(t, notifier.contents[0], "good one")
	assert.Equal(t, []string{"digest"}, notifier.titles)

	sent, err := st.IsSent("BV1")
	require.NoError(t, err)
	assert.True(t, sent)

	require.Len(t, pub.bodies, 1)
	assert.Equal(t, "pushed_videos", pub.topics[0])
	assert.Contains(t, string(pub.bodies[0]), "BV1")
}

func TestPusherRunSkipsAlreadySent(t *testing.T) {
	fetcher := &stubFetcher{raws: []search.RawRecord{
		{"bvid": "BV1", "title": "seen before", "play": "5000", "like": "400"},
	}}
	notifier := &stubNotifier{}

	p, st := newTestPusher(t, fetcher, pushConf(), notifier)
	require.NoError(t, st.MarkSent([]string{"BV1"}))

	n, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, notifier.contents, "nothing new, nothing sent")
}

func TestPusherRunCapsAtMaxPush(t *testing.T) {
	raws := make([]search.RawRecord, 25)
	for i := range raws {
		raws[i] = search.RawRecord{
			"bvid": "BV" + string(rune('A'+i)), "title": "t", "play": "5000", "like": "400",
		}
	}
	conf := pushConf()
	conf.MaxPush = 5

	p, _ := newTestPusher(t, &stubFetcher{raws: raws}, conf, &stubNotifier{})
	n, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestPusherRunDeliveryFailureKeepsHistoryClean(t *testing.T) {
	fetcher := &stubFetcher{raws: []search.RawRecord{
		{"bvid": "BV1", "title": "t", "play": "5000", "like": "400"},
	}}
	notifier := &stubNotifier{err: errors.New("relay down")}

	p, st := newTestPusher(t, fetcher, pushConf(), notifier)
	_, err := p.Run(context.Background())
	require.Error(t, err)

	sent, err := st.IsSent("BV1")
	require.NoError(t, err)
	assert.False(t, sent, "failed pushes must be retried next run")
}

func TestPusherRunInvalidModeFails(t *testing.T) {
	conf := pushConf()
	conf.Request.TimeMode = "bogus"

	p, _ := newTestPusher(t, &stubFetcher{}, conf, &stubNotifier{})
	_, err := p.Run(context.Background())
	assert.ErrorIs(t, err, timerange.ErrInvalidTimeMode)
}
