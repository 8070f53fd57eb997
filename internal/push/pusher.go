package push

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"

	"bilifeed/internal/config"
	"bilifeed/internal/search"
	"bilifeed/internal/store"
	"bilifeed/pkg/log"
)

// Notifier delivers one rendered digest.
type Notifier interface {
	Send(ctx context.Context, title, content string) error
}

// Recorder persists the pushed videos for the history API. Optional.
type Recorder interface {
	RecordPushed(records []*search.VideoRecord) error
}

// Publisher fans pushed records out to downstream consumers. *nsq.Producer
// satisfies it. Optional.
type Publisher interface {
	Publish(topic string, body []byte) error
}

// Snapshotter archives the export form of a completed run. Optional.
type Snapshotter interface {
	Upload(ctx context.Context, records []search.ExportRecord) error
}

// Pusher runs the full digest pipeline: aggregate, drop already-sent videos,
// cap, render, deliver, then record history and fan out.
type Pusher struct {
	conf      config.PushConfig
	agg       *search.Aggregator
	store     *store.Store
	notifier  Notifier
	recorder  Recorder
	publisher Publisher
	topic     string
	snap      Snapshotter
	logger    *logrus.Entry
}

func NewPusher(conf config.PushConfig, agg *search.Aggregator, st *store.Store, notifier Notifier) *Pusher {
	return &Pusher{
		conf:     conf,
		agg:      agg,
		store:    st,
		notifier: notifier,
		logger:   log.NewLogger().WithField("component", "pusher"),
	}
}

// WithRecorder adds a push-history recorder.
func (p *Pusher) WithRecorder(r Recorder) *Pusher {
	p.recorder = r
	return p
}

// WithPublisher adds a topic publisher for pushed records.
func (p *Pusher) WithPublisher(pub Publisher, topic string) *Pusher {
	p.publisher = pub
	p.topic = topic
	return p
}

// WithSnapshotter adds an export snapshot sink.
func (p *Pusher) WithSnapshotter(s Snapshotter) *Pusher {
	p.snap = s
	return p
}

// Run executes one push cycle and returns how many videos were delivered.
// Aggregation and delivery failures abort the cycle; history, fan-out and
// snapshot failures are logged and absorbed. Sent ids are only marked after
// a successful delivery, so a failed push retries the same videos next run.
func (p *Pusher) Run(ctx context.Context) (int, error) {
	req := search.Request{
		Keywords: p.conf.Request.Keywords,
		PageSize: p.conf.Request.PageSize,
		TimeMode: p.conf.Request.TimeMode,
		Criteria: &search.Criteria{
			MinPlay:        p.conf.Request.MinPlay,
			MinLikeRatio:   p.conf.Request.MinLikeRatio,
			BannedKeywords: p.conf.Request.BannedKeywords,
		},
		Shuffle: true,
	}

	records, err := p.agg.Aggregate(ctx, req)
	if err != nil {
		return 0, err
	}

	fresh := p.store.FilterUnsent(records)
	if len(fresh) == 0 {
		p.logger.Info("no new videos to push")
		return 0, nil
	}
	if p.conf.MaxPush > 0 && len(fresh) > p.conf.MaxPush {
		fresh = fresh[:p.conf.MaxPush]
	}

	digest := BuildDigest(fresh, p.conf.MaxChars)
	if err := p.notifier.Send(ctx, p.conf.Title, digest); err != nil {
		return 0, err
	}

	bvids := make([]string, len(fresh))
	for i, v := range fresh {
		bvids[i] = v.Bvid
	}
	if err := p.store.MarkSent(bvids); err != nil {
		p.logger.WithError(err).Error("mark sent history failed")
	}

	if p.recorder != nil {
		if err := p.recorder.RecordPushed(fresh); err != nil {
			p.logger.WithError(err).Error("record push history failed")
		}
	}
	p.fanOut(ctx, fresh)

	p.logger.Infof("pushed %d videos, %d candidates total", len(fresh), len(records))
	return len(fresh), nil
}

func (p *Pusher) fanOut(ctx context.Context, fresh []*search.VideoRecord) {
	if p.publisher != nil && p.topic != "" {
		for _, rec := range search.ToStructured(fresh) {
			body, err := json.Marshal(rec)
			if err != nil {
				p.logger.WithError(err).Errorf("marshal pushed record %s failed", rec.Bvid)
				continue
			}
			if err := p.publisher.Publish(p.topic, body); err != nil {
				p.logger.WithError(err).Errorf("publish pushed record %s failed", rec.Bvid)
			}
		}
	}

	if p.snap != nil {
		if err := p.snap.Upload(ctx, search.ToStructured(fresh)); err != nil {
			p.logger.WithError(err).Error("upload export snapshot failed")
		}
	}
}
