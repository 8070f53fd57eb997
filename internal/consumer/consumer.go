package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/nsqio/go-nsq"
	"github.com/sirupsen/logrus"

	"bilifeed/internal/search"
	"bilifeed/pkg/log"
)

// Consumer subscribes to the pushed-video topic and archives every record to
// a JSONL file, one line per video. It is the downstream side of the push
// fan-out: anything that wants pushed videos without polling the API can
// start from this package.
type Consumer struct {
	conf     *Config
	ctx      context.Context
	cancel   context.CancelFunc
	consumer *nsq.Consumer
	archive  *Archive
	wg       sync.WaitGroup
	logger   *logrus.Entry
}

func NewConsumer(conf *Config) (*Consumer, error) {
	ctx, cancel := context.WithCancel(context.Background())

	logger := log.GetLogger(ctx).WithField("component", "consumer")

	archive, err := NewArchive(conf.ArchivePath)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("open archive failed: %w", err)
	}

	config := nsq.NewConfig()
	config.MsgTimeout = time.Minute
	config.MaxInFlight = 10
	config.MaxAttempts = 5

	consumer, err := nsq.NewConsumer(conf.Topic, conf.Channel, config)
	if err != nil {
		cancel()
		archive.Close()
		return nil, fmt.Errorf("failed to create NSQ consumer: %w", err)
	}

	c := &Consumer{
		conf:     conf,
		ctx:      ctx,
		cancel:   cancel,
		consumer: consumer,
		archive:  archive,
		logger:   logger,
	}

	consumer.AddHandler(c)

	return c, nil
}

func (c *Consumer) HandleMessage(message *nsq.Message) error {
	var rec search.ExportRecord
	if err := json.Unmarshal(message.Body, &rec); err != nil {
		// A malformed body never becomes valid, drop it.
		c.logger.WithError(err).Error("failed to unmarshal pushed record, dropping")
		return nil
	}

	if err := c.archive.Append(&rec); err != nil {
		c.logger.WithError(err).Errorf("archive %s failed", rec.Bvid)
		return err
	}

	c.logger.Infof("archived pushed video %s (%s)", rec.Bvid, rec.Title)
	return nil
}

func (c *Consumer) Start() error {
	c.logger.Info("starting NSQ consumer...")

	err := c.consumer.ConnectToNSQD(c.conf.NSQDAddr)
	if err != nil {
		return fmt.Errorf("failed to connect to nsqd: %w", err)
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		<-c.ctx.Done()
		c.consumer.Stop()
	}()

	return nil
}

func (c *Consumer) Stop() {
	c.cancel()
	c.wg.Wait()
	if err := c.archive.Close(); err != nil {
		c.logger.WithError(err).Error("close archive failed")
	}
}
