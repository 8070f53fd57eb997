package cmd

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"bilifeed/internal/bilibili"
	"bilifeed/internal/config"
	"bilifeed/internal/model"
	"bilifeed/internal/search"
	"bilifeed/internal/store"
	"bilifeed/pkg/log"
)

var watchCommand = &cobra.Command{
	Use:   "watch",
	Short: "Run the push daemon: search and push new videos on a schedule",
	Run: func(cmd *cobra.Command, args []string) {
		runWatch()
	},
}

func runWatch() {
	conf, err := config.InitConfig(configFile)
	if err != nil {
		logrus.Fatal("initConfig error, ", err.Error())
	}
	if conf.Push.Token == "" {
		logrus.Fatal("pushplus token is required for watch")
	}
	if len(conf.Push.Request.Keywords) == 0 {
		logrus.Fatal("push.request.keywords is empty, nothing to watch")
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	st, err := store.NewStore(filepath.Join(conf.DataDir, "store"), log.GetLogger(ctx))
	if err != nil {
		logrus.Fatal("open local store failed, ", err.Error())
	}
	defer st.Close()

	// The push history table lives in MySQL; the daemon still works without
	// it, only the records API loses data.
	withHistory := true
	if db, dbErr := model.InitDB(conf.DB); dbErr != nil {
		logrus.WithError(dbErr).Warn("database unavailable, push history disabled")
		withHistory = false
	} else if err := model.AutoMigrate(db); err != nil {
		logrus.Fatal("auto migrate failed, ", err.Error())
	}

	agg := search.NewAggregator(bilibili.NewClient(conf.Bilibili))
	pusher := buildPusher(conf, agg, st, withHistory)

	interval := time.Duration(conf.Push.Interval) * time.Minute
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	logrus.Infof("watching %v every %s", conf.Push.Request.Keywords, interval)

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			if n, err := pusher.Run(ctx); err != nil {
				logrus.WithError(err).Error("push run failed")
			} else {
				logrus.Infof("push run finished, %d videos pushed", n)
			}

			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}()

	termChan := make(chan os.Signal, 1)
	signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)

	<-termChan
	logrus.Infof("watcher is shutting down...")
	cancelFunc()
}
