package cmd

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/nsqio/go-nsq"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"bilifeed/internal/bilibili"
	"bilifeed/internal/config"
	"bilifeed/internal/model"
	"bilifeed/internal/push"
	"bilifeed/internal/search"
	"bilifeed/internal/server"
	"bilifeed/internal/store"
	"bilifeed/pkg/log"
)

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Start bilifeed server",
	Run: func(cmd *cobra.Command, args []string) {
		runServe()
	},
}

func runServe() {
	conf, err := config.InitConfig(configFile)
	if err != nil {
		logrus.Fatal("initConfig error, ", err.Error())
	}

	db, err := model.InitDB(conf.DB)
	if err != nil {
		logrus.Fatal("failed to init database, ", err.Error())
	}
	defer func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	}()
	if err := model.AutoMigrate(db); err != nil {
		logrus.Fatal("auto migrate failed, ", err.Error())
	}
	if err := model.EnsureAdmin(conf.AdminUsername, conf.AdminPassword); err != nil {
		logrus.Fatal("ensure admin user failed, ", err.Error())
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	st, err := store.NewStore(filepath.Join(conf.DataDir, "store"), log.GetLogger(ctx))
	if err != nil {
		logrus.Fatal("open local store failed, ", err.Error())
	}
	defer st.Close()

	agg := search.NewAggregator(bilibili.NewClient(conf.Bilibili))
	pusher := buildPusher(conf, agg, st, true)

	srv, err := server.NewServer(ctx, conf, agg, st, pusher)
	if err != nil {
		logrus.Fatalf("newServer error, %s", err.Error())
	}
	go srv.Start()

	termChan := make(chan os.Signal, 1)
	signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)

	<-termChan
	logrus.Infof("server is shutting down...")
	srv.Shutdown()
}

// buildPusher wires the push pipeline from config. Returns nil when no
// PushPlus token is configured; the recorder, NSQ fan-out and S3 snapshot
// sinks are each optional. withHistory requires an initialized database.
func buildPusher(conf *config.Config, agg *search.Aggregator, st *store.Store, withHistory bool) *push.Pusher {
	if conf.Push.Token == "" {
		logrus.Info("pushplus token not configured, push disabled")
		return nil
	}

	notifier := push.NewPushPlusClient(conf.Push.Token, conf.Push.URL)
	pusher := push.NewPusher(conf.Push, agg, st, notifier)
	if withHistory {
		pusher.WithRecorder(push.DBRecorder{})
	}

	if conf.NSQ.NSQDAddr != "" {
		producer, err := nsq.NewProducer(conf.NSQ.NSQDAddr, nsq.NewConfig())
		if err != nil {
			logrus.WithError(err).Error("create NSQ producer failed, fan-out disabled")
		} else {
			pusher.WithPublisher(producer, conf.NSQ.Topic)
		}
	}

	if conf.S3.AccessKeyID != "" {
		minioCli, err := minio.New(conf.S3.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(conf.S3.AccessKeyID, conf.S3.SecretAccessKey, ""),
			Secure: conf.S3.UseSSL,
			Region: conf.S3.Region,
		})
		if err != nil {
			logrus.WithError(err).Error("create minio client failed, snapshots disabled")
		} else {
			pusher.WithSnapshotter(push.NewS3Snapshot(minioCli, conf.S3.Bucket, conf.S3.Prefix))
		}
	}

	return pusher
}
