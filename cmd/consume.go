package cmd

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"bilifeed/internal/config"
	"bilifeed/internal/consumer"
)

var consumeCommand = &cobra.Command{
	Use:   "consume",
	Short: "Consume pushed videos from NSQ and archive them",
	Run: func(cmd *cobra.Command, args []string) {
		runConsume()
	},
}

func runConsume() {
	conf, err := config.InitConfig(configFile)
	if err != nil {
		logrus.Fatal("initConfig error, ", err.Error())
	}
	if conf.NSQ.NSQDAddr == "" {
		logrus.Fatal("nsq.nsqdAddr is required for consume")
	}

	consumerConf := consumer.DefaultConfig()
	consumerConf.NSQDAddr = conf.NSQ.NSQDAddr
	if conf.NSQ.Topic != "" {
		consumerConf.Topic = conf.NSQ.Topic
	}
	consumerConf.ArchivePath = filepath.Join(conf.DataDir, "pushed.jsonl")

	c, err := consumer.NewConsumer(consumerConf)
	if err != nil {
		logrus.Fatal("create consumer failed, ", err.Error())
	}
	if err := c.Start(); err != nil {
		logrus.Fatal("start consumer failed, ", err.Error())
	}

	termChan := make(chan os.Signal, 1)
	signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)

	<-termChan
	logrus.Infof("consumer is shutting down...")
	c.Stop()
}
