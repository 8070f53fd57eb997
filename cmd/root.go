package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"bilifeed/internal/version"
	"bilifeed/pkg/log"
)

var (
	logLevel   string
	configFile string
)

var rootCmd = &cobra.Command{
	Use:   "bilifeed",
	Short: "bilifeed is a bilibili video search aggregator",
	Long: `Aggregate bilibili video search over multiple keywords, filter, dedup and push.
Version: ` + version.VERSION + `/` + version.COMMIT,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.InitLog(logLevel)
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "Log level (debug, info, warn, error, fatal)")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "etc/config.yaml", "Path to config file")

	rootCmd.AddCommand(serveCommand)
	rootCmd.AddCommand(searchCommand)
	rootCmd.AddCommand(watchCommand)
	rootCmd.AddCommand(consumeCommand)
}
