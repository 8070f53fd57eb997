package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"bilifeed/internal/bilibili"
	"bilifeed/internal/config"
	"bilifeed/internal/search"
)

var searchOpts struct {
	pageSize    int
	timeMode    string
	customStart string
	customEnd   string
	minPlay     int64
	minLikePct  float64
	banned      []string
	noFilter    bool
	noShuffle   bool
	output      string
}

var searchCommand = &cobra.Command{
	Use:   "search <keyword> [keyword...]",
	Short: "Run one aggregated search and print the results",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runSearch(args)
	},
}

func init() {
	flags := searchCommand.Flags()
	flags.IntVar(&searchOpts.pageSize, "page-size", 20, "Results requested per keyword")
	flags.StringVar(&searchOpts.timeMode, "time-mode", "3d", "Publish time window (1d, 3d, 7d, 1m, 1y, custom)")
	flags.StringVar(&searchOpts.customStart, "start", "", "Custom window start date (YYYY-MM-DD)")
	flags.StringVar(&searchOpts.customEnd, "end", "", "Custom window end date (YYYY-MM-DD)")
	flags.Int64Var(&searchOpts.minPlay, "min-play", search.DefaultMinPlay, "Minimum play count")
	flags.Float64Var(&searchOpts.minLikePct, "min-like-pct", search.DefaultMinLikeRatio*100, "Minimum like/play percentage")
	flags.StringSliceVar(&searchOpts.banned, "banned", nil, "Banned keywords, title or tag match drops the video")
	flags.BoolVar(&searchOpts.noFilter, "no-filter", false, "Skip quality filtering")
	flags.BoolVar(&searchOpts.noShuffle, "no-shuffle", false, "Keep aggregation order instead of shuffling")
	flags.StringVarP(&searchOpts.output, "output", "o", "", "Write export JSON to this file instead of stdout")
}

func runSearch(keywords []string) {
	conf := config.DefaultConfig()
	if _, err := os.Stat(configFile); err == nil {
		conf, err = config.InitConfig(configFile)
		if err != nil {
			logrus.Fatal("initConfig error, ", err.Error())
		}
	}

	req := search.Request{
		Keywords:    keywords,
		PageSize:    searchOpts.pageSize,
		TimeMode:    searchOpts.timeMode,
		CustomStart: searchOpts.customStart,
		CustomEnd:   searchOpts.customEnd,
		Shuffle:     !searchOpts.noShuffle,
	}
	if !searchOpts.noFilter {
		req.Criteria = &search.Criteria{
			MinPlay:        searchOpts.minPlay,
			MinLikeRatio:   searchOpts.minLikePct / 100,
			BannedKeywords: searchOpts.banned,
		}
	}

	agg := search.NewAggregator(bilibili.NewClient(conf.Bilibili))
	records, err := agg.Aggregate(context.Background(), req)
	if err != nil {
		logrus.Fatal("search failed, ", err.Error())
	}
	logrus.Infof("got %d videos", len(records))

	if searchOpts.output != "" {
		if err := search.WriteJSON(searchOpts.output, records); err != nil {
			logrus.Fatal("write output failed, ", err.Error())
		}
		return
	}

	data, err := json.MarshalIndent(search.ToStructured(records), "", "  ")
	if err != nil {
		logrus.Fatal("marshal results failed, ", err.Error())
	}
	fmt.Println(string(data))
}
