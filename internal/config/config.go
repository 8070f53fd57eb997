package config

import (
	"bilifeed/internal/bilibili"
	"bilifeed/internal/model"
)

const defaultSqlDsn = "root:123456@tcp(127.0.0.1:3306)/bilifeed?charset=utf8mb4&parseTime=True&loc=Local"

type S3Config struct {
	Bucket          string `yaml:"bucket"`
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"accessKeyID"`
	SecretAccessKey string `yaml:"secretAccessKey"`
	UseSSL          bool   `yaml:"useSSL"`
	Region          string `yaml:"region"`
	// Prefix is the object key prefix for export snapshots.
	Prefix string `yaml:"prefix"`
}

type NSQConfig struct {
	NSQDAddr string `yaml:"nsqdAddr"`
	Topic    string `yaml:"topic"`
}

// RequestConfig is the aggregation request the watch daemon runs on every
// tick; the serve API takes the same fields per request instead.
type RequestConfig struct {
	Keywords       []string `yaml:"keywords"`
	BannedKeywords []string `yaml:"bannedKeywords"`
	MinPlay        int64    `yaml:"minPlay"`
	MinLikeRatio   float64  `yaml:"minLikeRatio"`
	PageSize       int      `yaml:"pageSize"`
	TimeMode       string   `yaml:"timeMode"`
}

type PushConfig struct {
	Token string `yaml:"token"`
	URL   string `yaml:"url"`
	Title string `yaml:"title"`
	// Interval between watch-daemon runs, in minutes.
	Interval int `yaml:"interval"`
	// MaxPush caps how many videos go into one digest.
	MaxPush int `yaml:"maxPush"`
	// MaxChars is the PushPlus content size limit.
	MaxChars int           `yaml:"maxChars"`
	Request  RequestConfig `yaml:"request"`
}

type Config struct {
	Addr      string `yaml:"addr"`
	SSLCert   string `yaml:"sslCert"`
	SSLKey    string `yaml:"sslKey"`
	JwtSecret string `yaml:"jwtSecret"`
	DataDir   string `yaml:"dataDir"`
	// AdminUsername/AdminPassword seed the initial admin account on first
	// start. Change the password after the first login.
	AdminUsername string          `yaml:"adminUsername"`
	AdminPassword string          `yaml:"adminPassword"`
	DB            model.DBConfig  `yaml:"db"`
	S3            S3Config        `yaml:"s3"`
	NSQ           NSQConfig       `yaml:"nsq"`
	Bilibili      bilibili.Config `yaml:"bilibili"`
	Push          PushConfig      `yaml:"push"`
}

func DefaultConfig() *Config {
	return &Config{
		Addr:          "127.0.0.1:8082",
		DataDir:       "data",
		AdminUsername: "admin",
		AdminPassword: "bilifeed",
		DB: model.DBConfig{
			DSN:          defaultSqlDsn,
			MaxIdleConns: 100,
			MaxOpenConns: 1000,
			MaxLifetime:  60,
		},
		S3: S3Config{
			Bucket:   "bilifeed",
			Endpoint: "127.0.0.1:9000",
			UseSSL:   false,
			Region:   "us-east-1",
			Prefix:   "snapshots",
		},
		NSQ: NSQConfig{
			Topic: "bilifeed_pushed",
		},
		Bilibili: bilibili.DefaultConfig(),
		Push: PushConfig{
			URL:      "https://www.pushplus.plus/send",
			Title:    "B 站视频推送",
			Interval: 1440,
			MaxPush:  10,
			MaxChars: 20000,
			Request: RequestConfig{
				MinPlay:      3000,
				MinLikeRatio: 0.06,
				PageSize:     40,
				TimeMode:     "3d",
			},
		},
	}
}
