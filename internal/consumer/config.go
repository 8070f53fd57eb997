package consumer

type Config struct {
	NSQDAddr string `yaml:"nsqdAddr"`
	Topic    string `yaml:"topic"`
	Channel  string `yaml:"channel"`
	// ArchivePath is the JSONL file pushed videos are appended to.
	ArchivePath string `yaml:"archivePath"`
}

func DefaultConfig() *Config {
	return &Config{
		Topic:       "bilifeed_pushed",
		Channel:     "bilifeed-archive",
		ArchivePath: "data/pushed.jsonl",
	}
}
