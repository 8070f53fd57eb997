package bilibili

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"bilifeed/internal/search"
	"bilifeed/internal/timerange"
	"bilifeed/pkg/log"
)

const defaultEndpoint = "https://api.bilibili.com/x/web-interface/search/type"

// Config carries the endpoint and the request identity (headers, cookies) the
// search API expects. The identity is loaded from configuration; the client
// never manages credentials itself.
type Config struct {
	Endpoint string            `yaml:"endpoint"`
	Timeout  int               `yaml:"timeout"`
	Headers  map[string]string `yaml:"headers"`
	Cookies  map[string]string `yaml:"cookies"`
}

func DefaultConfig() Config {
	return Config{
		Endpoint: defaultEndpoint,
		Timeout:  15,
	}
}

// Client queries the video search endpoint. It implements search.Fetcher.
type Client struct {
	conf    Config
	httpCli *http.Client
	logger  *logrus.Entry
}

func NewClient(conf Config) *Client {
	if conf.Endpoint == "" {
		conf.Endpoint = defaultEndpoint
	}
	timeout := time.Duration(conf.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		conf: conf,
		httpCli: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		logger: log.NewLogger().WithField("component", "bilibili"),
	}
}

type searchResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    struct {
		Result []search.RawRecord `json:"result"`
	} `json:"data"`
}

// Search returns the raw records for one keyword, constrained to pageSize and
// the publish-time range. Non-success statuses, non-zero envelope codes and
// malformed bodies are errors, distinct from a valid empty result.
func (c *Client) Search(ctx context.Context, keyword string, pageSize int, tr timerange.Range) ([]search.RawRecord, error) {
	params := url.Values{}
	params.Set("keyword", keyword)
	params.Set("search_type", "video")
	params.Set("page", "1")
	params.Set("page_size", strconv.Itoa(pageSize))
	params.Set("order", "totalrank")
	params.Set("duration", "0")
	params.Set("pubtime_begin_s", strconv.FormatInt(tr.Start, 10))
	params.Set("pubtime_end_s", strconv.FormatInt(tr.End, 10))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.conf.Endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create search request: %w", err)
	}
	for k, v := range c.conf.Headers {
		req.Header.Set(k, v)
	}
	for k, v := range c.conf.Cookies {
		req.AddCookie(&http.Cookie{Name: k, Value: v})
	}

	resp, err := c.httpCli.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read search response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search request failed with status %d", resp.StatusCode)
	}

	var sr searchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("unmarshal search response: %w", err)
	}
	if sr.Code != 0 {
		return nil, fmt.Errorf("search API returned code %d: %s", sr.Code, sr.Message)
	}

	c.logger.Debugf("keyword %q returned %d raw records", keyword, len(sr.Data.Result))
	return sr.Data.Result, nil
}
