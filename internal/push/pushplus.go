package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"bilifeed/pkg/log"
)

const defaultPushURL = "https://www.pushplus.plus/send"

// PushPlusClient delivers markdown digests through the PushPlus relay.
type PushPlusClient struct {
	token   string
	url     string
	httpCli *http.Client
	logger  *logrus.Entry
}

func NewPushPlusClient(token, url string) *PushPlusClient {
	if url == "" {
		url = defaultPushURL
	}
	return &PushPlusClient{
		token: token,
		url:   url,
		httpCli: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: log.NewLogger().WithField("component", "pushplus"),
	}
}

type pushPlusRequest struct {
	Token    string `json:"token"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Template string `json:"template"`
}

type pushPlusResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

// Send posts one markdown message. Both transport errors and a non-200
// envelope code from the relay count as failures.
func (c *PushPlusClient) Send(ctx context.Context, title, content string) error {
	jsonData, err := json.Marshal(pushPlusRequest{
		Token:    c.token,
		Title:    title,
		Content:  content,
		Template: "markdown",
	})
	if err != nil {
		return fmt.Errorf("marshal push request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("create push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpCli.Do(req)
	if err != nil {
		return fmt.Errorf("push request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read push response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("push failed with status %d: %s", resp.StatusCode, string(body))
	}

	var pr pushPlusResponse
	if err := json.Unmarshal(body, &pr); err == nil && pr.Code != 0 && pr.Code != http.StatusOK {
		return fmt.Errorf("push relay returned code %d: %s", pr.Code, pr.Msg)
	}

	c.logger.Debugf("pushed %d chars", len(content))
	return nil
}
