package line

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Client sends replies through the LINE Messaging API. It implements
// bot.Replier.
type Client struct {
	accessToken string
	httpClient  *http.Client
	baseURL     string
	logger      *slog.Logger
}

// NewClient creates a reply client for the LINE Messaging API.
func NewClient(accessToken, baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		accessToken: accessToken,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		logger:  logger,
	}
}

type replyRequest struct {
	ReplyToken string         `json:"replyToken"`
	Messages   []replyMessage `json:"messages"`
}

type replyMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Reply sends one text message using the event's reply token. The token is
// single-use and time-limited by the platform; a consumed or expired token
// surfaces as a non-2xx status and is never retried.
func (c *Client) Reply(ctx context.Context, replyToken, text string) error {
	payload, err := json.Marshal(replyRequest{
		ReplyToken: replyToken,
		Messages:   []replyMessage{{Type: messageTypeText, Text: text}},
	})
	if err != nil {
		return fmt.Errorf("serialize reply: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/bot/message/reply", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create reply request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("reply request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("reply API error: status %d: %s", resp.StatusCode, body)
	}
	return nil
}
