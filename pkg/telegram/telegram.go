package telegram

import (
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultAPIBase = "https://api.telegram.org"

// Client relays alert messages to a Telegram chat via the Bot API.
// It mirrors the out-of-band alert channel the sensor pipeline uses.
type Client struct {
	botToken   string
	chatID     string
	apiBase    string
	httpClient *http.Client
}

func NewClient(botToken, chatID string) *Client {
	return &Client{
		botToken:   botToken,
		chatID:     chatID,
		apiBase:    defaultAPIBase,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// SendMessage posts a text message to the configured chat.
func (c *Client) SendMessage(text string) error {
	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", c.apiBase, c.botToken)

	resp, err := c.httpClient.PostForm(endpoint, url.Values{
		"chat_id": {c.chatID},
		"text":    {text},
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram sendMessage returned status %d", resp.StatusCode)
	}
	return nil
}
