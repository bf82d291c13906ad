package nttelegram

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/open-control-systems/zigbee-watchdog/components/http/htclient"
)

const defaultAPIHost = "https://api.telegram.org"

// TelegramParams provides various configuration options for Telegram.
type TelegramParams struct {
	// BotToken - Telegram Bot API token.
	BotToken string

	// ChatID - destination chat identifier.
	ChatID string

	// APIHost - Telegram Bot API host, defaults to the public API.
	APIHost string

	// Timeout - HTTP request timeout.
	Timeout time.Duration
}

// Telegram delivers notifications with the Telegram Bot API sendMessage call.
//
// References:
//   - https://core.telegram.org/bots/api#sendmessage
type Telegram struct {
	ctx    context.Context
	client *htclient.HTTPClient
	params TelegramParams
}

// NewTelegram is an initialization of Telegram.
//
// Parameters:
//   - ctx to pass to the HTTP request.
//   - client to perform an actual HTTP request.
//   - params - various notification parameters.
func NewTelegram(
	ctx context.Context,
	client *htclient.HTTPClient,
	params TelegramParams,
) *Telegram {
	if params.APIHost == "" {
		params.APIHost = defaultAPIHost
	}
	if params.Timeout == 0 {
		params.Timeout = time.Second * 10
	}

	return &Telegram{
		ctx:    ctx,
		client: client,
		params: params,
	}
}

// Notify sends the text to the configured chat.
func (t *Telegram) Notify(text string) error {
	ctx, cancel := context.WithTimeout(t.ctx, t.params.Timeout)
	defer cancel()

	form := url.Values{}
	form.Set("chat_id", t.params.ChatID)
	form.Set("text", text)

	sendURL := fmt.Sprintf("%s/bot%s/sendMessage", t.params.APIHost, t.params.BotToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sendURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, _, err := t.client.Do(req)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram: failed to send message: code=%v", resp.StatusCode)
	}

	return nil
}
