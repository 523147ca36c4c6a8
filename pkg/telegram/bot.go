package telegram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Bot is the Telegram Bot API client. Every operation is a single outbound
// call with no retries.
type Bot struct {
	token      string
	apiURL     string
	httpClient *http.Client
}

// NewBot creates a new Telegram Bot client with the given token.
func NewBot(token string) *Bot {
	return &Bot{
		token:      token,
		apiURL:     fmt.Sprintf("https://api.telegram.org/bot%s", token),
		httpClient: &http.Client{},
	}
}

// SetAPIURL overrides the default Telegram API URL for testing purposes.
func (b *Bot) SetAPIURL(url string) {
	b.apiURL = url
}

// SetWebhook registers the webhook URL with Telegram, restricting deliveries
// to the given update types and attaching the shared secret Telegram will
// echo back on every delivery. The raw confirmation payload is returned for
// operator visibility.
func (b *Bot) SetWebhook(webhookURL, secretToken string, allowedUpdates []string) ([]byte, error) {
	url := fmt.Sprintf("%s/setWebhook", b.apiURL)
	payload := SetWebhookRequest{
		URL:            webhookURL,
		SecretToken:    secretToken,
		AllowedUpdates: allowedUpdates,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal setWebhook request: %w", err)
	}

	resp, err := b.httpClient.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to set webhook: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read webhook response: %w", err)
	}

	var apiResp APIResponse
	if err := json.Unmarshal(raw, &apiResp); err != nil {
		return raw, fmt.Errorf("failed to decode webhook response: %w", err)
	}
	if !apiResp.OK {
		return raw, fmt.Errorf("telegram setWebhook failed: %s", apiResp.Description)
	}
	return raw, nil
}

// SendMessage sends a plain text message to a Telegram chat.
func (b *Bot) SendMessage(chatID int64, text string) error {
	return b.call("sendMessage", SendMessageRequest{
		ChatID: chatID,
		Text:   text,
	})
}

// DeleteMessage deletes a single message from a chat. Deleting a message that
// is already gone returns an API error which callers are expected to swallow.
func (b *Bot) DeleteMessage(chatID, messageID int64) error {
	return b.call("deleteMessage", DeleteMessageRequest{
		ChatID:    chatID,
		MessageID: messageID,
	})
}

// LeaveChat makes the bot leave the given group chat.
func (b *Bot) LeaveChat(chatID int64) error {
	return b.call("leaveChat", LeaveChatRequest{
		ChatID: chatID,
	})
}

// call POSTs a JSON payload to the named Bot API method and turns transport
// failures, non-200 statuses and ok:false responses into errors.
func (b *Bot) call(method string, payload any) error {
	url := fmt.Sprintf("%s/%s", b.apiURL, method)

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s request: %w", method, err)
	}

	resp, err := b.httpClient.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to call %s: %w", method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telegram %s API error %d: %s", method, resp.StatusCode, string(raw))
	}

	var apiResp APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", method, err)
	}
	if !apiResp.OK {
		return fmt.Errorf("telegram %s failed: %s", method, apiResp.Description)
	}

	return nil
}
