package telegram

// Chat types as delivered by the Bot API.
const (
	ChatTypePrivate    = "private"
	ChatTypeGroup      = "group"
	ChatTypeSupergroup = "supergroup"
)

// SecretTokenHeader carries the shared secret Telegram echoes back on every
// webhook delivery when a secret_token was set during registration.
const SecretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

// Update represents a Telegram incoming update.
type Update struct {
	UpdateID int64    `json:"update_id"`
	Message  *Message `json:"message,omitempty"`
}

// Message represents a Telegram message. Service messages announcing
// membership changes carry new_chat_members or left_chat_member.
type Message struct {
	MessageID      int64  `json:"message_id"`
	From           *User  `json:"from,omitempty"`
	Chat           *Chat  `json:"chat"`
	Date           int64  `json:"date"`
	Text           string `json:"text,omitempty"`
	NewChatMembers []User `json:"new_chat_members,omitempty"`
	LeftChatMember *User  `json:"left_chat_member,omitempty"`
}

// User represents a Telegram user.
type User struct {
	ID        int64  `json:"id"`
	IsBot     bool   `json:"is_bot,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	Username  string `json:"username,omitempty"`
}

// Chat represents a Telegram chat.
type Chat struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// SetWebhookRequest is the payload for Telegram setWebhook API.
type SetWebhookRequest struct {
	URL            string   `json:"url"`
	SecretToken    string   `json:"secret_token,omitempty"`
	AllowedUpdates []string `json:"allowed_updates,omitempty"`
}

// SendMessageRequest is the payload for Telegram sendMessage API.
type SendMessageRequest struct {
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
}

// DeleteMessageRequest is the payload for Telegram deleteMessage API.
type DeleteMessageRequest struct {
	ChatID    int64 `json:"chat_id"`
	MessageID int64 `json:"message_id"`
}

// LeaveChatRequest is the payload for Telegram leaveChat API.
type LeaveChatRequest struct {
	ChatID int64 `json:"chat_id"`
}

// APIResponse is a generic Telegram Bot API response wrapper.
type APIResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description,omitempty"`
}
