package telegram_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"group-janitor/pkg/telegram"
)

func TestBot(t *testing.T) {
	deleted := map[int64]bool{}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		if strings.HasSuffix(path, "/setWebhook") {
			var req telegram.SetWebhookRequest
			json.NewDecoder(r.Body).Decode(&req)
			if req.URL == "cause_error" {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{"ok": false, "description": "invalid url"}`))
				return
			}
			if req.URL == "cause_500" {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if req.SecretToken != "shhh" {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{"ok": false, "description": "missing secret_token"}`))
				return
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"ok": true, "description": "Webhook was set"}`))
			return
		}

		if strings.HasSuffix(path, "/sendMessage") {
			var req telegram.SendMessageRequest
			json.NewDecoder(r.Body).Decode(&req)
			if req.Text == "cause_error" {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"ok": false, "description": "invalid text"}`))
				return
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"ok": true}`))
			return
		}

		if strings.HasSuffix(path, "/deleteMessage") {
			var req telegram.DeleteMessageRequest
			json.NewDecoder(r.Body).Decode(&req)
			if deleted[req.MessageID] {
				// Telegram answers "already gone" with ok:false
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"ok": false, "description": "Bad Request: message to delete not found"}`))
				return
			}
			deleted[req.MessageID] = true
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"ok": true}`))
			return
		}

		if strings.HasSuffix(path, "/leaveChat") {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"ok": true}`))
			return
		}

		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	bot := telegram.NewBot("test-token")
	bot.SetAPIURL(ts.URL) // Route commands to test server instead of api.telegram.org

	t.Run("SetWebhook Success", func(t *testing.T) {
		raw, err := bot.SetWebhook("https://example.com/webhook/telegram", "shhh", []string{"message"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(string(raw), "Webhook was set") {
			t.Fatalf("expected raw confirmation payload, got: %s", raw)
		}
	})

	t.Run("SetWebhook API Failed", func(t *testing.T) {
		_, err := bot.SetWebhook("cause_error", "shhh", nil)
		if err == nil || !strings.Contains(err.Error(), "invalid url") {
			t.Fatalf("expected api failure error, got: %v", err)
		}
	})

	t.Run("SetWebhook HTTP Failed", func(t *testing.T) {
		_, err := bot.SetWebhook("cause_500", "shhh", nil)
		if err == nil {
			t.Fatalf("expected http decoding error")
		}
	})

	t.Run("SendMessage Success", func(t *testing.T) {
		err := bot.SendMessage(12345, "Hello")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("SendMessage API Failed", func(t *testing.T) {
		err := bot.SendMessage(12345, "cause_error")
		if err == nil || !strings.Contains(err.Error(), "invalid text") {
			t.Fatalf("expected api failure error, got: %v", err)
		}
	})

	t.Run("DeleteMessage Success", func(t *testing.T) {
		err := bot.DeleteMessage(100, 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("DeleteMessage Already Deleted", func(t *testing.T) {
		// Second delete of the same message must surface as a plain error,
		// never a panic.
		err := bot.DeleteMessage(100, 5)
		if err == nil || !strings.Contains(err.Error(), "message to delete not found") {
			t.Fatalf("expected not-found error, got: %v", err)
		}
	})

	t.Run("LeaveChat Success", func(t *testing.T) {
		err := bot.LeaveChat(100)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("Invalid API URL logic", func(t *testing.T) {
		badBot := telegram.NewBot("test")
		badBot.SetAPIURL("http://invalid-url.local:1234")
		err := badBot.SendMessage(12345, "fail")
		if err == nil {
			t.Errorf("expected network failure on invalid domain")
		}
	})
}
