package usecase_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"group-janitor/internal/janitor"
	"group-janitor/internal/janitor/usecase"
	pkgTelegram "group-janitor/pkg/telegram"
)

func TestExecute(t *testing.T) {
	var calls []string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(r.URL.Path, "/")
		method := parts[len(parts)-1]

		var payload map[string]interface{}
		json.NewDecoder(r.Body).Decode(&payload)
		calls = append(calls, method)

		if method == "deleteMessage" && payload["message_id"] == float64(404) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"ok": false, "description": "Bad Request: message to delete not found"}`))
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok": true}`))
	}))
	defer ts.Close()

	bot := pkgTelegram.NewBot("test-token")
	bot.SetAPIURL(ts.URL)
	uc := usecase.New(&mockLogger{}, bot, janitor.Policy{})

	ctx := context.Background()

	t.Run("SendHelp", func(t *testing.T) {
		if err := uc.Execute(ctx, janitor.Action{Type: janitor.ActionSendHelp, ChatID: 7}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("DeleteMessage", func(t *testing.T) {
		if err := uc.Execute(ctx, janitor.Action{Type: janitor.ActionDeleteMessage, ChatID: 100, MessageID: 5}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("DeleteMessage already gone", func(t *testing.T) {
		err := uc.Execute(ctx, janitor.Action{Type: janitor.ActionDeleteMessage, ChatID: 100, MessageID: 404})
		if err == nil || !strings.Contains(err.Error(), "not found") {
			t.Fatalf("expected not-found error, got: %v", err)
		}
	})

	t.Run("LeaveGroup", func(t *testing.T) {
		if err := uc.Execute(ctx, janitor.Action{Type: janitor.ActionLeaveGroup, ChatID: 100}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("Unknown action", func(t *testing.T) {
		if err := uc.Execute(ctx, janitor.Action{Type: "bogus"}); err == nil {
			t.Fatal("expected error for unknown action type")
		}
	})

	want := []string{"sendMessage", "deleteMessage", "deleteMessage", "leaveChat"}
	if len(calls) != len(want) {
		t.Fatalf("expected %d outbound calls, got %d: %v", len(want), len(calls), calls)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("call %d: expected %s, got %s", i, want[i], calls[i])
		}
	}
}
