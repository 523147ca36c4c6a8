package telegram

import (
	"encoding/json"
	"errors"

	"github.com/gin-gonic/gin"

	pkgResponse "group-janitor/pkg/response"
)

// webhookAllowedUpdates restricts deliveries to plain messages; the janitor
// has no use for edits, callbacks or channel posts.
var webhookAllowedUpdates = []string{"message"}

// HandleRegister is the operator-facing setup trigger. It registers the
// delivery endpoint with Telegram and echoes the raw confirmation payload.
func (h *handler) HandleRegister(c *gin.Context) {
	ctx := c.Request.Context()

	if h.webhookURL == "" {
		err := errors.New("no webhook URL configured")
		h.l.Errorf(ctx, "telegram handler: register failed: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	raw, err := h.bot.SetWebhook(h.webhookURL, h.secret, webhookAllowedUpdates)
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: setWebhook failed: %v", err)
		pkgResponse.Error(c, err, map[string]interface{}{"telegram": string(raw)})
		return
	}

	h.l.Infof(ctx, "telegram handler: webhook registered at %s", h.webhookURL)

	// Pass Telegram's confirmation through untouched for operator visibility.
	pkgResponse.OK(c, gin.H{
		"webhook_url": h.webhookURL,
		"telegram":    json.RawMessage(raw),
	})
}
