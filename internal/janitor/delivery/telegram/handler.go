package telegram

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"group-janitor/internal/janitor"
	pkgResponse "group-janitor/pkg/response"
	pkgTelegram "group-janitor/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately after scheduling the outbound call in
// a background goroutine. The 200 is unconditional on the outcome of that
// call: Telegram re-delivers on any non-success status, and a re-delivered
// owner-leave decision on stale state is not something we want.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	// Exact-match shared secret, checked before touching the body.
	if c.GetHeader(pkgTelegram.SecretTokenHeader) != h.secret {
		h.l.Warnf(ctx, "telegram handler: %v (from %s)", janitor.ErrBadSecret, c.ClientIP())
		pkgResponse.Forbidden(c)
		return
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		err = fmt.Errorf("%w: %v", janitor.ErrMalformedUpdate, err)
		h.l.Errorf(ctx, "telegram handler: %v", err)
		pkgResponse.InternalError(c, err)
		return
	}

	cls := h.uc.Classify(update)
	action, ok := h.uc.Decide(cls)
	if !ok {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	h.l.Debugf(ctx, "telegram handler: update %d classified as %s, action %s", update.UpdateID, cls.Kind, action.Type)

	// Fire and forget: the goroutine outlives the request, detached from the
	// request context (which is cancelled once the response is written).
	go func() {
		bgCtx := context.Background()
		if err := h.uc.Execute(bgCtx, action); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background %s failed: %v", action.Type, err)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}
