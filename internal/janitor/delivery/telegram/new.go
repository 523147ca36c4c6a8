package telegram

import (
	"github.com/gin-gonic/gin"

	"group-janitor/internal/janitor"
	pkgLog "group-janitor/pkg/log"
	pkgTelegram "group-janitor/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
	HandleRegister(c *gin.Context)
}

type handler struct {
	l   pkgLog.Logger
	uc  janitor.UseCase
	bot *pkgTelegram.Bot

	secret     string
	webhookURL string
}

// New creates a new Telegram delivery handler. secret is the inbound shared
// secret; webhookURL is the externally reachable delivery endpoint used by
// HandleRegister (may be empty when no public URL is known).
func New(
	l pkgLog.Logger,
	uc janitor.UseCase,
	bot *pkgTelegram.Bot,
	secret string,
	webhookURL string,
) Handler {
	return &handler{
		l:          l,
		uc:         uc,
		bot:        bot,
		secret:     secret,
		webhookURL: webhookURL,
	}
}
