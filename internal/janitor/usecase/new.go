package usecase

import (
	"group-janitor/internal/janitor"
	pkgLog "group-janitor/pkg/log"
	pkgTelegram "group-janitor/pkg/telegram"
)

type usecase struct {
	l      pkgLog.Logger
	bot    *pkgTelegram.Bot
	policy janitor.Policy
}

// New creates the janitor use case with the given owner-restriction policy.
func New(l pkgLog.Logger, bot *pkgTelegram.Bot, policy janitor.Policy) janitor.UseCase {
	return &usecase{
		l:      l,
		bot:    bot,
		policy: policy,
	}
}
