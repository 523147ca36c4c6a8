package janitor

import (
	"context"

	pkgTelegram "group-janitor/pkg/telegram"
)

// UseCase is the decision and dispatch core of the janitor.
type UseCase interface {
	// Classify determines the category of one inbound update. Pure.
	Classify(update pkgTelegram.Update) Classification

	// Decide applies the authorization policy and maps a classification to
	// at most one action. Pure. ok is false when no action is warranted.
	Decide(c Classification) (action Action, ok bool)

	// Execute performs one outbound Bot API call. Failures are returned for
	// logging; callers must not retry.
	Execute(ctx context.Context, action Action) error
}
