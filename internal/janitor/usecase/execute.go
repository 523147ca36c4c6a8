package usecase

import (
	"context"
	"fmt"

	"group-janitor/internal/janitor"
)

// Execute performs one outbound Bot API call. At-most-once: failures are
// returned for logging, never retried.
func (uc *usecase) Execute(ctx context.Context, action janitor.Action) error {
	switch action.Type {
	case janitor.ActionSendHelp:
		uc.l.Infof(ctx, "janitor: sending help text to chat %d", action.ChatID)
		return uc.bot.SendMessage(action.ChatID, HelpText)

	case janitor.ActionDeleteMessage:
		uc.l.Infof(ctx, "janitor: deleting message %d in chat %d", action.MessageID, action.ChatID)
		return uc.bot.DeleteMessage(action.ChatID, action.MessageID)

	case janitor.ActionLeaveGroup:
		uc.l.Warnf(ctx, "janitor: unauthorized addition, leaving chat %d", action.ChatID)
		return uc.bot.LeaveChat(action.ChatID)
	}

	return fmt.Errorf("unknown action type %q", action.Type)
}
