package usecase

import "group-janitor/internal/janitor"

// Decide maps a classification to at most one outbound action, applying the
// owner-restriction policy to group joins.
func (uc *usecase) Decide(c janitor.Classification) (janitor.Action, bool) {
	switch c.Kind {
	case janitor.KindPrivateHelp:
		return janitor.Action{
			Type:   janitor.ActionSendHelp,
			ChatID: c.ChatID,
		}, true

	case janitor.KindGroupJoin:
		return uc.decideJoin(c), true

	case janitor.KindGroupLeave:
		return janitor.Action{
			Type:      janitor.ActionDeleteMessage,
			ChatID:    c.ChatID,
			MessageID: c.MessageID,
		}, true
	}

	return janitor.Action{}, false
}

// decideJoin applies the owner restriction. The restriction is about who
// added the bot, not about ordinary membership churn: joins that do not
// include the bot itself are always deleted.
func (uc *usecase) decideJoin(c janitor.Classification) janitor.Action {
	deleteMessage := janitor.Action{
		Type:      janitor.ActionDeleteMessage,
		ChatID:    c.ChatID,
		MessageID: c.MessageID,
	}

	if !uc.policy.Active {
		return deleteMessage
	}

	botAdded := false
	for _, id := range c.NewMemberIDs {
		if id == uc.policy.BotID {
			botAdded = true
			break
		}
	}
	if !botAdded {
		return deleteMessage
	}

	if c.ActorID == uc.policy.OwnerID {
		return deleteMessage
	}

	// Unauthorized addition: leave the group. The join message stays - the
	// bot no longer exercises any privilege in that chat.
	return janitor.Action{
		Type:   janitor.ActionLeaveGroup,
		ChatID: c.ChatID,
	}
}
