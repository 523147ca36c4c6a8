package usecase

import (
	"group-janitor/internal/janitor"
	pkgTelegram "group-janitor/pkg/telegram"
)

// Classify determines the category of one inbound update.
//
// Order matters: join detection runs before leave detection. The Bot API
// never delivers both in one message, so simultaneity is not defended
// against here.
func (uc *usecase) Classify(update pkgTelegram.Update) janitor.Classification {
	msg := update.Message
	if msg == nil || msg.Chat == nil {
		return janitor.Classification{Kind: janitor.KindIrrelevant}
	}

	switch msg.Chat.Type {
	case pkgTelegram.ChatTypePrivate:
		if msg.Text == "/start" || msg.Text == "/help" {
			return janitor.Classification{
				Kind:   janitor.KindPrivateHelp,
				ChatID: msg.Chat.ID,
			}
		}

	case pkgTelegram.ChatTypeGroup, pkgTelegram.ChatTypeSupergroup:
		if len(msg.NewChatMembers) > 0 {
			memberIDs := make([]int64, 0, len(msg.NewChatMembers))
			for _, m := range msg.NewChatMembers {
				memberIDs = append(memberIDs, m.ID)
			}

			var actorID int64
			if msg.From != nil {
				actorID = msg.From.ID
			}

			return janitor.Classification{
				Kind:         janitor.KindGroupJoin,
				ChatID:       msg.Chat.ID,
				MessageID:    msg.MessageID,
				NewMemberIDs: memberIDs,
				ActorID:      actorID,
			}
		}

		if msg.LeftChatMember != nil {
			return janitor.Classification{
				Kind:      janitor.KindGroupLeave,
				ChatID:    msg.Chat.ID,
				MessageID: msg.MessageID,
			}
		}
	}

	return janitor.Classification{Kind: janitor.KindIrrelevant}
}
