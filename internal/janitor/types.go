package janitor

// Kind categorizes one inbound update.
type Kind string

const (
	// KindPrivateHelp is a /start or /help command in a private chat.
	KindPrivateHelp Kind = "private_help"
	// KindGroupJoin is a "members joined" service message in a group.
	KindGroupJoin Kind = "group_join"
	// KindGroupLeave is a "member left" service message in a group.
	KindGroupLeave Kind = "group_leave"
	// KindIrrelevant is anything else. Not an error condition.
	KindIrrelevant Kind = "irrelevant"
)

// Classification is the result of classifying one update. Derived
// deterministically and statelessly; consumed by exactly one policy decision.
type Classification struct {
	Kind      Kind
	ChatID    int64
	MessageID int64

	// Join-only fields.
	NewMemberIDs []int64
	ActorID      int64
}

// ActionType names the single outbound call an update may produce.
type ActionType string

const (
	ActionSendHelp      ActionType = "send_help"
	ActionDeleteMessage ActionType = "delete_message"
	ActionLeaveGroup    ActionType = "leave_group"
)

// Action is one outbound call against the Telegram Bot API. At most one
// action is produced per inbound update.
type Action struct {
	Type      ActionType
	ChatID    int64
	MessageID int64
}

// Policy is the owner-restriction configuration applied to group joins.
// Active is derived once at config load; when false OwnerID and BotID are
// ignored entirely.
type Policy struct {
	Active  bool
	OwnerID int64
	BotID   int64
}
