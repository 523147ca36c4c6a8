package usecase_test

import (
	"testing"

	"group-janitor/internal/janitor"
)

func TestDecide_PrivateHelp(t *testing.T) {
	// Owner configuration never affects help requests.
	for _, policy := range []janitor.Policy{
		{},
		{Active: true, OwnerID: 1, BotID: 999},
	} {
		uc := newUseCase(policy)
		action, ok := uc.Decide(janitor.Classification{Kind: janitor.KindPrivateHelp, ChatID: 7})
		if !ok {
			t.Fatal("expected an action")
		}
		if action.Type != janitor.ActionSendHelp || action.ChatID != 7 {
			t.Errorf("unexpected action: %+v", action)
		}
	}
}

func TestDecide_GroupLeave(t *testing.T) {
	uc := newUseCase(janitor.Policy{Active: true, OwnerID: 1, BotID: 999})
	action, ok := uc.Decide(janitor.Classification{Kind: janitor.KindGroupLeave, ChatID: 100, MessageID: 9})
	if !ok {
		t.Fatal("expected an action")
	}
	want := janitor.Action{Type: janitor.ActionDeleteMessage, ChatID: 100, MessageID: 9}
	if action != want {
		t.Errorf("Decide() = %+v, want %+v", action, want)
	}
}

func TestDecide_Irrelevant(t *testing.T) {
	uc := newUseCase(janitor.Policy{})
	if _, ok := uc.Decide(janitor.Classification{Kind: janitor.KindIrrelevant}); ok {
		t.Error("expected no action for irrelevant classification")
	}
}

func TestDecide_GroupJoin(t *testing.T) {
	join := func(members []int64, actor int64) janitor.Classification {
		return janitor.Classification{
			Kind:         janitor.KindGroupJoin,
			ChatID:       100,
			MessageID:    5,
			NewMemberIDs: members,
			ActorID:      actor,
		}
	}
	deleteMsg := janitor.Action{Type: janitor.ActionDeleteMessage, ChatID: 100, MessageID: 5}
	leave := janitor.Action{Type: janitor.ActionLeaveGroup, ChatID: 100}

	tests := []struct {
		name   string
		policy janitor.Policy
		cls    janitor.Classification
		want   janitor.Action
	}{
		{
			name:   "owner mode inactive always deletes",
			policy: janitor.Policy{},
			cls:    join([]int64{999}, 2),
			want:   deleteMsg,
		},
		{
			name:   "owner mode inactive deletes even when bot joins",
			policy: janitor.Policy{},
			cls:    join([]int64{999, 42}, 2),
			want:   deleteMsg,
		},
		{
			name:   "ordinary join is never affected by owner mode",
			policy: janitor.Policy{Active: true, OwnerID: 1, BotID: 999},
			cls:    join([]int64{42, 43}, 2),
			want:   deleteMsg,
		},
		{
			name:   "owner added the bot",
			policy: janitor.Policy{Active: true, OwnerID: 1, BotID: 999},
			cls:    join([]int64{999}, 1),
			want:   deleteMsg,
		},
		{
			name:   "stranger added the bot",
			policy: janitor.Policy{Active: true, OwnerID: 1, BotID: 999},
			cls:    join([]int64{999}, 2),
			want:   leave,
		},
		{
			name:   "bot among several new members, unauthorized actor",
			policy: janitor.Policy{Active: true, OwnerID: 1, BotID: 999},
			cls:    join([]int64{42, 999}, 2),
			want:   leave,
		},
		{
			name:   "missing actor id never matches the owner",
			policy: janitor.Policy{Active: true, OwnerID: 1, BotID: 999},
			cls:    join([]int64{999}, 0),
			want:   leave,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCase(tt.policy)
			action, ok := uc.Decide(tt.cls)
			if !ok {
				t.Fatal("expected an action")
			}
			if action != tt.want {
				t.Errorf("Decide() = %+v, want %+v", action, tt.want)
			}
		})
	}
}
