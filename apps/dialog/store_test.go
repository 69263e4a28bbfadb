package dialog

import (
	"context"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	state, err := store.Get(ctx, "conv-1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if state != nil {
		t.Fatal("expected nil state for unknown conversation")
	}

	if err := store.Put(ctx, &State{ConversationID: "conv-1", Flow: FlowPurchase, Step: StepAwaitCategory}); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	state, err = store.Get(ctx, "conv-1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if state == nil || state.Flow != FlowPurchase || state.Step != StepAwaitCategory {
		t.Fatalf("unexpected state %+v", state)
	}
	if state.UpdatedAt.IsZero() {
		t.Error("Put() did not stamp UpdatedAt")
	}

	if err := store.Delete(ctx, "conv-1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	state, _ = store.Get(ctx, "conv-1")
	if state != nil {
		t.Error("state survived Delete()")
	}
}

func TestMemoryStoreReturnsClones(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	original := &State{ConversationID: "conv-1", Flow: FlowChat, Step: StepAwaitText}
	if err := store.Put(ctx, original); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	loaded, _ := store.Get(ctx, "conv-1")
	loaded.Flow = FlowPurchase

	reloaded, _ := store.Get(ctx, "conv-1")
	if reloaded.Flow != FlowChat {
		t.Error("mutating a loaded state leaked into the store")
	}
}

func TestCancelPhrases(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"cancel", true},
		{"CANCEL", true},
		{"bye", true},
		{"goodbye", true},
		{"no", true},
		{"No", true},
		{"nope", false},
		{"good bye now", false},
		{"i want to cancel", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsCancelPhrase(tt.text); got != tt.want {
			t.Errorf("IsCancelPhrase(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestAffirmativePhrases(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"yes", true},
		{"Yes", true},
		{"yep", true},
		{"sure", true},
		{"okay", true},
		{"no", false},
		{"maybe", false},
		{"yes please", false},
	}
	for _, tt := range tests {
		if got := IsAffirmative(tt.text); got != tt.want {
			t.Errorf("IsAffirmative(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
