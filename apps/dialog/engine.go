package dialog

import (
	"context"
	"fmt"
	"strings"

	"github.com/getevo/evo/v2/lib/log"
	"github.com/marketchat/shopbot-backend/apps/commerce"
	"github.com/marketchat/shopbot-backend/apps/connector"
	"github.com/marketchat/shopbot-backend/apps/nlu"
)

// Catalog resolves user-typed category names against the startup snapshot
type Catalog interface {
	Names() []string
	Resolve(name string) (int, bool)
}

// ProductLister fetches the catalog entries of one category
type ProductLister interface {
	ListProducts(ctx context.Context, categoryID int) ([]commerce.Product, error)
}

// Scorer rates free text sentiment in [0,1]
type Scorer interface {
	Score(ctx context.Context, text string) (float64, error)
}

// Outcome is what one inbound activity produced. The caller owns delivery,
// transcript persistence and event publication.
type Outcome struct {
	Replies        []connector.Activity
	ConfirmedOrder *commerce.Product
	Cancelled      bool
}

func (o *Outcome) reply(activity connector.Activity) {
	o.Replies = append(o.Replies, activity)
}

func (o *Outcome) text(inbound *connector.Activity, line string) {
	o.reply(connector.TextMessage(inbound, line))
}

// Engine drives both dialog flows as an explicit state machine. Each inbound
// activity loads the conversation's state, advances it, and stores or destroys
// it before returning.
type Engine struct {
	store    Store
	catalog  func() Catalog
	commerce ProductLister
	scorer   Scorer
}

// NewEngine wires the dialog engine. The catalog is a provider because the
// snapshot is loaded after app construction.
func NewEngine(store Store, catalog func() Catalog, commerce ProductLister, scorer Scorer) *Engine {
	return &Engine{
		store:    store,
		catalog:  catalog,
		commerce: commerce,
		scorer:   scorer,
	}
}

// Handle advances the conversation's dialog with one inbound message activity
func (e *Engine) Handle(ctx context.Context, inbound *connector.Activity, intent *nlu.Result) (*Outcome, error) {
	conversationID := inbound.Conversation.ID
	if conversationID == "" {
		return nil, fmt.Errorf("inbound activity has no conversation id")
	}

	text := strings.TrimSpace(inbound.Text)
	outcome := &Outcome{}

	state, err := e.store.Get(ctx, conversationID)
	if err != nil {
		// A broken store behaves like a fresh conversation rather than erroring out
		log.Warning("Dialog state load failed for %s: %v", conversationID, err)
		state = nil
	}

	if state == nil {
		return e.startFlow(ctx, inbound, intent, outcome)
	}

	if state.PendingCancel {
		return e.resolveCancel(ctx, inbound, state, text, outcome)
	}

	if IsCancelPhrase(text) {
		return e.beginCancel(ctx, inbound, state, outcome)
	}

	// A purchase intent mid-chat offers to switch flows
	if state.Flow == FlowChat && intent != nil && intent.Intent == nlu.IntentSearchBuy {
		state.PendingCancel = true
		state.PendingSwitch = true
		state.SwitchCategory = intent.CategoryEntity()
		if err := e.store.Put(ctx, state); err != nil {
			return nil, err
		}
		outcome.text(inbound, msgConfirmEndChat)
		return outcome, nil
	}

	return e.dispatch(ctx, inbound, state, text, intent, outcome)
}

// startFlow opens a new dialog for a conversation with no active state
func (e *Engine) startFlow(ctx context.Context, inbound *connector.Activity, intent *nlu.Result, outcome *Outcome) (*Outcome, error) {
	if intent != nil && intent.Intent == nlu.IntentSearchBuy {
		return e.startPurchase(ctx, inbound, intent.CategoryEntity(), outcome)
	}
	return e.startChat(ctx, inbound, outcome)
}

// dispatch routes the text to the active step's handler
func (e *Engine) dispatch(ctx context.Context, inbound *connector.Activity, state *State, text string, intent *nlu.Result, outcome *Outcome) (*Outcome, error) {
	switch state.Flow {
	case FlowPurchase:
		return e.handlePurchaseStep(ctx, inbound, state, text, intent, outcome)
	case FlowChat:
		return e.handleChatStep(ctx, inbound, state, text, outcome)
	default:
		// Unknown state can only come from a deployment change; drop it and restart
		log.Warning("Destroying dialog state with unknown flow %q", state.Flow)
		if err := e.store.Delete(ctx, state.ConversationID); err != nil {
			return nil, err
		}
		return e.startFlow(ctx, inbound, intent, outcome)
	}
}

// beginCancel parks the dialog behind a confirmation prompt
func (e *Engine) beginCancel(ctx context.Context, inbound *connector.Activity, state *State, outcome *Outcome) (*Outcome, error) {
	state.PendingCancel = true
	state.PendingSwitch = false
	state.SwitchCategory = ""
	if err := e.store.Put(ctx, state); err != nil {
		return nil, err
	}

	if state.Flow == FlowPurchase {
		outcome.text(inbound, msgConfirmCancelOrder)
	} else {
		outcome.text(inbound, msgConfirmEndChat)
	}
	return outcome, nil
}

// resolveCancel handles the reply to a cancellation confirmation prompt
func (e *Engine) resolveCancel(ctx context.Context, inbound *connector.Activity, state *State, text string, outcome *Outcome) (*Outcome, error) {
	if IsAffirmative(text) {
		switchCategory := state.SwitchCategory
		pendingSwitch := state.PendingSwitch

		if err := e.store.Delete(ctx, state.ConversationID); err != nil {
			return nil, err
		}
		outcome.Cancelled = true
		outcome.text(inbound, msgFarewell)

		if pendingSwitch {
			// The chat was ended in favour of the purchase flow
			return e.startPurchase(ctx, inbound, switchCategory, outcome)
		}
		return outcome, nil
	}

	// Anything else resumes the parked dialog at its current prompt
	state.PendingCancel = false
	state.PendingSwitch = false
	state.SwitchCategory = ""
	if err := e.store.Put(ctx, state); err != nil {
		return nil, err
	}
	e.resumePrompt(inbound, state, outcome)
	return outcome, nil
}

// resumePrompt re-issues the prompt the dialog was waiting on
func (e *Engine) resumePrompt(inbound *connector.Activity, state *State, outcome *Outcome) {
	switch {
	case state.Flow == FlowPurchase && state.Step == StepAwaitCategory:
		outcome.reply(connector.ChoicePrompt(inbound, msgPromptCategory, e.catalog().Names()))
	case state.Flow == FlowPurchase && state.Step == StepAwaitSelection:
		outcome.reply(connector.ChoicePrompt(inbound, msgPromptSelection, inStockNames(state.Products)))
	default:
		outcome.text(inbound, msgPromptChatAgain)
	}
}
