package dialog

import (
	"context"

	"github.com/getevo/evo/v2/lib/log"
	"github.com/marketchat/shopbot-backend/apps/connector"
	"github.com/marketchat/shopbot-backend/apps/sentiment"
)

// startChat opens the free-chat flow. The promo animation card shows on first
// entry only; the loop re-enters with the greeted flag set.
func (e *Engine) startChat(ctx context.Context, inbound *connector.Activity, outcome *Outcome) (*Outcome, error) {
	state := &State{
		ConversationID: inbound.Conversation.ID,
		Flow:           FlowChat,
		Step:           StepAwaitText,
		Greeted:        true,
	}
	if err := e.store.Put(ctx, state); err != nil {
		return nil, err
	}

	outcome.reply(connector.Typing(inbound))
	outcome.reply(connector.CardMessage(inbound, greetingCard()))
	outcome.text(inbound, msgPromptChatFirst)
	return outcome, nil
}

// handleChatStep runs the user's text through sentiment analysis and answers
// with the matching canned phrase, then prompts again.
func (e *Engine) handleChatStep(ctx context.Context, inbound *connector.Activity, state *State, text string, outcome *Outcome) (*Outcome, error) {
	outcome.reply(connector.Typing(inbound))

	score, err := e.scorer.Score(ctx, text)
	if err != nil {
		// The failure is logged and the user is re-prompted instead of stalling
		log.Error("Sentiment analysis failed: %v", err)
		outcome.text(inbound, msgSentimentLost)
	} else {
		outcome.text(inbound, sentiment.PhraseForScore(score))
	}

	outcome.text(inbound, msgPromptChatAgain)

	if err := e.store.Put(ctx, state); err != nil {
		return nil, err
	}
	return outcome, nil
}
