package dialog

import (
	"context"
	"strings"

	"github.com/getevo/evo/v2/lib/log"
	"github.com/marketchat/shopbot-backend/apps/commerce"
	"github.com/marketchat/shopbot-backend/apps/connector"
	"github.com/marketchat/shopbot-backend/apps/nlu"
)

// startPurchase opens the purchase flow. A category entity from the recognizer
// skips the category prompt entirely.
func (e *Engine) startPurchase(ctx context.Context, inbound *connector.Activity, categoryEntity string, outcome *Outcome) (*Outcome, error) {
	state := &State{
		ConversationID: inbound.Conversation.ID,
		Flow:           FlowPurchase,
		Step:           StepAwaitCategory,
	}

	if categoryEntity != "" {
		return e.resolveCategory(ctx, inbound, state, categoryEntity, outcome)
	}

	if err := e.store.Put(ctx, state); err != nil {
		return nil, err
	}
	outcome.reply(connector.ChoicePrompt(inbound, msgPromptCategory, e.catalog().Names()))
	return outcome, nil
}

// handlePurchaseStep advances an active purchase dialog with the user's text
func (e *Engine) handlePurchaseStep(ctx context.Context, inbound *connector.Activity, state *State, text string, intent *nlu.Result, outcome *Outcome) (*Outcome, error) {
	switch state.Step {
	case StepAwaitCategory:
		if _, ok := e.catalog().Resolve(text); ok {
			return e.resolveCategory(ctx, inbound, state, text, outcome)
		}
		return e.rejectInput(ctx, inbound, state, intent, outcome)

	case StepAwaitSelection:
		if matchesOption(text, inStockNames(state.Products)) {
			return e.confirmSelection(ctx, inbound, state, text, outcome)
		}
		return e.rejectInput(ctx, inbound, state, intent, outcome)

	default:
		log.Warning("Purchase dialog in unknown step %q, destroying state", state.Step)
		if err := e.store.Delete(ctx, state.ConversationID); err != nil {
			return nil, err
		}
		outcome.text(inbound, msgInvalidCategory)
		return outcome, nil
	}
}

// rejectInput handles text the active prompt does not accept. A fallback intent
// reads as an attempt to leave and asks for cancellation, anything else retries.
func (e *Engine) rejectInput(ctx context.Context, inbound *connector.Activity, state *State, intent *nlu.Result, outcome *Outcome) (*Outcome, error) {
	if intent != nil && intent.Intent == nlu.IntentNone {
		return e.beginCancel(ctx, inbound, state, outcome)
	}
	outcome.text(inbound, msgRetryInvalidOption)
	e.resumePrompt(inbound, state, outcome)
	return outcome, nil
}

// resolveCategory maps the chosen category to products and presents them
func (e *Engine) resolveCategory(ctx context.Context, inbound *connector.Activity, state *State, categoryName string, outcome *Outcome) (*Outcome, error) {
	categoryID, ok := e.catalog().Resolve(categoryName)
	if !ok {
		// InvalidCategory ends the dialog with an apology
		if err := e.store.Delete(ctx, state.ConversationID); err != nil {
			return nil, err
		}
		outcome.text(inbound, msgInvalidCategory)
		return outcome, nil
	}

	outcome.reply(connector.Typing(inbound))
	outcome.text(inbound, msgFoundProducts)

	products, err := e.commerce.ListProducts(ctx, categoryID)
	if err != nil {
		log.Error("Product fetch failed for category %d: %v", categoryID, err)
		if err := e.store.Delete(ctx, state.ConversationID); err != nil {
			return nil, err
		}
		outcome.text(inbound, msgProductsUnavailable)
		return outcome, nil
	}

	cards := make([]connector.Attachment, 0, len(products))
	for _, product := range products {
		cards = append(cards, productCard(product))
	}
	outcome.reply(connector.Carousel(inbound, cards))
	outcome.reply(connector.ChoicePrompt(inbound, msgPromptSelection, inStockNames(products)))

	state.Step = StepAwaitSelection
	state.CategoryName = categoryName
	state.CategoryID = categoryID
	state.Products = products
	if err := e.store.Put(ctx, state); err != nil {
		return nil, err
	}
	return outcome, nil
}

// confirmSelection completes the order for the product the user picked
func (e *Engine) confirmSelection(ctx context.Context, inbound *connector.Activity, state *State, text string, outcome *Outcome) (*Outcome, error) {
	product, ok := findProduct(state.Products, text)

	if err := e.store.Delete(ctx, state.ConversationID); err != nil {
		return nil, err
	}

	if !ok {
		// The held list no longer carries the selection
		outcome.text(inbound, msgProductNotFound)
		return outcome, nil
	}

	outcome.text(inbound, msgOrderDone)
	outcome.reply(connector.CardMessage(inbound, confirmationCard(product)))
	outcome.text(inbound, msgNewAlbum)
	outcome.reply(connector.CardMessage(inbound, promoVideoCard()))
	outcome.ConfirmedOrder = &product
	return outcome, nil
}

// inStockNames returns the names of products available for selection
func inStockNames(products []commerce.Product) []string {
	names := make([]string, 0, len(products))
	for _, product := range products {
		if product.InStock() {
			names = append(names, product.Name)
		}
	}
	return names
}

// matchesOption reports whether text equals one of the options, case-insensitively
func matchesOption(text string, options []string) bool {
	for _, option := range options {
		if strings.EqualFold(text, option) {
			return true
		}
	}
	return false
}

// findProduct matches a selection against the held product list by name
func findProduct(products []commerce.Product, name string) (commerce.Product, bool) {
	for _, product := range products {
		if strings.EqualFold(product.Name, name) {
			return product, true
		}
	}
	return commerce.Product{}, false
}
