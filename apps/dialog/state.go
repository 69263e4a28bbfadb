package dialog

import (
	"regexp"
	"time"

	"github.com/marketchat/shopbot-backend/apps/commerce"
)

// Dialog flows
const (
	FlowPurchase = "purchase"
	FlowChat     = "chat"
)

// Purchase flow steps
const (
	StepAwaitCategory  = "await_category"
	StepAwaitSelection = "await_selection"
)

// Chat flow steps
const (
	StepAwaitText = "await_text"
)

// State is one conversation's dialog position and accumulated data. It is
// created when a flow starts and destroyed when the flow completes, is
// cancelled, or is replaced by the other flow.
type State struct {
	ConversationID string             `json:"conversation_id"`
	Flow           string             `json:"flow"`
	Step           string             `json:"step"`
	Greeted        bool               `json:"greeted,omitempty"`
	CategoryName   string             `json:"category_name,omitempty"`
	CategoryID     int                `json:"category_id,omitempty"`
	Products       []commerce.Product `json:"products,omitempty"`
	PendingCancel  bool               `json:"pending_cancel,omitempty"`
	PendingSwitch  bool               `json:"pending_switch,omitempty"`
	SwitchCategory string             `json:"switch_category,omitempty"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

var (
	cancelPattern      = regexp.MustCompile(`(?i)^(cancel|(good)?bye|no)$`)
	affirmativePattern = regexp.MustCompile(`(?i)^(yes|y|yep|yeah|sure|ok|okay)$`)
)

// IsCancelPhrase reports whether the text is an explicit cancel request
func IsCancelPhrase(text string) bool {
	return cancelPattern.MatchString(text)
}

// IsAffirmative reports whether the text confirms a pending cancellation
func IsAffirmative(text string) bool {
	return affirmativePattern.MatchString(text)
}
