package models

import (
	"time"

	"github.com/getevo/restify"
	"github.com/google/uuid"
)

// OrderReceipt is written when a purchase dialog confirms a product selection.
// The commerce backend owns the real order, this row is the bot-side record.
type OrderReceipt struct {
	ID             uint      `gorm:"column:id;primaryKey" json:"id"`
	ReceiptNumber  uuid.UUID `gorm:"column:receipt_number;type:char(36);uniqueIndex;not null" json:"receipt_number"`
	ConversationID string    `gorm:"column:conversation_id;size:255;index;not null" json:"conversation_id"`
	ProductID      int       `gorm:"column:product_id;not null" json:"product_id"`
	ProductName    string    `gorm:"column:product_name;size:255;not null" json:"product_name"`
	DisplayPrice   string    `gorm:"column:display_price;size:50" json:"display_price"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	restify.API
}
