package dialog

import (
	"strings"

	"github.com/marketchat/shopbot-backend/apps/commerce"
	"github.com/marketchat/shopbot-backend/apps/connector"
)

// Canned lines of the bot's persona
const (
	msgPromptCategory      = "Could you specify the product category?"
	msgRetryInvalidOption  = "Laaaaaaadieeeeees. Not a valid option, please try again."
	msgInvalidCategory     = "Sorry, man, that's definitely not a valid option."
	msgFoundProducts       = "I found these products"
	msgPromptSelection     = "R U interested in any?"
	msgProductsUnavailable = "Sorry, man, the shelves are stuck. Try again in a bit."
	msgProductNotFound     = "Sorry, man, I can't find that one on the shelf anymore."
	msgOrderDone           = "Your order has been done successfully."
	msgNewAlbum            = "NEW ALBUM COMING"
	msgFarewell            = "Forcing a Smile... Waving Goodbye..."
	msgConfirmCancelOrder  = "This will cancel your order. R U Sure?"
	msgConfirmEndChat      = "This will end our meaningless chat. R U Sure?"
	msgPromptChatFirst     = "Well... Type anything you want now or snap out of it."
	msgPromptChatAgain     = "Do me a favour and write anything else..."
	msgSentimentLost       = "I've lost my train of thought... do me a favour and say that again."
)

// productCard renders one catalog entry as a hero card. The stock status is
// upper-cased with underscores replaced by spaces, as the storefront shows it.
func productCard(product commerce.Product) connector.Attachment {
	card := connector.HeroCard{
		Title:    product.Name,
		Subtitle: strings.ToUpper(strings.ReplaceAll(product.StockStatus, "_", " ")),
		Text:     product.Description,
	}
	if image := product.FirstImage(); image != "" {
		card.Images = []connector.CardImage{{URL: image}}
	}
	return connector.Attachment{ContentType: connector.ContentTypeHeroCard, Content: card}
}

// confirmationCard renders the purchased product with its display price
func confirmationCard(product commerce.Product) connector.Attachment {
	card := connector.HeroCard{
		Title:    product.Name,
		Subtitle: product.DisplayPrice,
		Text:     product.Description,
	}
	if image := product.FirstImage(); image != "" {
		card.Images = []connector.CardImage{{URL: image}}
	}
	return connector.Attachment{ContentType: connector.ContentTypeHeroCard, Content: card}
}

// promoVideoCard is the fixed upsell shown after every confirmed order
func promoVideoCard() connector.Attachment {
	return connector.Attachment{
		ContentType: connector.ContentTypeVideoCard,
		Content: connector.VideoCard{
			Title:    "Arctic Monkeys",
			Subtitle: "Tranquility Base Hotel & Casino",
			Text:     "The new album, out May 11th, 2018. Pre-order special edition vinyl & CD",
			Image:    &connector.CardImage{URL: "https://i.ytimg.com/vi/6uGQ_ypTw08/maxresdefault.jpg"},
			Media:    []connector.MediaURL{{URL: "https://www.youtube.com/watch?v=6uGQ_ypTw08"}},
			Buttons: []connector.CardAction{
				{
					Type:  "openUrl",
					Title: "Watch The Preview!",
					Value: "https://www.youtube.com/watch?v=6uGQ_ypTw08",
				},
			},
		},
	}
}

// greetingCard is the fixed promo animation shown on first entry to free chat
func greetingCard() connector.Attachment {
	return connector.Attachment{
		ContentType: connector.ContentTypeAnimationCard,
		Content: connector.AnimationCard{
			Title:    "Invoice me for the microphone",
			Subtitle: "if you need to",
			Image:    &connector.CardImage{URL: "https://78.media.tumblr.com/tumblr_m2lo5iwtnk1ru3mugo1_1280.jpg"},
			Media:    []connector.MediaURL{{URL: "https://78.media.tumblr.com/9cd805d05c1b2fae2a0992e21e8b911e/tumblr_inline_nnumb9EzK71ru6lri_500.gif"}},
		},
	}
}
