package main

import (
	"github.com/getevo/evo/v2"
	"github.com/getevo/evo/v2/lib/application"
	"github.com/marketchat/shopbot-backend/apps/bot"
	"github.com/marketchat/shopbot-backend/apps/commerce"
	"github.com/marketchat/shopbot-backend/apps/connector"
	"github.com/marketchat/shopbot-backend/apps/dialog"
	"github.com/marketchat/shopbot-backend/apps/events"
	"github.com/marketchat/shopbot-backend/apps/models"
	"github.com/marketchat/shopbot-backend/apps/nlu"
	"github.com/marketchat/shopbot-backend/apps/redisdb"
	"github.com/marketchat/shopbot-backend/apps/sentiment"
	"github.com/marketchat/shopbot-backend/apps/system"
)

func main() {
	evo.Setup()

	var apps = application.GetInstance()
	apps.Register(system.App{}, models.App{}, events.App{}, redisdb.App{}, connector.App{}, commerce.App{}, nlu.App{}, sentiment.App{}, dialog.App{}, bot.App{})

	evo.Run()
}
