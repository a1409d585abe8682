package handlers

import (
	"dashcomposer/service"
)

// @title           Dashboard Component Assistant API
// @version         1.0
// @description     Chat-driven dashboard component backend - describe the chart, table or metric you want and get a component suggestion with sample data

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8000
// @BasePath  /

// @schemes   http https

type Handlers struct {
	chat       *service.ChatService
	components *service.ComponentService
}

func New(chat *service.ChatService, components *service.ComponentService) *Handlers {
	return &Handlers{
		chat:       chat,
		components: components,
	}
}
