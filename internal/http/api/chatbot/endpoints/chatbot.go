package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/panchang-seva/panchangam/internal/chat"
	"github.com/panchang-seva/panchangam/internal/http/api"
	"github.com/panchang-seva/panchangam/internal/http/api/chatbot/packets"
)

// ChatbotModule mounts the Panchang Q&A endpoint
func ChatbotModule() api.Module {
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_POST("/chatbot", askChatbot)
	})
}

// POST /api/chatbot
func askChatbot(ctx *gin.Context) (any, *api.APIError) {
	var request packets.ChatRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid request body"}
	}

	return gin.H{
		"response": chat.Reply(request.Message, request.SelectedDay, request.CalendarData),
	}, nil
}
