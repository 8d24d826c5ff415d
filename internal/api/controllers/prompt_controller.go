package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripforge/internal/models/request_models"
	"tripforge/internal/services"
	"tripforge/pkg/utils"
)

type PromptController struct {
	promptService services.PromptServiceInterface
}

func NewPromptController(promptService services.PromptServiceInterface) *PromptController {
	return &PromptController{
		promptService: promptService,
	}
}

// Chat godoc
// @Summary Chat about an itinerary
// @Description Answer a short conversational message about adjusting an itinerary
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body request_models.ChatRequest true "Chat payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /chat [post]
func (p *PromptController) Chat(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	reply := p.promptService.HandleChat(req.Message)
	utils.RespondSuccess(c, gin.H{"reply": reply}, "Chat handled successfully")
}
