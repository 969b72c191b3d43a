package controller

import (
	"net/http"

	"github.com/adnanfr/Binturong/internal/dto"
	"github.com/adnanfr/Binturong/internal/middleware"
	"github.com/adnanfr/Binturong/internal/service"
	"github.com/gin-gonic/gin"
)

type ChatController struct {
	chatService service.ChatService
}

func NewChatController(chatService service.ChatService) *ChatController {
	return &ChatController{chatService: chatService}
}

// GetMessages godoc
// @Summary List the chat history for an assignment
// @Description Messages come back oldest-first. Students can only read their own assignment's chat.
// @Tags Chat
// @Produce json
// @Security BearerAuth
// @Param assignment_id path string true "Assignment ID"
// @Success 200 {object} dto.ChatHistoryResponse
// @Failure 403 {object} dto.ErrorResponse "Not your assignment"
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Router /chat/{assignment_id}/messages [get]
func (ctl *ChatController) GetMessages(c *gin.Context) {
	claims := middleware.ClaimsFrom(c)

	messages, err := ctl.chatService.ListMessages(c.Request.Context(), c.Param("assignment_id"), claims)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ChatHistoryResponse{Success: true, Messages: messages})
}

// SendMessage godoc
// @Summary Send a message to the stakeholder and receive the reply
// @Description Persists the student's message, runs the Actor stage with the stored persona instruction and the recent history, persists the reply and returns it.
// @Tags Chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param assignment_id path string true "Assignment ID"
// @Param message body dto.ChatMessageCreateDTO true "Message content"
// @Success 200 {object} dto.ChatReplyResponse
// @Failure 403 {object} dto.ErrorResponse "Not your assignment"
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Failure 500 {object} dto.ErrorResponse "Actor stage failed"
// @Router /chat/{assignment_id}/message [post]
func (ctl *ChatController) SendMessage(c *gin.Context) {
	claims := middleware.ClaimsFrom(c)

	var req dto.ChatMessageCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	reply, err := ctl.chatService.SendMessage(c.Request.Context(), c.Param("assignment_id"), claims.UserID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, reply)
}
