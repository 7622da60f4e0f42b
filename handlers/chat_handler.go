package handlers

import (
	"errors"
	"net/http"

	"lawmitra-backend/models"
	"lawmitra-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ChatHandler handles HTTP requests for the chat assistant
type ChatHandler struct {
	chatService *service.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// SendMessageRequest is the request body for sending a chat message.
// SessionID is optional; omitting it starts a new conversation.
type SendMessageRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message" binding:"required"`
}

// SendMessage handles POST /api/chat
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	var sessionID uuid.UUID
	var welcome *models.ChatMessage
	if req.SessionID == "" {
		id, msg := h.chatService.StartSession()
		sessionID = id
		welcome = &msg
	} else {
		id, err := uuid.Parse(req.SessionID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVALID_SESSION_ID",
					"message": "Invalid session_id format",
				},
			})
			return
		}
		sessionID = id
	}

	result, err := h.chatService.Respond(c.Request.Context(), sessionID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "SESSION_NOT_FOUND",
					"message": "Unknown chat session",
				},
			})
		case errors.Is(err, service.ErrEmptyQuery):
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "EMPTY_MESSAGE",
					"message": "Message must not be empty",
				},
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "CHAT_FAILED",
					"message": err.Error(),
				},
			})
		}
		return
	}

	data := gin.H{
		"session_id": result.SessionID,
		"message":    result.Message,
		"laws":       result.Laws,
	}
	if welcome != nil {
		data["welcome"] = welcome
	}
	if result.Tip != "" {
		data["tip"] = result.Tip
	}
	if result.Failure != "" {
		data["failure"] = result.Failure
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

// GetHistory handles GET /api/chat/sessions/:session_id
func (h *ChatHandler) GetHistory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("session_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_SESSION_ID",
				"message": "Invalid session_id format",
			},
		})
		return
	}

	messages, err := h.chatService.History(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "SESSION_NOT_FOUND",
				"message": "Unknown chat session",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"session_id": id,
			"messages":   messages,
		},
	})
}

// GetPrompts handles GET /api/chat/prompts
func (h *ChatHandler) GetPrompts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    h.chatService.SuggestedPrompts(),
	})
}
