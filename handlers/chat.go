package handlers

import (
	"errors"
	"net/http"

	"cityconnect/models"
	"cityconnect/services/chat"
	"cityconnect/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ChatHandler struct {
	Service chat.ChatService
	Logger  *zap.Logger
}

func NewChatHandler(service chat.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{Service: service, Logger: logger}
}

func (h *ChatHandler) chatError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chat.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "Chat session not found", err.Error())
	case errors.Is(err, chat.ErrEmptyMessage):
		utils.JSONError(c, http.StatusBadRequest, "Invalid message", err.Error())
	default:
		h.Logger.Error("Chat request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Chat request failed", err.Error())
	}
}

// StartSession creates an empty conversation.
func (h *ChatHandler) StartSession(c *gin.Context) {
	sess, err := h.Service.StartSession(c.Request.Context())
	if err != nil {
		h.chatError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"sessionId": sess.ID,
		"stage":     sess.Stage,
		"turns":     models.RenderTurns(sess.Turns),
	})
}

// GetSession renders the full turn log.
func (h *ChatHandler) GetSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	resp, err := h.Service.Render(c.Request.Context(), sessionID)
	if err != nil {
		h.chatError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PostMessage handles one user message and returns the turns it produced.
func (h *ChatHandler) PostMessage(c *gin.Context) {
	sessionID := c.Param("sessionID")

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	resp, err := h.Service.HandleMessage(c.Request.Context(), sessionID, req.Text)
	if err != nil {
		h.chatError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// EndSession discards the conversation and any unfinished draft.
func (h *ChatHandler) EndSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.Service.EndSession(c.Request.Context(), sessionID); err != nil {
		h.chatError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Chat session ended"})
}
