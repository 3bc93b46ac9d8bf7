package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"chatdb/internal/domain/message"
	"chatdb/internal/services"
	"chatdb/internal/transport/httpdto"
	sentinal_errors "chatdb/pkg/errors"

	"github.com/gin-gonic/gin"
)

// ChatService is the part of services.ChatService the handler drives.
type ChatService interface {
	AddMessage(ctx context.Context, text, channelID, userID string, extra message.ExtraFields) error
	GetMessages(ctx context.Context, channelID, userID string) ([]message.Message, error)
	GetLastUserMessageDateTimeUTC(ctx context.Context, channelID, userID string) (message.Timestamp, bool, error)
}

type MessageHandler struct {
	service ChatService
}

func NewMessageHandler(service ChatService) *MessageHandler {
	return &MessageHandler{service: service}
}

func (h *MessageHandler) Send(c *gin.Context) {
	var req httpdto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return
	}

	channelID, userID, err := channelAndUser(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.service.AddMessage(c.Request.Context(), req.Text, channelID, userID, req.Extra); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, httpdto.NewSuccessResponse(gin.H{"channel_id": channelID}))
}

func (h *MessageHandler) List(c *gin.Context) {
	channelID, userID, err := channelAndUser(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	items, err := h.service.GetMessages(c.Request.Context(), channelID, userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.MessageListResponse{Messages: items}))
}

func (h *MessageHandler) LastMessage(c *gin.Context) {
	channelID, userID, err := channelAndUser(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	ts, ok, err := h.service.GetLastUserMessageDateTimeUTC(c.Request.Context(), channelID, userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, httpdto.NewErrorResponse("no message posted by this user in the channel", "NO_MESSAGE"))
		return
	}

	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.LastMessageResponse{
		ChannelID:     channelID,
		UserID:        userID,
		InsertedAtUTC: ts,
	}))
}

func channelAndUser(c *gin.Context) (string, string, error) {
	userID, ok := services.UserIDFromContext(c.Request.Context())
	if !ok {
		return "", "", sentinal_errors.ErrUnauthorized
	}
	channelID := strings.TrimSpace(c.Param("channelID"))
	if channelID == "" {
		return "", "", fmt.Errorf("%w: missing channel id", sentinal_errors.ErrInvalidInput)
	}
	return channelID, userID, nil
}
