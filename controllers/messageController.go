package controllers

import (
	"errors"
	"log"
	"net/http"
	"path/filepath"
	"sort"

	"github.com/burkibooks/burki-api/models"
	"github.com/burkibooks/burki-api/stores"
	"github.com/burkibooks/burki-api/utils"
	"github.com/gin-gonic/gin"
)

type MessageController struct {
	Store stores.MessageStore

	// NotifyEmail, when set, receives a copy of every new contact message.
	// Delivery failures are logged and otherwise ignored.
	NotifyEmail string
}

func NewMessageController(store stores.MessageStore, notifyEmail string) *MessageController {
	return &MessageController{Store: store, NotifyEmail: notifyEmail}
}

// CreateMessage accepts a public contact form submission.
func (c *MessageController) CreateMessage(ctx *gin.Context) {
	var input models.MessageInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Name, email and message are required")
		return
	}

	message := input.ToMessage()
	if err := c.Store.CreateMessage(&message); err != nil {
		log.Println("Message creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to send message")
		return
	}

	if c.NotifyEmail != "" {
		emailData := utils.EmailData{
			Name:    message.Name,
			Email:   message.Email,
			Subject: message.Subject,
			Message: message.Message,
		}
		templatePath := filepath.Join("templates", "new_message.html")
		if err := utils.SendEmail(c.NotifyEmail, "New contact message", emailData, templatePath); err != nil {
			log.Println("Error sending message notification:", err)
		}
	}

	ctx.JSON(http.StatusCreated, message)
}

func (c *MessageController) GetMessages(ctx *gin.Context) {
	messages, err := c.Store.ListMessages()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch messages", err)
		return
	}

	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt.After(messages[j].CreatedAt)
	})

	ctx.JSON(http.StatusOK, messages)
}

func (c *MessageController) GetMessage(ctx *gin.Context) {
	message, err := c.Store.GetMessage(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Message not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve message", err)
		}
		return
	}
	ctx.JSON(http.StatusOK, message)
}

// UpdateMessageStatus flips a message between unread and read.
func (c *MessageController) UpdateMessageStatus(ctx *gin.Context) {
	var statusData struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&statusData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	if !models.IsValidMessageStatus(statusData.Status) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Unknown message status")
		return
	}

	message, err := c.Store.UpdateMessageStatus(ctx.Param("id"), statusData.Status)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Message not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to update message", err)
		}
		return
	}

	ctx.JSON(http.StatusOK, message)
}

func (c *MessageController) DeleteMessage(ctx *gin.Context) {
	if err := c.Store.DeleteMessage(ctx.Param("id")); err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Message not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to delete message", err)
		}
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
