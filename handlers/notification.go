package handlers

import (
	"net/http"
	"strconv"

	notificationRepo "clinicore/database/repository/notification"
	"clinicore/utils"

	"github.com/gin-gonic/gin"
)

// NotificationHandler exposes the in-app notification feed.
type NotificationHandler struct {
	Repo notificationRepo.NotificationRepository
}

func NewNotificationHandler(repo notificationRepo.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{Repo: repo}
}

// ListNotificationsHandler returns the session user's notifications.
func (h *NotificationHandler) ListNotificationsHandler(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	notifications, err := h.Repo.ListByUser(c.Request.Context(), session.UserID, limit)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "could not list notifications", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// MarkNotificationReadHandler flags one notification as seen.
func (h *NotificationHandler) MarkNotificationReadHandler(c *gin.Context) {
	if _, ok := requireSession(c); !ok {
		return
	}

	if err := h.Repo.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "notification not found", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}
