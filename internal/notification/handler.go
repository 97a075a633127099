package notification

import (
	"net/http"

	"github.com/Afresh-Revolution/Knowrist/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	feed *Feed
}

func NewHandler(feed *Feed) *Handler {
	return &Handler{feed: feed}
}

func (h *Handler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.feed.List())
}

type addRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Code        string `json:"code"`
	Type        Type   `json:"type" binding:"required,oneof=activation welcome pool-full other"`
}

func (h *Handler) Add(c *gin.Context) {
	var req addRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	n := h.feed.Add(req.Title, req.Description, req.Code, req.Type)
	c.JSON(http.StatusCreated, n)
}

func (h *Handler) Remove(c *gin.Context) {
	if !h.feed.Remove(c.Param("notificationID")) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "notification not found"})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "notification removed"})
}
