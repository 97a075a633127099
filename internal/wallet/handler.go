package wallet

import (
	"net/http"

	"github.com/Afresh-Revolution/Knowrist/internal/api"
	"github.com/Afresh-Revolution/Knowrist/internal/auth"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type balanceResponse struct {
	Balance float64 `json:"balance"`
}

func (h *Handler) GetBalance(c *gin.Context) {
	c.JSON(http.StatusOK, balanceResponse{Balance: h.service.Balance()})
}

// Refresh re-fetches the authoritative balance. The local cache survives a
// failed fetch, so the stale value is returned alongside the error.
func (h *Handler) Refresh(c *gin.Context) {
	token, _ := auth.UserToken(c)

	balance, err := h.service.Refresh(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"balance": balance,
			"error":   "failed to refresh balance",
		})
		return
	}

	c.JSON(http.StatusOK, balanceResponse{Balance: balance})
}

type addRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// Add credits the local balance. Used by the dashboard to reflect rewards;
// nothing is written to the backend.
func (h *Handler) Add(c *gin.Context) {
	var req addRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "amount must be positive"})
		return
	}

	h.service.Add(req.Amount)
	c.JSON(http.StatusOK, balanceResponse{Balance: h.service.Balance()})
}
