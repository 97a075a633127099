package entryflow

import (
	"errors"
	"net/http"

	"github.com/Afresh-Revolution/Knowrist/internal/api"
	"github.com/Afresh-Revolution/Knowrist/internal/backend"
	"github.com/Afresh-Revolution/Knowrist/internal/pool"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	flow *Flow
}

func NewHandler(flow *Flow) *Handler {
	return &Handler{flow: flow}
}

func (h *Handler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, h.flow.Snapshot())
}

type startRequest struct {
	PoolID string `json:"poolId" binding:"required"`
	Daily  bool   `json:"daily"`
}

func (h *Handler) Start(c *gin.Context) {
	var req startRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	var err error
	if req.Daily {
		err = h.flow.StartDaily(req.PoolID)
	} else {
		err = h.flow.Start(req.PoolID)
	}
	if err != nil {
		respondFlowError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.flow.Snapshot())
}

type difficultyRequest struct {
	Difficulty pool.Difficulty `json:"difficulty" binding:"required,oneof=easy medium hard"`
}

func (h *Handler) SelectDifficulty(c *gin.Context) {
	var req difficultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	code, err := h.flow.SelectDifficulty(req.Difficulty)
	if err != nil {
		respondFlowError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"dailyCode": code})
}

func (h *Handler) ContinueToConfirm(c *gin.Context) {
	if err := h.flow.ContinueToConfirm(); err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.flow.Snapshot())
}

func (h *Handler) GetSummary(c *gin.Context) {
	summary, err := h.flow.Summary()
	if err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *Handler) Confirm(c *gin.Context) {
	result, err := h.flow.Confirm()
	if err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) ContinueFromPayment(c *gin.Context) {
	stage, err := h.flow.ContinueFromPayment()
	if err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stage": stage})
}

type wordRequest struct {
	Correct   string `json:"correct" binding:"required"`
	Scrambled string `json:"scrambled" binding:"required"`
}

func (h *Handler) SubmitWord(c *gin.Context) {
	var req wordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	done, err := h.flow.SubmitWord(req.Correct, req.Scrambled)
	if err != nil {
		respondFlowError(c, err)
		return
	}

	entered, total := h.flow.WordProgress()
	c.JSON(http.StatusOK, gin.H{
		"done":         done,
		"wordsEntered": entered,
		"totalWords":   total,
	})
}

func (h *Handler) GetRewards(c *gin.Context) {
	rewards, total, err := h.flow.Rewards()
	if err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rewards": rewards, "total": total})
}

type codeRequest struct {
	Code string `json:"code"`
}

// SetCode feeds the activation-code field; verification is debounced behind
// the scenes and surfaces through GetState.
func (h *Handler) SetCode(c *gin.Context) {
	var req codeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.flow.SetCodeInput(req.Code); err != nil {
		respondFlowError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.flow.Snapshot())
}

func (h *Handler) EnterArena(c *gin.Context) {
	if err := h.flow.EnterArena(c.Request.Context()); err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "entered arena"})
}

func (h *Handler) Close(c *gin.Context) {
	h.flow.Close()
	c.JSON(http.StatusOK, api.MessageResponse{Message: "flow closed"})
}

func respondFlowError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidStage):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, ErrPoolNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, ErrPoolNotOpen), errors.Is(err, ErrCodeNotVerified):
		c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Error: err.Error()})
	default:
		var statusErr *backend.StatusError
		if errors.As(err, &statusErr) {
			c.JSON(statusErr.Code, api.ErrorResponse{Error: statusErr.Message})
			return
		}
		if errors.Is(err, backend.ErrUnreachable) {
			c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Error: err.Error()})
	}
}
