package pool

import (
	"errors"
	"net/http"

	"github.com/Afresh-Revolution/Knowrist/internal/api"
	"github.com/Afresh-Revolution/Knowrist/internal/auth"
	"github.com/Afresh-Revolution/Knowrist/internal/backend"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store *Store
	admin *AdminService
}

func NewHandler(store *Store, admin *AdminService) *Handler {
	return &Handler{store: store, admin: admin}
}

// ListPools returns pools the dashboard can show; ended pools are excluded.
func (h *Handler) ListPools(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Available())
}

func (h *Handler) GetPool(c *gin.Context) {
	p, ok := h.store.Get(c.Param("poolID"))
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "pool not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// CreateLocalPool creates a pool in the session store only. Used by the
// admin dashboard's instant preview; the authoritative copy goes through
// CreateAdminPool.
func (h *Handler) CreateLocalPool(c *gin.Context) {
	var data CreatePoolData
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	p, err := h.store.Create(data)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, ErrDuplicateID) {
			status = http.StatusConflict
		}
		c.JSON(status, api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, p)
}

// CreateAdminPool creates a pool on the backend and mirrors it locally.
func (h *Handler) CreateAdminPool(c *gin.Context) {
	token, ok := auth.AdminToken(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "admin session required"})
		return
	}

	var req backend.CreatePoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	if errs := api.ValidateStruct(req); len(errs) > 0 {
		api.RespondWithValidationErrors(c, errs)
		return
	}

	result, err := h.admin.CreatePool(c.Request.Context(), token, req)
	if err != nil {
		respondBackendError(c, err, "failed to create pool")
		return
	}

	c.JSON(http.StatusCreated, result)
}

// ListAdminPools proxies the backend's admin pool listing.
func (h *Handler) ListAdminPools(c *gin.Context) {
	token, ok := auth.AdminToken(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "admin session required"})
		return
	}

	pools, err := h.admin.ListPools(c.Request.Context(), token)
	if err != nil {
		respondBackendError(c, err, "failed to fetch pools")
		return
	}

	c.JSON(http.StatusOK, pools)
}

// respondBackendError maps backend failures onto the local response, keeping
// the backend's status code when it sent one.
func respondBackendError(c *gin.Context, err error, fallback string) {
	var statusErr *backend.StatusError
	if errors.As(err, &statusErr) {
		c.JSON(statusErr.Code, api.ErrorResponse{Error: statusErr.Message})
		return
	}
	if errors.Is(err, backend.ErrUnreachable) {
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: backend.ErrUnreachable.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: fallback})
}
