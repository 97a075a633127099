package user

import (
	"errors"
	"net/http"

	"github.com/Afresh-Revolution/Knowrist/internal/api"
	"github.com/Afresh-Revolution/Knowrist/internal/auth"
	"github.com/Afresh-Revolution/Knowrist/internal/backend"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
	admin   *auth.AdminService
}

func NewHandler(service *Service, admin *auth.AdminService) *Handler {
	return &Handler{service: service, admin: admin}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	u, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondAuthError(c, err, "login failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": u})
}

type signupRequest struct {
	Fullname string `json:"fullname" binding:"required"`
	Username string `json:"username" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (h *Handler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	u, err := h.service.Signup(c.Request.Context(), req.Fullname, req.Username, req.Email, req.Password)
	if err != nil {
		respondAuthError(c, err, "signup failed")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": u})
}

func (h *Handler) CheckUsername(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "username parameter required"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": h.service.CheckUsername(c.Request.Context(), username)})
}

func (h *Handler) CheckEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "email parameter required"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": h.service.CheckEmail(c.Request.Context(), email)})
}

func (h *Handler) GetMe(c *gin.Context) {
	u, ok := h.service.Current()
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "no active session"})
		return
	}

	resp := gin.H{"user": u}
	if picture, ok := h.service.ProfilePicture(); ok {
		resp["profilePicture"] = picture
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Logout(c *gin.Context) {
	h.service.Logout()
	c.JSON(http.StatusOK, api.MessageResponse{Message: "logged out"})
}

func (h *Handler) DeleteAccount(c *gin.Context) {
	if err := h.service.DeleteAccount(c.Request.Context()); err != nil {
		if errors.Is(err, auth.ErrNoSession) {
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: err.Error()})
			return
		}
		respondAuthError(c, err, "failed to delete account")
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "account deleted"})
}

type profilePictureRequest struct {
	Data string `json:"data" binding:"required"`
}

func (h *Handler) SetProfilePicture(c *gin.Context) {
	var req profilePictureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.service.SetProfilePicture(req.Data); err != nil {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "profile picture updated"})
}

type adminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) AdminLogin(c *gin.Context) {
	var req adminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	session, err := h.admin.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrUnknownRole) {
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: err.Error()})
			return
		}
		respondAuthError(c, err, "admin login failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"role": session.Role, "email": session.Email})
}

func (h *Handler) AdminLogout(c *gin.Context) {
	h.admin.Logout()
	c.JSON(http.StatusOK, api.MessageResponse{Message: "admin logged out"})
}

// respondAuthError keeps the backend's status code when it sent one, so the
// UI can phrase 401 vs 409 vs 500 differently.
func respondAuthError(c *gin.Context, err error, fallback string) {
	var statusErr *backend.StatusError
	if errors.As(err, &statusErr) {
		c.JSON(statusErr.Code, api.ErrorResponse{Error: statusErr.Message})
		return
	}
	if errors.Is(err, backend.ErrUnreachable) {
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: fallback})
}
