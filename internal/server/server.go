package server

import (
	"context"
	"net/http"

	"github.com/Afresh-Revolution/Knowrist/internal/auth"
	"github.com/Afresh-Revolution/Knowrist/internal/chat"
	"github.com/Afresh-Revolution/Knowrist/internal/config"
	"github.com/Afresh-Revolution/Knowrist/internal/entryflow"
	"github.com/Afresh-Revolution/Knowrist/internal/notification"
	"github.com/Afresh-Revolution/Knowrist/internal/pool"
	"github.com/Afresh-Revolution/Knowrist/internal/user"
	"github.com/Afresh-Revolution/Knowrist/internal/wallet"

	"github.com/gin-gonic/gin"
)

// Deps bundles everything the router needs.
type Deps struct {
	Config        *config.Config
	Pools         *pool.Store
	PoolAdmin     *pool.AdminService
	Wallet        *wallet.Service
	Notifications *notification.Feed
	Flow          *entryflow.Flow
	Users         *user.Service
	Admin         *auth.AdminService
	Chat          *chat.Hub
}

type Server struct {
	router *gin.Engine
	http   *http.Server
}

func New(deps Deps) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(deps.Config.RateLimitRPS, deps.Config.RateLimitBurst))

	userHandler := user.NewHandler(deps.Users, deps.Admin)
	poolHandler := pool.NewHandler(deps.Pools, deps.PoolAdmin)
	walletHandler := wallet.NewHandler(deps.Wallet)
	notificationHandler := notification.NewHandler(deps.Notifications)
	flowHandler := entryflow.NewHandler(deps.Flow)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/login", userHandler.Login)
		authGroup.POST("/signup", userHandler.Signup)
		authGroup.GET("/check-username", userHandler.CheckUsername)
		authGroup.GET("/check-email", userHandler.CheckEmail)
		authGroup.POST("/logout", userHandler.Logout)
		authGroup.POST("/admin-login", userHandler.AdminLogin)
		authGroup.POST("/admin-logout", userHandler.AdminLogout)
	}

	session := router.Group("/")
	session.Use(auth.OptionalUser(deps.Users))
	{
		session.GET("/me", userHandler.GetMe)
		session.GET("/pools", poolHandler.ListPools)
		session.GET("/pools/:poolID", poolHandler.GetPool)

		session.GET("/wallet", walletHandler.GetBalance)
		session.POST("/wallet/refresh", walletHandler.Refresh)
		session.POST("/wallet/add", walletHandler.Add)

		session.GET("/notifications", notificationHandler.List)
		session.POST("/notifications", notificationHandler.Add)
		session.DELETE("/notifications/:notificationID", notificationHandler.Remove)

		session.GET("/flow", flowHandler.GetState)
		session.POST("/flow/start", flowHandler.Start)
		session.POST("/flow/difficulty", flowHandler.SelectDifficulty)
		session.POST("/flow/continue", flowHandler.ContinueToConfirm)
		session.GET("/flow/summary", flowHandler.GetSummary)
		session.POST("/flow/confirm", flowHandler.Confirm)
		session.POST("/flow/payment/continue", flowHandler.ContinueFromPayment)
		session.POST("/flow/words", flowHandler.SubmitWord)
		session.GET("/flow/rewards", flowHandler.GetRewards)
		session.POST("/flow/code", flowHandler.SetCode)
		session.POST("/flow/enter", flowHandler.EnterArena)
		session.POST("/flow/close", flowHandler.Close)
	}

	protected := router.Group("/account")
	protected.Use(auth.RequireUser(deps.Users))
	{
		protected.DELETE("/", userHandler.DeleteAccount)
		protected.PUT("/profile-picture", userHandler.SetProfilePicture)
	}

	admin := router.Group("/admin")
	admin.Use(auth.RequireAdmin(deps.Admin, ""))
	{
		admin.POST("/pools", poolHandler.CreateAdminPool)
		admin.GET("/pools", poolHandler.ListAdminPools)
		admin.POST("/pools/local", poolHandler.CreateLocalPool)
	}

	router.GET("/chat/ws", gin.WrapF(deps.Chat.ServeWS))
	router.GET("/chat/history", func(c *gin.Context) {
		c.JSON(http.StatusOK, deps.Chat.History())
	})

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())

	return &Server{router: router}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// Router exposes the engine for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
