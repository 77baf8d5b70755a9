package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"washclub/internal/domain/user"
	"washclub/internal/handler/api"
	"washclub/internal/handler/middleware"
	"washclub/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	codeHandler *api.CodeHandler,
	redemptionHandler *api.RedemptionHandler,
	payoutHandler *api.PayoutHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, codeHandler, redemptionHandler, payoutHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	codeHandler *api.CodeHandler,
	redemptionHandler *api.RedemptionHandler,
	payoutHandler *api.PayoutHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		codes := apiGroup.Group("/codes")
		codes.Use(authMiddleware.RequireAuth())
		{
			customerOnly := authMiddleware.RequireRole(user.RoleCustomer)
			partnerOnly := authMiddleware.RequireRole(user.RolePartner)

			addRoutes(codes, []route{
				{Method: http.MethodPost, Path: "", Handler: codeHandler.IssueCode, Mw: []gin.HandlerFunc{customerOnly}},
				{Method: http.MethodGet, Path: "", Handler: codeHandler.ListCodes, Mw: []gin.HandlerFunc{customerOnly}},
				{Method: http.MethodGet, Path: "/:code", Handler: codeHandler.VerifyCode, Mw: []gin.HandlerFunc{partnerOnly}},
				{Method: http.MethodPost, Path: "/:code/start", Handler: redemptionHandler.StartRedemption, Mw: []gin.HandlerFunc{partnerOnly}},
				{Method: http.MethodPost, Path: "/:code/complete", Handler: redemptionHandler.CompleteRedemption, Mw: []gin.HandlerFunc{partnerOnly}},
			})
		}

		payouts := apiGroup.Group("/payouts")
		payouts.Use(authMiddleware.RequireAuth())
		{
			addRoutes(payouts, []route{
				{Method: http.MethodGet, Path: "", Handler: payoutHandler.ListPayouts, Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RolePartner)}},
				{Method: http.MethodGet, Path: "/:id", Handler: payoutHandler.GetPayout, Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RolePartner, user.RoleAdmin)}},
				{Method: http.MethodPost, Path: "/:id/retry", Handler: payoutHandler.RetryPayout, Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleAdmin)}},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
