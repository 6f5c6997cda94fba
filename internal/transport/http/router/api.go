package router

import (
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/gin-contrib/cors"

	"github.com/balloondhq/balloond-website/internal/core/auth"
	"github.com/balloondhq/balloond-website/internal/core/cache"
	"github.com/balloondhq/balloond-website/internal/core/config"
	"github.com/balloondhq/balloond-website/internal/domain"
	mdw "github.com/balloondhq/balloond-website/internal/transport/http/middleware"
	"github.com/balloondhq/balloond-website/internal/transport/http/response"
)

// Deps is everything the HTTP surface needs wired in.
type Deps struct {
	Log   *zap.Logger
	DB    *gorm.DB
	JWTer *auth.JWTer
	Cache *cache.Cache // nil disables public-list caching
	Cfg   *config.Config
}

// NewEngine assembles the full engine: public site API under /api/v1
// and the draft-inclusive dashboard routes under /admin/v1.
func NewEngine(d Deps) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(d.Log, true),
		mdw.Metrics(),
		mdw.AccessLog(d.Log),
		cors.Default(),
		mdw.Session(d.JWTer, d.Cfg.Cookie.Name),
	)

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) { response.Error(c, http.StatusMethodNotAllowed, "") })
	r.NoRoute(func(c *gin.Context) { response.Error(c, http.StatusNotFound, "") })

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	admin := r.Group("/admin/v1")
	admin.Use(mdw.RequireRole(domain.RoleEditor))

	mountAuth(api, d)
	mountContent(api, admin, d)
	mountSeed(api, d)

	return r
}
