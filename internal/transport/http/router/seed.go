package router

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/balloondhq/balloond-website/internal/repo"
	"github.com/balloondhq/balloond-website/internal/service"
	httpez "github.com/balloondhq/balloond-website/internal/transport/http/ez"
)

// mountSeed exposes the one-time provisioning endpoint, gated by a
// shared secret instead of a session.
func mountSeed(api *gin.RouterGroup, d Deps) {
	seedSvc := service.NewSeedService(d.DB, repo.NewUserRepo(d.DB), d.Cfg.Seed)
	ez := httpez.New(api)

	httpez.RegisterAction[struct{}, gin.H](ez, d.DB, httpez.Action[struct{}, gin.H]{
		Method: http.MethodPost,
		Path:   "/seed",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (gin.H, error) {
			key := c.GetHeader("X-Seed-Key")
			if key == "" {
				// Body is optional; the header is the usual carrier.
				var body struct {
					Key string `json:"key"`
				}
				if err := c.ShouldBindJSON(&body); err == nil {
					key = body.Key
				}
			}
			if d.Cfg.Seed.Key == "" ||
				subtle.ConstantTimeCompare([]byte(key), []byte(d.Cfg.Seed.Key)) != 1 {
				return nil, httpez.Forbidden("invalid seed key")
			}
			if err := seedSvc.Run(); err != nil {
				return nil, httpez.Internal(err)
			}
			return gin.H{"seeded": true}, nil
		},
	})
}
