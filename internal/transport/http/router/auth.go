package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/balloondhq/balloond-website/internal/domain"
	"github.com/balloondhq/balloond-website/internal/repo"
	"github.com/balloondhq/balloond-website/internal/service"
	httpez "github.com/balloondhq/balloond-website/internal/transport/http/ez"
	mdw "github.com/balloondhq/balloond-website/internal/transport/http/middleware"
)

type sessionUser struct {
	ID    string      `json:"id"`
	Email string      `json:"email"`
	Name  string      `json:"name"`
	Role  domain.Role `json:"role"`
}

func mountAuth(api *gin.RouterGroup, d Deps) {
	authSvc := service.NewAuthService(repo.NewUserRepo(d.DB))
	ez := httpez.New(api)

	setSession := func(c *gin.Context, token string, maxAge int) {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(d.Cfg.Cookie.Name, token, maxAge, "/", d.Cfg.Cookie.Domain, d.Cfg.Cookie.Secure, true)
	}

	type loginIn struct {
		Email    string `json:"email"    binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	httpez.RegisterAction[loginIn, sessionUser](ez, d.DB, httpez.Action[loginIn, sessionUser]{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, _ *gorm.DB, in *loginIn) (sessionUser, error) {
			u, err := authSvc.Authenticate(in.Email, in.Password)
			if err != nil {
				return sessionUser{}, httpez.Internal(err)
			}
			if u == nil {
				return sessionUser{}, httpez.Unauthorized("invalid credentials")
			}
			tok, err := d.JWTer.Issue(u)
			if err != nil || tok == "" {
				return sessionUser{}, httpez.Internal(err)
			}
			setSession(c, tok, int(d.JWTer.TTL.Seconds()))
			return sessionUser{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}, nil
		},
	})

	// Claims come straight from the verified token; no store re-fetch.
	httpez.RegisterAction[struct{}, sessionUser](ez, d.DB, httpez.Action[struct{}, sessionUser]{
		Method: http.MethodGet,
		Path:   "/auth/me",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (sessionUser, error) {
			claims := mdw.ClaimsFrom(c)
			if claims == nil {
				return sessionUser{}, httpez.Unauthorized("missing or invalid token")
			}
			return sessionUser{ID: claims.UID, Email: claims.Email, Name: claims.Name, Role: claims.Role}, nil
		},
	})

	httpez.RegisterAction[struct{}, gin.H](ez, d.DB, httpez.Action[struct{}, gin.H]{
		Method: http.MethodPost,
		Path:   "/auth/logout",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (gin.H, error) {
			setSession(c, "", -1)
			return gin.H{"ok": 1}, nil
		},
	})
}
