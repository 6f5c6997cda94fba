package ez

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/balloondhq/balloond-website/internal/core/cache"
	"github.com/balloondhq/balloond-website/internal/domain"
	mdw "github.com/balloondhq/balloond-website/internal/transport/http/middleware"
	"github.com/balloondhq/balloond-website/internal/transport/http/response"
	"github.com/balloondhq/balloond-website/pkg/utils"
)

// Model constrains a content model to pointer-of-T implementing the
// publish lifecycle.
type Model[T any] interface {
	*T
	domain.Publishable
}

// CrudHooks let a resource default or reject payload fields before the
// row is written.
type CrudHooks[T any] struct {
	BeforeCreate func(c *gin.Context, m *T) error
	BeforeUpdate func(c *gin.Context, m *T) error
}

// CrudConfig wires one content resource into the two route shapes:
//
//	GET    {public}/path       published-only list (optionally cached)
//	POST   {public}/path       create, WriteRole
//	GET    {public}/path/:id   item; drafts 404 for anonymous callers
//	PUT    {public}/path/:id   update, UpdateRole (falls back to WriteRole)
//	DELETE {public}/path/:id   hard delete, DeleteRole
//	GET    {admin}/path        full list with creator attribution, EDITOR
type CrudConfig[T any] struct {
	DB     *gorm.DB
	Public *gin.RouterGroup
	Admin  *gin.RouterGroup
	Path   string

	WriteRole  domain.Role // default EDITOR
	UpdateRole domain.Role // default WriteRole; ADMIN for site content
	DeleteRole domain.Role // default ADMIN

	PublicOrder string // e.g. "created_at DESC"
	AdminOrder  string

	Cache    *cache.Cache // nil disables list caching
	CacheTTL time.Duration

	Hooks CrudHooks[T]
}

func (cfg *CrudConfig[T]) listKey() string { return "public" + cfg.Path }

func (cfg *CrudConfig[T]) invalidate(ctx context.Context) {
	if cfg.Cache != nil {
		cfg.Cache.Invalidate(ctx, cfg.listKey())
	}
}

// Crud registers the full route set for one content resource.
func Crud[T any, PT Model[T]](cfg CrudConfig[T]) {
	if cfg.WriteRole == "" {
		cfg.WriteRole = domain.RoleEditor
	}
	if cfg.UpdateRole == "" {
		cfg.UpdateRole = cfg.WriteRole
	}
	if cfg.DeleteRole == "" {
		cfg.DeleteRole = domain.RoleAdmin
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = time.Minute
	}

	// Public list: published rows only.
	cfg.Public.GET(cfg.Path, func(c *gin.Context) {
		load := func(ctx context.Context) ([]T, error) {
			items := make([]T, 0)
			err := cfg.DB.WithContext(ctx).Model(PT(new(T))).
				Where("published = ?", true).
				Order(cfg.PublicOrder).
				Find(&items).Error
			return items, err
		}
		var items []T
		var err error
		if cfg.Cache != nil {
			items, err = cache.GetOrLoadJSON(cfg.Cache, c.Request.Context(), cfg.listKey(), cfg.CacheTTL, load)
		} else {
			items, err = load(c.Request.Context())
		}
		if err != nil {
			Fail(c, Internal(err))
			return
		}
		response.OK(c, items)
	})

	// Create.
	cfg.Public.POST(cfg.Path, func(c *gin.Context) {
		claims := RequireRole(c, cfg.WriteRole)
		if claims == nil {
			return
		}
		m := PT(new(T))
		if err := c.ShouldBindJSON(m); err != nil {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		if m.ContentID() == "" {
			m.SetContentID(utils.NewID())
		}
		m.AttributeTo(claims.UID)
		domain.StampPublish(m, nil, time.Now())
		if cfg.Hooks.BeforeCreate != nil {
			if err := cfg.Hooks.BeforeCreate(c, (*T)(m)); err != nil {
				response.Error(c, http.StatusBadRequest, err.Error())
				return
			}
		}
		if err := cfg.DB.WithContext(c).Omit(clause.Associations).Create(m).Error; err != nil {
			Fail(c, Internal(err))
			return
		}
		cfg.invalidate(c.Request.Context())
		response.Created(c, m)
	})

	// Public item: a draft is indistinguishable from an absent row for
	// anonymous callers.
	cfg.Public.GET(cfg.Path+"/:id", func(c *gin.Context) {
		m := PT(new(T))
		err := cfg.DB.WithContext(c).First(m, "id = ?", c.Param("id")).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "")
			return
		}
		if err != nil {
			Fail(c, Internal(err))
			return
		}
		if !m.IsPublished() {
			claims := mdw.ClaimsFrom(c)
			if claims == nil || !claims.Role.Allows(domain.RoleEditor) {
				response.Error(c, http.StatusNotFound, "")
				return
			}
		}
		response.OK(c, m)
	})

	// Update. The stored first-publication timestamp is carried over;
	// it is stamped only on the first transition to published.
	cfg.Public.PUT(cfg.Path+"/:id", func(c *gin.Context) {
		claims := RequireRole(c, cfg.UpdateRole)
		if claims == nil {
			return
		}
		id := c.Param("id")

		existing := PT(new(T))
		err := cfg.DB.WithContext(c).First(existing, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "")
			return
		}
		if err != nil {
			Fail(c, Internal(err))
			return
		}

		in := PT(new(T))
		if err := c.ShouldBindJSON(in); err != nil {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		in.SetContentID(id)
		in.AttributeTo(existing.CreatorID())
		domain.StampPublish(in, existing.FirstPublishedAt(), time.Now())
		if cfg.Hooks.BeforeUpdate != nil {
			if err := cfg.Hooks.BeforeUpdate(c, (*T)(in)); err != nil {
				response.Error(c, http.StatusBadRequest, err.Error())
				return
			}
		}

		// Select("*") so published=false actually clears the flag;
		// identity and attribution columns stay as stored.
		err = cfg.DB.WithContext(c).Model(existing).
			Select("*").
			Omit("id", "created_at", "created_by_id").
			Updates((*T)(in)).Error
		if err != nil {
			Fail(c, Internal(err))
			return
		}
		cfg.invalidate(c.Request.Context())

		out := PT(new(T))
		if err := cfg.DB.WithContext(c).First(out, "id = ?", id).Error; err != nil {
			Fail(c, Internal(err))
			return
		}
		response.OK(c, out)
	})

	// Delete: hard delete, highest-privilege only.
	cfg.Public.DELETE(cfg.Path+"/:id", func(c *gin.Context) {
		if claims := RequireRole(c, cfg.DeleteRole); claims == nil {
			return
		}
		id := c.Param("id")
		res := cfg.DB.WithContext(c).Delete(PT(new(T)), "id = ?", id)
		if res.Error != nil {
			Fail(c, Internal(res.Error))
			return
		}
		if res.RowsAffected == 0 {
			response.Error(c, http.StatusNotFound, "")
			return
		}
		cfg.invalidate(c.Request.Context())
		response.OK(c, gin.H{"id": id})
	})

	// Admin list: drafts included, creator preloaded.
	cfg.Admin.GET(cfg.Path, func(c *gin.Context) {
		if claims := RequireRole(c, domain.RoleEditor); claims == nil {
			return
		}
		items := make([]T, 0)
		err := cfg.DB.WithContext(c).Model(PT(new(T))).
			Preload("CreatedBy").
			Order(cfg.AdminOrder).
			Find(&items).Error
		if err != nil {
			Fail(c, Internal(err))
			return
		}
		response.OK(c, items)
	})
}
