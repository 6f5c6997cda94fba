package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/balloondhq/balloond-website/internal/domain"
	httpez "github.com/balloondhq/balloond-website/internal/transport/http/ez"
	"github.com/balloondhq/balloond-website/pkg/utils"
)

// mountContent wires the four content resources. Each gets the same
// publish-lifecycle CRUD; hooks carry the per-resource defaulting.
func mountContent(api, admin *gin.RouterGroup, d Deps) {
	httpez.Crud[domain.BlogPost](httpez.CrudConfig[domain.BlogPost]{
		DB: d.DB, Public: api, Admin: admin, Path: "/blog",
		PublicOrder: "created_at DESC",
		AdminOrder:  "created_at DESC",
		Cache:       d.Cache,
		Hooks: httpez.CrudHooks[domain.BlogPost]{
			BeforeCreate: func(c *gin.Context, m *domain.BlogPost) error {
				blogDefaults(m)
				return nil
			},
			BeforeUpdate: func(c *gin.Context, m *domain.BlogPost) error {
				blogDefaults(m)
				return nil
			},
		},
	})

	httpez.Crud[domain.Career](httpez.CrudConfig[domain.Career]{
		DB: d.DB, Public: api, Admin: admin, Path: "/careers",
		PublicOrder: "posted_at DESC",
		AdminOrder:  "posted_at DESC",
		Cache:       d.Cache,
		Hooks: httpez.CrudHooks[domain.Career]{
			BeforeCreate: careerDefaults,
			BeforeUpdate: careerDefaults,
		},
	})

	httpez.Crud[domain.Press](httpez.CrudConfig[domain.Press]{
		DB: d.DB, Public: api, Admin: admin, Path: "/press",
		PublicOrder: "date DESC",
		AdminOrder:  "date DESC",
		Cache:       d.Cache,
		Hooks: httpez.CrudHooks[domain.Press]{
			BeforeCreate: pressDefaults,
			BeforeUpdate: pressDefaults,
		},
	})

	// Site-wide copy: updates are ADMIN, unlike the other resources.
	httpez.Crud[domain.SiteContent](httpez.CrudConfig[domain.SiteContent]{
		DB: d.DB, Public: api, Admin: admin, Path: "/content",
		UpdateRole:  domain.RoleAdmin,
		PublicOrder: "content_key ASC",
		AdminOrder:  "content_key ASC",
		Cache:       d.Cache,
	})
}

func blogDefaults(m *domain.BlogPost) {
	if m.ReadTime == "" {
		m.ReadTime = domain.DefaultReadTime
	}
	if m.Tags == nil {
		m.Tags = datatypes.JSONSlice[string]{}
	}
	if m.Slug == "" {
		m.Slug = utils.Slugify(m.Title)
	}
}

func careerDefaults(c *gin.Context, m *domain.Career) error {
	if m.PostedAt.IsZero() {
		m.PostedAt = time.Now().UTC()
	}
	if m.Requirements == nil {
		m.Requirements = datatypes.JSONSlice[string]{}
	}
	return nil
}

func pressDefaults(c *gin.Context, m *domain.Press) error {
	if m.Date.IsZero() {
		m.Date = time.Now().UTC()
	}
	return nil
}
