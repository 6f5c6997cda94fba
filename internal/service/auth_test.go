package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"

	"github.com/balloondhq/balloond-website/internal/core/config"
	"github.com/balloondhq/balloond-website/internal/domain"
	"github.com/balloondhq/balloond-website/internal/repo"
	"github.com/balloondhq/balloond-website/pkg/utils"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: glogger.Default.LogMode(glogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.SiteContent{}))
	return db
}

func TestAuthenticate(t *testing.T) {
	db := newTestDB(t)
	users := repo.NewUserRepo(db)
	require.NoError(t, users.Create(&domain.User{
		ID:           utils.NewID(),
		Email:        "editor@balloond.com",
		Name:         "Edie",
		PasswordHash: utils.HashPassword("s3cret"),
		Role:         domain.RoleEditor,
	}))

	svc := NewAuthService(users)

	u, err := svc.Authenticate("editor@balloond.com", "s3cret")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "Edie", u.Name)

	// Address is normalized before lookup.
	u, err = svc.Authenticate("  Editor@Balloond.com ", "s3cret")
	require.NoError(t, err)
	assert.NotNil(t, u)

	u, err = svc.Authenticate("editor@balloond.com", "wrong")
	require.NoError(t, err)
	assert.Nil(t, u)

	u, err = svc.Authenticate("ghost@balloond.com", "s3cret")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestSeedRunIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	users := repo.NewUserRepo(db)
	svc := NewSeedService(db, users, config.Seed{
		Key:           "irrelevant-here",
		AdminEmail:    "admin@balloond.com",
		AdminName:     "Admin",
		AdminPassword: "first-pass",
	})

	require.NoError(t, svc.Run())

	admin, err := users.FindByEmail("admin@balloond.com")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, domain.RoleAdmin, admin.Role)
	assert.True(t, utils.CheckPassword("first-pass", admin.PasswordHash))

	var rows []domain.SiteContent
	require.NoError(t, db.Order("content_key").Find(&rows).Error)
	require.Len(t, rows, 3)
	for _, sc := range rows {
		assert.True(t, sc.Published)
		assert.NotNil(t, sc.PublishedAt)
	}
	firstStamp := *rows[0].PublishedAt

	// Second run rotates the admin password but leaves content alone.
	svc.cfg.AdminPassword = "second-pass"
	require.NoError(t, svc.Run())

	admin, err = users.FindByEmail("admin@balloond.com")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.True(t, utils.CheckPassword("second-pass", admin.PasswordHash))

	require.NoError(t, db.Order("content_key").Find(&rows).Error)
	require.Len(t, rows, 3)
	assert.True(t, firstStamp.Equal(*rows[0].PublishedAt), "publishedAt moved on reseed")
}
