package service

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/balloondhq/balloond-website/internal/core/config"
	"github.com/balloondhq/balloond-website/internal/domain"
	"github.com/balloondhq/balloond-website/pkg/utils"
)

// SeedService provisions the default admin account and baseline site
// content. Intended for initial deployment; every write is an upsert so
// re-running is harmless.
type SeedService struct {
	db    *gorm.DB
	users domain.UserRepository
	cfg   config.Seed
}

func NewSeedService(db *gorm.DB, users domain.UserRepository, cfg config.Seed) *SeedService {
	return &SeedService{db: db, users: users, cfg: cfg}
}

func (s *SeedService) Run() error {
	admin := &domain.User{
		ID:           utils.NewID(),
		Email:        s.cfg.AdminEmail,
		Name:         s.cfg.AdminName,
		PasswordHash: utils.HashPassword(s.cfg.AdminPassword),
		Role:         domain.RoleAdmin,
	}
	if err := s.users.Upsert(admin); err != nil {
		return err
	}

	now := time.Now()
	for _, sc := range baselineContent() {
		sc.SetContentID(utils.NewID())
		domain.StampPublish(sc, nil, now)
		err := s.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "content_key"}},
			DoNothing: true,
		}).Create(sc).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func baselineContent() []*domain.SiteContent {
	mk := func(key, title, body string) *domain.SiteContent {
		sc := &domain.SiteContent{Key: key, Title: title, Body: body}
		sc.Published = true
		return sc
	}
	return []*domain.SiteContent{
		mk("home.hero", "Pop the small talk", "Balloon'd is dating without the endless swiping."),
		mk("about.mission", "Our mission", "Real connections over first impressions."),
		mk("footer.tagline", "Balloon'd", "Made with love, one balloon at a time."),
	}
}
