package domain

import "time"

// Publication carries the publish lifecycle and creator attribution
// shared by every content resource. Embed it in a model and the model
// satisfies Publishable.
type Publication struct {
	ID          string     `gorm:"primaryKey;type:varchar(32)" json:"id"`
	Published   bool       `gorm:"not null;default:false" json:"published"`
	PublishedAt *time.Time `json:"publishedAt"`
	CreatedByID string     `gorm:"type:varchar(32);index" json:"createdById,omitempty"`
	CreatedBy   *User      `gorm:"foreignKey:CreatedByID" json:"createdBy,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (p *Publication) ContentID() string                { return p.ID }
func (p *Publication) CreatorID() string                { return p.CreatedByID }
func (p *Publication) SetContentID(id string)           { p.ID = id }
func (p *Publication) IsPublished() bool                { return p.Published }
func (p *Publication) FirstPublishedAt() *time.Time     { return p.PublishedAt }
func (p *Publication) SetFirstPublishedAt(t *time.Time) { p.PublishedAt = t }

// AttributeTo records the creating user. The association object is
// cleared so a caller cannot smuggle user rows in through the payload.
func (p *Publication) AttributeTo(userID string) {
	p.CreatedByID = userID
	p.CreatedBy = nil
}

// Publishable is the surface the generic CRUD layer needs from a
// content model.
type Publishable interface {
	ContentID() string
	SetContentID(id string)
	CreatorID() string
	IsPublished() bool
	FirstPublishedAt() *time.Time
	SetFirstPublishedAt(t *time.Time)
	AttributeTo(userID string)
}

// StampPublish reconciles the first-publication timestamp for a row
// about to be written. prev is the timestamp already stored (nil on
// create). The timestamp is set exactly once, on the first transition
// to published; unpublishing never clears it and republishing never
// moves it.
func StampPublish(m Publishable, prev *time.Time, now time.Time) {
	m.SetFirstPublishedAt(prev)
	if m.IsPublished() && prev == nil {
		t := now.UTC()
		m.SetFirstPublishedAt(&t)
	}
}
