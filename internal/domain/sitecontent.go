package domain

// SiteContent is a keyed block of site-wide copy (hero text, about
// sections, footer). Unlike the other resources its updates require
// ADMIN.
type SiteContent struct {
	Publication

	Key   string `gorm:"column:content_key;uniqueIndex;size:64;not null" json:"key" binding:"required"`
	Title string `gorm:"size:191" json:"title"`
	Body  string `gorm:"type:text" json:"body"`
}

func (SiteContent) TableName() string { return "site_contents" }
