package domain

import "gorm.io/datatypes"

// DefaultReadTime is used when a post is created without one.
const DefaultReadTime = "5 min read"

// BlogPost is an article on the marketing site blog.
type BlogPost struct {
	Publication

	Title    string                      `gorm:"size:191;not null" json:"title" binding:"required"`
	Slug     string                      `gorm:"index;size:191" json:"slug"`
	Excerpt  string                      `gorm:"size:512" json:"excerpt"`
	Content  string                      `gorm:"type:text" json:"content"`
	Author   string                      `gorm:"size:64" json:"author"`
	Image    string                      `gorm:"size:255" json:"image"`
	ReadTime string                      `gorm:"size:32" json:"readTime"`
	Tags     datatypes.JSONSlice[string] `json:"tags"`
}

func (BlogPost) TableName() string { return "blog_posts" }
