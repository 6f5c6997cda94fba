package domain

import "time"

// Press is a press mention or release. Date is the recency field the
// public listing sorts by.
type Press struct {
	Publication

	Title   string    `gorm:"size:191;not null" json:"title" binding:"required"`
	Outlet  string    `gorm:"size:128" json:"outlet"`
	URL     string    `gorm:"size:512" json:"url"`
	Excerpt string    `gorm:"size:512" json:"excerpt"`
	Date    time.Time `json:"date"`
}

func (Press) TableName() string { return "press_items" }
