package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Career is an open position on the careers page. PostedAt is the
// recency field the public listing sorts by.
type Career struct {
	Publication

	Title        string                      `gorm:"size:191;not null" json:"title" binding:"required"`
	Department   string                      `gorm:"size:64" json:"department"`
	Location     string                      `gorm:"size:128" json:"location"`
	Type         string                      `gorm:"size:32" json:"type"`
	Description  string                      `gorm:"type:text" json:"description"`
	Requirements datatypes.JSONSlice[string] `json:"requirements"`
	PostedAt     time.Time                   `json:"postedAt"`
}

func (Career) TableName() string { return "careers" }
