package domain

import (
	"time"

	"gorm.io/gorm"
)

// User is a staff account for the admin dashboard. Accounts are created
// through seeding or admin provisioning and are never deleted in normal
// operation.
type User struct {
	ID           string `gorm:"primaryKey;type:varchar(32)" json:"id"`
	Email        string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Name         string `gorm:"size:64;not null" json:"name"`
	PasswordHash string `gorm:"size:100;not null" json:"-"`
	Role         Role   `gorm:"size:16;not null;default:EDITOR" json:"role"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }

// UserRepository is the credential store used by authentication and
// seeding.
type UserRepository interface {
	Create(u *User) error
	FindByID(id string) (*User, error)
	FindByEmail(email string) (*User, error)
	Upsert(u *User) error
}
