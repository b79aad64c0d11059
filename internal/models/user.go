package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents an account on the exchange: both listing owners and
// interested parties. Email is the unique key used to scope listings,
// interests and transactions.
type User struct {
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`
	Email        string    `gorm:"column:email;not null;uniqueIndex" json:"email"`
	FullName     string    `gorm:"column:full_name" json:"full_name"`
	CompanyName  string    `gorm:"column:company_name" json:"company_name"`
	PasswordHash string    `gorm:"column:password_hash;not null" json:"-"`
	CreatedDate  time.Time `gorm:"column:created_date;autoCreateTime" json:"created_date"`
}

func (User) TableName() string {
	return "users"
}

// BeforeCreate sets user_id if not already set (DBs without default uuid).
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == uuid.Nil {
		u.UserID = uuid.New()
	}
	return nil
}
