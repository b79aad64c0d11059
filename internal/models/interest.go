package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Interest is a point-in-time expression of intent to acquire a listed
// material. Immutable once created — follow-ups create new records, there is
// no uniqueness constraint per (actor, listing). ListingTitle is a snapshot
// taken at submission time, so later edits to the listing do not rewrite
// history.
type Interest struct {
	InterestID        uuid.UUID `gorm:"column:interest_id;type:uuid;primaryKey" json:"interest_id"`
	ListingID         uuid.UUID `gorm:"column:listing_id;type:uuid;not null;index" json:"listing_id"`
	ListingTitle      string    `gorm:"column:listing_title;not null" json:"listing_title"`
	Message           string    `gorm:"column:message" json:"message"`
	InterestedCompany string    `gorm:"column:interested_company;not null" json:"interested_company"`
	CreatedBy         string    `gorm:"column:created_by;not null;index" json:"created_by"`
	CreatedDate       time.Time `gorm:"column:created_date;autoCreateTime" json:"created_date"`
}

func (Interest) TableName() string {
	return "interests"
}

func (i *Interest) BeforeCreate(tx *gorm.DB) error {
	if i.InterestID == uuid.Nil {
		i.InterestID = uuid.New()
	}
	return nil
}
